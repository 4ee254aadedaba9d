// qaddrctl 是传输层端点地址的命令行检查工具。
//
// 用法:
//
//	qaddrctl <命令> [命令参数]
//
// 命令:
//
//	inspect <endpoint>...   解析端点并打印地址族、端口、scope 等细节
//	match <endpoint>...     判断端点是否命中规则集（--rules 文件或 --rule 内联规则）
//	status [code|name]      解码宿主状态码或概念名；无参数时列出全部状态概念
//	help                    显示帮助信息
//
// match 命令说明:
//
//	规则集来自 --rules 指定的 JSON/YAML 文件（顶层 rules 数组），
//	或一至多个 --rule 内联规则，两者可叠加。
//	规则支持三种形式：单个 IP、CIDR 前缀、"起-止" 地址区间。
//
// status 命令说明:
//
//	参数先按概念名精确匹配（如 "address in use"），再按数值解析；
//	数值接受十进制或 0x 前缀的十六进制（含 0xC0240000 这类高位值）。
//	解码出的状态属于失败类时退出码为 1，便于脚本直接判断。
//
// 退出码:
//
//	0: 命令执行成功（match 命令: 所有端点命中; status 命令: 成功类状态）
//	1: 存在未命中的端点，或状态码属于失败类
//	2: 参数错误（无效端点、无效规则、未知命令等）
//
// 示例:
//
//	qaddrctl inspect 192.168.1.1:443 "[2001:db8::1]:443"
//	qaddrctl inspect --json "[fe80::1%3]:8080"
//	qaddrctl match --rule 10.0.0.0/8 10.1.2.3:443
//	qaddrctl match --rules allow.yaml 192.168.1.1:443 172.16.0.1:80
//	qaddrctl status 0x20240000
//	qaddrctl status "address in use"
//	qaddrctl status                       # 列出全部状态概念
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "qaddrctl",
		Usage:          "传输层端点地址检查工具",
		Version:        fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"QKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `qaddrctl 解析、比较并归类 IPv4/IPv6 传输层端点，
并在宿主状态码与统一状态概念之间互译。

端点写法:
  192.168.1.1:443         IPv4 端点
  [2001:db8::1]:443       IPv6 端点
  [fe80::1%3]:8080        带数值 scope id 的链路本地端点

规则写法 (match 命令):
  10.0.0.1                单个地址
  10.0.0.0/8              CIDR 前缀
  10.0.0.1-10.0.0.100     地址区间（闭区间）`,
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			return coder.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// setupSignalHandler 设置信号处理。
// 设计决策: 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel() // 第一次信号: 优雅取消

		<-sigCh
		signal.Stop(sigCh) // 回收订阅
		os.Exit(130)       // 第二次信号: 强制退出
	}()
}
