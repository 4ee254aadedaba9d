package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/qkit/pkg/platform/xaddr"
	"github.com/omeyang/qkit/pkg/platform/xstatus"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示用户参数错误，统一映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createInspectCommand(),
		createMatchCommand(),
		createStatusCommand(),
	}
}

// createInspectCommand 创建 inspect 子命令。
func createInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Aliases:   []string{"i"},
		Usage:     "解析端点并打印地址细节",
		ArgsUsage: "<endpoint>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "以 JSON 格式输出",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdInspect(cmd.Args().Slice(), cmd.Bool("json"))
		},
	}
}

// createMatchCommand 创建 match 子命令。
func createMatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Aliases:   []string{"m"},
		Usage:     "判断端点是否命中规则集",
		ArgsUsage: "<endpoint>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rules",
				Aliases: []string{"f"},
				Usage:   "规则文件路径（JSON/YAML，顶层 rules 数组）",
			},
			&cli.StringSliceFlag{
				Name:    "rule",
				Aliases: []string{"r"},
				Usage:   "内联规则（IP / CIDR / 起-止区间，可重复）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdMatch(cmd.String("rules"), cmd.StringSlice("rule"), cmd.Args().Slice())
		},
	}
}

// createStatusCommand 创建 status 子命令。
func createStatusCommand() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Aliases:   []string{"s"},
		Usage:     "解码宿主状态码或概念名；无参数时列出全部状态概念",
		ArgsUsage: "[code|name]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdStatus(cmd.Args().Slice())
		},
	}
}

// inspectResult 是 inspect 命令的单端点输出。
type inspectResult struct {
	Endpoint string `json:"endpoint"`
	Family   string `json:"family"`
	Port     uint16 `json:"port"`
	ScopeID  uint32 `json:"scope_id"`
	Explicit bool   `json:"explicit_binding"`
	Wildcard bool   `json:"wildcard"`
	Hash     uint32 `json:"hash"`
	Sum64    uint64 `json:"sum64"`
	Binary   string `json:"binary"`
}

// buildInspect 提取端点的可打印属性。
func buildInspect(a xaddr.Addr) (inspectResult, error) {
	bin, err := a.MarshalBinary()
	if err != nil {
		return inspectResult{}, err
	}
	return inspectResult{
		Endpoint: a.String(),
		Family:   a.Family().String(),
		Port:     a.Port(),
		ScopeID:  a.ScopeID(),
		Explicit: a.IsBoundExplicitly(),
		Wildcard: a.IsWildcard(),
		Hash:     a.Hash(),
		Sum64:    a.Sum64(),
		Binary:   hex.EncodeToString(bin),
	}, nil
}

// cmdInspect 解析并打印端点细节。
func cmdInspect(endpoints []string, asJSON bool) error {
	if len(endpoints) == 0 {
		return usageErrorf("inspect 命令需要至少一个端点")
	}

	results := make([]inspectResult, 0, len(endpoints))
	for _, ep := range endpoints {
		a, err := xaddr.Parse(ep)
		if err != nil {
			return usageErrorf("无效端点 %q: %v", ep, err)
		}
		r, err := buildInspect(a)
		if err != nil {
			return err
		}
		results = append(results, r)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("端点:     %s\n", r.Endpoint)
		fmt.Printf("地址族:   %s\n", r.Family)
		fmt.Printf("端口:     %d\n", r.Port)
		fmt.Printf("Scope ID: %d\n", r.ScopeID)
		fmt.Printf("显式绑定: %v\n", r.Explicit)
		fmt.Printf("通配地址: %v\n", r.Wildcard)
		fmt.Printf("哈希:     0x%08x (sum64: 0x%016x)\n", r.Hash, r.Sum64)
		fmt.Printf("二进制:   %s\n", r.Binary)
	}
	return nil
}

// cmdMatch 判断端点是否命中规则集。
// 设计决策: 存在未命中端点时返回退出码 1（通过 exitError），
// 使脚本能直接用退出码判断准入结果。
func cmdMatch(rulesFile string, inlineRules, endpoints []string) error {
	if len(endpoints) == 0 {
		return usageErrorf("match 命令需要至少一个端点")
	}

	rules, err := collectRules(rulesFile, inlineRules)
	if err != nil {
		return err
	}

	set, err := xaddr.ParseRuleSet(rules)
	if err != nil {
		return usageErrorf("无效规则: %v", err)
	}

	allMatched := true
	for _, ep := range endpoints {
		a, err := xaddr.Parse(ep)
		if err != nil {
			return usageErrorf("无效端点 %q: %v", ep, err)
		}
		if a.In(set) {
			fmt.Printf("%s: 命中\n", ep)
		} else {
			fmt.Printf("%s: 未命中\n", ep)
			allMatched = false
		}
	}

	if !allMatched {
		return &exitError{code: 1}
	}
	return nil
}

// collectRules 汇总规则文件与内联规则。
func collectRules(rulesFile string, inlineRules []string) ([]string, error) {
	var rules []string

	if rulesFile != "" {
		fileRules, err := loadRuleFile(rulesFile)
		if err != nil {
			return nil, err
		}
		rules = append(rules, fileRules...)
	}
	rules = append(rules, inlineRules...)

	if len(rules) == 0 {
		return nil, usageErrorf("未提供任何规则（--rules 或 --rule）")
	}
	return rules, nil
}

// loadRuleFile 读取规则文件并返回顶层 rules 数组。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func loadRuleFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取规则文件失败: %w", err)
	}
	return parseRuleFile(data, filepath.Ext(path))
}

// parseRuleFile 按扩展名解析规则文件内容。
func parseRuleFile(data []byte, ext string) ([]string, error) {
	var parser koanf.Parser
	switch strings.ToLower(ext) {
	case ".json":
		parser = kjson.Parser()
	case ".yaml", ".yml":
		parser = kyaml.Parser()
	default:
		return nil, usageErrorf("不支持的规则文件格式 %q（仅支持 .json/.yaml/.yml）", ext)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, usageErrorf("解析规则文件失败: %v", err)
	}

	rules := k.Strings("rules")
	if len(rules) == 0 {
		return nil, usageErrorf("规则文件缺少非空的顶层 rules 数组")
	}
	return rules, nil
}

// cmdStatus 解码宿主状态码，或列出全部状态概念。
// 设计决策: 解码出的状态属于失败类时返回退出码 1（通过 exitError），
// 与 match 命令的脚本友好约定一致。
func cmdStatus(args []string) error {
	if len(args) == 0 {
		for _, s := range xstatus.All() {
			fmt.Printf("%-28s 0x%08x (%11d)  %s\n", s.String(), uint32(s), int32(s), classOf(s))
		}
		return nil
	}
	if len(args) > 1 {
		return usageErrorf("status 命令最多接受一个状态码")
	}

	s, err := resolveStatusArg(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("状态:   %s\n", s)
	fmt.Printf("原始值: 0x%08x (%d)\n", uint32(s), int32(s))
	fmt.Printf("分类:   %s\n", classOf(s))
	if xstatus.Failed(s) {
		return &exitError{code: 1}
	}
	return nil
}

// classOf 返回状态分类的中文名。
func classOf(s xstatus.Status) string {
	if xstatus.Failed(s) {
		return "失败"
	}
	return "成功"
}

// resolveStatusArg 解析状态码参数：先按概念名精确匹配，再按数值解析。
func resolveStatusArg(arg string) (xstatus.Status, error) {
	for _, s := range xstatus.All() {
		if strings.EqualFold(s.String(), arg) {
			return s, nil
		}
	}
	return parseStatusArg(arg)
}

// parseStatusArg 解析数值状态码参数。
// 接受十进制与 0x 前缀十六进制；0xC0240000 这类超出 int32 正值范围的
// 十六进制按无符号位模式回退解析。
func parseStatusArg(arg string) (xstatus.Status, error) {
	if v, err := strconv.ParseInt(arg, 0, 32); err == nil {
		return xstatus.Status(int32(v)), nil
	}
	if v, err := strconv.ParseUint(arg, 0, 32); err == nil {
		return xstatus.Status(int32(uint32(v))), nil
	}
	return 0, usageErrorf("无效状态码 %q", arg)
}
