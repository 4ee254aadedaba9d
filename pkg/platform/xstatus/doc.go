// Package xstatus 定义 QUIC 传输实现的状态码空间。
//
// 协议层的状态概念（成功、挂起、内存不足、握手失败等 20 个）被映射到
// 宿主操作系统的原生状态码值上：Unix 构建映射 errno（status_unix.go），
// Windows 构建映射 NTSTATUS（status_windows.go）。协议逻辑只通过
// 命名常量与 [Succeeded] / [Failed] 分类谓词使用状态码，
// 永不比较原始数值或与 0 比较——这使同一套协议代码在用户态与
// 内核态、不同宿主上行为一致。
//
// # 快速示例
//
//	st := xstatus.FromError(err)
//	if xstatus.Failed(st) {
//	    return st
//	}
//
// # 成功/失败约定
//
// 分类跟随宿主约定，调用方不感知：
//   - Unix: 0 成功，负值为保留控制值（Continue/Pending，视为成功），
//     正值失败（errno 及私有扩展码）
//   - Windows: NTSTATUS 符号位清零为成功（含 informational 的
//     Pending/Continue），置位为失败
//
// # 私有扩展码
//
// HandshakeFailure、VerNegError、UserCanceled 三个概念没有宿主原生
// 对应码，定义在私有保留区间内，与任何现有或未来的宿主分配码不冲突：
//   - Unix: 0x20240000 起（远超 errno 值域）
//   - Windows: 0xC0240000 起（customer 位 NTSTATUS facility）
//
// # 设计决策
//
//   - 所有常量为编译期常数，零初始化开销，可用于 switch
//   - [Status.String] 用于日志与诊断输出，协议逻辑不得解析其内容
//   - [FromError] 只在数据路径的 syscall 边界使用，把 I/O 错误收敛进
//     状态码空间；协议内部错误直接用命名常量
package xstatus
