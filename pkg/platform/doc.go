// Package platform 提供 QUIC 传输实现的平台基础子包。
//
// 子包列表：
//   - xaddr: 网络端点值类型，地址族/端口访问、相等比较、通配/环回判断、哈希
//   - xaddrtable: 以端点为 key 的哈希索引表（Hash 选桶 + Equal 确认）
//   - xstatus: 协议状态码空间，宿主操作系统状态码映射与成功/失败分类
//
// 设计原则：
//   - 纯函数、零分配、可重入，协议逻辑不依赖操作系统特定常量
//   - 进程内使用显式标签变体类型，仅在 I/O 边界做 ABI 转换
//   - 跨平台兼容
package platform
