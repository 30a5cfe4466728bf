// Package can defines the Linux SocketCAN kernel ABI: the binary layouts of
// classic, FD and XL frames, the sockaddr_can address structure, acceptance
// filters, and the numeric constants (identifier masks, flag bits, protocol
// numbers, socket option codes) those layouts depend on.
//
// The package is pure data and compiles on every platform; it performs no
// I/O. Marshaling is done with explicit fixed-offset encoders rather than
// struct reinterpretation so the byte-exact contract is enforced, not
// assumed. All multi-byte fields use the host byte order, matching what the
// kernel expects on a raw CAN socket.
package can
