// Package socketcan opens and drives raw Linux SocketCAN sockets.
//
// It provides:
//   - A transport over a single raw CAN socket with exact-size, blocking
//     frame reads and writes (classic, FD and XL)
//   - Typed socket option helpers (acceptance filters, loopback,
//     FD/XL enablement, timeouts)
//   - A high-level Frame value type, a Bus interface, an in-memory
//     loopback bus for tests, and a zap-based logging decorator
//
// The kernel ABI itself (frame layouts, addresses, filters, constants)
// lives in the can subpackage. On platforms without native SocketCAN the
// same API compiles but every socket operation fails with ErrNotSupported.
package socketcan
