package socketcan

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogOption is a bitmask selecting which bus operations to log.
type LogOption uint8

const (
	LogNone LogOption = 0
	LogRead LogOption = 1 << iota
	LogWrite
	LogAll = LogRead | LogWrite
)

// NewLoggedBus wraps a Bus and logs the selected operations through the
// given zap logger at the given level. Errors are always logged at error
// level when the matching direction is enabled. The transport itself never
// logs; this decorator is the opt-in observation point.
func NewLoggedBus(inner Bus, logger *zap.Logger, level zapcore.Level, opts LogOption) Bus {
	return &loggedBus{inner: inner, logger: logger, level: level, opts: opts}
}

// NewLoggedBusWithFilter behaves like NewLoggedBus but only logs frames
// that satisfy the filter. A nil filter logs every frame.
func NewLoggedBusWithFilter(inner Bus, logger *zap.Logger, level zapcore.Level, opts LogOption, filter FrameFilter) Bus {
	return &loggedBus{inner: inner, logger: logger, level: level, opts: opts, filter: filter}
}

type loggedBus struct {
	inner  Bus
	logger *zap.Logger
	level  zapcore.Level
	opts   LogOption
	filter FrameFilter
}

func (l *loggedBus) Send(frame Frame) error {
	if l.opts&LogWrite != 0 && (l.filter == nil || l.filter(frame)) {
		l.logger.Log(l.level, "can send", frameFields(frame)...)
	}
	err := l.inner.Send(frame)
	if l.opts&LogWrite != 0 && err != nil {
		l.logger.Error("can send failed", zap.Uint32("id", frame.ID), zap.Error(err))
	}
	return err
}

func (l *loggedBus) Receive() (Frame, error) {
	f, err := l.inner.Receive()
	if l.opts&LogRead == 0 {
		return f, err
	}
	if err != nil {
		l.logger.Error("can receive failed", zap.Error(err))
		return f, err
	}
	if l.filter == nil || l.filter(f) {
		l.logger.Log(l.level, "can receive", frameFields(f)...)
	}
	return f, err
}

// Close forwards to the inner Bus without logging.
func (l *loggedBus) Close() error {
	return l.inner.Close()
}

func frameFields(f Frame) []zap.Field {
	return []zap.Field{
		zap.Uint32("id", f.ID),
		zap.Bool("extended", f.Extended),
		zap.Bool("rtr", f.RTR),
		zap.Uint8("len", f.Len),
		zap.Binary("data", f.Data[:f.Len]),
		zap.Stringer("frame", f),
	}
}
