package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(lvl zapcore.Level) zap.Config {
	lcfg := zap.NewProductionConfig()
	lcfg.Encoding = "console"
	lcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	lcfg.DisableStacktrace = true
	lcfg.DisableCaller = true
	lcfg.Sampling = nil
	lcfg.OutputPaths = []string{"stdout"}

	lcfg.Level.SetLevel(lvl)

	return lcfg
}
