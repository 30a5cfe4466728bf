// main runs a candump-style utility: it opens a raw SocketCAN socket,
// optionally installs acceptance filters from a config file, and logs every
// received frame.
package main

import (
	"flag"
	"log"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	socketcan "github.com/saronic-technologies/socketcan-go"
)

const (
	_logLvlDef  = zapcore.InfoLevel
	_ifaceDef   = "can0"
	_confDef    = ""
	_timeoutDef = time.Duration(0)
)

func main() {
	logLvl := zap.LevelFlag("loglvl", _logLvlDef, "log level for zap logger")
	iface := flag.String("iface", _ifaceDef, "CAN interface to dump")
	confFile := flag.String("conf", _confDef, "path to the filter configuration file (optional)")
	timeout := flag.Duration("timeout", _timeoutDef, "receive timeout; 0 blocks forever")
	ownMsgs := flag.Bool("own", false, "also receive frames sent by this socket")

	flag.Parse()

	logger, err := newLogger(*logLvl).Build()
	if err != nil {
		log.Fatalf("build log configuration: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	sugar := logger.Sugar()

	sock, err := socketcan.Dial(*iface)
	if err != nil {
		sugar.Fatalw("open CAN socket", "iface", *iface, "error", err)
	}
	defer func() { _ = sock.Close() }()

	if *confFile != "" {
		conf, err := loadConfig(*confFile)
		if err != nil {
			sugar.Fatalw("load configuration", "conf", *confFile, "error", err)
		}
		if filters := conf.kernelFilters(); len(filters) > 0 {
			if err := sock.SetFilters(filters); err != nil {
				sugar.Fatalw("set filters", "error", err)
			}
		}
		if conf.ErrMask != 0 {
			if err := sock.SetErrFilter(conf.ErrMask); err != nil {
				sugar.Fatalw("set error filter", "error", err)
			}
		}
	}

	if *ownMsgs {
		if err := sock.SetRecvOwnMsgs(true); err != nil {
			sugar.Fatalw("set receive own messages", "error", err)
		}
	}

	if *timeout > 0 {
		if err := sock.SetRecvTimeout(*timeout); err != nil {
			sugar.Fatalw("set receive timeout", "error", err)
		}
	}

	sugar.Infow("dumping", "iface", *iface)

	bus := socketcan.NewBus(sock)

	for {
		frame, err := bus.Receive()
		if err != nil {
			sugar.Fatalw("receive frame", "error", err)
		}
		sugar.Infow("frame",
			"iface", *iface,
			"frame", frame.String(),
			"extended", frame.Extended,
			"rtr", frame.RTR,
		)
	}
}
