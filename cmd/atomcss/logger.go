package main

import (
	"os"

	"github.com/yacobolo/atomcss/internal/atomgen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns the console logger used by every command. Logs go to
// stderr so command output can be piped.
func newLogger() *zap.Logger {
	if getBoolWithFallback("quiet", "quiet", false) {
		return zap.NewNop()
	}

	level := zapcore.WarnLevel
	if getBoolWithFallback("verbose", "verbose", false) {
		level = zapcore.DebugLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if atomgen.ShouldUseColors(getBoolWithFallback("color", "color", false)) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
