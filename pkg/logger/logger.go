package logger

import (
	"fmt"
	"strings"

	"github.com/GlebRadaev/pointledger/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timeLayout  = "15:04:05 02-01-2006"
	serviceName = "pointledger"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

func encoderConfig(format string) (zapcore.EncoderConfig, error) {
	ec := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	switch format {
	case "console":
		ec.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		ec.CallerKey = "caller"
		ec.EncodeCaller = zapcore.ShortCallerEncoder
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		ec.EncodeLevel = zapcore.LowercaseLevelEncoder
	default:
		return ec, fmt.Errorf("unsupported log format: %s", format)
	}
	return ec, nil
}

// InitLogger replaces the global zap logger. Console output is for local
// runs; json is what log shippers in a cluster expect.
func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[strings.ToLower(conf.LogLvl)]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}
	format := strings.ToLower(conf.LogFormat)
	if format == "" {
		format = "console"
	}
	encodeConfig, err := encoderConfig(format)
	if err != nil {
		return err
	}

	c := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Sampling:          nil,
		Encoding:          format,
		EncoderConfig:     encodeConfig,
		DisableCaller:     format == "console",
		DisableStacktrace: lvl > zapcore.DebugLevel,
		InitialFields:     map[string]interface{}{"service": serviceName},
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}

// Named returns a child of the current global logger for one component,
// e.g. "ledger" or "ledger.sweep". Call it after InitLogger.
func Named(component string) *zap.Logger {
	return zap.L().Named(component)
}
