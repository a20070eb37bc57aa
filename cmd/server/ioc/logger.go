package ioc

import (
	"os"

	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	"github.com/natefinch/lumberjack"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConf 配置信息
type LogConf struct {
	// debug 模式下同时输出到控制台
	Mode       string `mapstructure:"mode"`
	Level      string `mapstructure:"level"`
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"` // 最多保留的备份文件数量
}

func InitLogger() logger.Logger {
	cfg := LogConf{
		Mode:       "debug",
		Level:      "debug",
		Path:       "logs/app.log",
		MaxSize:    128,
		MaxAge:     7,
		MaxBackups: 3,
	}
	if err := viper.UnmarshalKey("log", &cfg); err != nil {
		panic(err)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		panic(err)
	}
	writeSyncer := getLogWriter(cfg.Path, cfg.MaxSize, cfg.MaxBackups, cfg.MaxAge)
	core := zapcore.NewCore(getEncoder(), writeSyncer, level)
	if cfg.Mode == "debug" {
		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core = zapcore.NewTee(
			zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zapcore.DebugLevel),
			core,
		)
	}

	lg := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(lg)
	// otelzap 会把 ctx 里的 trace id 带进日志
	l := otelzap.New(lg, otelzap.WithMinLevel(level), otelzap.WithTraceIDField(true))
	lg.Info("init logger success!")
	return logger.NewOtelZapLogger(l)
}

// getEncoder JSON 格式，时间用 ISO8601，调用者只保留文件名和行号
func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeDuration = zapcore.SecondsDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

// getLogWriter 按大小切分日志文件
//   - maxSize: 每个日志文件的最大尺寸(MB)
//   - maxBackups: 保留旧日志文件的最大数量
//   - maxAge: 保留旧日志文件的最大天数
func getLogWriter(path string, maxSize, maxBackups, maxAge int) zapcore.WriteSyncer {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		LocalTime:  true,
		Compress:   false,
	}
	return zapcore.AddSync(lumberJackLogger)
}
