package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = zap.NewNop()

// Init builds the application logger: JSON to a rotated file plus stdout.
// In development the file sink is skipped.
func Init(env string) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.InfoLevel),
	}
	if env == "production" {
		if err := os.MkdirAll("./logs", os.ModePerm); err == nil {
			cores = append(cores, zapcore.NewCore(encoder,
				zapcore.AddSync(&lumberjack.Logger{
					Filename: "./logs/app.log", MaxSize: 100, MaxAge: 28, Compress: true,
				}),
				zap.InfoLevel,
			))
		}
	}
	logger = zap.New(zapcore.NewTee(cores...))
}

// L returns the application logger. Safe to call before Init (no-op logger).
func L() *zap.Logger {
	return logger
}
