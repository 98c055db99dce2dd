package app

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger создаёт логгер: JSON в production, цветной консольный в остальных окружениях.
// level (LOG_LEVEL) перекрывает уровень окружения; пустой или неизвестный оставляет info в production
// и debug в остальных.
func NewLogger(env, level string) *zap.Logger {
	config := loggerConfig(env)

	badLevel := false
	if level = strings.TrimSpace(level); level != "" {
		if lvl, err := zapcore.ParseLevel(level); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		} else {
			badLevel = true
		}
	}

	logger, err := config.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	logger = logger.Named("lectures_bot")

	if badLevel {
		logger.Warn("Unknown LOG_LEVEL, using environment default",
			zap.String("level", level),
			zap.Stringer("using", config.Level),
		)
	}

	return logger
}

func loggerConfig(env string) zap.Config {
	if env == "production" {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
		// сообщения бота и парсера читаются людьми, поэтому время в ISO8601
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return config
	}

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return config
}
