package initializers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"smartjob-backend/config"
	"smartjob-backend/fiberlog"
)

func jsonFormatter() log.Formatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

// InitLogger configures the global logger and returns the request log config.
func InitLogger() *fiberlog.Config {
	level, err := log.ParseLevel(config.Conf.App.LogLevel)
	if err != nil {
		log.WithField("level", config.Conf.App.LogLevel).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetFormatter(jsonFormatter())
	log.SetLevel(level)

	requestLogger := log.New()
	requestLogger.SetFormatter(jsonFormatter())
	requestLogger.SetLevel(level)
	// bodies carry passwords and tokens, only sizes are logged
	return &fiberlog.Config{
		Logger: requestLogger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagIP,
			fiberlog.TagBytesIn,
			fiberlog.TagBytesOut,
			fiberlog.TagUserID,
			fiberlog.RequestID,
		},
		Skip: func(c *fiber.Ctx) bool {
			return c.Path() == "/api/health" || strings.HasPrefix(c.Path(), "/api/ws")
		},
	}
}
