package fiberlog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Logger defaults to the logrus standard logger.
	Logger *logrus.Logger
	Tags   []string
	// Skip drops the log line for requests it returns true for.
	Skip func(c *fiber.Ctx) bool
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}

func (c Config) entry(fields logrus.Fields) *logrus.Entry {
	if c.Logger == nil {
		return logrus.WithFields(fields)
	}
	return c.Logger.WithFields(fields)
}
