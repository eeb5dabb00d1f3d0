// Package fiberlog writes one logrus line per API request.
package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) != 0 {
		cfg = config[0]
	}
	pid := os.Getpid()
	tags := selectTags(cfg.Tags)
	return func(c *fiber.Ctx) error {
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}
		if cfg.Skip != nil && cfg.Skip(c) {
			return err
		}

		status := c.Response().StatusCode()
		if err != nil {
			// the app error handler has not written the reply yet
			status = fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}
		fields := collect(tags, c, d)
		if _, ok := fields[TagStatus]; ok {
			fields[TagStatus] = status
		}
		entry := cfg.entry(fields)
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Log(levelFor(status), "api request")
		return err
	}
}

func levelFor(status int) log.Level {
	switch {
	case status >= fiber.StatusInternalServerError:
		return log.ErrorLevel
	case status >= fiber.StatusBadRequest:
		return log.WarnLevel
	default:
		return log.InfoLevel
	}
}

// collect evaluates the tags, empty strings are left out.
func collect(tags map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields, len(tags))
	for name, tag := range tags {
		value := tag(c, d)
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		fields[name] = value
	}
	return fields
}
