package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	authutils "smartjob-backend/lib/utils/auth-utils"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagURL      = "url"
	TagIP       = "ip"
	TagUA       = "user_agent"
	TagBody     = "body"
	TagResBody  = "res_body"
	TagBytesIn  = "bytes_in"
	TagBytesOut = "bytes_out"
	TagUserID   = "user_id"
	RequestID   = "request_id"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag returns the value logged under its tag.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

var funcTags = map[string]FuncTag{
	TagPid: func(c *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagStatus: func(c *fiber.Ctx, d *data) interface{} {
		return c.Response().StatusCode()
	},
	TagMethod: func(c *fiber.Ctx, d *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, d *data) interface{} {
		return c.Path()
	},
	TagURL: func(c *fiber.Ctx, d *data) interface{} {
		return c.OriginalURL()
	},
	TagIP: func(c *fiber.Ctx, d *data) interface{} {
		return c.IP()
	},
	TagUA: func(c *fiber.Ctx, d *data) interface{} {
		return c.Get(fiber.HeaderUserAgent)
	},
	TagBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Body())
	},
	TagResBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Response().Body())
	},
	TagBytesIn: func(c *fiber.Ctx, d *data) interface{} {
		return len(c.Request().Body())
	},
	TagBytesOut: func(c *fiber.Ctx, d *data) interface{} {
		return len(c.Response().Body())
	},
	TagUserID: func(c *fiber.Ctx, d *data) interface{} {
		sub, _ := authutils.GetClaims(c)["sub"].(string)
		return sub
	},
	RequestID: func(c *fiber.Ctx, d *data) interface{} {
		return c.GetRespHeader(fiber.HeaderXRequestID, c.Get(fiber.HeaderXRequestID))
	},
}

// selectTags ignores unknown tag names.
func selectTags(names []string) map[string]FuncTag {
	selected := make(map[string]FuncTag, len(names))
	for _, name := range names {
		if tag, ok := funcTags[name]; ok {
			selected[name] = tag
		}
	}
	return selected
}
