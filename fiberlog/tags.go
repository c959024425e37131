package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// available logging tags
const (
	TagPid     = "pid"
	TagStatus  = "status"
	TagLatency = "latency"
	TagMethod  = "method"
	TagPath    = "path"
	TagIP      = "ip"
	TagBody    = "body"
	TagResBody = "res_body"
	RequestID  = "request_id"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag resolves a tag value for the current request
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	m := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		switch tag {
		case TagPid:
			m[TagPid] = func(c *fiber.Ctx, d *data) interface{} { return d.pid }
		case TagStatus:
			m[TagStatus] = func(c *fiber.Ctx, d *data) interface{} { return c.Response().StatusCode() }
		case TagLatency:
			m[TagLatency] = func(c *fiber.Ctx, d *data) interface{} { return d.end.Sub(d.start).String() }
		case TagMethod:
			m[TagMethod] = func(c *fiber.Ctx, d *data) interface{} { return c.Method() }
		case TagPath:
			m[TagPath] = func(c *fiber.Ctx, d *data) interface{} { return c.Path() }
		case TagIP:
			m[TagIP] = func(c *fiber.Ctx, d *data) interface{} { return c.IP() }
		case TagBody:
			m[TagBody] = func(c *fiber.Ctx, d *data) interface{} { return string(c.Body()) }
		case TagResBody:
			m[TagResBody] = func(c *fiber.Ctx, d *data) interface{} { return string(c.Response().Body()) }
		case RequestID:
			m[RequestID] = func(c *fiber.Ctx, d *data) interface{} { return c.GetRespHeader(fiber.HeaderXRequestID) }
		}
	}
	return m
}
