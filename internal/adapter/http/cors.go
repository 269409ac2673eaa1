package httpadapter

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	corsAllowMethods = "GET,POST,OPTIONS"
	corsAllowHeaders = "Content-Type"
	corsMaxAge       = "600"
)

// corsPolicy answers browser shells served from another origin. An empty
// origin allows any.
type corsPolicy struct {
	origin string
}

func (p corsPolicy) apply(ctx *app.RequestContext) {
	h := &ctx.Response.Header
	if p.origin == "" || p.origin == "*" {
		h.Set("Access-Control-Allow-Origin", "*")
	} else {
		h.Set("Access-Control-Allow-Origin", p.origin)
		h.Set("Vary", "Origin")
	}
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	h.Set("Access-Control-Max-Age", corsMaxAge)
}

func (p corsPolicy) middleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		p.apply(ctx)
		if string(ctx.Method()) == consts.MethodOptions {
			ctx.AbortWithStatus(consts.StatusNoContent)
			return
		}
		ctx.Next(c)
	}
}
