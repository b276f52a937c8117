// Package core drives the render and info operations end to end.
package core

import (
	"context"
)

type Core struct {
	ctx context.Context
}

func NewCore(ctx context.Context) *Core {
	return &Core{ctx: ctx}
}
