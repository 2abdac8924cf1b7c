package main

import (
	"github.com/go-elc/elc/internal/config"
	"github.com/go-elc/elc/internal/env"
	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/prims"
)

// world bundles one arena, one environment, and the registered primitive
// set — everything a CLI command or REPL session needs to exercise the
// heap. Grounded on the teacher's own "one Process per corefile" ownership
// style (internal/gocore.Process), scaled down to "one Context per CLI
// invocation".
type world struct {
	cx  *gc.Context
	env *env.Env
}

func newWorld(thresholds config.Thresholds) (*world, error) {
	cx := gc.NewContext(thresholds.InitialBytes)
	if err := prims.Register(cx); err != nil {
		return nil, err
	}
	return &world{cx: cx, env: env.New()}, nil
}
