// SPDX-License-Identifier: MIT

package xsect

import (
	"sync"

	"go.uber.org/zap"
)

// Engine evaluates cross sections with a fixed set of constants. It holds
// no mutable state and may be shared between goroutines.
type Engine struct {
	consts   Constants   // DefaultConstants()
	log      *zap.Logger // zap.NewNop()
	check    bool        // DefaultConsistencyCheck
	checkTol float64     // DefaultCheckTolerance
}

// New builds an Engine from the defaults and the given options, applied in order.
func New(opts ...Option) *Engine {
	e := &Engine{
		consts:   DefaultConstants(),
		log:      zap.NewNop(),
		check:    DefaultConsistencyCheck,
		checkTol: DefaultCheckTolerance,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the shared Engine with default settings.
func Default() *Engine {
	defaultOnce.Do(func() { defaultEngine = New() })
	return defaultEngine
}

// Constants returns the constants the engine was built with.
func (e *Engine) Constants() Constants {
	return e.consts
}
