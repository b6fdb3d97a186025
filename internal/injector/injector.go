//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/circuitplay/circuitplay/internal/core/config"
	"github.com/circuitplay/circuitplay/internal/core/engine"
	"github.com/circuitplay/circuitplay/internal/core/observability/log"
	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/internal/inspector"
)

func ProvideLogger() *log.Logger {
	wire.Build(log.Provide)
	return log.New(log.LevelInfo, log.EncodingConsole)
}

func ProvideEngine(settings config.Settings, renderer render.Renderer, logger *log.Logger) *engine.Engine {
	wire.Build(
		wire.Bind(new(log.Log), new(*log.Logger)),
		engine.New,
	)
	return nil
}

func ProvideInspector(settings config.Settings, logger *log.Logger) *inspector.Server {
	wire.Build(
		wire.Bind(new(log.Log), new(*log.Logger)),
		wire.FieldsOf(new(config.Settings), "Inspector"),
		inspector.New,
	)
	return nil
}
