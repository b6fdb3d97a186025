package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/circuitplay/circuitplay/internal/core/config"
	"github.com/circuitplay/circuitplay/internal/core/engine"
	"github.com/circuitplay/circuitplay/internal/core/observability/log"
	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/internal/inspector"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML settings file (defaults apply when empty)")
		levelName  = flag.String("level", "", "override the start level")
		inspect    = flag.Bool("inspect", false, "enable the websocket debug inspector")
	)
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			// no logger yet; settings are a precondition
			panic(err)
		}
		settings = loaded
	}
	if *levelName != "" {
		settings.Levels.Start = *levelName
	}
	if *inspect {
		settings.Inspector.Enabled = true
	}

	logger := log.New(parseLevel(settings.Log.Level), log.Encoding(settings.Log.Encoding))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The windowing/GL driver is an external collaborator; this binary
	// runs the engine headless against the recording renderer.
	e := engine.New(settings, render.NewRecorder(), logger)
	if err := e.Start(ctx); err != nil {
		logger.Error("startup failed", log.Err(err))
		os.Exit(1)
	}

	if settings.Inspector.Enabled {
		ins := inspector.New(settings.Inspector, logger)
		if err := ins.Start(ctx); err != nil {
			logger.Error("inspector failed", log.Err(err))
			os.Exit(1)
		}
		defer func() { _ = ins.Stop(context.Background()) }()

		e.SetFrameHook(func(e *engine.Engine) {
			name := ""
			if scene := e.Levels().Current(); scene != nil {
				name = scene.Name
			}
			ins.Publish(name, e.Frame(), e.Snapshot())
		})
	}

	if err := e.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("engine exited", log.Err(err))
		os.Exit(1)
	}
}

func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
