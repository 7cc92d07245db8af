package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/scene"
	"chosenoffset.com/raycaster/internal/feed"
	"chosenoffset.com/raycaster/internal/game"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		logger.Log.WithError(err).Error("raycaster exited")
		os.Exit(1)
	}
}

// run owns every deferred cleanup so main can exit with a status afterwards.
func run(args []string) error {
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := scene.New(cfg.SceneConfig(), rng)
	logger.Log.WithFields(logrus.Fields{
		"width":  cfg.Width(),
		"height": cfg.Height(),
		"walls":  len(s.Walls()),
		"seed":   seed,
	}).Info("scene initialised")

	var pub game.Publisher
	if cfg.FeedAddr != "" {
		hub := feed.NewHub()
		srv := feed.NewServer(cfg.FeedAddr, hub)
		go func() {
			if err := srv.Run(); err != nil {
				logger.Log.WithError(err).Error("scene feed stopped")
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Log.WithError(err).Warn("scene feed shutdown")
			}
		}()
		pub = hub
	}

	if cfg.Headless {
		stats := game.Simulate(s, cfg.Frames, pub)
		logger.Log.WithFields(logrus.Fields{
			"frames":    stats.Frames,
			"min_rays":  stats.MinRays,
			"max_rays":  stats.MaxRays,
			"mean_rays": stats.MeanRays(),
		}).Info("headless run complete")
		return nil
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.NewGame(s, renderer, inputMgr)
	g.ShowDebug = cfg.Debug
	if pub != nil {
		g.SetPublisher(pub)
	}

	engine.SetWindowSize(int(cfg.Width()), int(cfg.Height()))
	engine.SetWindowTitle("Ray Casting")
	engine.SetWindowResizable(true)

	logger.Log.Info("starting game loop")
	if err := engine.RunGame(g); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}
