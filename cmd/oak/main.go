package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/oakgame/oak/internal/config"
	"github.com/oakgame/oak/internal/logger"
	"github.com/oakgame/oak/internal/ui/view"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	flag.Parse()

	var cfgErr error
	cfg, err := config.Load(*configPath)
	if err != nil {
		cfgErr = err
		cfg = config.Default()
	}

	if err := logger.Init(cfg.Log.Dir); err != nil {
		log.Printf("failed to initialize logger: %v", err)
	}
	defer logger.Close()

	if cfgErr != nil {
		logger.LogError("failed to load config, using defaults: %v", cfgErr)
	}

	if err := run(cfg); err != nil {
		logger.LogError("%v", err)
		fmt.Fprintln(os.Stderr, err)
		logger.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			err = fmt.Errorf("render failed: %v", r)
		}
	}()

	perspective, err := cfg.Display.Player()
	if err != nil {
		return err
	}
	logger.LogInfo("rendering table for %s (primary hand %s)", perspective, perspective.PrimaryHand())

	r := view.NewRenderer(os.Stdout, cfg.Display.Color)
	fmt.Println(r.Table(perspective))
	if cfg.Display.ShowDeck {
		fmt.Println(r.Deck())
	}
	return nil
}
