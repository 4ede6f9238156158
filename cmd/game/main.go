package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"game-prototype/internal/commands"
	"game-prototype/internal/config"
	"game-prototype/internal/env"
	"game-prototype/internal/logger"
)

func main() {
	var cfgPath string
	reg := commands.NewRegistry()

	play := flag.NewFlagSet("play", flag.ContinueOnError)
	play.StringVar(&cfgPath, "config", config.Path, "YAML config file")
	reg.Register("play", "open the window and play (default)", play, func() error {
		return withSetup(cfgPath, runPlay)
	})

	check := flag.NewFlagSet("check", flag.ContinueOnError)
	check.StringVar(&cfgPath, "config", config.Path, "YAML config file")
	reg.Register("check", "verify the config and assets, then exit", check, func() error {
		return withSetup(cfgPath, runCheck)
	})
	reg.SetDefault("play")

	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			reg.Usage(os.Stderr)
			return
		}
		fmt.Fprintln(os.Stderr, "game:", err)
		reg.Usage(os.Stderr)
		os.Exit(1)
	}
}

// withSetup loads the config with .env and environment overrides applied, opens the logger
// and runs fn with both.
func withSetup(path string, fn func(config.Config, *logger.Logger) error) error {
	if err := env.Load(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return errors.Wrap(err, "environment")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrapf(err, "config %s", path)
	}
	log, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Close()
	log.Info("config loaded", zap.String("path", path))
	return fn(cfg, log)
}

func runCheck(cfg config.Config, log *logger.Logger) error {
	m := cfg.Manifest()
	if err := m.Verify(log.Logger); err != nil {
		return errors.Wrap(err, "asset check")
	}
	log.Info("assets ok", zap.Int("files", m.Count()), zap.String("root", m.Root))
	return nil
}
