package config

import (
	"strconv"

	"github.com/pkg/errors"
)

// Environment variables that override the file config.
const (
	EnvLogLevel   = "GAME_LOG_LEVEL"
	EnvLogFormat  = "GAME_LOG_FORMAT"
	EnvLogFile    = "GAME_LOG_FILE"
	EnvAssetsRoot = "GAME_ASSETS_ROOT"
	EnvFullscreen = "GAME_FULLSCREEN"
	EnvTargetFPS  = "GAME_TARGET_FPS"
)

// ApplyEnv overrides fields from the environment. lookup has the signature of os.LookupEnv.
// Unset variables leave the field alone; malformed values are an error.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookup(EnvAssetsRoot); ok {
		c.Assets.Root = v
	}
	if v, ok := lookup(EnvFullscreen); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, EnvFullscreen)
		}
		c.Window.Fullscreen = b
	}
	if v, ok := lookup(EnvTargetFPS); ok {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return errors.Wrap(err, EnvTargetFPS)
		}
		c.Window.TargetFPS = int32(n)
	}
	return nil
}
