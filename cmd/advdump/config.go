package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const defaultEnvFile = ".env"

var ErrNoLayout = errors.New("no layout given, use --layout or ADVDUMP_LAYOUT")

type config struct {
	LayoutPath    string
	Repeat        bool
	AllowTrailing bool
	Verbose       bool
}

// loadEnv loads the env file named by --env-file, or .env when present.
// Variables already set in the environment win.
func loadEnv(c *cli.Context) error {
	if path := c.String("env-file"); path != "" {
		return godotenv.Load(path)
	}

	err := godotenv.Load(defaultEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// configFromContext resolves each setting from its flag, falling back to
// the ADVDUMP_* variable. Env files are loaded after flag parsing, so the
// fallback is done here instead of through cli.Flag EnvVars.
func configFromContext(c *cli.Context) (cfg config, err error) {
	cfg.LayoutPath = c.String("layout")
	if cfg.LayoutPath == "" {
		cfg.LayoutPath = os.Getenv("ADVDUMP_LAYOUT")
	}
	if cfg.LayoutPath == "" {
		return cfg, ErrNoLayout
	}

	if cfg.Repeat, err = boolSetting(c, "repeat", "ADVDUMP_REPEAT"); err != nil {
		return
	}
	if cfg.AllowTrailing, err = boolSetting(c, "allow-trailing", "ADVDUMP_ALLOW_TRAILING"); err != nil {
		return
	}
	cfg.Verbose, err = boolSetting(c, "verbose", "ADVDUMP_VERBOSE")
	return
}

func boolSetting(c *cli.Context, flag, env string) (bool, error) {
	if c.IsSet(flag) {
		return c.Bool(flag), nil
	}

	v, ok := os.LookupEnv(env)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", env, err)
	}
	return b, nil
}
