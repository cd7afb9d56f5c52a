package config

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ratel-online/parade/consts"
)

type Config struct {
	// Seed drives every shuffle and dice roll. Zero picks a random seed.
	Seed    int64         `env:"PARADE_SEED"`
	Delay   time.Duration `env:"PARADE_DELAY"`
	NoColor bool          `env:"PARADE_NO_COLOR"`
}

// ParseConfig reads the environment first; flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Delay: consts.DefaultDelay}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for shuffling and dice, 0 for a random one")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Pause after every printed line")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Print cards without colors")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if cfg.Delay < 0 {
		return Config{}, fmt.Errorf("delay %s: %w", cfg.Delay, consts.ErrorsInputInvalid)
	}
	return cfg, nil
}

// ResolveSeed returns the configured seed, or a fresh random one when unset.
func (c Config) ResolveSeed() (int64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
