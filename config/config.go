package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"yahtzee/game"
	"yahtzee/meta"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// ErrHandTooLarge is returned for hands whose exhaustive search would not finish
// in reasonable time.
var ErrHandTooLarge = errors.New("hand has too many dice to search")

type Config struct {
	NumDieSides int    `env:"YAHTZEE_DIE_SIDES"`
	HandSize    int    `env:"YAHTZEE_HAND_SIZE"`
	Hand        []int  `env:"YAHTZEE_HAND" envSeparator:","`
	Roll        bool   `env:"YAHTZEE_ROLL"`
	Seed        uint64 `env:"YAHTZEE_SEED"`
	LogLevel    string `env:"YAHTZEE_LOG_LEVEL"`
	ReportDir   string `env:"YAHTZEE_REPORT_DIR"`
}

// Load builds the configuration from defaults, then environment variables,
// then command-line flags.
func Load(args []string) (*Config, error) {
	c := &Config{
		NumDieSides: meta.NUM_DIE_SIDES,
		HandSize:    meta.HAND_SIZE,
		Hand:        append([]int{}, meta.EXAMPLE_HAND...),
		Seed:        1,
		LogLevel:    zerolog.LevelInfoValue,
	}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("yahtzee", flag.ContinueOnError)
	fs.IntVar(&c.NumDieSides, "sides", c.NumDieSides, "number of sides on each die")
	fs.IntVar(&c.HandSize, "hand-size", c.HandSize, "number of dice rolled with -roll")
	fs.Func("hand", "comma separated dice to evaluate, e.g. 3,3,1,2,5", func(value string) error {
		hand, err := parseHand(value)
		if err != nil {
			return err
		}
		c.Hand = hand
		return nil
	})
	fs.BoolVar(&c.Roll, "roll", c.Roll, "roll a random hand instead of using -hand")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for -roll")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "trace, debug, info, warn or error")
	fs.StringVar(&c.ReportDir, "report-dir", c.ReportDir, "directory to write the hold rankings to")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Rules() game.Rules {
	return game.Rules{NumDieSides: c.NumDieSides, HandSize: c.HandSize}
}

func (c *Config) Validate() error {
	rules := c.Rules()
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.HandSize > meta.MAX_HAND_SIZE {
		return fmt.Errorf("invalid config: hand size %d: %w", c.HandSize, ErrHandTooLarge)
	}
	if !c.Roll {
		if len(c.Hand) > meta.MAX_HAND_SIZE {
			return fmt.Errorf("invalid config: hand %v: %w", c.Hand, ErrHandTooLarge)
		}
		if err := rules.ValidateHand(c.Hand); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level returns the configured log level, validated by Load.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func parseHand(value string) ([]int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return []int{}, nil
	}
	fields := strings.Split(value, ",")
	hand := make([]int, len(fields))
	for i, field := range fields {
		face, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("die %d of hand %q: %w", i, value, err)
		}
		hand[i] = face
	}
	return hand, nil
}
