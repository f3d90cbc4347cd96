package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Voice    string
	Rounds   int
	Cycle    int
	Location int
	NoSound  bool
	Debug    bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags that were explicitly set override earlier layers.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Rounds:   -1,
			Cycle:    -1,
			Location: -1,
			Voice:    ctx.String("voice"),
			NoSound:  ctx.Bool("no-sound"),
			Debug:    ctx.Bool("debug"),
		}

		if ctx.IsSet("rounds") {
			opts.Rounds = ctx.Int("rounds")
		}

		if ctx.IsSet("cycle") {
			opts.Cycle = ctx.Int("cycle")
		}

		if ctx.IsSet("location") {
			opts.Location = ctx.Int("location")
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config. Negative numbers mean
// the flag was not provided.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Rounds >= 0 {
		c.Practice.Rounds = opts.Rounds
	}

	if opts.Cycle >= 0 {
		c.Practice.CycleIndex = opts.Cycle
	}

	if opts.Location >= 0 {
		c.Practice.StartLocation = opts.Location
	}

	if opts.Voice != "" {
		c.Sound.VoiceLanguage = opts.Voice
	}

	if opts.Debug {
		c.System.Debug = true
	}

	if opts.NoSound {
		c.Mute()
	}
}
