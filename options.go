package urx

import "github.com/rs/zerolog"

type config struct {
	log  zerolog.Logger
	name string
}

// Option configures an Observable or a standalone Observer.
type Option func(*config)

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithName tags every log line with the given observable name.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

func newConfig(opts []Option) config {
	c := config{log: zerolog.Nop()}
	for _, apply := range opts {
		apply(&c)
	}
	return c
}

func (c config) logger() zerolog.Logger {
	ctx := c.log.With().Str("component", "urx")
	if c.name != "" {
		ctx = ctx.Str("observable", c.name)
	}
	return ctx.Logger()
}
