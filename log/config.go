package log

import (
	"io"
	"log/slog"

	"github.com/spf13/pflag"
)

// Config holds CLI flag values for log configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewHandler] to build a [slog.Handler].
type Config struct {
	Level  string
	Format string
}

// NewConfig returns a new [Config] with default level and format.
func NewConfig() *Config {
	return &Config{
		Level:  "info",
		Format: string(FormatLogfmt),
	}
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, "log-level", c.Level,
		"log level, one of: error, warn, info, debug")
	flags.StringVar(&c.Format, "log-format", c.Format,
		"log format, one of: json, logfmt")
}

// NewHandler creates a [slog.Handler] that writes to w, using the level and
// format strings stored in c.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	return CreateHandlerWithStrings(w, c.Level, c.Format)
}
