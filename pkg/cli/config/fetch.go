package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Fetch holds photo download configuration
type Fetch struct {
	Output    string
	Timeout   time.Duration
	UserAgent string
	File      string
}

// fileValues mirrors the TOML config file schema
type fileValues struct {
	Output    string `toml:"output"`
	Timeout   string `toml:"timeout"`
	UserAgent string `toml:"user_agent"`
}

// Flags returns CLI flags for fetch configuration
func (c *Fetch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Directory to write downloaded photos",
			Value:       "./photos",
			Destination: &c.Output,
			Sources:     cli.EnvVars("GEDPHOTOS_OUTPUT"),
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "HTTP timeout per download",
			Value:       30 * time.Second,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("GEDPHOTOS_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:        "user-agent",
			Usage:       "User-Agent header for CDN requests",
			Destination: &c.UserAgent,
			Sources:     cli.EnvVars("GEDPHOTOS_USER_AGENT"),
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML config file with fetch defaults",
			Destination: &c.File,
			Sources:     cli.EnvVars("GEDPHOTOS_CONFIG"),
		},
	}
}

// LoadFile overlays values from the TOML config file for flags that were not
// set on the command line or via environment variables. Explicit flags win.
func (c *Fetch) LoadFile(cmd *cli.Command) error {
	if c.File == "" {
		return nil
	}

	raw, err := os.ReadFile(c.File)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.File))
	}

	var values fileValues
	if err := toml.Unmarshal(raw, &values); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.File))
	}

	if values.Output != "" && !cmd.IsSet("output") {
		c.Output = values.Output
	}
	if values.UserAgent != "" && !cmd.IsSet("user-agent") {
		c.UserAgent = values.UserAgent
	}
	if values.Timeout != "" && !cmd.IsSet("timeout") {
		d, err := time.ParseDuration(values.Timeout)
		if err != nil {
			return goerr.Wrap(err, "invalid timeout in config file", goerr.V("timeout", values.Timeout))
		}
		c.Timeout = d
	}

	return nil
}
