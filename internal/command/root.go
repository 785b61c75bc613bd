// internal/command/root.go

// Package command defines the epitizer CLI on top of urfave/cli/v2.
package command

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"

	"epitizer/internal/config"
	"epitizer/internal/logging"
	"epitizer/internal/version"
)

// App builds the CLI application. The exit handler is a no-op: exit
// codes are resolved by appshell.Main (or by tests inspecting the
// returned error).
func App() *cli.App {
	return &cli.App{
		Name:    "epitizer",
		Usage:   "convert epitope sequence lists to FASTA",
		Version: version.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ConvertCommand(),
			InspectCommand(),
			WatchCommand(),
		},
		Metadata:       map[string]any{},
		Before:         setup,
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config `FILE`",
			EnvVars: []string{config.EnvConfigFile},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "debug logging",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "errors only",
		},
		&cli.BoolFlag{
			Name:  "log-json",
			Usage: "log in JSON format",
		},
	}
}

func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), os.LookupEnv)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	log := logging.New(c.App.ErrWriter, logging.Options{
		Verbose: c.Bool("verbose"),
		Quiet:   c.Bool("quiet"),
		Level:   cfg.Log.Level,
		JSON:    c.Bool("log-json") || cfg.Log.JSON,
	})
	c.App.Metadata["config"] = cfg
	c.App.Metadata["logger"] = log
	return nil
}

func appConfig(c *cli.Context) config.Config {
	if cfg, ok := c.App.Metadata["config"].(config.Config); ok {
		return cfg
	}
	return config.Default()
}

func appLogger(c *cli.Context) hclog.Logger {
	if log, ok := c.App.Metadata["logger"].(hclog.Logger); ok {
		return log
	}
	return hclog.NewNullLogger()
}
