// internal/command/convert.go
package command

import (
	"io"

	"github.com/urfave/cli/v2"

	"epitizer-core/epitope"
	"epitizer/internal/config"
	"epitizer/internal/fileio"
)

func ConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert an epitope list (comma/newline separated) to FASTA",
		ArgsUsage: "[INPUT]",
		Description: "INPUT is a plain or gzipped text file, or - for stdin (the default).\n" +
			"Output goes to stdout unless --output is given.",
		Flags: append(convertFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write FASTA to `PATH` (atomic) instead of stdout",
			},
		),
		Action: runConvert,
	}
}

// convertFlags are shared between convert and watch.
func convertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "dedupe",
			Aliases: []string{"d"},
			Usage:   "drop repeated epitopes, keeping first occurrence order",
		},
		&cli.BoolFlag{
			Name:  "validate",
			Usage: "reject epitopes containing non amino-acid letters",
		},
		&cli.StringFlag{
			Name:        "header-prefix",
			Usage:       "FASTA header `PREFIX` (headers become >PREFIX_n)",
			DefaultText: epitope.DefaultHeaderPrefix,
		},
	}
}

// convertOptions merges config defaults with explicitly set flags.
func convertOptions(c *cli.Context, cfg config.Config) epitope.Options {
	opts := epitope.Options{
		Dedupe:       cfg.Convert.Dedupe,
		Validate:     cfg.Convert.Validate,
		HeaderPrefix: cfg.Convert.HeaderPrefix,
	}
	if c.IsSet("dedupe") {
		opts.Dedupe = c.Bool("dedupe")
	}
	if c.IsSet("validate") {
		opts.Validate = c.Bool("validate")
	}
	if c.IsSet("header-prefix") {
		opts.HeaderPrefix = c.String("header-prefix")
	}
	return opts
}

func runConvert(c *cli.Context) error {
	if c.NArg() > 1 {
		return cli.Exit("convert: at most one input path", 2)
	}
	cfg := appConfig(c)
	log := appLogger(c)

	raw, err := fileio.ReadInput(c.Args().First(), cfg.Limits.MaxInputBytes)
	if err != nil {
		return cli.Exit(err.Error(), 3)
	}

	res, err := epitope.Convert(raw, convertOptions(c, cfg))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	for _, w := range res.Warnings {
		log.Warn(w.String())
	}

	if out := c.String("output"); out != "" {
		if err := fileio.WriteFileAtomic(out, []byte(res.Text()), 0o644); err != nil {
			return cli.Exit(err.Error(), 3)
		}
		log.Info("wrote FASTA", "records", len(res.Records), "path", out)
		return nil
	}
	if _, err := io.WriteString(c.App.Writer, res.Text()); err != nil {
		if fileio.IsBrokenPipe(err) {
			return nil
		}
		return cli.Exit(err.Error(), 3)
	}
	return nil
}
