// internal/command/watch.go
package command

import (
	"strings"

	"github.com/urfave/cli/v2"

	"epitizer-core/epitope"
	"epitizer/internal/fileio"
	"epitizer/internal/watch"
)

func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "convert epitope list files to FASTA as they appear in a directory",
		Flags: append(convertFlags(),
			&cli.StringFlag{
				Name:     "in",
				Usage:    "input `DIR` to watch",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "out",
				Usage:    "output `DIR` for .fasta files",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "ext",
				Usage: "input extensions to handle",
				Value: cli.NewStringSlice(".txt", ".csv"),
			},
		),
		Action: runWatch,
	}
}

func runWatch(c *cli.Context) error {
	cfg := appConfig(c)
	log := appLogger(c)
	opts := convertOptions(c, cfg)

	var exts []string
	for _, e := range c.StringSlice("ext") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" && !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if e != "" {
			exts = append(exts, e)
		}
	}

	convert := func(src, dst string) error {
		raw, err := fileio.ReadInput(src, cfg.Limits.MaxInputBytes)
		if err != nil {
			return err
		}
		res, err := epitope.Convert(raw, opts)
		if err != nil {
			return err
		}
		for _, w := range res.Warnings {
			log.Warn(w.String(), "file", src)
		}
		return fileio.WriteFileAtomic(dst, []byte(res.Text()), 0o644)
	}

	r, err := watch.New(watch.Options{
		InDir:  c.String("in"),
		OutDir: c.String("out"),
		Exts:   exts,
	}, convert, log)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if err := r.Run(c.Context); err != nil {
		return cli.Exit(err.Error(), 3)
	}
	return nil
}
