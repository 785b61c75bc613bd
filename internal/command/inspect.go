// internal/command/inspect.go
package command

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"epitizer-core/fasta"
	"epitizer/internal/fileio"
	"epitizer/pkg/api"
)

func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "summarize the records of a FASTA file",
		ArgsUsage: "[INPUT]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit the report as indented JSON",
			},
		},
		Action: runInspect,
	}
}

func runInspect(c *cli.Context) error {
	if c.NArg() > 1 {
		return cli.Exit("inspect: at most one input path", 2)
	}
	path := c.Args().First()

	rc, err := fileio.Open(path)
	if err != nil {
		return cli.Exit(err.Error(), 3)
	}
	recs, perr := fasta.Parse(rc)
	_ = rc.Close()
	if perr != nil {
		return cli.Exit(perr.Error(), 1)
	}

	report := api.InspectReportV1{Source: sourceName(path), Records: len(recs)}
	for _, r := range recs {
		report.Entries = append(report.Entries, api.InspectEntryV1{ID: r.ID, Length: len(r.Seq)})
	}

	w := c.App.Writer
	if c.Bool("json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return cli.Exit(err.Error(), 3)
		}
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s: %d record(s)\n", report.Source, report.Records); err != nil {
		return writeErr(err)
	}
	for _, e := range report.Entries {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", e.ID, e.Length); err != nil {
			return writeErr(err)
		}
	}
	return nil
}

func sourceName(path string) string {
	if path == "" || path == fileio.StdinPath {
		return "stdin"
	}
	return path
}

func writeErr(err error) error {
	if fileio.IsBrokenPipe(err) {
		return nil
	}
	return cli.Exit(err.Error(), 3)
}
