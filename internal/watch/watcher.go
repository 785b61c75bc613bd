// internal/watch/watcher.go

// Package watch converts epitope list files into FASTA as they appear.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// ConvertFunc converts the file at src into dst. Failures are per-file:
// the watcher logs them and keeps running.
type ConvertFunc func(src, dst string) error

// Options configures a Runner.
type Options struct {
	InDir  string
	OutDir string
	// Exts lists the input extensions handled, lowercase with dot.
	// Empty means the default set (.txt, .csv).
	Exts []string
}

// Runner watches one directory and converts matching files.
type Runner struct {
	opts    Options
	convert ConvertFunc
	log     hclog.Logger
}

func New(opts Options, convert ConvertFunc, log hclog.Logger) (*Runner, error) {
	if opts.InDir == "" || opts.OutDir == "" {
		return nil, fmt.Errorf("watch: input and output directories are required")
	}
	if len(opts.Exts) == 0 {
		opts.Exts = []string{".txt", ".csv"}
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Runner{opts: opts, convert: convert, log: log}, nil
}

// Run converts every matching file already present, then blocks
// converting files as they are created or written, until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(r.opts.InDir); err != nil {
		return fmt.Errorf("watch %s: %w", r.opts.InDir, err)
	}
	if err := os.MkdirAll(r.opts.OutDir, 0o755); err != nil {
		return err
	}

	entries, err := os.ReadDir(r.opts.InDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			r.handle(filepath.Join(r.opts.InDir, e.Name()))
		}
	}

	r.log.Info("watching for epitope lists", "dir", r.opts.InDir, "out", r.opts.OutDir)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
				r.handle(ev.Name)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.log.Error("watcher error", "error", err)
		case <-ctx.Done():
			r.log.Debug("watcher stopping")
			return nil
		}
	}
}

func (r *Runner) handle(src string) {
	if !r.wants(src) {
		return
	}
	dst := r.OutPath(src)
	if err := r.convert(src, dst); err != nil {
		r.log.Error("conversion failed", "file", src, "error", err)
		return
	}
	r.log.Info("converted", "file", src, "out", dst)
}

// wants filters to regular candidate files: matching extension, not
// hidden, not an editor temp file.
func (r *Runner) wants(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(base))
	for _, want := range r.opts.Exts {
		if ext == want {
			return true
		}
	}
	return false
}

// OutPath maps an input file to its FASTA destination.
func (r *Runner) OutPath(src string) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".fasta"
	return filepath.Join(r.opts.OutDir, base)
}
