// internal/command/watch_test.go
package command

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchConvertsDirectory(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	if err := os.WriteFile(filepath.Join(inDir, "list.txt"), []byte("ACD, LMN"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	app := App()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.RunContext(ctx, []string{"epitizer", "watch", "--in", inDir, "--out", outDir})
	}()

	outFile := filepath.Join(outDir, "list.fasta")
	deadline := time.Now().Add(3 * time.Second)
	for {
		if _, err := os.Stat(outFile); err == nil {
			break
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("output never appeared: %v", <-done)
		}
		time.Sleep(20 * time.Millisecond)
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watch: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != ">Epitope_1\nACD\n>Epitope_2\nLMN\n" {
		t.Fatalf("got %q", data)
	}
}

func TestWatchRequiresDirs(t *testing.T) {
	_, err := runApp(t, "watch", "--in", t.TempDir())
	if err == nil {
		t.Fatal("expected error without --out")
	}
}
