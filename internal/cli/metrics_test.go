package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/binclock/pkg/errors"
)

func readMetrics(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	return string(data)
}

func TestMetricsHooks(t *testing.T) {
	var logs bytes.Buffer
	h := newMetricsHooks(newLogger(&logs, log.DebugLevel))
	ctx := context.Background()

	h.OnConvertStart(ctx, 5, int64(13*time.Hour))
	h.OnConvertComplete(ctx, 5, int64(500*time.Millisecond), time.Microsecond)
	h.OnRenderStart(ctx, "grid")
	h.OnRenderComplete(ctx, "grid", 42, time.Microsecond, nil)
	h.OnRenderComplete(ctx, "json", 0, time.Microsecond, fmt.Errorf("boom"))

	path := filepath.Join(t.TempDir(), "binclock.prom")
	if err := h.writeTextfile(path); err != nil {
		t.Fatalf("writeTextfile: %v", err)
	}
	got := readMetrics(t, path)
	for _, want := range []string{
		"binclock_conversions_total 1",
		"binclock_convert_duration_seconds_count 1",
		"binclock_convert_remainder_seconds 0.5",
		`binclock_renders_total{format="grid",result="ok"} 1`,
		`binclock_renders_total{format="json",result="error"} 1`,
		`binclock_render_bytes_total{format="grid"} 42`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("metrics missing %q:\n%s", want, got)
		}
	}

	// Events still reach the log.
	for _, want := range []string{"converting", "converted", "rendering", "rendered", "render failed"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log missing %q:\n%s", want, logs.String())
		}
	}
}

func TestShowMetricsFile(t *testing.T) {
	setupConfig(t)
	path := filepath.Join(t.TempDir(), "binclock.prom")

	got, err := runCLI(t, "show", "13:17:01", "--metrics-file", path)
	if err != nil {
		t.Fatalf("show --metrics-file: %v", err)
	}
	if got != berlinAt131701 {
		t.Errorf("output =\n%s", got)
	}

	metrics := readMetrics(t, path)
	for _, want := range []string{
		"binclock_conversions_total 1",
		"binclock_convert_remainder_seconds 0",
		`binclock_renders_total{format="grid",result="ok"} 1`,
		`binclock_renders_total{format="text",result="ok"} 1`,
	} {
		if !strings.Contains(metrics, want) {
			t.Errorf("metrics missing %q:\n%s", want, metrics)
		}
	}
}

func TestMetricsFileUnwritable(t *testing.T) {
	setupConfig(t)
	path := filepath.Join(t.TempDir(), "missing", "binclock.prom")

	_, err := runCLI(t, "show", "13:17:01", "--metrics-file", path)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidPath)
	}
}

func TestNoMetricsFileByDefault(t *testing.T) {
	setupConfig(t)
	dir := t.TempDir()
	t.Chdir(dir)

	if _, err := runCLI(t, "show", "13:17:01"); err != nil {
		t.Fatalf("show: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("unexpected files written: %v", entries)
	}
}
