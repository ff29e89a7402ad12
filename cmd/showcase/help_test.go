package main

// Notes:
// - printUsage/printUpdateUsage: we test that required content strings are
//   present. Exact formatting is an implementation detail.
// - runHelp: we test routing and exit codes.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Main usage output
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	output := buf.String()

	for _, s := range []string{"Usage: showcase", "Commands:", "update", "check", "config", "version", "help"} {
		if !strings.Contains(output, s) {
			t.Errorf("printUsage output should contain %q", s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintUpdateUsage - Every update flag is documented
// ---------------------------------------------------------------------------

func TestPrintUpdateUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUpdateUsage(&buf)
	output := buf.String()

	f, err := parseUpdateFlags("update", nil)
	if err != nil {
		t.Fatal(err)
	}
	f.fs.VisitAll(func(fl *flag.Flag) {
		if !strings.Contains(output, "--"+fl.Name) {
			t.Errorf("update usage should document --%s", fl.Name)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunHelp - Topic routing
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		want     string
	}{
		{"no topic", nil, ExitSuccess, "Commands:"},
		{"update", []string{"update"}, ExitSuccess, "Usage: showcase update"},
		{"check", []string{"check"}, ExitSuccess, "Usage: showcase check"},
		{"config", []string{"config"}, ExitSuccess, "Usage: showcase config"},
		{"version", []string{"version"}, ExitSuccess, "Usage: showcase version"},
		{"help", []string{"help"}, ExitSuccess, "Usage: showcase help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(nil, nil)
			if code := runHelp(tt.args, env.Environment); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(env.stdout.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", env.stdout, tt.want)
			}
		})
	}
}
