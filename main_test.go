package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunHeadlessWritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	err := run([]string{"-headless", "-autofire", "-seed", "7", "-max-ticks", "30", "-log-file", logPath})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{"starting headless simulation", "max ticks reached"} {
		if !strings.Contains(string(data), msg) {
			t.Errorf("log missing %q:\n%s", msg, data)
		}
	}
}

func TestRunFailureIsLoggedBeforeReturn(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "run.log")
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := run([]string{"-headless", "-max-ticks", "1", "-log-file", logPath, "-output-dir", filepath.Join(blocker, "out")})
	if err == nil {
		t.Fatal("expected an error for an output dir under a file")
	}

	data, rerr := os.ReadFile(logPath)
	if rerr != nil {
		t.Fatal(rerr)
	}
	if !strings.Contains(string(data), "barrage exited") {
		t.Errorf("failure not logged to file:\n%s", data)
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	if err := run([]string{"-no-such-flag"}); err == nil {
		t.Error("expected a flag parse error")
	}
}
