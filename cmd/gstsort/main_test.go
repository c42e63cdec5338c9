package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	for _, dir := range []string{"incoming", "organized", "logs"} {
		if err := os.MkdirAll(filepath.Join(base, dir), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	content := fmt.Sprintf(`[paths]
source_dir = %q
target_dir = %q
log_dir = %q

[organize]
mode = "fresh"

[runlog]
enabled = false
`,
		filepath.Join(base, "incoming"),
		filepath.Join(base, "organized"),
		filepath.Join(base, "logs"))
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestPatternsCommandListsBank(t *testing.T) {
	out, err := runCommand(t, "patterns")
	if err != nil {
		t.Fatalf("patterns failed: %v", err)
	}
	for _, want := range []string{"GSTR-2B-Reco", "ImsReco", "AnnualReport", "case-insensitive"} {
		if !strings.Contains(out, want) {
			t.Fatalf("patterns output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected output: %s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample not written: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}

func TestConfigValidate(t *testing.T) {
	path := writeTestConfig(t)
	out, err := runCommand(t, "config", "validate", "--config", path)
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	path := writeTestConfig(t)
	out, err := runCommand(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"[paths]", "[organize]", "mode = 'fresh'"} {
		if !strings.Contains(out, want) {
			t.Fatalf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestScanCommandReportsEmptySource(t *testing.T) {
	path := writeTestConfig(t)
	out, err := runCommand(t, "scan", "--config", path)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !strings.Contains(out, "No clients found.") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestOrganizeCommandRejectsBadMode(t *testing.T) {
	path := writeTestConfig(t)
	if _, err := runCommand(t, "organize", "--config", path, "--mode", "overwrite"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
