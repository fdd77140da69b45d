package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/testsupport"
)

// runCommand executes the root command with args and returns combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// missingConfig returns a path no config file lives at, keeping tests
// isolated from any real user configuration.
func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.toml")
}

func writeStubTool(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub tool %s: %v", name, err)
	}
	return path
}

func writeInputContainer(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "input.heic")
	raw := testsupport.EmbedMarker("apr", testsupport.DayNightPlist(0, 1))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRootCommandWiring(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"inspect", "check", "config"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected %q subcommand to be registered", name)
		}
	}

	for flag, want := range map[string]string{
		"output": "wallpaper.avif",
		"format": "jpg",
		"speed":  "5",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			t.Fatalf("expected %q flag", flag)
		}
		if f.DefValue != want {
			t.Fatalf("flag %q: expected default %q, got %q", flag, want, f.DefValue)
		}
	}
	if f := cmd.Flags().Lookup("crossfade"); f == nil || f.DefValue != "false" {
		t.Fatal("expected crossfade flag defaulting to false")
	}
}

func TestRootRequiresInputArgument(t *testing.T) {
	if _, err := runCommand(t, "--config", missingConfig(t)); err == nil {
		t.Fatal("expected error when no input file is given")
	}
}

func TestConvertEndToEnd(t *testing.T) {
	dir := t.TempDir()
	binDir := t.TempDir()

	heif := writeStubTool(t, binDir, "heif-convert", `#!/bin/sh
template="$2"
stem="${template%.*}"
ext="${template##*.}"
printf frame > "${stem}-1.${ext}"
printf frame > "${stem}-2.${ext}"
`)
	bld := writeStubTool(t, binDir, "kdynamicwallpaperbuilder", `#!/bin/sh
printf built > "$2"
`)

	cfgPath := filepath.Join(dir, "config.toml")
	cfg := "[tools]\nheif_convert = \"" + heif + "\"\nwallpaper_builder = \"" + bld + "\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	input := writeInputContainer(t, dir)
	output := filepath.Join(dir, "converted.avif")

	if _, err := runCommand(t, "--config", cfgPath, "--output", output, input); err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "built" {
		t.Fatalf("unexpected artifact content %q", got)
	}
}

func TestConvertFailsBeforeWorkWhenToolMissing(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := "[tools]\nheif_convert = \"definitely-not-installed-decoder\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	input := writeInputContainer(t, dir)
	output := filepath.Join(dir, "converted.avif")

	_, err := runCommand(t, "--config", cfgPath, "--output", output, input)
	if err == nil {
		t.Fatal("expected preflight failure")
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatalf("no output may be produced, stat err=%v", statErr)
	}
}
