package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/testsupport"
)

func TestInspectJSON(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.heic")
	raw := testsupport.EmbedMarker("solar", testsupport.SolarPlist(
		testsupport.SolarItem{Elevation: -0.34, Azimuth: 270.9, Index: 0},
		testsupport.SolarItem{Elevation: 15, Azimuth: 180.5, Index: 1},
	))
	if err := os.WriteFile(input, raw, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := runCommand(t, "inspect", "--config", missingConfig(t), "--json", input)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	var doc struct {
		Type string
		Meta []map[string]any
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("inspect output is not JSON: %v (%q)", err, out)
	}
	if doc.Type != "solar" || len(doc.Meta) != 2 {
		t.Fatalf("unexpected schedule %q", out)
	}
	if doc.Meta[0]["FileName"] != "image-1.jpg" {
		t.Fatalf("unexpected first entry %v", doc.Meta[0])
	}
}

func TestInspectTable(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.heic")
	raw := testsupport.EmbedMarker("apr", testsupport.DayNightPlist(0, 1))
	if err := os.WriteFile(input, raw, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := runCommand(t, "inspect", "--config", missingConfig(t), input)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	for _, want := range []string{"Metadata kind: apr", "Schedule type: day-night", "image-1.jpg", "night"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestInspectMissingMetadata(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.heic")
	if err := os.WriteFile(input, []byte("no markers here"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if _, err := runCommand(t, "inspect", "--config", missingConfig(t), input); err == nil {
		t.Fatal("expected error for metadata-free input")
	}
}
