package payload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.json")
	data := `{"programs":[{"id":"p1","created_in":"telemetry"}],"call_actions_enabled":true}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	progs, ok := doc["programs"].([]any)
	if !ok || len(progs) != 1 {
		t.Fatalf("expected 1 program, got %v", doc["programs"])
	}
	if progs[0].(map[string]any)["id"] != "p1" {
		t.Errorf("unexpected program: %v", progs[0])
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	data := "programs:\n  - id: p1\n    action: call\ncall_actions_enabled: true\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	progs, ok := doc["programs"].([]any)
	if !ok || len(progs) != 1 {
		t.Fatalf("expected 1 program, got %v", doc["programs"])
	}
	p, ok := progs[0].(map[string]any)
	if !ok || p["action"] != "call" {
		t.Errorf("unexpected program shape: %v", progs[0])
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse payload") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	doc := map[string]any{
		"programs":             []any{map[string]any{"id": "p1", "active": false}},
		"call_actions_enabled": false,
	}

	for _, name := range []string{"out.json", "out.yaml"} {
		path := filepath.Join(dir, name)
		if err := Write(doc, path); err != nil {
			t.Fatalf("Write %s: %v", name, err)
		}
		back, err := Load(path)
		if err != nil {
			t.Fatalf("Load %s: %v", name, err)
		}
		if back["call_actions_enabled"] != false {
			t.Errorf("%s: flag lost in round trip: %v", name, back)
		}
		if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
			t.Errorf("%s: temp file left behind", name)
		}
	}
}
