package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pklimov/progward/internal/quarantine"
)

func TestFormatText(t *testing.T) {
	r := &quarantine.Result{
		DeactivatedIDs: []string{"p1", "p2"},
		BlockedCallIDs: []string{"p2"},
		AbsorbedIDs:    []string{"p1", "p2"},
		Payload:        map[string]any{},
	}
	run := New(r, "registry.json", "env-42", 5)

	out := FormatText(run)
	for _, want := range []string{"registry.json", "scanned     5 programs", "p1, p2", "env-42"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTextEmptySweep(t *testing.T) {
	r := &quarantine.Result{
		DeactivatedIDs: []string{},
		BlockedCallIDs: []string{},
		AbsorbedIDs:    []string{},
		Payload:        map[string]any{},
	}
	out := FormatText(New(r, "", "", 1))
	if !strings.Contains(out, "Nothing matched") {
		t.Errorf("expected empty-sweep note:\n%s", out)
	}
	if !strings.Contains(out, "scanned     1 program\n") {
		t.Errorf("expected singular form:\n%s", out)
	}
}

func TestFormatJSON(t *testing.T) {
	r := &quarantine.Result{
		DeactivatedIDs: []string{"p1"},
		BlockedCallIDs: []string{},
		AbsorbedIDs:    []string{"p1"},
		Payload:        map[string]any{"call_actions_enabled": false},
	}
	out, err := FormatJSON(New(r, "registry.json", "", 2))
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var back map[string]any
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if back["sandbox_env"] != quarantine.DefaultSandboxEnvID {
		t.Errorf("expected default sandbox env, got %v", back["sandbox_env"])
	}
	res := back["result"].(map[string]any)
	if ids := res["deactivated_program_ids"].([]any); len(ids) != 1 || ids[0] != "p1" {
		t.Errorf("unexpected deactivated ids: %v", ids)
	}
}
