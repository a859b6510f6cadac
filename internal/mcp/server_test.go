package mcp

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pklimov/progward/internal/audit"
)

func TestHandleSweep(t *testing.T) {
	s, err := New(Config{SandboxEnvID: "env-42"})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	in := SweepInput{
		Payload: map[string]any{
			"programs": []any{
				map[string]any{"id": "p1", "created_in": "telemetry", "active": true},
				map[string]any{"id": "callee", "action": "call", "active": true},
				map[string]any{"id": "p4", "active": true},
			},
		},
	}

	_, out, err := s.handleSweep(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("handleSweep: %v", err)
	}

	if !reflect.DeepEqual(out.DeactivatedIDs, []string{"p1", "callee"}) {
		t.Errorf("deactivated = %v", out.DeactivatedIDs)
	}
	if !reflect.DeepEqual(out.BlockedCallIDs, []string{"callee"}) {
		t.Errorf("blocked = %v", out.BlockedCallIDs)
	}
	if out.Payload["call_actions_enabled"] != false {
		t.Error("call flag not forced off in tool output")
	}

	p1 := out.Payload["programs"].([]any)[0].(map[string]any)
	env := p1["environment"].(map[string]any)
	if env["id"] != "env-42" {
		t.Errorf("server-level sandbox env not applied: %v", env["id"])
	}
}

func TestHandleSweepPerCallOverride(t *testing.T) {
	s, err := New(Config{SandboxEnvID: "server-env"})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	in := SweepInput{
		Payload: map[string]any{
			"programs": []any{map[string]any{"id": "x", "source": "telemetry"}},
		},
		SandboxEnv: "call-env",
	}
	_, out, err := s.handleSweep(context.Background(), nil, in)
	if err != nil {
		t.Fatal(err)
	}
	p := out.Payload["programs"].([]any)[0].(map[string]any)
	if p["environment"].(map[string]any)["id"] != "call-env" {
		t.Error("per-call sandbox override should win")
	}
}

func TestHandleSweepRecordsLedger(t *testing.T) {
	ledger := filepath.Join(t.TempDir(), "audit.jsonl")
	s, err := New(Config{AuditLogPath: ledger})
	if err != nil {
		t.Fatal(err)
	}

	in := SweepInput{Payload: map[string]any{
		"programs": []any{map[string]any{"id": "x", "intent": "dial"}},
	}}
	if _, _, err := s.handleSweep(context.Background(), nil, in); err != nil {
		t.Fatal(err)
	}
	s.Close()

	res := audit.Verify(ledger)
	if !res.Valid || res.Lines != 1 {
		t.Errorf("ledger: valid=%v lines=%d err=%s", res.Valid, res.Lines, res.Error)
	}
}

func TestHandleClassify(t *testing.T) {
	s, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	cases := []struct {
		name    string
		program map[string]any
		want    ClassifyOutput
	}{
		{
			"telemetry origin",
			map[string]any{"id": "p1", "created_in": "telemetry"},
			ClassifyOutput{ProgramID: "p1", TelemetryOrigin: true, WouldDeactivate: true},
		},
		{
			"call action",
			map[string]any{"id": "p2", "operation": "start_call"},
			ClassifyOutput{ProgramID: "p2", CallAction: true, WouldDeactivate: true},
		},
		{
			"clean record",
			map[string]any{"id": "p3", "action": "report"},
			ClassifyOutput{ProgramID: "p3"},
		},
	}
	for _, tc := range cases {
		_, out, err := s.handleClassify(context.Background(), nil, ClassifyInput{Program: tc.program})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if out != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, out, tc.want)
		}
	}
}
