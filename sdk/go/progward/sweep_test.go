package progward

import (
	"reflect"
	"testing"
)

func TestSweepPublicAPI(t *testing.T) {
	registry := map[string]any{
		"programs": []any{
			map[string]any{"id": "p1", "created_in": "telemetry", "active": true},
			map[string]any{"id": "callee", "action": "call", "active": true},
			map[string]any{"id": "p4", "active": true},
		},
		"call_actions_enabled": true,
	}

	res := Sweep(registry, WithSandboxEnv("env-42"))

	if !reflect.DeepEqual(res.Deactivated, []string{"p1", "callee"}) {
		t.Errorf("deactivated = %v", res.Deactivated)
	}
	if !reflect.DeepEqual(res.BlockedCall, []string{"callee"}) {
		t.Errorf("blocked = %v", res.BlockedCall)
	}
	if !reflect.DeepEqual(res.Absorbed, res.Deactivated) {
		t.Errorf("absorbed %v != deactivated %v", res.Absorbed, res.Deactivated)
	}
	if res.Payload["call_actions_enabled"] != false {
		t.Error("call flag not forced off")
	}

	// Caller's registry untouched.
	if registry["call_actions_enabled"] != true {
		t.Error("input registry was mutated")
	}

	p1 := res.Payload["programs"].([]any)[0].(map[string]any)
	if p1["status"] != StatusDeactivated {
		t.Errorf("status = %v", p1["status"])
	}
	env := p1["environment"].(map[string]any)
	if env["id"] != "env-42" || env["mode"] != SandboxMode {
		t.Errorf("sandbox env wrong: %v", env)
	}
}

func TestSweepDefaultOption(t *testing.T) {
	res := Sweep(map[string]any{
		"programs": []any{map[string]any{"id": "x", "source": "telemetry"}},
	})
	p := res.Payload["programs"].([]any)[0].(map[string]any)
	if p["environment"].(map[string]any)["id"] != DefaultSandboxEnv {
		t.Error("expected default sandbox env")
	}
}
