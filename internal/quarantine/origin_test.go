package quarantine

import "testing"

func TestFromTelemetrySourceField(t *testing.T) {
	cases := []struct {
		name string
		p    map[string]any
		want bool
	}{
		{"explicit source", map[string]any{"source": "telemetry"}, true},
		{"source case-insensitive", map[string]any{"source": " TELEMETRY "}, true},
		{"created_in", map[string]any{"created_in": "Telemetry"}, true},
		{"tag member", map[string]any{"tags": []any{"prod", "Telemetry"}}, true},
		{"string tag slice", map[string]any{"tags": []string{"telemetry"}}, true},
		{"flag true bool", map[string]any{"from_telemetry": true}, true},
		{"flag yes string", map[string]any{"from_telemetry": " YES "}, true},
		{"flag numeric one", map[string]any{"from_telemetry": 1}, true},
		{"flag off", map[string]any{"from_telemetry": "off"}, false},
		{"unrelated source", map[string]any{"source": "operator"}, false},
		{"empty record", map[string]any{}, false},
		{"wrong-shaped tags", map[string]any{"tags": "telemetry,prod"}, false},
		{"wrong-shaped source", map[string]any{"source": []any{"telemetry"}}, false},
	}
	for _, tc := range cases {
		if got := FromTelemetry(tc.p); got != tc.want {
			t.Errorf("%s: FromTelemetry = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFromTelemetryIsPure(t *testing.T) {
	p := map[string]any{"source": "telemetry", "active": true}
	FromTelemetry(p)
	if len(p) != 2 || p["source"] != "telemetry" || p["active"] != true {
		t.Error("classifier must not mutate the record")
	}
}
