// Package quarantine implements the deactivation sweep: a single linear
// pass over a payload's program records that deactivates every record
// spawned inside the monitored telemetry context or carrying a
// call-initiating action, and absorbs each deactivated record into a
// restrictive deconstruction sandbox.
package quarantine

import (
	"github.com/pklimov/progward/internal/model"
)

// ReservedContext is the origin designation for programs created inside the
// monitored telemetry subsystem.
const ReservedContext = "telemetry"

// truthy is the fixed set of string forms read as boolean true.
var truthy = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
	"y":    true,
	"on":   true,
}

// FromTelemetry reports whether a program record originated inside the
// telemetry context. Pure predicate: absent or wrong-shaped fields never
// match. All comparisons are case-insensitive and whitespace-trimmed.
func FromTelemetry(p map[string]any) bool {
	if model.Norm(p["source"]) == ReservedContext {
		return true
	}
	if model.Norm(p["created_in"]) == ReservedContext {
		return true
	}
	if tagsContain(p["tags"], ReservedContext) {
		return true
	}
	return truthy[model.Norm(p["from_telemetry"])]
}

// tagsContain checks a free-form tags collection for a normalized member.
func tagsContain(tags any, want string) bool {
	switch t := tags.(type) {
	case []any:
		for _, tag := range t {
			if model.Norm(tag) == want {
				return true
			}
		}
	case []string:
		for _, tag := range t {
			if model.Norm(tag) == want {
				return true
			}
		}
	}
	return false
}
