package quarantine

// DefaultSandboxEnvID is the deconstruction environment used when no
// override is configured.
const DefaultSandboxEnvID = "deconstruction-1"

// SandboxMode is the environment mode marker attached to absorbed records.
const SandboxMode = "restrictive/deconstruction"

// Absorb attaches the restrictive deconstruction profile to a record the
// sweep has already deactivated: an environment descriptor, an obedience
// profile, and a reactivation policy that binds any future reactivation to
// the sandbox. No predicate logic here; callers decide who gets absorbed.
func Absorb(p map[string]any, envID string) {
	if envID == "" {
		envID = DefaultSandboxEnvID
	}
	p["environment"] = map[string]any{
		"id":             envID,
		"mode":           SandboxMode,
		"network":        "none",
		"external_calls": "blocked",
		"mutation":       "read-only except audit trail",
	}
	p["obedience_profile"] = map[string]any{
		"state":           "obedient",
		"allowed_intents": []any{"deconstruct", "audit", "report"},
		"blocked_intents": []any{"call", "dial", "message", "contact", "exfiltrate"},
		"enforcement":     "hard",
	}
	p["reactivation_policy"] = map[string]any{
		"allowed":          true,
		"condition":        "must remain in " + SandboxMode + " mode",
		"force_obedience":  true,
		"force_call_block": true,
	}
}
