// Package progward provides the in-process quarantine sweep for Go
// systems that manage agent program registries. A registry is handed in as
// a JSON-shaped mapping; the sweep deactivates every program that
// originated in the monitored telemetry context or carries a
// call-initiating action, absorbs the affected programs into a restrictive
// deconstruction sandbox, and returns a fresh quarantined copy together
// with the affected program identifiers. The caller's registry is never
// mutated.
//
// Usage:
//
//	res := progward.Sweep(registry, progward.WithSandboxEnv("env-42"))
//	for _, id := range res.Deactivated {
//	    // persist, alert, ...
//	}
//	store.Save(res.Payload)
//
// The SDK links directly against internal packages for zero-subprocess
// overhead. External users import github.com/pklimov/progward/sdk/go/progward.
package progward
