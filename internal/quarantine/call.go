package quarantine

import (
	"strings"

	"github.com/pklimov/progward/internal/model"
)

// actionKeys are the alternative action-describing fields, all checked;
// the classifier is a pure OR across whichever are present.
var actionKeys = []string{"action", "intent", "operation", "command", "type"}

// callVerbs are the known call-initiating action values.
var callVerbs = map[string]bool{
	"call":  true,
	"dial":  true,
	"phone": true,
	"ring":  true,
}

// callSuffix catches deliberately suffixed variants like "initiate_call".
// Deliberately broad: any value ending in the suffix matches.
const callSuffix = "_call"

// HasCallAction reports whether a program record carries a call-initiating
// action under any of the action-describing fields. Absent or null fields
// are skipped; the first match short-circuits.
func HasCallAction(p map[string]any) bool {
	for _, k := range actionKeys {
		v, ok := p[k]
		if !ok || v == nil {
			continue
		}
		s := model.Norm(v)
		if s == "" {
			continue
		}
		if callVerbs[s] || strings.HasSuffix(s, callSuffix) {
			return true
		}
	}
	return false
}
