package model

// Well-known payload and program field names.
const (
	KeyPrograms           = "programs"
	KeyCallActionsEnabled = "call_actions_enabled"

	// UnknownProgramID is the sentinel for records that carry no identifier.
	UnknownProgramID = "unknown"
)

// programIDKeys are the identifier candidates, checked in priority order.
var programIDKeys = []string{"id", "program_id"}

// ProgramID derives a record's stable identifier: first present of the
// candidate id fields, else the unknown sentinel. The textual form is kept
// as supplied (no case folding) since identifiers are opaque.
func ProgramID(p map[string]any) string {
	v, ok := FirstPresent(p, programIDKeys)
	if !ok {
		return UnknownProgramID
	}
	s, ok := Text(v)
	if !ok || s == "" {
		return UnknownProgramID
	}
	return s
}

// Programs returns the payload's program sequence. A missing or
// wrong-shaped collection degrades to empty rather than failing.
func Programs(payload map[string]any) []any {
	if payload == nil {
		return nil
	}
	seq, ok := payload[KeyPrograms].([]any)
	if !ok {
		return nil
	}
	return seq
}
