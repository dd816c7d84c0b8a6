package arch

import "fmt"

// ValidationError reports a topology that violates the model's
// referential invariants. Subject names the offending identifier.
type ValidationError struct {
	Subject string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid topology: %s: %s", e.Subject, e.Reason)
}

// Validate checks the topology invariants: component IDs are unique
// and non-empty, every category is known, and every connection
// endpoint references a declared component. Connections must also be
// unique as (from, to) pairs.
func (t Topology) Validate() error {
	seen := make(map[string]bool, len(t.Components))
	for _, c := range t.Components {
		if c.ID == "" {
			return &ValidationError{Subject: c.Label, Reason: "component has empty ID"}
		}
		if seen[c.ID] {
			return &ValidationError{Subject: c.ID, Reason: "duplicate component ID"}
		}
		seen[c.ID] = true
		if !c.Category.Valid() {
			return &ValidationError{Subject: c.ID, Reason: fmt.Sprintf("unknown category %q", c.Category)}
		}
	}

	pairs := make(map[Connection]bool, len(t.Connections))
	for _, conn := range t.Connections {
		if !seen[conn.From] {
			return &ValidationError{Subject: conn.From, Reason: "connection source is not a declared component"}
		}
		if !seen[conn.To] {
			return &ValidationError{Subject: conn.To, Reason: "connection target is not a declared component"}
		}
		if pairs[conn] {
			return &ValidationError{Subject: conn.From + " -> " + conn.To, Reason: "duplicate connection"}
		}
		pairs[conn] = true
	}
	return nil
}
