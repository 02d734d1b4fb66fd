package diag

import "strings"

// Severity defines the importance of a diagnostic. Higher is worse.
type Severity uint8

const (
	SevInfo Severity = iota
	// SevWarning: doc comment is readable but sloppy (unclosed <para>).
	SevWarning
	// SevError: a tag or a name attribute cannot be trusted.
	SevError
)

var severityNames = [...]string{SevInfo: "INFO", SevWarning: "WARNING", SevError: "ERROR"}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Label is the lowercase name used by the short format.
func (s Severity) Label() string { return strings.ToLower(s.String()) }
