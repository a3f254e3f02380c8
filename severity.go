package cycloid

// Severity classifies a validation message.
type Severity string

const (
	// SeverityWarning marks advisory messages. Output is still produced.
	SeverityWarning Severity = "warning"
	// SeverityError marks messages that block equation and sample output.
	SeverityError Severity = "error"
)
