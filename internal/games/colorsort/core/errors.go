package core

import "fmt"

// ConfigurationError reports a malformed level definition. Row and Col locate
// the offending cell within the definition's layout.
type ConfigurationError struct {
	Row    int
	Col    int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid level: row %d cell %d: %s", e.Row, e.Col, e.Reason)
}
