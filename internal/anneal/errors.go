package anneal

import "fmt"

// InvalidArgumentError reports an out-of-range optimizer setting.
type InvalidArgumentError struct {
	Name   string
	Value  any
	Reason string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Name, e.Value, e.Reason)
}
