package contract

import "fmt"

// ConfigLoadError reports a plan or velocity-log document that could not be
// read or parsed. It always carries the offending path.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("could not load '%s': %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// ValidationError reports a capacity input that violates an invariant.
// Resource and Field are empty for aggregate conditions such as a
// non-positive capacity total.
type ValidationError struct {
	Resource string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Resource == "" {
		return e.Message
	}
	if e.Field == "" {
		return fmt.Sprintf("resource '%s' %s", e.Resource, e.Message)
	}
	return fmt.Sprintf("resource '%s' field '%s' %s", e.Resource, e.Field, e.Message)
}
