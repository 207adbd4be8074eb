package mcp

import (
	"fmt"
	"strings"
)

// DuplicateToolError indicates a tool name was registered twice.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("duplicate tool %q", e.Name)
}

// UnknownToolError indicates an invocation named a tool not present in the registry.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

// ValidationError indicates supplied arguments violate the tool's schema.
// Violations holds every violation found, sorted by parameter name.
// No network request is made when this error is returned.
type ValidationError struct {
	Tool       string
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %s", e.Tool, strings.Join(e.Violations, "; "))
}

// MissingPathParameterError indicates a URL template placeholder had no
// corresponding argument at request build time. Unreachable when validation
// runs first, but the builder checks anyway.
type MissingPathParameterError struct {
	Tool  string
	Param string
}

func (e *MissingPathParameterError) Error() string {
	return fmt.Sprintf("tool %q: missing path parameter %q", e.Tool, e.Param)
}

// RemoteError indicates the Sentry API responded with a non-2xx status.
// The request completed, so the remote may have acted on it.
type RemoteError struct {
	Status int
	Body   []byte
}

func (e *RemoteError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("sentry returned %d", e.Status)
	}
	return fmt.Sprintf("sentry returned %d: %s", e.Status, string(e.Body))
}

// TransportError indicates the request never completed: timeout, connection
// failure, or DNS failure. No confirmed state change occurred upstream, so
// callers may treat these differently from RemoteError.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sentry unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
