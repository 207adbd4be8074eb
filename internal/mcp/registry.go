// Package mcp exposes the Sentry REST API as MCP tools: a static tool
// catalog, a registry with lookup, and a generic dispatcher that turns a
// tool invocation into an HTTP call against the Sentry API.
package mcp

import (
	"fmt"
	"sort"
	"strings"
)

// allowedMethods is the whitelist of HTTP methods for catalog tools.
var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true,
}

// paramTypes is the set of parameter shapes the validator understands.
var paramTypes = map[string]bool{
	"string": true, "number": true, "boolean": true, "array": true, "object": true,
}

// paramLocations is the set of valid parameter placements.
var paramLocations = map[string]bool{
	"path": true, "query": true, "body": true,
}

// Param describes one parameter of a tool.
type Param struct {
	Name        string
	Type        string // string, number, boolean, array, object
	Description string
	Required    bool
	In          string // path, query, body
}

// ToolDef is the immutable record describing one tool: its name, schema,
// HTTP method, and URL template. Definitions are built once at startup and
// never mutated.
type ToolDef struct {
	Name        string
	Description string
	Method      string
	Path        string
	Params      []Param
}

// ValidateToolDef validates a single tool definition: name and method are
// set, the path is a sane /api/ template, and the template's placeholders
// correspond exactly to the required path-located parameters.
func ValidateToolDef(def ToolDef) error {
	if def.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if !allowedMethods[def.Method] {
		return fmt.Errorf("tool %q has unsupported method %q", def.Name, def.Method)
	}
	if !strings.HasPrefix(def.Path, "/api/") {
		return fmt.Errorf("tool %q has invalid path %q (must start with /api/)", def.Name, def.Path)
	}
	if strings.Contains(def.Path, "..") {
		return fmt.Errorf("tool %q has invalid path %q (contains ..)", def.Name, def.Path)
	}

	placeholders := pathPlaceholders(def.Path)
	pathParams := make(map[string]bool)
	seen := make(map[string]bool)
	for _, p := range def.Params {
		if p.Name == "" {
			return fmt.Errorf("tool %q has a parameter with empty name", def.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("tool %q declares parameter %q twice", def.Name, p.Name)
		}
		seen[p.Name] = true
		if !paramTypes[p.Type] {
			return fmt.Errorf("tool %q parameter %q has unsupported type %q", def.Name, p.Name, p.Type)
		}
		if !paramLocations[p.In] {
			return fmt.Errorf("tool %q parameter %q has unsupported location %q", def.Name, p.Name, p.In)
		}
		if p.In == "path" {
			if !p.Required {
				return fmt.Errorf("tool %q path parameter %q must be required", def.Name, p.Name)
			}
			if !placeholders[p.Name] {
				return fmt.Errorf("tool %q path parameter %q has no placeholder in %q", def.Name, p.Name, def.Path)
			}
			pathParams[p.Name] = true
		}
	}
	for name := range placeholders {
		if !pathParams[name] {
			return fmt.Errorf("tool %q placeholder {%s} has no path parameter", def.Name, name)
		}
	}
	return nil
}

// pathPlaceholders extracts {placeholder} names from a URL template.
func pathPlaceholders(path string) map[string]bool {
	out := make(map[string]bool)
	rest := path
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			return out
		}
		closing := strings.Index(rest[open:], "}")
		if closing < 0 {
			return out
		}
		out[rest[open+1:open+closing]] = true
		rest = rest[open+closing+1:]
	}
}

// Registry holds the immutable set of tool definitions, keyed by name.
// Read-only after construction, so safe for concurrent lookups.
type Registry struct {
	defs  map[string]*ToolDef
	order []string
}

// NewRegistry builds a registry from a list of definitions. Every definition
// is validated; a duplicate name fails with DuplicateToolError.
func NewRegistry(defs []ToolDef) (*Registry, error) {
	r := &Registry{
		defs:  make(map[string]*ToolDef, len(defs)),
		order: make([]string, 0, len(defs)),
	}
	for i := range defs {
		def := defs[i]
		if err := ValidateToolDef(def); err != nil {
			return nil, err
		}
		if _, ok := r.defs[def.Name]; ok {
			return nil, &DuplicateToolError{Name: def.Name}
		}
		r.defs[def.Name] = &def
		r.order = append(r.order, def.Name)
	}
	return r, nil
}

// Lookup returns the definition for a tool name, or UnknownToolError.
func (r *Registry) Lookup(name string) (*ToolDef, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}
	return def, nil
}

// Defs returns the definitions in registration order.
func (r *Registry) Defs() []*ToolDef {
	out := make([]*ToolDef, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name])
	}
	return out
}

// Names returns all tool names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.defs))
	for name := range r.defs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.defs)
}
