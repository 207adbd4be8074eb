package mcp

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/universal-mcp/sentry/internal/common"
)

// Dispatcher executes a named tool invocation end-to-end: lookup, argument
// validation, request building, the HTTP call, and response relay.
// Stateless after construction; invocations run concurrently without
// coordination.
type Dispatcher struct {
	registry *Registry
	proxy    *Proxy
	logger   *common.Logger
}

// NewDispatcher creates a dispatcher over the given registry and proxy.
func NewDispatcher(registry *Registry, proxy *Proxy, logger *common.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		proxy:    proxy,
		logger:   logger,
	}
}

// Registry returns the dispatcher's tool registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Invoke runs the tool with the given arguments. It returns UnknownToolError
// for an unregistered name and ValidationError before any network traffic;
// RemoteError and TransportError come back from the HTTP exchange. No
// retries are performed at this layer.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]interface{}) (*Result, error) {
	logger := d.logger.WithCorrelationId(uuid.New().String())

	def, err := d.registry.Lookup(name)
	if err != nil {
		logger.Warn().Str("tool", name).Msg("unknown tool invoked")
		return nil, err
	}

	if err := ValidateArguments(def, args); err != nil {
		logger.Warn().Str("tool", name).Str("error", err.Error()).Msg("invalid tool arguments")
		return nil, err
	}

	path, err := buildRequestPath(def, args)
	if err != nil {
		return nil, err
	}

	body := buildRequestBody(def, args)

	logger.Debug().Str("tool", name).Str("method", def.Method).Str("path", path).Msg("dispatching tool invocation")

	result, err := d.proxy.Do(ctx, def.Method, path, body)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("tool", name).Int("status", result.Status).Msg("tool invocation complete")
	return result, nil
}

// ValidateArguments confirms the supplied arguments against the tool's
// schema: every required parameter present, every supplied value of the
// declared shape, and no unknown parameters. Unknown arguments are rejected
// rather than passed through. Pure: neither the definition nor the argument
// map is modified.
func ValidateArguments(def *ToolDef, args map[string]interface{}) error {
	var violations []string

	params := make(map[string]*Param, len(def.Params))
	for i := range def.Params {
		params[def.Params[i].Name] = &def.Params[i]
	}

	for name := range args {
		if _, ok := params[name]; !ok {
			violations = append(violations, fmt.Sprintf("unknown parameter %q", name))
		}
	}

	for _, p := range def.Params {
		val, ok := args[p.Name]
		if !ok || val == nil {
			if p.Required {
				violations = append(violations, fmt.Sprintf("missing required parameter %q", p.Name))
			}
			continue
		}
		if !shapeMatches(p.Type, val) {
			violations = append(violations, fmt.Sprintf("parameter %q: expected %s, got %T", p.Name, p.Type, val))
		}
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		return &ValidationError{Tool: def.Name, Violations: violations}
	}
	return nil
}

// shapeMatches reports whether a value conforms to the declared parameter
// type. Arguments arrive JSON-decoded, so numbers are float64 and arrays are
// []interface{}; native Go shapes are accepted too for direct callers.
func shapeMatches(typ string, val interface{}) bool {
	switch typ {
	case "string":
		_, ok := val.(string)
		return ok
	case "number":
		switch val.(type) {
		case float64, float32, int, int32, int64:
			return true
		}
		return false
	case "boolean":
		_, ok := val.(bool)
		return ok
	case "array":
		switch val.(type) {
		case []interface{}, []string, []float64:
			return true
		}
		return false
	case "object":
		_, ok := val.(map[string]interface{})
		return ok
	}
	return false
}

// buildRequestPath substitutes path parameters into the URL template in
// declared order and appends query parameters. Path values are
// percent-encoded; array query values are serialized as repeated keys
// (?id=1&id=2), uniformly across all tools.
func buildRequestPath(def *ToolDef, args map[string]interface{}) (string, error) {
	path := def.Path
	query := url.Values{}

	for _, p := range def.Params {
		val, ok := args[p.Name]
		switch p.In {
		case "path":
			if !ok || val == nil {
				return "", &MissingPathParameterError{Tool: def.Name, Param: p.Name}
			}
			strVal := scalarString(val)
			if strVal == "" {
				return "", &MissingPathParameterError{Tool: def.Name, Param: p.Name}
			}
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(strVal))
		case "query":
			if !ok || val == nil {
				continue
			}
			for _, item := range queryValues(val) {
				query.Add(p.Name, item)
			}
		}
	}

	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return path, nil
}

// buildRequestBody assembles body-located arguments into a single payload
// for mutating methods. Methods without a request body get nil even if body
// parameters were declared.
func buildRequestBody(def *ToolDef, args map[string]interface{}) interface{} {
	switch def.Method {
	case "POST", "PUT", "PATCH":
	default:
		return nil
	}

	body := make(map[string]interface{})
	for _, p := range def.Params {
		if p.In != "body" {
			continue
		}
		if val, ok := args[p.Name]; ok && val != nil {
			body[p.Name] = val
		}
	}
	if len(body) == 0 {
		return nil
	}
	return body
}

// queryValues flattens a query argument into its wire values. Arrays expand
// to one value per element; scalars yield a single value.
func queryValues(val interface{}) []string {
	switch v := val.(type) {
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, scalarString(item))
		}
		return out
	case []string:
		return v
	case []float64:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, scalarString(item))
		}
		return out
	default:
		return []string{scalarString(val)}
	}
}

// scalarString renders a scalar argument for URL use. Whole floats print
// without a trailing ".0" so JSON-decoded integers round-trip cleanly.
func scalarString(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}
