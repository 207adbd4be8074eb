package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestDispatcher(t *testing.T, serverURL string, timeout time.Duration) *Dispatcher {
	t.Helper()
	r, err := NewRegistry(Catalog)
	if err != nil {
		t.Fatalf("Unexpected error building registry: %v", err)
	}
	proxy := NewProxy(serverURL, "test-token", timeout, testLogger())
	return NewDispatcher(r, proxy, testLogger())
}

// --- ValidateArguments ---

func validateDef() *ToolDef {
	return &ToolDef{
		Name:   "update_a_widget",
		Method: "PUT",
		Path:   "/api/0/widgets/{widget_id}/",
		Params: []Param{
			{Name: "widget_id", Type: "string", Required: true, In: "path"},
			{Name: "name", Type: "string", In: "body"},
			{Name: "weight", Type: "number", In: "body"},
			{Name: "active", Type: "boolean", In: "body"},
			{Name: "tags", Type: "array", In: "body"},
			{Name: "options", Type: "object", In: "body"},
		},
	}
}

func TestValidateArguments_Valid(t *testing.T) {
	args := map[string]interface{}{
		"widget_id": "w1",
		"name":      "Widget",
		"weight":    float64(3),
		"active":    true,
		"tags":      []interface{}{"a", "b"},
		"options":   map[string]interface{}{"k": "v"},
	}
	if err := ValidateArguments(validateDef(), args); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestValidateArguments_OptionalOmitted(t *testing.T) {
	args := map[string]interface{}{"widget_id": "w1"}
	if err := ValidateArguments(validateDef(), args); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestValidateArguments_MissingRequired(t *testing.T) {
	err := ValidateArguments(validateDef(), map[string]interface{}{"name": "Widget"})
	if err == nil {
		t.Fatal("Expected error for missing required parameter")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %T: %v", err, err)
	}
	if len(verr.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d: %v", len(verr.Violations), verr.Violations)
	}
	if !strings.Contains(verr.Violations[0], "widget_id") {
		t.Errorf("Expected violation to name widget_id, got %q", verr.Violations[0])
	}
}

func TestValidateArguments_ShapeMismatches(t *testing.T) {
	cases := []struct {
		param string
		value interface{}
	}{
		{"widget_id", 42},
		{"name", true},
		{"weight", "heavy"},
		{"active", "yes"},
		{"tags", "a,b"},
		{"options", []interface{}{"k"}},
	}

	for _, tc := range cases {
		args := map[string]interface{}{"widget_id": "w1"}
		args[tc.param] = tc.value

		err := ValidateArguments(validateDef(), args)
		if err == nil {
			t.Errorf("Expected error for %s=%v (%T)", tc.param, tc.value, tc.value)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Expected ValidationError for %s, got %T", tc.param, err)
			continue
		}
		found := false
		for _, v := range verr.Violations {
			if strings.Contains(v, tc.param) {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected violation naming %q, got %v", tc.param, verr.Violations)
		}
	}
}

func TestValidateArguments_UnknownRejected(t *testing.T) {
	args := map[string]interface{}{
		"widget_id": "w1",
		"bogus":     "value",
	}
	err := ValidateArguments(validateDef(), args)
	if err == nil {
		t.Fatal("Expected error for unknown parameter")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("Expected error to name the unknown parameter, got %q", err.Error())
	}
}

func TestValidateArguments_AllViolationsReported(t *testing.T) {
	args := map[string]interface{}{
		"weight": "heavy",
		"bogus":  true,
	}
	err := ValidateArguments(validateDef(), args)
	if err == nil {
		t.Fatal("Expected error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %T", err)
	}
	// missing widget_id, bad weight shape, unknown bogus
	if len(verr.Violations) != 3 {
		t.Errorf("Expected 3 violations, got %d: %v", len(verr.Violations), verr.Violations)
	}
}

func TestValidateArguments_DoesNotMutateArguments(t *testing.T) {
	args := map[string]interface{}{"widget_id": "w1", "name": "Widget"}
	_ = ValidateArguments(validateDef(), args)
	if len(args) != 2 || args["widget_id"] != "w1" || args["name"] != "Widget" {
		t.Errorf("Expected argument map unchanged, got %v", args)
	}
}

// --- Request building ---

func TestBuildRequestPath_PathSubstitution(t *testing.T) {
	def := &ToolDef{
		Name:   "retrieve_a_team",
		Method: "GET",
		Path:   "/api/0/teams/{organization_id_or_slug}/{team_id_or_slug}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Required: true, In: "path"},
			{Name: "team_id_or_slug", Type: "string", Required: true, In: "path"},
		},
	}
	path, err := buildRequestPath(def, map[string]interface{}{
		"organization_id_or_slug": "acme",
		"team_id_or_slug":         "backend",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if path != "/api/0/teams/acme/backend/" {
		t.Errorf("Expected /api/0/teams/acme/backend/, got %s", path)
	}
}

func TestBuildRequestPath_PercentEncoding(t *testing.T) {
	def := &ToolDef{
		Name:   "retrieve_a_release",
		Method: "GET",
		Path:   "/api/0/organizations/{organization_id_or_slug}/releases/{version}/",
		Params: []Param{
			{Name: "organization_id_or_slug", Type: "string", Required: true, In: "path"},
			{Name: "version", Type: "string", Required: true, In: "path"},
		},
	}
	path, err := buildRequestPath(def, map[string]interface{}{
		"organization_id_or_slug": "acme",
		"version":                 "app@1.0.0 rc/2",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Contains(path, " ") || strings.Contains(path, "rc/2") {
		t.Errorf("Expected percent-encoded version segment, got %s", path)
	}
	if !strings.Contains(path, "app@1.0.0%20rc%2F2") {
		t.Errorf("Expected encoded version in path, got %s", path)
	}
}

func TestBuildRequestPath_MissingPathParam(t *testing.T) {
	def := &ToolDef{
		Name:   "retrieve_an_issue",
		Method: "GET",
		Path:   "/api/0/issues/{issue_id}/",
		Params: []Param{
			{Name: "issue_id", Type: "string", Required: true, In: "path"},
		},
	}
	_, err := buildRequestPath(def, map[string]interface{}{})
	if err == nil {
		t.Fatal("Expected error for missing path parameter")
	}
	var missing *MissingPathParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingPathParameterError, got %T: %v", err, err)
	}
	if missing.Param != "issue_id" {
		t.Errorf("Expected param issue_id, got %q", missing.Param)
	}
}

func TestBuildRequestPath_ArrayQueryRepeatedKey(t *testing.T) {
	def := &ToolDef{
		Name:   "bulk_remove",
		Method: "DELETE",
		Path:   "/api/0/widgets/",
		Params: []Param{
			{Name: "id", Type: "array", In: "query"},
		},
	}
	path, err := buildRequestPath(def, map[string]interface{}{
		"id": []interface{}{"1", "2", "3"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if path != "/api/0/widgets/?id=1&id=2&id=3" {
		t.Errorf("Expected repeated-key serialization, got %s", path)
	}
}

func TestBuildRequestPath_ScalarQueryValues(t *testing.T) {
	def := &ToolDef{
		Name:   "list_widgets",
		Method: "GET",
		Path:   "/api/0/widgets/",
		Params: []Param{
			{Name: "limit", Type: "number", In: "query"},
			{Name: "full", Type: "boolean", In: "query"},
			{Name: "query", Type: "string", In: "query"},
		},
	}
	path, err := buildRequestPath(def, map[string]interface{}{
		"limit": float64(25),
		"full":  true,
		"query": "is:unresolved",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(path, "limit=25") {
		t.Errorf("Expected limit=25 without decimal point, got %s", path)
	}
	if !strings.Contains(path, "full=true") {
		t.Errorf("Expected full=true, got %s", path)
	}
	if !strings.Contains(path, "query=is%3Aunresolved") {
		t.Errorf("Expected encoded query value, got %s", path)
	}
}

func TestBuildRequestBody_MutatingMethods(t *testing.T) {
	def := validateDef()
	body := buildRequestBody(def, map[string]interface{}{
		"widget_id": "w1",
		"name":      "Widget",
		"weight":    float64(3),
	})
	m, ok := body.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected map body, got %T", body)
	}
	if m["name"] != "Widget" {
		t.Errorf("Expected name in body, got %v", m)
	}
	if _, ok := m["widget_id"]; ok {
		t.Error("Path parameter should not leak into the body")
	}
}

func TestBuildRequestBody_NoBodyForGET(t *testing.T) {
	def := &ToolDef{
		Name:   "get_widget",
		Method: "GET",
		Path:   "/api/0/widgets/",
		Params: []Param{
			{Name: "name", Type: "string", In: "body"},
		},
	}
	if body := buildRequestBody(def, map[string]interface{}{"name": "Widget"}); body != nil {
		t.Errorf("Expected nil body for GET, got %v", body)
	}
}

func TestBuildRequestBody_EmptyIsNil(t *testing.T) {
	if body := buildRequestBody(validateDef(), map[string]interface{}{"widget_id": "w1"}); body != nil {
		t.Errorf("Expected nil body when no body params supplied, got %v", body)
	}
}

// --- Dispatcher end to end ---

func TestDispatcher_UpdateProjectRoundTrip(t *testing.T) {
	var receivedMethod, receivedPath string
	var receivedBody []byte
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedMethod = r.Method
		receivedPath = r.URL.Path
		receivedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"slug":"web","name":"Web App"}`))
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL, 5*time.Second)
	result, err := d.Invoke(context.Background(), "update_a_project", map[string]interface{}{
		"organization_id_or_slug": "acme",
		"project_id_or_slug":      "web",
		"name":                    "Web App",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if receivedMethod != http.MethodPut {
		t.Errorf("Expected PUT, got %s", receivedMethod)
	}
	if !strings.Contains(receivedPath, "acme") || !strings.Contains(receivedPath, "web") {
		t.Errorf("Expected path containing acme and web, got %s", receivedPath)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(receivedBody, &body); err != nil {
		t.Fatalf("Request body is not valid JSON: %v", err)
	}
	if len(body) != 1 || body["name"] != "Web App" {
		t.Errorf(`Expected body {"name":"Web App"}, got %s`, receivedBody)
	}

	if result.Status != http.StatusOK {
		t.Errorf("Expected status 200, got %d", result.Status)
	}
	if !strings.Contains(string(result.Body), "Web App") {
		t.Errorf("Expected relayed response body, got %s", result.Body)
	}
}

func TestDispatcher_DeleteTeam_NoContent(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/api/0/teams/acme/backend/" {
			t.Errorf("Expected /api/0/teams/acme/backend/, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL, 5*time.Second)
	result, err := d.Invoke(context.Background(), "delete_a_team", map[string]interface{}{
		"organization_id_or_slug": "acme",
		"team_id_or_slug":         "backend",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Status != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", result.Status)
	}
	if len(result.Body) != 0 {
		t.Errorf("Expected empty body, got %q", result.Body)
	}
}

func TestDispatcher_RemoteError403(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"You do not have permission to perform this action."}`))
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL, 5*time.Second)
	_, err := d.Invoke(context.Background(), "retrieve_an_issue", map[string]interface{}{
		"issue_id": "12345",
	})
	if err == nil {
		t.Fatal("Expected error for 403 response")
	}
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("Expected RemoteError, got %T: %v", err, err)
	}
	if remote.Status != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", remote.Status)
	}
	if !strings.Contains(string(remote.Body), "permission") {
		t.Errorf("Expected response body preserved, got %q", remote.Body)
	}
}

func TestDispatcher_Timeout(t *testing.T) {
	block := make(chan struct{})
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block // never responds within the test window
	}))
	defer mockServer.Close()
	defer close(block)

	d := newTestDispatcher(t, mockServer.URL, 500*time.Millisecond)

	start := time.Now()
	_, err := d.Invoke(context.Background(), "retrieve_an_issue", map[string]interface{}{
		"issue_id": "12345",
	})
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("Expected error for timed-out request")
	}
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("Expected TransportError, got %T: %v", err, err)
	}
	if elapsed > 3*time.Second {
		t.Errorf("Expected timeout near the configured bound, took %v", elapsed)
	}
}

func TestDispatcher_ValidationFailure_NoNetworkCall(t *testing.T) {
	var calls int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL, 5*time.Second)
	_, err := d.Invoke(context.Background(), "update_a_project", map[string]interface{}{
		"organization_id_or_slug": "acme",
		// project_id_or_slug missing
	})
	if err == nil {
		t.Fatal("Expected ValidationError")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %T: %v", err, err)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("Expected 0 network calls, got %d", n)
	}
}

func TestDispatcher_UnknownTool_NoNetworkCall(t *testing.T) {
	var calls int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL, 5*time.Second)

	argSets := []map[string]interface{}{
		{},
		{"issue_id": "12345"},
		{"anything": []interface{}{"at", "all"}},
	}
	for _, args := range argSets {
		_, err := d.Invoke(context.Background(), "no_such_tool", args)
		if err == nil {
			t.Fatal("Expected UnknownToolError")
		}
		var unknown *UnknownToolError
		if !errors.As(err, &unknown) {
			t.Fatalf("Expected UnknownToolError, got %T: %v", err, err)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("Expected 0 network calls, got %d", n)
	}
}

func TestDispatcher_ArrayQueryOverTheWire(t *testing.T) {
	var receivedQuery []string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedQuery = r.URL.Query()["id"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL, 5*time.Second)
	_, err := d.Invoke(context.Background(), "bulk_remove_a_list_of_issues", map[string]interface{}{
		"organization_id_or_slug": "acme",
		"project_id_or_slug":      "web",
		"id":                      []interface{}{"11", "22"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(receivedQuery) != 2 || receivedQuery[0] != "11" || receivedQuery[1] != "22" {
		t.Errorf("Expected repeated id query values [11 22], got %v", receivedQuery)
	}
}

func TestDispatcher_Cancellation(t *testing.T) {
	block := make(chan struct{})
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer mockServer.Close()
	defer close(block)

	d := newTestDispatcher(t, mockServer.URL, 30*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := d.Invoke(ctx, "retrieve_an_issue", map[string]interface{}{"issue_id": "1"})
	if err == nil {
		t.Fatal("Expected error for cancelled invocation")
	}
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("Expected TransportError, got %T: %v", err, err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Expected prompt abort on cancellation, took %v", elapsed)
	}
}
