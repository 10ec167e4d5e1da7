package tools

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/clindata/cdisc-library-mcp/client"
)

// testUpstream fakes the CDISC Library and counts requests so tests can
// assert that parameter validation short-circuits before any upstream call.
type testUpstream struct {
	server *httptest.Server
	calls  atomic.Int64
}

func newTestUpstream(t *testing.T, handler http.HandlerFunc) *testUpstream {
	t.Helper()
	u := &testUpstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(u.server.Close)
	return u
}

func (u *testUpstream) runner() *runner {
	return &runner{
		client: client.New(client.Config{
			BaseURL: u.server.URL,
			APIKey:  "test-key",
			Timeout: 5 * time.Second,
		}),
		maxOutput: defaultMaxOutputSize,
		logger:    slog.New(slog.DiscardHandler),
	}
}

func extractText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return text.Text
}

func jsonOK(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func Test_ProductList_PassesThrough(t *testing.T) {
	upstream := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mdr/products" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("expand") != "false" {
			t.Errorf("expand = %q, want false", r.URL.Query().Get("expand"))
		}
		w.Write([]byte(`{"_links":{"data-tabulation":[{"href":"/mdr/sdtmig/3-4","title":"SDTMIG v3.4","type":"Implementation Guide"}]}}`))
	})

	handler := upstream.runner().productListHandler()
	result, _, err := handler(context.Background(), nil, productListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", extractText(t, result))
	}

	text := extractText(t, result)
	if !strings.Contains(text, "SDTMIG v3.4") || !strings.Contains(text, "/mdr/sdtmig/3-4") {
		t.Errorf("product catalog not passed through, got: %s", text)
	}
}

func Test_SDTMIGClass_ListsClasses(t *testing.T) {
	upstream := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mdr/sdtmig/3-4/classes" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`[{"name":"Events"},{"name":"Findings"}]`))
	})

	handler := upstream.runner().sdtmigClassHandler()
	result, _, err := handler(context.Background(), nil, sdtmigClassInput{Version: "3-4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", extractText(t, result))
	}
	if got := extractText(t, result); got != `[{"name":"Events"},{"name":"Findings"}]` {
		t.Errorf("payload altered: %s", got)
	}
}

func Test_SDTMIGClass_DrillsIntoDatasets(t *testing.T) {
	upstream := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mdr/sdtmig/3-4/classes/Events/datasets" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("expand") != "false" {
			t.Errorf("expand = %q, want false", r.URL.Query().Get("expand"))
		}
		w.Write([]byte(`{"name":"Events"}`))
	})

	handler := upstream.runner().sdtmigClassHandler()
	result, _, err := handler(context.Background(), nil, sdtmigClassInput{Version: "3-4", ClassName: "Events"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", extractText(t, result))
	}
	if upstream.calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", upstream.calls.Load())
	}
}

func Test_SDTMIGClass_MissingVersion(t *testing.T) {
	upstream := newTestUpstream(t, jsonOK(`{}`))

	handler := upstream.runner().sdtmigClassHandler()
	result, _, err := handler(context.Background(), nil, sdtmigClassInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for missing version")
	}
	if text := extractText(t, result); !strings.Contains(text, "bad_request") {
		t.Errorf("expected bad_request, got: %s", text)
	}
	if upstream.calls.Load() != 0 {
		t.Errorf("no upstream request may be issued, calls = %d", upstream.calls.Load())
	}
}

func Test_SDTMIGClass_InvalidClassName(t *testing.T) {
	upstream := newTestUpstream(t, jsonOK(`{}`))

	handler := upstream.runner().sdtmigClassHandler()
	result, _, err := handler(context.Background(), nil, sdtmigClassInput{Version: "3-4", ClassName: "Bogus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for invalid className")
	}
	text := extractText(t, result)
	if !strings.Contains(text, "bad_request") || !strings.Contains(text, "Bogus") {
		t.Errorf("unexpected diagnostic: %s", text)
	}
	if upstream.calls.Load() != 0 {
		t.Errorf("no upstream request may be issued, calls = %d", upstream.calls.Load())
	}
}

func Test_SDTMIGDataset_Idempotent(t *testing.T) {
	upstream := newTestUpstream(t, jsonOK(`{"name":"AE","datasetVariables":[{"name":"AETERM"}]}`))

	handler := upstream.runner().sdtmigDatasetHandler()
	in := sdtmigDatasetInput{Version: "3-4", Dataset: "AE"}

	first, _, err := handler(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := handler(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if extractText(t, first) != extractText(t, second) {
		t.Error("same call against unchanged upstream must yield identical output")
	}
	if upstream.calls.Load() != 2 {
		t.Errorf("each invocation issues exactly one request, calls = %d", upstream.calls.Load())
	}
}

func Test_ErrorMapping_Unauthorized(t *testing.T) {
	upstream := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	handler := upstream.runner().sdtmigDatasetHandler()
	result, _, err := handler(context.Background(), nil, sdtmigDatasetInput{Version: "3-4", Dataset: "AE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError")
	}
	if text := extractText(t, result); !strings.Contains(text, "unauthorized") {
		t.Errorf("expected unauthorized, got: %s", text)
	}
}

func Test_ADaMProduct_InvalidProduct(t *testing.T) {
	upstream := newTestUpstream(t, jsonOK(`{}`))

	handler := upstream.runner().adamProductHandler()
	result, _, err := handler(context.Background(), nil, adamProductInput{Product: "adamig-9-9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for unknown product")
	}
	if upstream.calls.Load() != 0 {
		t.Errorf("no upstream request may be issued, calls = %d", upstream.calls.Load())
	}
}

func Test_ADaMProduct_ClearsAnalysisVariables(t *testing.T) {
	upstream := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mdr/adam/adamig-1-3" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"name":"adamig-1-3","dataStructures":[{"name":"ADSL","analysisVariables":[{"name":"STUDYID"}]}]}`))
	})

	handler := upstream.runner().adamProductHandler()
	result, _, err := handler(context.Background(), nil, adamProductInput{Product: "adamig-1-3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", extractText(t, result))
	}

	text := extractText(t, result)
	if !strings.Contains(text, `"analysisVariables":[]`) {
		t.Errorf("analysisVariables not cleared: %s", text)
	}
	if strings.Contains(text, "STUDYID") {
		t.Errorf("variable detail leaked through: %s", text)
	}
}

func Test_ADaMDatastructure_InvalidCombination(t *testing.T) {
	upstream := newTestUpstream(t, jsonOK(`{}`))

	handler := upstream.runner().adamDatastructureHandler()
	result, _, err := handler(context.Background(), nil, adamDatastructureInput{Product: "adam-tte-1-0", Datastructure: "ADSL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for invalid product/datastructure pair")
	}
	text := extractText(t, result)
	if !strings.Contains(text, "bad_request") || !strings.Contains(text, "ADTTE") {
		t.Errorf("diagnostic should name the valid datastructures, got: %s", text)
	}
	if upstream.calls.Load() != 0 {
		t.Errorf("no upstream request may be issued, calls = %d", upstream.calls.Load())
	}
}

func Test_QRS_InvalidVersionForInstrument(t *testing.T) {
	upstream := newTestUpstream(t, jsonOK(`{}`))

	handler := upstream.runner().qrsHandler()
	result, _, err := handler(context.Background(), nil, qrsInput{Instrument: "AIMS01", Version: "9-9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for invalid version")
	}
	if upstream.calls.Load() != 0 {
		t.Errorf("no upstream request may be issued, calls = %d", upstream.calls.Load())
	}
}

func Test_QRS_ValidPair(t *testing.T) {
	upstream := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mdr/qrs/instruments/AIMS01/versions/2-0" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"name":"AIMS01"}`))
	})

	handler := upstream.runner().qrsHandler()
	result, _, err := handler(context.Background(), nil, qrsInput{Instrument: "AIMS01", Version: "2-0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", extractText(t, result))
	}
}

func Test_CTPackage_Minimized(t *testing.T) {
	upstream := newTestUpstream(t, jsonOK(`{
		"name":"SDTM CT",
		"codelists":[{"conceptId":"C66731","submissionValue":"SEX","definition":"Sex.","terms":[{"conceptId":"C20197","submissionValue":"M","definition":"Male."}]}]
	}`))

	handler := upstream.runner().ctPackageHandler()
	result, _, err := handler(context.Background(), nil, ctPackageInput{Package: "sdtmct-2025-03-28"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", extractText(t, result))
	}

	text := extractText(t, result)
	if !strings.Contains(text, `"submissionValue":"SEX"`) {
		t.Errorf("codelist missing: %s", text)
	}
	if strings.Contains(text, "definition") {
		t.Errorf("definitions must be dropped: %s", text)
	}
}

func Test_CTPackage_UnknownPackage(t *testing.T) {
	upstream := newTestUpstream(t, jsonOK(`{}`))

	handler := upstream.runner().ctPackageHandler()
	result, _, err := handler(context.Background(), nil, ctPackageInput{Package: "sdtmct-1999-01-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for unknown package")
	}
	if upstream.calls.Load() != 0 {
		t.Errorf("no upstream request may be issued, calls = %d", upstream.calls.Load())
	}
}

func Test_CTTerm_NotFound(t *testing.T) {
	upstream := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Term not found"}`))
	})

	handler := upstream.runner().ctTermHandler()
	result, _, err := handler(context.Background(), nil, ctTermInput{
		Package:  "sdtmct-2025-03-28",
		Codelist: "C66731",
		Term:     "C99999",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("a nonexistent term must be an error, not an empty success")
	}
	if text := extractText(t, result); !strings.Contains(text, "not_found") {
		t.Errorf("expected not_found, got: %s", text)
	}
}

func Test_CTTerm_MissingTerm(t *testing.T) {
	upstream := newTestUpstream(t, jsonOK(`{}`))

	handler := upstream.runner().ctTermHandler()
	result, _, err := handler(context.Background(), nil, ctTermInput{Package: "sdtmct-2025-03-28", Codelist: "C66731"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for missing term")
	}
	if upstream.calls.Load() != 0 {
		t.Errorf("no upstream request may be issued, calls = %d", upstream.calls.Load())
	}
}

func Test_OutputTruncation(t *testing.T) {
	upstream := newTestUpstream(t, jsonOK(`{"padding":"`+strings.Repeat("x", 4096)+`"}`))

	r := upstream.runner()
	r.maxOutput = 256

	handler := r.sdtmigDatasetHandler()
	result, _, err := handler(context.Background(), nil, sdtmigDatasetInput{Version: "3-4", Dataset: "AE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("truncation is not an error: %s", extractText(t, result))
	}

	text := extractText(t, result)
	if len(text) != 256+len(truncationNotice) {
		t.Errorf("output length = %d", len(text))
	}
	if !strings.HasSuffix(text, truncationNotice) {
		t.Errorf("missing truncation notice: %s", text)
	}
}

func Test_Register_AddsFullCatalog(t *testing.T) {
	upstream := newTestUpstream(t, jsonOK(`{}`))

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.0"}, nil)
	Register(mcpServer, upstream.runner().client, Options{})
	// Registration must not panic on duplicate names or bad schemas; the
	// catalog itself is exercised tool by tool above.
}
