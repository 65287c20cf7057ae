package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"evalkit/internal/app/server"
	"evalkit/internal/domain/contact"
	"evalkit/internal/platform/config"
)

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     *apiError       `json:"error"`
	RequestID string          `json:"requestId"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

type stubExporter struct {
	mu          sync.Mutex
	failWith    error
	submissions []contact.Submission
}

func (s *stubExporter) Export(_ context.Context, sub contact.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.submissions = append(s.submissions, sub)
	return nil
}

type stubMailer struct {
	mu   sync.Mutex
	sent []string
}

func (s *stubMailer) Send(_ context.Context, _, to, _, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to)
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Addr:               ":0",
		Environment:        "test",
		FrontendDir:        "frontend/dist",
		ReceiptSecret:      "test-secret",
		ReceiptTTL:         time.Hour,
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 1000,
		MetricsEnabled:     true,
	}
}

func newTestServer(t *testing.T, exporter *stubExporter, mailer *stubMailer) *httptest.Server {
	t.Helper()
	app := server.New(testConfig(), exporter, mailer)
	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return ts
}

func TestEvaluationJourney(t *testing.T) {
	exporter := &stubExporter{}
	mailer := &stubMailer{}
	ts := newTestServer(t, exporter, mailer)
	client := ts.Client()

	roles := listRoles(t, client, ts.URL)
	if len(roles) != 3 {
		t.Fatalf("expected 3 roles, got %d", len(roles))
	}

	role := getRole(t, client, ts.URL, "mensch")
	if len(role.Questions) != 50 {
		t.Fatalf("expected 50 questions, got %d", len(role.Questions))
	}

	answers := make(map[string]float64, len(role.Questions))
	for _, q := range role.Questions {
		answers[q.ID] = 4
	}

	scored := score(t, client, ts.URL, "mensch", answers)
	if scored.Result.Level != "advanced" {
		t.Fatalf("expected level advanced, got %s", scored.Result.Level)
	}
	if scored.Receipt == "" || scored.EvaluationID == "" {
		t.Fatal("expected receipt and evaluationId to be set")
	}

	svg := fetchChart(t, client, ts.URL, scored.Receipt, false)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "<polygon") {
		t.Fatalf("expected SVG with polygon, got %q", truncate(svg))
	}
	if strings.Contains(svg, "stroke-dasharray") {
		t.Fatal("did not expect a benchmark overlay without a benchmark request")
	}

	withBench := fetchChart(t, client, ts.URL, scored.Receipt, true)
	if !strings.Contains(withBench, "stroke-dasharray") {
		t.Fatal("expected a dashed benchmark overlay")
	}

	pdf := fetchReport(t, client, ts.URL, scored.Receipt)
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("expected a PDF document")
	}

	submitBody := map[string]any{
		"receipt":        scored.Receipt,
		"email":          "anna@example.com",
		"firstName":      "Anna",
		"lastName":       "Muster",
		"company":        "Example GmbH",
		"industry":       "IT & Software",
		"companySize":    "11-50 Mitarbeitende",
		"privacyConsent": true,
	}
	env := postJSON(t, client, ts.URL+"/api/v1/evalkit/evaluations/submit", submitBody, http.StatusOK)
	if !env.Success {
		t.Fatalf("expected submit to succeed, got error %+v", env.Error)
	}

	if len(exporter.submissions) != 1 {
		t.Fatalf("expected 1 exported submission, got %d", len(exporter.submissions))
	}
	sub := exporter.submissions[0]
	if sub.Email != "anna@example.com" || !sub.PrivacyConsent {
		t.Fatalf("unexpected exported submission: %+v", sub)
	}
	if sub.EvaluationResult.Scores.Overall != scored.Result.Scores.Overall {
		t.Fatal("exported result does not match scored result")
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "anna@example.com" {
		t.Fatalf("expected one results email to anna@example.com, got %v", mailer.sent)
	}
}

func TestScoreUnknownRoleReturns404(t *testing.T) {
	ts := newTestServer(t, &stubExporter{}, &stubMailer{})

	env := postJSON(t, ts.Client(), ts.URL+"/api/v1/evalkit/evaluations", map[string]any{
		"role":    "vorstand",
		"answers": map[string]float64{"x": 3},
	}, http.StatusNotFound)
	if env.Error == nil || env.Error.Code != "not_found" {
		t.Fatalf("expected not_found, got %+v", env.Error)
	}
}

func TestScoreOutOfRangeAnswerReturns422(t *testing.T) {
	ts := newTestServer(t, &stubExporter{}, &stubMailer{})
	client := ts.Client()

	role := getRole(t, client, ts.URL, "team")
	answers := make(map[string]float64, len(role.Questions))
	for _, q := range role.Questions {
		answers[q.ID] = 3
	}
	answers[role.Questions[0].ID] = 6

	env := postJSON(t, client, ts.URL+"/api/v1/evalkit/evaluations", map[string]any{
		"role":    "team",
		"answers": answers,
	}, http.StatusUnprocessableEntity)
	if env.Error == nil || env.Error.Code != "validation_failed" {
		t.Fatalf("expected validation_failed, got %+v", env.Error)
	}
}

func TestSubmitRequiresConsentAndEmail(t *testing.T) {
	ts := newTestServer(t, &stubExporter{}, &stubMailer{})

	env := postJSON(t, ts.Client(), ts.URL+"/api/v1/evalkit/evaluations/submit", map[string]any{
		"receipt":        "whatever",
		"email":          "not-an-email",
		"privacyConsent": false,
	}, http.StatusUnprocessableEntity)
	if env.Error == nil || env.Error.Code != "validation_failed" {
		t.Fatalf("expected validation_failed, got %+v", env.Error)
	}
}

func TestSubmitTamperedReceiptReturns422(t *testing.T) {
	ts := newTestServer(t, &stubExporter{}, &stubMailer{})

	env := postJSON(t, ts.Client(), ts.URL+"/api/v1/evalkit/evaluations/submit", map[string]any{
		"receipt":        "eyJhbGciOiJIUzI1NiJ9.tampered.sig",
		"email":          "anna@example.com",
		"privacyConsent": true,
	}, http.StatusUnprocessableEntity)
	if env.Error == nil || env.Error.Code != "validation_failed" {
		t.Fatalf("expected validation_failed, got %+v", env.Error)
	}
}

func TestSubmitExportFailureReturns502(t *testing.T) {
	exporter := &stubExporter{failWith: &contact.ExternalServiceError{Op: "export", Status: 500, Err: errors.New("upstream down")}}
	mailer := &stubMailer{}
	ts := newTestServer(t, exporter, mailer)
	client := ts.Client()

	role := getRole(t, client, ts.URL, "mensch")
	answers := make(map[string]float64, len(role.Questions))
	for _, q := range role.Questions {
		answers[q.ID] = 3
	}
	scored := score(t, client, ts.URL, "mensch", answers)

	env := postJSON(t, client, ts.URL+"/api/v1/evalkit/evaluations/submit", map[string]any{
		"receipt":        scored.Receipt,
		"email":          "anna@example.com",
		"privacyConsent": true,
	}, http.StatusBadGateway)
	if env.Error == nil || env.Error.Code != "export_failed" {
		t.Fatalf("expected export_failed, got %+v", env.Error)
	}
	if len(mailer.sent) != 0 {
		t.Fatal("no email should be sent when the export fails")
	}
}

func TestSubmitTwiceExportsOnce(t *testing.T) {
	exporter := &stubExporter{}
	mailer := &stubMailer{}
	ts := newTestServer(t, exporter, mailer)
	client := ts.Client()

	role := getRole(t, client, ts.URL, "mensch")
	answers := make(map[string]float64, len(role.Questions))
	for _, q := range role.Questions {
		answers[q.ID] = 3
	}
	scored := score(t, client, ts.URL, "mensch", answers)

	submitBody := map[string]any{
		"receipt":        scored.Receipt,
		"email":          "anna@example.com",
		"privacyConsent": true,
	}

	first := postJSON(t, client, ts.URL+"/api/v1/evalkit/evaluations/submit", submitBody, http.StatusOK)
	if !first.Success {
		t.Fatalf("expected first submit to succeed, got %+v", first.Error)
	}

	// A retry with the identical payload replays the stored outcome.
	second := postJSON(t, client, ts.URL+"/api/v1/evalkit/evaluations/submit", submitBody, http.StatusOK)
	if !second.Success {
		t.Fatalf("expected replayed submit to succeed, got %+v", second.Error)
	}

	if len(exporter.submissions) != 1 {
		t.Fatalf("expected exactly 1 export, got %d", len(exporter.submissions))
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected exactly 1 results email, got %d", len(mailer.sent))
	}

	// The same evaluation with different contact data is a conflict, not a
	// second export.
	submitBody["email"] = "other@example.com"
	env := postJSON(t, client, ts.URL+"/api/v1/evalkit/evaluations/submit", submitBody, http.StatusConflict)
	if env.Error == nil || env.Error.Code != "duplicate_submission" {
		t.Fatalf("expected duplicate_submission, got %+v", env.Error)
	}
	if len(exporter.submissions) != 1 {
		t.Fatalf("conflict must not export again, got %d exports", len(exporter.submissions))
	}
}

func TestSubmitRetriesAfterExportFailure(t *testing.T) {
	exporter := &stubExporter{failWith: &contact.ExternalServiceError{Op: "export", Status: 503, Err: errors.New("upstream down")}}
	ts := newTestServer(t, exporter, &stubMailer{})
	client := ts.Client()

	role := getRole(t, client, ts.URL, "team")
	answers := make(map[string]float64, len(role.Questions))
	for _, q := range role.Questions {
		answers[q.ID] = 3
	}
	scored := score(t, client, ts.URL, "team", answers)

	submitBody := map[string]any{
		"receipt":        scored.Receipt,
		"email":          "anna@example.com",
		"privacyConsent": true,
	}
	postJSON(t, client, ts.URL+"/api/v1/evalkit/evaluations/submit", submitBody, http.StatusBadGateway)

	// Failures are not remembered; the retry goes through once the
	// collaborator recovers.
	exporter.mu.Lock()
	exporter.failWith = nil
	exporter.mu.Unlock()

	env := postJSON(t, client, ts.URL+"/api/v1/evalkit/evaluations/submit", submitBody, http.StatusOK)
	if !env.Success {
		t.Fatalf("expected retry to succeed, got %+v", env.Error)
	}
	if len(exporter.submissions) != 1 {
		t.Fatalf("expected 1 successful export, got %d", len(exporter.submissions))
	}
}

func TestBenchmarkLookup(t *testing.T) {
	ts := newTestServer(t, &stubExporter{}, &stubMailer{})
	client := ts.Client()

	env := getJSON(t, client, ts.URL+"/api/v1/benchmarks?industry=IT+%26+Software&companySize=11-50+Mitarbeitende", http.StatusOK)
	var data struct {
		Industry   string `json:"industry"`
		SampleSize int    `json:"sampleSize"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode benchmark: %v", err)
	}
	if data.Industry != "IT & Software" || data.SampleSize == 0 {
		t.Fatalf("unexpected benchmark payload: %+v", data)
	}

	env = getJSON(t, client, ts.URL+"/api/v1/benchmarks?industry=Raumfahrt&companySize=11-50+Mitarbeitende", http.StatusOK)
	if got := string(bytes.TrimSpace(env.Data)); got != "null" && got != "" {
		t.Fatalf("expected null data for unknown segment, got %s", got)
	}

	env = getJSON(t, client, ts.URL+"/api/v1/benchmarks", http.StatusBadRequest)
	if env.Error == nil || env.Error.Code != "invalid_query" {
		t.Fatalf("expected invalid_query, got %+v", env.Error)
	}
}

func TestBenchmarkSegments(t *testing.T) {
	ts := newTestServer(t, &stubExporter{}, &stubMailer{})

	env := getJSON(t, ts.Client(), ts.URL+"/api/v1/benchmarks/segments", http.StatusOK)
	var axes struct {
		Industries   []string `json:"industries"`
		CompanySizes []string `json:"companySizes"`
	}
	if err := json.Unmarshal(env.Data, &axes); err != nil {
		t.Fatalf("failed to decode segments: %v", err)
	}
	if len(axes.Industries) == 0 || len(axes.CompanySizes) == 0 {
		t.Fatal("expected non-empty segment axes")
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t, &stubExporter{}, &stubMailer{})

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/evalkit/roles", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("X-Request-ID", "journey-42")

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("X-Request-ID"); got != "journey-42" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}

type roleView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Questions []struct {
		ID       string `json:"id"`
		Category string `json:"category"`
	} `json:"questions"`
}

type scoreView struct {
	Result struct {
		Role   string `json:"role"`
		Level  string `json:"level"`
		Badge  string `json:"badge"`
		Scores struct {
			Overall float64 `json:"overall"`
		} `json:"scores"`
	} `json:"result"`
	Receipt      string `json:"receipt"`
	EvaluationID string `json:"evaluationId"`
}

func listRoles(t *testing.T, client *http.Client, baseURL string) []roleView {
	t.Helper()
	env := getJSON(t, client, baseURL+"/api/v1/evalkit/roles", http.StatusOK)
	var roles []roleView
	if err := json.Unmarshal(env.Data, &roles); err != nil {
		t.Fatalf("failed to decode roles: %v", err)
	}
	return roles
}

func getRole(t *testing.T, client *http.Client, baseURL, roleID string) roleView {
	t.Helper()
	env := getJSON(t, client, baseURL+"/api/v1/evalkit/roles/"+roleID, http.StatusOK)
	var role roleView
	if err := json.Unmarshal(env.Data, &role); err != nil {
		t.Fatalf("failed to decode role: %v", err)
	}
	return role
}

func score(t *testing.T, client *http.Client, baseURL, roleID string, answers map[string]float64) scoreView {
	t.Helper()
	env := postJSON(t, client, baseURL+"/api/v1/evalkit/evaluations", map[string]any{
		"role":    roleID,
		"answers": answers,
	}, http.StatusOK)
	var scored scoreView
	if err := json.Unmarshal(env.Data, &scored); err != nil {
		t.Fatalf("failed to decode score response: %v", err)
	}
	return scored
}

func fetchChart(t *testing.T, client *http.Client, baseURL, receipt string, benchmarked bool) string {
	t.Helper()
	body := map[string]any{"receipt": receipt}
	if benchmarked {
		body["industry"] = "IT & Software"
		body["companySize"] = "11-50 Mitarbeitende"
		body["showBenchmark"] = true
	}
	resp := doPost(t, client, baseURL+"/api/v1/evalkit/evaluations/chart", body)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for chart, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("expected image/svg+xml, got %q", ct)
	}
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read chart: %v", err)
	}
	return string(out)
}

func fetchReport(t *testing.T, client *http.Client, baseURL, receipt string) []byte {
	t.Helper()
	resp := doPost(t, client, baseURL+"/api/v1/evalkit/evaluations/report", map[string]any{"receipt": receipt})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for report, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	return out
}

func doPost(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func postJSON(t *testing.T, client *http.Client, url string, body any, wantStatus int) envelope {
	t.Helper()
	resp := doPost(t, client, url, body)
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("POST %s: expected status %d, got %d (%s)", url, wantStatus, resp.StatusCode, truncate(string(raw)))
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return env
}

func getJSON(t *testing.T, client *http.Client, url string, wantStatus int) envelope {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("GET %s: expected status %d, got %d (%s)", url, wantStatus, resp.StatusCode, truncate(string(raw)))
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return env
}

func truncate(s string) string {
	if len(s) > 200 {
		return fmt.Sprintf("%s...", s[:200])
	}
	return s
}
