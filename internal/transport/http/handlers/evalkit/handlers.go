package evalkithandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"evalkit/internal/chart"
	"evalkit/internal/domain/benchmark"
	"evalkit/internal/domain/contact"
	"evalkit/internal/domain/evalkit"
	"evalkit/internal/platform/config"
	"evalkit/internal/platform/metrics"
	"evalkit/internal/receipt"
	"evalkit/internal/report"
	"evalkit/internal/requestctx"
	"evalkit/internal/transport/http/api"
	"evalkit/internal/transport/http/middleware"
	"evalkit/internal/transport/http/shared"
)

const chartSize = 480

type Handler struct {
	Cfg      config.Config
	Exporter contact.Exporter
	Mailer   contact.Mailer
	Metrics  *metrics.Collector

	// submissions guards POST /evalkit/evaluations/submit against double
	// submits: one evaluation id exports at most one contact. The guard
	// shares the receipt TTL, since a submit is only possible while its
	// receipt verifies.
	submissions *middleware.IdempotencyStore
}

func NewHandler(cfg config.Config, exporter contact.Exporter, mailer contact.Mailer, collector *metrics.Collector) *Handler {
	return &Handler{
		Cfg:         cfg,
		Exporter:    exporter,
		Mailer:      mailer,
		Metrics:     collector,
		submissions: middleware.NewIdempotencyStore(cfg.ReceiptTTL),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/evalkit", func(r chi.Router) {
		r.Get("/roles", h.handleListRoles)
		r.Get("/roles/{roleID}", h.handleGetRole)
		r.Route("/evaluations", func(r chi.Router) {
			r.Post("/", h.handleScore)
			r.Post("/chart", h.handleChart)
			r.Post("/report", h.handleReport)
			r.Post("/submit", h.handleSubmit)
		})
	})
}

type roleSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Thesis        string `json:"thesis"`
	QuestionCount int    `json:"questionCount"`
}

func (h *Handler) handleListRoles(w http.ResponseWriter, r *http.Request) {
	roles := evalkit.Roles()
	summaries := make([]roleSummary, 0, len(roles))
	for _, role := range roles {
		summaries = append(summaries, roleSummary{
			ID:            role.ID,
			Name:          role.Name,
			Description:   role.Description,
			Thesis:        role.Thesis,
			QuestionCount: len(role.Questions),
		})
	}
	api.Success(w, summaries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRole(w http.ResponseWriter, r *http.Request) {
	role, err := evalkit.RoleByID(chi.URLParam(r, "roleID"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	api.Success(w, role, middleware.GetRequestID(r.Context()))
}

type scoreRequest struct {
	Role    string             `json:"role"`
	Answers map[string]float64 `json:"answers"`
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("role", req.Role, "is required")
	if len(req.Answers) == 0 {
		v.Add("answers", "at least one answer is required")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result, err := evalkit.Score(req.Role, req.Answers)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	token, evaluationID, err := receipt.Sign(h.Cfg.ReceiptSecret, result, h.Cfg.ReceiptTTL)
	if err != nil {
		slog.Error("receipt signing failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to issue receipt", middleware.GetRequestID(r.Context()))
		return
	}
	requestctx.SetEvaluationID(r.Context(), evaluationID)
	if h.Metrics != nil {
		h.Metrics.RecordEvaluation()
	}

	api.Success(w, map[string]any{
		"result":       result,
		"receipt":      token,
		"evaluationId": evaluationID,
	}, middleware.GetRequestID(r.Context()))
}

type chartRequest struct {
	Receipt       string `json:"receipt"`
	Industry      string `json:"industry"`
	CompanySize   string `json:"companySize"`
	ShowBenchmark bool   `json:"showBenchmark"`
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	req, result, ok := h.resolveChartRequest(w, r)
	if !ok {
		return
	}

	bench := h.lookupBenchmark(req)
	data := radarData(result, bench)

	canvas := chart.NewSVG(chartSize, chartSize)
	chart.Render(canvas, data, chart.Options{ShowBenchmark: req.ShowBenchmark && bench != nil})
	if h.Metrics != nil {
		h.Metrics.RecordChart()
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(canvas.Bytes())
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	req, result, ok := h.resolveChartRequest(w, r)
	if !ok {
		return
	}

	role, err := evalkit.RoleByID(result.Role)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	out, err := report.Build(result, role, h.lookupBenchmark(req))
	if err != nil {
		slog.Error("report build failed", "err", err, "role", result.Role)
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build report", middleware.GetRequestID(r.Context()))
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordReport()
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="evalkit-ergebnis.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(out)))
	_, _ = w.Write(out)
}

type submitRequest struct {
	Receipt         string `json:"receipt"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Company         string `json:"company"`
	Industry        string `json:"industry"`
	CompanySize     string `json:"companySize"`
	NetworkName     string `json:"networkName"`
	NewsletterOptIn bool   `json:"newsletterOptIn"`
	PrivacyConsent  bool   `json:"privacyConsent"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "failed to read request body", middleware.GetRequestID(r.Context()))
		return
	}
	var req submitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("receipt", req.Receipt, "is required")
	v.Email("email", req.Email)
	v.True("privacyConsent", req.PrivacyConsent, "must be accepted")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result, evaluationID, err := receipt.Parse(h.Cfg.ReceiptSecret, req.Receipt)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	requestctx.SetEvaluationID(r.Context(), evaluationID)

	requestHash := middleware.RequestHash(body)
	if stored, replay, err := h.submissions.Check(evaluationID, requestHash); err != nil {
		api.Fail(w, http.StatusConflict, "duplicate_submission",
			"this evaluation was already submitted with different contact data", middleware.GetRequestID(r.Context()))
		return
	} else if replay {
		api.Success(w, stored, middleware.GetRequestID(r.Context()))
		return
	}

	sub := contact.Submission{
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Company:          req.Company,
		Industry:         req.Industry,
		CompanySize:      req.CompanySize,
		NetworkName:      req.NetworkName,
		NewsletterOptIn:  req.NewsletterOptIn,
		PrivacyConsent:   req.PrivacyConsent,
		EvaluationResult: result,
	}

	if err := h.Exporter.Export(r.Context(), sub); err != nil {
		if h.Metrics != nil {
			h.Metrics.RecordSubmission(true)
		}
		slog.Warn("contact export failed", "err", err, "evaluationId", evaluationID)
		api.Fail(w, http.StatusBadGateway, "export_failed", "result export failed, please try again later", middleware.GetRequestID(r.Context()))
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordSubmission(false)
	}

	// The summary mail is best effort: its failure never turns a
	// successful export into an error for the user.
	if role, err := evalkit.RoleByID(result.Role); err == nil {
		subject, body := contact.ResultsEmail(sub, role)
		if err := h.Mailer.Send(r.Context(), h.Cfg.EmailFrom, req.Email, subject, body); err != nil {
			slog.Warn("results email failed", "err", err, "evaluationId", evaluationID)
		}
	}

	response, err := json.Marshal(map[string]any{
		"exported":     true,
		"evaluationId": evaluationID,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "internal server error", middleware.GetRequestID(r.Context()))
		return
	}
	h.submissions.Save(evaluationID, requestHash, response)
	api.Success(w, json.RawMessage(response), middleware.GetRequestID(r.Context()))
}

// resolveChartRequest decodes the shared chart/report request body and
// rebuilds the evaluation result from the receipt.
func (h *Handler) resolveChartRequest(w http.ResponseWriter, r *http.Request) (chartRequest, evalkit.EvaluationResult, bool) {
	var req chartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", middleware.GetRequestID(r.Context()))
		return req, evalkit.EvaluationResult{}, false
	}

	v := shared.NewValidator()
	v.Required("receipt", req.Receipt, "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return req, evalkit.EvaluationResult{}, false
	}

	result, evaluationID, err := receipt.Parse(h.Cfg.ReceiptSecret, req.Receipt)
	if err != nil {
		h.writeDomainError(w, r, err)
		return req, evalkit.EvaluationResult{}, false
	}
	requestctx.SetEvaluationID(r.Context(), evaluationID)
	return req, result, true
}

func (h *Handler) lookupBenchmark(req chartRequest) *benchmark.Data {
	if !req.ShowBenchmark || req.Industry == "" || req.CompanySize == "" {
		return nil
	}
	data, ok := benchmark.Lookup(req.Industry, req.CompanySize)
	if !ok {
		return nil
	}
	return &data
}

func radarData(result evalkit.EvaluationResult, bench *benchmark.Data) []chart.Datum {
	data := make([]chart.Datum, 0, 5)
	for _, category := range evalkit.Categories() {
		d := chart.Datum{
			Category:  string(category),
			UserScore: result.Scores.ByCategory(category),
			MaxScore:  evalkit.ScaleMax,
		}
		if bench != nil {
			avg := bench.AverageScores.ByCategory(category)
			d.BenchmarkScore = &avg
		}
		data = append(data, d)
	}
	return data
}

func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := middleware.GetRequestID(r.Context())

	var verr *evalkit.ValidationError
	switch {
	case errors.Is(err, evalkit.ErrRoleNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "unknown role", reqID)
	case errors.As(err, &verr):
		shared.FailValidation(w, reqID, []shared.ValidationIssue{{Field: verr.Field, Reason: verr.Reason}})
	default:
		slog.Error("unexpected evalkit error", "err", err)
		api.Fail(w, http.StatusInternalServerError, "internal", "internal server error", reqID)
	}
}
