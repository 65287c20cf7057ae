package benchmarkhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"evalkit/internal/domain/benchmark"
	"evalkit/internal/transport/http/api"
	"evalkit/internal/transport/http/middleware"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/benchmarks", func(r chi.Router) {
		r.Get("/", h.handleLookup)
		r.Get("/segments", h.handleSegments)
	})
}

// handleLookup resolves the benchmark for an (industry, companySize) pair.
// A combination without data is a regular 200 with a null payload, so the
// client can simply skip the comparison overlay.
func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	industry := r.URL.Query().Get("industry")
	companySize := r.URL.Query().Get("companySize")
	reqID := middleware.GetRequestID(r.Context())

	if industry == "" || companySize == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "industry and companySize query parameters are required", reqID)
		return
	}

	data, ok := benchmark.Lookup(industry, companySize)
	if !ok {
		api.Success(w, (*benchmark.Data)(nil), reqID)
		return
	}
	api.Success(w, data, reqID)
}

func (h *Handler) handleSegments(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{
		"industries":   benchmark.Industries(),
		"companySizes": benchmark.CompanySizes(),
	}, middleware.GetRequestID(r.Context()))
}
