package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/joseph-ayodele/invoice-studio/internal/common"
	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
	"github.com/joseph-ayodele/invoice-studio/internal/render"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// Service is the HTTP orchestration shell: it accepts the free-text prompt,
// invokes the extraction service, and hands user-edited records to the
// renderer for export. It keeps no state between requests.
type Service struct {
	extractor *invoice.Service
	renderer  *render.Renderer
	logger    *zap.Logger
}

func NewService(extractor *invoice.Service, renderer *render.Renderer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{extractor: extractor, renderer: renderer, logger: logger}
}

// Routes builds the router with the two core operations and a health check.
func (s *Service) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestID)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/extract", s.handleExtract).Methods(http.MethodPost)
	api.HandleFunc("/render", s.handleRender).Methods(http.MethodPost)
	return r
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestID tags every request with a uuid for log correlation.
func (s *Service) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := uuid.New().String()
		w.Header().Set("X-Request-ID", rid)
		ctx := common.WithRequestID(r.Context(), rid)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		s.logger.Info("http.request",
			zap.String("req_id", rid),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		)
	})
}
