package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/psharma/contractguard/internal/model"
	"github.com/psharma/contractguard/internal/pipeline"
)

// maxBodyBytes caps request payloads; contracts bigger than this should go
// through the batch CLI instead.
const maxBodyBytes = 2 << 20

// Server exposes the analyzer over HTTP
type Server struct {
	pipeline *pipeline.Pipeline
	router   *mux.Router
	addr     string
}

// NewServer creates a server around an analysis pipeline
func NewServer(p *pipeline.Pipeline, addr string) *Server {
	s := &Server{
		pipeline: p,
		router:   mux.NewRouter(),
		addr:     addr,
	}
	s.routes()
	return s
}

// Router returns the underlying router, mainly for tests
func (s *Server) Router() *mux.Router {
	return s.router
}

func (s *Server) routes() {
	s.router.Use(logger)
	s.router.Use(recoverer)

	s.router.HandleFunc("/health", s.health).Methods("GET")
	s.router.HandleFunc("/api/analyze", s.analyze).Methods("POST")
	s.router.HandleFunc("/api/explain", s.explain).Methods("POST")
	s.router.HandleFunc("/api/sample/{lang}", s.sample).Methods("GET")
}

// ListenAndServe runs the server until the context is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// analyzeRequest is the POST /api/analyze payload
type analyzeRequest struct {
	Text     string `json:"text"`
	Document string `json:"document,omitempty"`
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	report := s.pipeline.Analyze(r.Context(), req.Text, req.Document)
	writeJSON(w, http.StatusOK, report)
}

// explainRequest is the POST /api/explain payload. Risks are optional; when
// omitted the clause is matched first and the explanation covers what fired.
type explainRequest struct {
	Clause   string   `json:"clause"`
	Language string   `json:"language,omitempty"`
	Risks    []string `json:"risks,omitempty"`
}

// explainResponse carries the explanation and how it was produced
type explainResponse struct {
	Explanation string               `json:"explanation"`
	Risks       []model.RiskCategory `json:"risks"`
	Generative  bool                 `json:"generative"`
}

func (s *Server) explain(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	if strings.TrimSpace(req.Clause) == "" {
		http.Error(w, "clause is required", http.StatusBadRequest)
		return
	}

	language := model.Language(req.Language)
	if language == "" {
		language = model.LangEnglish
	}

	risks := make([]model.RiskCategory, 0, len(req.Risks))
	for _, name := range req.Risks {
		risks = append(risks, model.RiskCategory(name))
	}
	if len(risks) == 0 {
		report := s.pipeline.Analyze(r.Context(), req.Clause, "")
		for _, f := range report.RiskyFindings() {
			risks = append(risks, f.Risks...)
		}
	}

	writeJSON(w, http.StatusOK, explainResponse{
		Explanation: s.pipeline.Explain(r.Context(), req.Clause, language, risks...),
		Risks:       risks,
		Generative:  s.pipeline.GenerativeExplanations(),
	})
}

func (s *Server) sample(w http.ResponseWriter, r *http.Request) {
	language := model.Language(mux.Vars(r)["lang"])
	switch language {
	case model.LangEnglish, model.LangHindi:
	default:
		http.Error(w, fmt.Sprintf("unknown sample language: %s", language), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"language": string(language),
		"text":     pipeline.SampleContract(language),
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, fmt.Sprintf("invalid request payload: %v", err), http.StatusBadRequest)
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.RequestURI, time.Since(start))
	})
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
