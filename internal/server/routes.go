package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ppiankov/symptriage/internal/model"
	"github.com/ppiankov/symptriage/internal/taxonomy"
)

type assessRequest struct {
	Symptoms string `json:"symptoms"`
}

type labelsRequest struct {
	Labels     []string `json:"labels"`
	Confidence float64  `json:"confidence"`
}

type taxonomyResponse struct {
	HighRisk   []string            `json:"high_risk"`
	MediumRisk []string            `json:"medium_risk"`
	Labels     map[string][]string `json:"labels"`
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", s.healthz)
	mux.Handle("GET /metrics", s.metrics.Handler())

	mux.HandleFunc("POST /api/v1/assess", s.assessText)
	mux.HandleFunc("POST /api/v1/assess/labels", s.assessLabels)
	mux.HandleFunc("POST /api/v1/assess/image", s.assessImage)
	mux.HandleFunc("GET /api/v1/taxonomy", s.taxonomy)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) assessText(w http.ResponseWriter, r *http.Request) {
	var req assessRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.respond(w, s.pipeline.AssessText(req.Symptoms))
}

func (s *Server) assessLabels(w http.ResponseWriter, r *http.Request) {
	var req labelsRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.respond(w, s.pipeline.AssessLabels(req.Labels, req.Confidence))
}

func (s *Server) assessImage(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	s.respond(w, s.pipeline.AssessImage(r.Context(), body))
}

func (s *Server) taxonomy(w http.ResponseWriter, _ *http.Request) {
	symptoms := s.pipeline.Taxonomy()
	labels := taxonomy.Labels()
	writeJSON(w, http.StatusOK, taxonomyResponse{
		HighRisk:   symptoms.HighRisk(),
		MediumRisk: symptoms.MediumRisk(),
		Labels: map[string][]string{
			"high_risk":   labels.HighRisk(),
			"medium_risk": labels.MediumRisk(),
		},
	})
}

func (s *Server) respond(w http.ResponseWriter, a *model.Assessment) {
	s.metrics.ObserveAssessment(a)
	writeJSON(w, http.StatusOK, a)
}

// decode reads a bounded JSON body into v, writing a 4xx response on failure
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
