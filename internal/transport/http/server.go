package transporthttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"deputyreport/internal/config"
	"deputyreport/internal/report"
)

// Generation of one document is synchronous; wkhtmltopdf on a long report
// can take a while.
const generateTimeout = 60 * time.Second

// Server exposes the report generation pipeline over HTTP.
type Server struct {
	generator *report.Generator
	mediaDir  string
	log       *logrus.Logger
}

func NewServer(generator *report.Generator, cfg config.Config, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{generator: generator, mediaDir: cfg.MediaDir, log: log}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.health)
	mux.HandleFunc("/ping", s.ping)
	mux.HandleFunc("/", s.handleGenerate)
	mux.Handle("/media/", http.StripPrefix("/media/", http.FileServer(http.Dir(s.mediaDir))))
	mux.HandleFunc("/swagger/openapi.yaml", serveSwaggerYAML)
	mux.HandleFunc("/swagger", serveSwaggerUI)
	mux.HandleFunc("/swagger/", serveSwaggerUI)
	return mux
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Pong"})
}

// handleGenerate accepts a validated report payload, runs the generation
// pipeline and returns the location of the produced document.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var payload report.Report
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	document, err := s.generator.Generate(ctx, payload)
	if err != nil {
		s.log.WithError(err).Error("generate report")
		s.writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	filename := fmt.Sprintf("report_%s.pdf", uuid.NewString())
	if err := os.WriteFile(filepath.Join(s.mediaDir, filename), document, 0o644); err != nil {
		s.log.WithError(err).Error("store report")
		s.writeError(w, http.StatusInternalServerError, "report storage failed")
		return
	}

	response := map[string]string{
		"status":  "success",
		"message": fmt.Sprintf("http://%s/media/%s", r.Host, filename),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
