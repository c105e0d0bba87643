package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"deputyreport/internal/chart"
	"deputyreport/internal/config"
	"deputyreport/internal/pdf"
	"deputyreport/internal/report"
	transporthttp "deputyreport/internal/transport/http"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)

	if err := os.MkdirAll(cfg.MediaDir, 0o755); err != nil {
		log.Fatalf("create media dir: %v", err)
	}

	charts, err := chart.NewRenderer(cfg.TmpDir)
	if err != nil {
		log.Fatalf("init chart renderer: %v", err)
	}

	backend := pdf.NewWKHTML(cfg.WkhtmltopdfPath)

	generator, err := report.NewGenerator(charts, backend, logger, cfg.PeriodLabel)
	if err != nil {
		log.Fatalf("init generator: %v", err)
	}
	if cfg.DebugHTML {
		generator.DebugHTMLPath = filepath.Join(cfg.MediaDir, "debug.html")
	}

	server := transporthttp.NewServer(generator, cfg, logger)

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      withLogging(logger, withCORS(server.Routes())),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("report API listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Infof("signal received: %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.WithError(err).Warn("graceful shutdown failed")
	}
}

func newLogger(levelStr string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// Middleware: request logging
func withLogging(logger *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

// Middleware: permissive CORS for the report-builder frontend
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
