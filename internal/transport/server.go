package transport

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// NewServer wraps the handler routes with /metrics and CORS. An empty origins list allows any origin.
func NewServer(addr string, h *Handler, origins []string) *http.Server {
	mux := h.Routes()
	mux.Handle("GET /metrics", promhttp.Handler())

	c := cors.Default()
	if len(origins) > 0 {
		c = cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type"},
		})
	}

	return &http.Server{
		Addr:              addr,
		Handler:           c.Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Minute, // POST /transfers mines before answering
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}
