package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/chunlian/internal/generation"
	"github.com/ziadkadry99/chunlian/internal/model"
)

// Error messages returned to clients. Causes are logged, never exposed.
const (
	MsgNotConfigured   = "Server API Key not configured"
	MsgCoupletFailed   = "Failed to generate couplet"
	MsgFortuneFailed   = "Failed to generate fortune"
	maxRequestBodySize = 64 << 10
)

// RegisterRoutes mounts the generation endpoints on r.
func RegisterRoutes(r chi.Router, gen *generation.Generator) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/couplet", handleCouplet(gen))
		r.Post("/fortune", handleFortune(gen))
	})
}

func handleCouplet(gen *generation.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// An unreadable body is treated as an empty request.
		var req model.CoupletRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req); err != nil {
			req = model.CoupletRequest{}
		}

		result, err := gen.Couplet(r.Context(), req)
		if err != nil {
			writeFailure(w, r, err, MsgCoupletFailed)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func handleFortune(gen *generation.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		card, err := gen.Fortune(r.Context())
		if err != nil {
			writeFailure(w, r, err, MsgFortuneFailed)
			return
		}

		writeJSON(w, http.StatusOK, card)
	}
}

func writeFailure(w http.ResponseWriter, r *http.Request, err error, generic string) {
	msg := generic
	if errors.Is(err, generation.ErrNotConfigured) {
		msg = MsgNotConfigured
	}

	logrus.WithFields(logrus.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"path":       r.URL.Path,
	}).WithError(err).Error(generic)

	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
