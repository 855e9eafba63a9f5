package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"settingsd/internal/settings"
	"settingsd/pkg/types"
)

// Service defines the store surface required by the HTTP API layer.
// *settings.Store satisfies it.
type Service interface {
	Get() types.Settings
	Set(p settings.Patch)
	Update(key string, value any) error
	Reset()
	Subscribe(fn func()) func()
	ListenerCount() int
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/settings", func(w http.ResponseWriter, r *http.Request) {
		writeSettings(w, svc.Get())
	})

	r.Patch("/settings", func(w http.ResponseWriter, r *http.Request) {
		p, ok := decodePatch(w, r)
		if !ok {
			return
		}
		svc.Set(p)
		ObserveStoreUpdate("set")
		logWrite(r, "set", http.StatusOK)
		writeSettings(w, svc.Get())
	})

	r.Put("/settings/{key}", func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if !checkJSONBody(w, r) {
			return
		}
		var req types.UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := svc.Update(key, req.Value); err != nil {
			switch {
			case settings.IsUnknownKey(err), settings.IsBadValue(err):
				writeJSONError(w, http.StatusBadRequest, err.Error())
			default:
				if he, ok := err.(HTTPError); ok {
					writeJSONError(w, he.StatusCode(), he.Error())
					return
				}
				writeJSONError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		ObserveStoreUpdate("update")
		logWrite(r, "update", http.StatusOK)
		writeSettings(w, svc.Get())
	})

	r.Post("/settings/reset", func(w http.ResponseWriter, r *http.Request) {
		svc.Reset()
		ObserveStoreUpdate("reset")
		logWrite(r, "reset", http.StatusOK)
		writeSettings(w, svc.Get())
	})

	r.Get("/settings/prompt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := types.PromptResponse{Prompt: settings.EffectivePrompt(svc.Get())}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		}
	})

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		writeModels(w, svc.Get().ActiveModels)
	})

	r.Get("/models/embeddings", func(w http.ResponseWriter, r *http.Request) {
		writeModels(w, svc.Get().ActiveEmbeddingModels)
	})

	r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
		streamEvents(w, r, svc)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		// The store is ready as soon as it exists; readiness only guards
		// against routing before construction.
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// checkJSONBody enforces the JSON content type and the body size limit.
func checkJSONBody(w http.ResponseWriter, r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return true
}

func decodePatch(w http.ResponseWriter, r *http.Request) (settings.Patch, bool) {
	var p settings.Patch
	if !checkJSONBody(w, r) {
		return p, false
	}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		// MaxBytesReader errors surface here too; 400 avoids leaking limits.
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return p, false
	}
	return p, true
}

func writeSettings(w http.ResponseWriter, s types.Settings) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(types.SettingsResponse{Settings: s}); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

func writeModels(w http.ResponseWriter, models []types.ModelEntry) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(types.ModelsResponse{Models: models}); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
