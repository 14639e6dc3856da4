package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"manolos-gestion/internal/middleware"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, mgr *Manager) {
	r.Route("/services", func(sr chi.Router) {
		sr.Post("/", createServiceHandler(mgr))
		sr.Get("/", listServicesHandler(mgr))
		sr.Get("/{serviceID}", getServiceHandler(mgr))
		sr.Put("/{serviceID}", updateServiceHandler(mgr))
		sr.Delete("/{serviceID}", deleteServiceHandler(mgr))
	})
}

type createServiceRequest struct {
	Name        string           `json:"nombre"`
	Description string           `json:"descripcion"`
	Rate        *decimal.Decimal `json:"tarifa"`
	Duration    string           `json:"duracion"`
	Active      *bool            `json:"activo"`
}

func (r createServiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Rate, validation.NotNil),
	)
}

type updateServiceRequest struct {
	Name        *string          `json:"nombre"`
	Description *string          `json:"descripcion"`
	Rate        *decimal.Decimal `json:"tarifa"`
	Duration    *string          `json:"duracion"`
	Active      *bool            `json:"activo"`
}

type serviceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion,omitempty"`
	Rate        decimal.Decimal `json:"tarifa"`
	Duration    string          `json:"duracion,omitempty"`
	Active      bool            `json:"activo"`
	CreatedAt   time.Time       `json:"creadoEn"`
}

func createServiceHandler(mgr *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		s, err := mgr.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Description: req.Description,
			Rate:        *req.Rate,
			Duration:    req.Duration,
			Active:      req.Active,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"id": s.ID})
	}
}

func listServicesHandler(mgr *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := mgr.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]serviceResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toServiceResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getServiceHandler(mgr *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		s, err := mgr.GetByID(r.Context(), chi.URLParam(r, "serviceID"))
		if err != nil {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toServiceResponse(s))
	}
}

func updateServiceHandler(mgr *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		_, err := mgr.Update(r.Context(), chi.URLParam(r, "serviceID"), UpdateInput{
			Name:        req.Name,
			Description: req.Description,
			Rate:        req.Rate,
			Duration:    req.Duration,
			Active:      req.Active,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "service not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func deleteServiceHandler(mgr *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := mgr.Delete(r.Context(), chi.URLParam(r, "serviceID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "service not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func toServiceResponse(s CatalogService) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Rate:        s.Rate,
		Duration:    s.Duration,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Payload inválido",
			"details": verrs,
		})
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}
