package reminders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"manolos-gestion/internal/middleware"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Post("/", createReminderHandler(svc))
		rr.Get("/", listRemindersHandler(svc))
	})
}

type createReminderRequest struct {
	ClientID string `json:"clienteId"`
	Channel  string `json:"medio"`
	Date     string `json:"fecha"`
	Subject  string `json:"asunto"`
	Message  string `json:"mensaje"`
}

// Validate junta todas las violaciones, no solo la primera.
func (r createReminderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ClientID, validation.Required),
		validation.Field(&r.Channel, validation.Required, validation.In(
			string(ChannelWhatsApp), string(ChannelEmail),
		)),
	)
}

type reminderResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clienteId"`
	Channel   string    `json:"medio"`
	Date      time.Time `json:"fecha"`
	Subject   string    `json:"asunto"`
	Message   string    `json:"mensaje"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"creadoEn"`
}

func createReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		var date *time.Time
		if strings.TrimSpace(req.Date) != "" {
			t, err := parseFecha(req.Date)
			if err != nil {
				http.Error(w, "fecha must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = &t
		}

		rem, err := svc.Create(r.Context(), CreateInput{
			ClientID: req.ClientID,
			Channel:  Channel(req.Channel),
			Date:     date,
			Subject:  req.Subject,
			Message:  req.Message,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrClientNotFound):
				writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Cliente no encontrado"})
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"id": rem.ID})
	}
}

func listRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]reminderResponse, 0, len(items))
		for _, rem := range items {
			out = append(out, toReminderResponse(rem))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toReminderResponse(rem Reminder) reminderResponse {
	return reminderResponse{
		ID:        rem.ID,
		ClientID:  rem.ClientID,
		Channel:   string(rem.Channel),
		Date:      rem.Date,
		Subject:   rem.Subject,
		Message:   rem.Message,
		Status:    string(rem.Status),
		CreatedAt: rem.CreatedAt,
	}
}

func parseFecha(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
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
