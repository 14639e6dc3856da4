package charges

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"manolos-gestion/internal/middleware"
	"manolos-gestion/internal/receipts"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// NameDirectory resuelve nombres para el comprobante; ok=false => se
// imprime "-" (el comprobante siempre se genera, aun con referencias rotas).
type NameDirectory interface {
	NameOf(ctx context.Context, id string) (string, bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, clientNames, serviceNames NameDirectory) {
	r.Route("/charges", func(cr chi.Router) {
		cr.Post("/", createChargeHandler(svc))
		cr.Get("/", listChargesHandler(svc))
		cr.Put("/{chargeID}/estado", updateChargeStatusHandler(svc))
		cr.Get("/{chargeID}/receipt", receiptHandler(svc, clientNames, serviceNames))
		cr.Delete("/{chargeID}", deleteChargeHandler(svc))
	})
}

type createChargeRequest struct {
	ClientID   string           `json:"clienteId"`
	ServiceID  string           `json:"servicioId"`
	Date       string           `json:"fecha"`
	Quantity   int              `json:"cantidad"`
	UnitAmount *decimal.Decimal `json:"montoUnitario"`
	Status     string           `json:"estado"`
}

func (r createChargeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ClientID, validation.Required),
		validation.Field(&r.ServiceID, validation.Required),
		validation.Field(&r.UnitAmount, validation.NotNil),
		validation.Field(&r.Quantity, validation.Min(0)),
		validation.Field(&r.Status, validation.In(
			string(StatusPending), string(StatusPaid), string(StatusOverdue),
		)),
	)
}

type updateChargeStatusRequest struct {
	Status string `json:"estado"`
}

type chargeResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"clienteId"`
	ServiceID  string          `json:"servicioId"`
	Date       time.Time       `json:"fecha"`
	Quantity   int             `json:"cantidad"`
	UnitAmount decimal.Decimal `json:"montoUnitario"`
	Status     string          `json:"estado"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"creadoEn"`
}

func createChargeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createChargeRequest
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

		c, err := svc.Create(r.Context(), CreateInput{
			ClientID:   req.ClientID,
			ServiceID:  req.ServiceID,
			Date:       date,
			Quantity:   req.Quantity,
			UnitAmount: *req.UnitAmount,
			Status:     Status(req.Status),
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidStatus),
				errors.Is(err, ErrClientNotFound), errors.Is(err, ErrServiceNotFound):
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"id": c.ID})
	}
}

func listChargesHandler(svc *Service) http.HandlerFunc {
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

		out := make([]chargeResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toChargeResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func updateChargeStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateChargeStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "chargeID"), Status(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidStatus):
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			case errors.Is(err, ErrNotFound):
				writeJSON(w, http.StatusNotFound, map[string]any{"error": "Cobro no encontrado"})
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

// receiptHandler arma el comprobante PDF en memoria y lo responde completo.
// Cliente/servicio colgantes degradan a "-": el comprobante nunca falla por eso.
func receiptHandler(svc *Service, clientNames, serviceNames NameDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "chargeID")
		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "No encontrado"})
			return
		}

		clientName := lookupName(r.Context(), clientNames, c.ClientID)
		serviceName := lookupName(r.Context(), serviceNames, c.ServiceID)

		pdf, err := receipts.Render(receipts.Data{
			Client:  clientName,
			Service: serviceName,
			Date:    c.Date,
			Total:   c.Total(),
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=comprobante_%s.pdf", id))
		_, _ = w.Write(pdf)
	}
}

func deleteChargeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "chargeID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]any{"error": "Cobro no encontrado"})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func lookupName(ctx context.Context, dir NameDirectory, id string) string {
	name, ok, err := dir.NameOf(ctx, id)
	if err != nil || !ok {
		return "-"
	}
	return name
}

func toChargeResponse(c Charge) chargeResponse {
	return chargeResponse{
		ID:         c.ID,
		ClientID:   c.ClientID,
		ServiceID:  c.ServiceID,
		Date:       c.Date,
		Quantity:   c.Quantity,
		UnitAmount: c.UnitAmount,
		Status:     string(c.Status),
		Total:      c.Total(),
		CreatedAt:  c.CreatedAt,
	}
}

// parseFecha acepta RFC3339 o YYYY-MM-DD (el front manda cualquiera de los dos).
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
