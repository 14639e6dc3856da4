package reports

import (
	"net/http"
	"strings"
	"time"

	"manolos-gestion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/csv", exportCsvHandler(svc))
	})
}

func exportCsvHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		from, err := parseDateParam(r.URL.Query().Get("from"))
		if err != nil {
			http.Error(w, "from must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		to, err := parseDateParam(r.URL.Query().Get("to"))
		if err != nil {
			http.Error(w, "to must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		csvBytes, err := svc.ExportCSV(r.Context(), from, to)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write(csvBytes)
	}
}

func parseDateParam(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
