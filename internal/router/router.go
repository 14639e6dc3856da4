package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	mem "manolos-gestion/internal/adapters/storage/memory"
	pg "manolos-gestion/internal/adapters/storage/postgres"
	"manolos-gestion/internal/domain/charges"
	"manolos-gestion/internal/domain/clients"
	"manolos-gestion/internal/domain/pets"
	"manolos-gestion/internal/domain/reminders"
	"manolos-gestion/internal/domain/reports"
	"manolos-gestion/internal/domain/services"
	"manolos-gestion/internal/domain/users"
	"manolos-gestion/internal/middleware"
	"manolos-gestion/internal/platform/logger"
	"manolos-gestion/internal/ports/auth"
	"manolos-gestion/internal/ports/mail"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	TokenIssuer  auth.TokenIssuer  // puede ser nil; /auth/login responde 500

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: sin mailer los recordatorios por Email quedan en fallo
	// y /verify-smtp responde 500.
	Mailer mail.Mailer

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "pong"})
	})

	var (
		clientsRepo   clients.Repository
		petsRepo      pets.Repository
		servicesRepo  services.Repository
		chargesRepo   charges.Repository
		remindersRepo reminders.Repository
		usersRepo     users.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("no se pudo abrir la base, sigo en memoria", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		clientsRepo = pg.NewClientsRepo(db)
		petsRepo = pg.NewPetsRepo(db)
		servicesRepo = pg.NewServicesRepo(db)
		chargesRepo = pg.NewChargesRepo(db)
		remindersRepo = pg.NewRemindersRepo(db)
		usersRepo = pg.NewUsersRepo(db)
	} else {
		clientsRepo = mem.NewClientsRepo()
		petsRepo = mem.NewPetsRepo()
		servicesRepo = mem.NewServicesRepo()
		chargesRepo = mem.NewChargesRepo()
		remindersRepo = mem.NewRemindersRepo()
		usersRepo = mem.NewUsersRepo()
	}

	// Services por módulo
	clientsSvc := clients.NewService(clientsRepo)
	petsSvc := pets.NewService(petsRepo, clientsSvc)
	servicesMgr := services.NewManager(servicesRepo)
	chargesSvc := charges.NewService(chargesRepo, clientsSvc, servicesMgr)
	remindersSvc := reminders.NewService(remindersRepo, clientsSvc, opts.Mailer, log)
	reportsSvc := reports.NewService(chargesSvc, clientsSvc, servicesMgr)
	usersSvc := users.NewService(usersRepo, opts.TokenIssuer)

	// Rutas por módulo
	clients.RegisterRoutes(r, clientsSvc)
	pets.RegisterRoutes(r, petsSvc)
	services.RegisterRoutes(r, servicesMgr)
	charges.RegisterRoutes(r, chargesSvc, clientsSvc, servicesMgr)
	reminders.RegisterRoutes(r, remindersSvc)
	reports.RegisterRoutes(r, reportsSvc)
	users.RegisterRoutes(r, usersSvc)

	registerMailRoutes(r, opts.Mailer)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// registerMailRoutes expone el diagnóstico SMTP que usa el operador
// antes de mandar recordatorios reales.
func registerMailRoutes(r chi.Router, mailer mail.Mailer) {
	r.Get("/verify-smtp", func(w http.ResponseWriter, req *http.Request) {
		if mailer == nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "SMTP no configurado"})
			return
		}
		if err := mailer.Verify(req.Context()); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Fallo de conexión SMTP", "error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "Conexión SMTP verificada"})
	})

	r.Get("/test-email", func(w http.ResponseWriter, req *http.Request) {
		if mailer == nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "SMTP no configurado"})
			return
		}
		to := req.URL.Query().Get("to")
		if to == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Falta el parámetro to"})
			return
		}
		msg := mail.Message{
			To:      to,
			Subject: "Correo de prueba de Manolo's Gestión",
			Text:    "Si estás leyendo esto, el envío de correos funciona.",
		}
		if err := mailer.Send(req.Context(), msg); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Fallo al enviar", "error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "Correo de prueba enviado"})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
