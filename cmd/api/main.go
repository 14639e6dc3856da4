// @title Manolo's Gestión API
// @version 1.0
// @description Back-office de la peluquería canina: clientes, mascotas, servicios, cobros y recordatorios.
// @BasePath /
package main

import (
	"net/http"
	"os"

	"manolos-gestion/internal/adapters/auth/jwt"
	"manolos-gestion/internal/adapters/mail/smtp"
	pg "manolos-gestion/internal/adapters/storage/postgres"
	"manolos-gestion/internal/platform/config"
	"manolos-gestion/internal/platform/logger"
	"manolos-gestion/internal/router"

	_ "manolos-gestion/docs"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// .env es opcional; en producción todo viene del entorno.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	// Los montos viajan como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true

	opts := router.Options{Logger: log}

	if cfg.DB.DSN != "" {
		db, err := pg.Open(cfg.DB.DSN)
		if err != nil {
			log.Error("no se pudo abrir la base", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
	} else {
		log.Warn("sin DB_DSN, usando repos en memoria", nil)
	}

	// Sin JWT_SECRET no hay verifier: modo dev con X-Debug-User-ID.
	if cfg.JWT.Secret != "" {
		jwtCfg := jwt.Config{Secret: cfg.JWT.Secret, ExpiresIn: cfg.JWT.ExpiresIn}

		signer, err := jwt.NewSigner(jwtCfg)
		if err != nil {
			log.Error("jwt signer", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier, err := jwt.NewVerifier(jwtCfg)
		if err != nil {
			log.Error("jwt verifier", map[string]any{"error": err.Error()})
			os.Exit(1)
		}

		opts.TokenIssuer = signer
		opts.AuthVerifier = verifier
	} else {
		log.Warn("sin JWT_SECRET, auth en modo dev", nil)
	}

	if cfg.SMTP.Host != "" {
		mailer, err := smtp.New(smtp.Config{
			Host: cfg.SMTP.Host,
			Port: cfg.SMTP.Port,
			User: cfg.SMTP.User,
			Pass: cfg.SMTP.Pass,
			From: cfg.SMTP.From,
		})
		if err != nil {
			log.Error("smtp", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		opts.Mailer = mailer
	}

	handler := router.NewRouter(opts)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	log.Info("servidor escuchando", map[string]any{"addr": srv.Addr, "env": cfg.App.Env})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
