package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/pranav-foods/spice-store-backend/cmd/server"
	"github.com/pranav-foods/spice-store-backend/internal/config"
	"github.com/pranav-foods/spice-store-backend/internal/mailer"
	"github.com/pranav-foods/spice-store-backend/internal/storage"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := storage.NewMongoDB(
		context.Background(),
		cfg.MongoURI,
		cfg.MongoDBName,
	)
	if err != nil {
		log.Fatal(err)
	}

	smtpSender := mailer.NewSMTPSender(
		&mailer.SMTPConfig{
			Host:   cfg.EmailHost,
			Port:   cfg.EmailPort,
			Secure: cfg.EmailSecure,
			User:   cfg.EmailUser,
			Pass:   cfg.EmailPass,
		},
	)

	// connectivity health signal only; the CRUD surface stays up when the
	// mail server is unreachable and sends fail per-request instead
	if err = smtpSender.Verify(); err != nil {
		log.WithError(err).Warn("smtp transport verification failed")
	} else {
		log.Info("smtp transport is ready to send emails")
	}

	srv := server.NewServer(
		&server.ServerConfig{
			Addr:           cfg.Port,
			AllowedOrigin:  cfg.AllowedOrigin,
			DB:             db,
			Mailer:         smtpSender,
			FromAddress:    cfg.EmailUser,
			BusinessEmails: cfg.BusinessEmails(),
			Log:            log,
		},
	)

	if err = srv.Run(); err != nil {
		log.Fatal(err)
	}
}
