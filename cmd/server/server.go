package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/pranav-foods/spice-store-backend/internal/features/order"
	"github.com/pranav-foods/spice-store-backend/internal/features/product"
	"github.com/pranav-foods/spice-store-backend/internal/handlerutils"
	"github.com/pranav-foods/spice-store-backend/internal/mailer"
	"github.com/pranav-foods/spice-store-backend/internal/middlewares"
	"github.com/pranav-foods/spice-store-backend/internal/servererrors"
)

type ServerConfig struct {
	Addr           string
	AllowedOrigin  string
	DB             *mongo.Database
	Mailer         mailer.Sender
	FromAddress    string
	BusinessEmails []string
	Log            *logrus.Logger
}

type server struct {
	*ServerConfig

	srv *http.Server
}

func NewServer(serverConfig *ServerConfig) *server {
	return &server{
		ServerConfig: serverConfig,
	}
}

func (s *server) Run() error {
	router := chi.NewRouter()

	// strip trailing slashes at the end of the url
	// e.g. /orders/1/ -> /orders/1
	router.Use(chimiddleware.StripSlashes)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.AllowedOrigin},
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowCredentials: true,
	}))

	router.Mount("/api", s.apiRouter())

	// every unmatched route produces the same envelope, echoing the path
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlerutils.WriteErrorJSON(
			w,
			http.StatusNotFound,
			string(servererrors.KindNotFound),
			fmt.Sprintf("Not Found - %s", r.URL.Path),
		)
	})

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.Addr),
		Handler: router,
	}

	return s.listenAndServe()
}

func (s *server) listenAndServe() error {
	shutdownCtx, shutdownCancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer shutdownCancel()

	errGrp, shutdownCtx := errgroup.WithContext(shutdownCtx)

	errGrp.Go(
		func() error {
			s.Log.Infof("server started and is listening at port %s...", s.Addr)

			if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) && err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			return nil
		},
	)

	errGrp.Go(
		func() error {
			<-shutdownCtx.Done() // block and listen for shutdown signals

			s.Log.Info("hold and wait, server is gracefully shutting down...")

			ctx, cancel := context.WithTimeout(
				context.Background(),
				(20 * time.Second),
			)
			defer cancel()

			s.Log.Info("waiting for all pending requests to finish...")
			if err := s.srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server failed to shutdown gracefully: %w", err)
			}

			return nil
		},
	)

	if err := errGrp.Wait(); err != nil {
		return err
	}

	s.Log.Info("all pending requests completed!")

	s.Log.Info("closing other resources...")
	if err := s.DB.Client().Disconnect(context.Background()); err != nil {
		s.Log.WithError(err).Error("server failed to close db for shutdown")
	}

	s.Log.Info("server has been gracefully shutdown")
	return nil
}

func (s *server) apiRouter() *chi.Mux {
	r := chi.NewRouter()

	// health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	middleware := middlewares.NewMiddleware(s.Log)

	// products feature
	productStore := product.NewStore(s.DB)
	productService := product.NewService(productStore)
	productHandler := product.NewHandler(
		productService,
		middleware,
	)
	productHandler.RegisterRoutes(r)

	// orders feature
	orderStore := order.NewStore(s.DB)
	orderService := order.NewService(
		&order.ServiceConfig{
			Store:          orderStore,
			Mailer:         s.Mailer,
			FromAddress:    s.FromAddress,
			BusinessEmails: s.BusinessEmails,
			Log:            s.Log,
		},
	)
	orderHandler := order.NewHandler(
		orderService,
		middleware,
	)
	orderHandler.RegisterRoutes(r)

	return r
}
