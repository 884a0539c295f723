package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/neonbook/booking-system/internal/domain"
	"github.com/neonbook/booking-system/internal/mailer"
	"github.com/neonbook/booking-system/internal/repository"
	appvalidator "github.com/neonbook/booking-system/internal/validator"
	"github.com/neonbook/booking-system/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config         config
	logger         *slog.Logger
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager
	wg             sync.WaitGroup

	serviceRepo      domain.ServiceRepository
	availabilityRepo domain.AvailabilityRepository
	bookingRepo      domain.BookingRepository
	reviewRepo       domain.ReviewRepository
	analyticsRepo    domain.AnalyticsRepository

	selections *repository.SelectionStore
	bookingRef domain.BookingRefFunc
}

type config struct {
	port int
	env  string
	smtp struct {
		host      string
		port      int
		username  string
		password  string
		sender    string
		recipient string
	}
}

func Run() error {
	// Optional .env file feeding the flag defaults below.
	godotenv.Load()

	var cfg config

	flag.IntVar(&cfg.port, "port", 3000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.smtp.host, "smtp-host", envOr("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", envOrInt("SMTP_PORT", 2525), "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", os.Getenv("SMTP_USERNAME"), "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", os.Getenv("SMTP_PASSWORD"), "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", "NeonBook <no-reply@neonbook.example>", "SMTP sender")
	flag.StringVar(&cfg.smtp.recipient, "smtp-recipient", "guest@neonbook.example", "confirmation email recipient")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := &application{
		config:           cfg,
		logger:           logger,
		validator:        appvalidator.NewValidator(),
		mailer:           mailer.NewSMTPMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender),
		sessionManager:   newSessionManager(),
		serviceRepo:      repository.NewMemoryServiceRepository(),
		availabilityRepo: repository.NewMemoryAvailabilityRepository(),
		bookingRepo:      repository.NewMemoryBookingRepository(),
		reviewRepo:       repository.NewMemoryReviewRepository(),
		analyticsRepo:    repository.NewMemoryAnalyticsRepository(),
		selections:       repository.NewSelectionStore(),
		bookingRef:       domain.NewBookingRef,
	}

	return app.run()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return fallback
}

func newSessionManager() *scs.SessionManager {
	sessionManager := scs.New()

	// The default in-memory store is all this system needs: every collection
	// is process-local and resets on restart.
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		app.wg.Wait()
		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureGuestSession)

	r.Get("/health", app.GetHealth)

	r.Get("/services", app.GetServices)
	r.Get("/services/{serviceId}", app.GetServiceById)
	r.Post("/services/{serviceId}/booking-session", app.CreateBookingSessionHandler)

	r.Route("/booking-session", func(r chi.Router) {
		r.Get("/", app.GetBookingSessionHandler)
		r.Delete("/", app.DeleteBookingSessionHandler)
		r.Patch("/seats", app.ToggleSeatHandler)
		r.Put("/slot", app.ChooseSlotHandler)
		r.Post("/confirm", app.ConfirmBookingHandler)
	})

	r.Get("/bookings", app.GetBookingHistoryHandler)
	r.Get("/bookings/{bookingRef}", app.GetBookingReceiptHandler)

	r.Get("/reviews", app.ListReviewsHandler)
	r.Post("/reviews", app.CreateReviewHandler)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/analytics", app.GetAnalyticsReportHandler)
		r.Get("/services", app.ListServicesAdminHandler)
		r.Get("/bookings", app.ListBookingsAdminHandler)
	})

	return r
}
