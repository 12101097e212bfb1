package main

import (
	"net/http"

	"github.com/aldric144/blkxchange-frontend-new/internal/config"
	"github.com/aldric144/blkxchange-frontend-new/internal/gateway"
	"github.com/aldric144/blkxchange-frontend-new/internal/handlers"
	"github.com/aldric144/blkxchange-frontend-new/internal/logger"
	"github.com/aldric144/blkxchange-frontend-new/internal/metrics"
	"github.com/aldric144/blkxchange-frontend-new/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	gw := gateway.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, log)

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}

	h := handlers.New(gw, store, log, "templates/*.html", handlers.NoLoginWidget())

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			next.ServeHTTP(w, r)
		})
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	r.Get("/", h.Home)
	r.Get("/marketplace", h.Marketplace)
	r.Get("/professionals", h.Professionals)
	r.Get("/impact", h.Impact)
	r.Get("/about", h.About)
	r.Get("/vendor-agreement", h.VendorAgreement)

	r.Get("/vendor-register", h.VendorRegisterPage)
	r.Post("/vendor-register", h.VendorRegisterSubmit)
	r.Get("/vendor-register/thanks", h.VendorRegisterThanks)
	r.Get("/vendor-apply", h.VendorApplyPage)
	r.Post("/vendor-apply", h.VendorApplySubmit)
	r.Get("/vendor-apply/thanks", h.VendorApplyThanks)
	r.Get("/vendor-dashboard", h.VendorDashboard)
	r.Post("/vendor-dashboard/products", h.ProductSubmissionCreate)

	r.Get("/fragments/search", h.SearchFragment)
	r.Route("/fragments/notifications", func(r chi.Router) {
		r.Get("/", h.NotificationsFragment)
		r.Post("/read-all", h.NotificationsReadAll)
		r.Post("/{id}/read", h.NotificationRead)
		r.Delete("/{id}", h.NotificationDelete)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/unlock", h.AdminUnlockPage)
		r.Post("/unlock", h.AdminUnlockSubmit)
		r.Post("/lock", h.AdminLock)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdminSecret(store))
			r.Get("/vendors", h.AdminVendorsPage)
			r.Post("/vendors/{id}/approve", h.AdminVendorApprove)
			r.Post("/vendors/{id}/reject", h.AdminVendorReject)
			r.Get("/products", h.AdminProductsPage)
			r.Post("/products/{id}/approve", h.AdminProductApprove)
			r.Post("/products/{id}/reject", h.AdminProductReject)
		})
	})

	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	log.Info("server starting",
		zap.String("addr", cfg.ListenAddr),
		zap.String("api", cfg.APIBaseURL))
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
