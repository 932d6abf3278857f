package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/blog-backend/internal/api/handlers"
	"github.com/baharkarakas/blog-backend/internal/api/httpx"
	"github.com/baharkarakas/blog-backend/internal/config"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/middleware"
	"github.com/baharkarakas/blog-backend/internal/services"
)

type RouterDeps struct {
	Cfg     config.Config
	Log     *slog.Logger
	UserSvc *services.UserService
	BlogSvc *services.BlogService
	SubSvc  *services.SubscriptionService
}

func NewRouter(d RouterDeps) http.Handler {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Logger(log), middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{d.Cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMessage(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	// ---------- auth ----------
	auth := handlers.NewAuthHandler(d.UserSvc)
	r.Post("/register", auth.Register)
	r.Post("/login", auth.Login)

	// ---------- blogs ----------
	blogs := handlers.NewBlogHandler(d.BlogSvc)
	r.Post("/blogs/create", blogs.Create)
	r.Get("/blogs", blogs.List)
	r.Get("/myblogs/{username}", blogs.ListByAuthor)
	r.Get("/myblogs/", blogs.ListByAuthor) // empty username -> 400
	r.Delete("/blogs/delete/{id}", blogs.Delete)
	r.Put("/blogs/update/{id}", blogs.UpdateContent)
	r.Put("/blogs/like/{id}", blogs.Like)

	// ---------- newsletter ----------
	if d.SubSvc != nil {
		r.Post("/subscribe", handlers.NewSubscribeHandler(d.SubSvc).Subscribe)
	}

	return r
}
