package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rohits-web03/myspace/docs"
	"github.com/rohits-web03/myspace/internal/api/handlers"
	"github.com/rohits-web03/myspace/internal/api/middleware"
	"github.com/rohits-web03/myspace/internal/api/services"
	"github.com/rohits-web03/myspace/internal/auth"
	"github.com/rohits-web03/myspace/internal/config"
	"github.com/rohits-web03/myspace/internal/media"
	"github.com/rohits-web03/myspace/internal/repositories"
)

// Deps is everything the router wires into the handlers.
type Deps struct {
	Config   config.Config
	Store    *repositories.Store
	Images   media.Store
	Tokens   *auth.TokenManager
	Cascade  services.Cascader
	Google   handlers.GoogleProvider // nil disables Google sign-in
	Registry *prometheus.Registry
	Log      *slog.Logger
}

func SetupRouter(d Deps) http.Handler {
	authSvc := services.NewAuthService(d.Store.Users, d.Tokens)
	authH := handlers.NewAuthHandler(authSvc, d.Log)
	userH := handlers.NewUserHandler(services.NewUserService(d.Store.Users, d.Store.Posts, d.Cascade, d.Log), d.Log)
	noteH := handlers.NewNoteHandler(services.NewNoteService(d.Store.Notes), d.Log)
	contactH := handlers.NewContactHandler(services.NewContactService(d.Store.Contacts), d.Log)
	postH := handlers.NewPostHandler(services.NewPostService(d.Store.Posts, d.Images, d.Log), d.Config.MaxUploadBytes, d.Log)

	requireAuth := middleware.RequireAuth(d.Tokens, d.Log)
	protected := func(h http.HandlerFunc) http.Handler { return requireAuth(h) }

	mux := http.NewServeMux()

	// ---------- PUBLIC ROUTES ----------
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	mux.Handle("GET /docs/", httpSwagger.WrapHandler)

	mux.HandleFunc("POST /auth/signup", authH.SignUp)
	mux.HandleFunc("POST /auth/signin", authH.SignIn)
	if d.Google != nil {
		googleH := handlers.NewGoogleHandler(d.Google, authSvc, d.Config.Google.FrontendURL, d.Config.IsProduction(), d.Log)
		mux.HandleFunc("GET /auth/google/login", googleH.Login)
		mux.HandleFunc("GET /auth/google/callback", googleH.Callback)
	}

	mux.HandleFunc("GET /posts", postH.List)
	mux.HandleFunc("GET /posts/{id}", postH.Get)

	// ---------- PROTECTED ROUTES ----------
	mux.Handle("GET /auth/{id}/details", protected(userH.Details))
	mux.Handle("PUT /auth/{id}/update", protected(userH.Update))
	mux.Handle("DELETE /auth/{id}", protected(userH.Delete))

	mux.Handle("GET /notes", protected(noteH.List))
	mux.Handle("POST /notes/add", protected(noteH.Create))
	mux.Handle("GET /notes/{id}", protected(noteH.Get))
	mux.Handle("PUT /notes/{id}", protected(noteH.Update))
	mux.Handle("DELETE /notes/{id}", protected(noteH.Delete))

	mux.Handle("GET /contacts", protected(contactH.List))
	mux.Handle("POST /contacts/add", protected(contactH.Create))
	mux.Handle("GET /contacts/{id}", protected(contactH.Get))
	mux.Handle("PUT /contacts/{id}", protected(contactH.Update))
	mux.Handle("DELETE /contacts/{id}", protected(contactH.Delete))

	mux.Handle("POST /posts/add", protected(postH.Create))
	mux.Handle("PUT /posts/{id}", protected(postH.Replace))
	mux.Handle("PATCH /posts/{id}", protected(postH.Patch))
	mux.Handle("DELETE /posts/{id}", protected(postH.Delete))
	mux.Handle("PATCH /posts/{id}/like", protected(postH.Like))
	mux.Handle("PATCH /posts/{id}/comment", protected(postH.Comment))

	d.Log.Info("Router initialized", "google_sign_in", d.Google != nil)

	c := cors.New(d.Config.CorsOptions())
	metrics := middleware.NewMetrics(d.Registry)

	handler := middleware.CapturePattern(mux)
	handler = c.Handler(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Logger(d.Log)(handler)
	handler = middleware.Recover(d.Log)(handler)
	return handler
}
