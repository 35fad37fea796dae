package api

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/cavanliu/watchlist/internal/api/handler"
	"github.com/cavanliu/watchlist/internal/api/middleware"
	"github.com/cavanliu/watchlist/internal/core/repository"
	"github.com/cavanliu/watchlist/internal/core/service"
	"github.com/cavanliu/watchlist/pkg/config"
	"github.com/cavanliu/watchlist/web"
)

const sessionName = "watchlist"

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer builds the gin engine with the full route table. Everything the
// handlers need is injected here; there is no package-level application state.
func NewServer(
	cfg *config.Config,
	userRepo repository.UserRepository,
	movieRepo repository.MovieRepository,
	authService *service.AuthService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.SecretKey))
	router.Use(sessions.Sessions(sessionName, store))
	router.Use(middleware.CurrentUser(userRepo))

	router.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	// Initialize handlers
	render := handler.NewRenderer(userRepo)
	movieHandler := handler.NewMovieHandler(movieRepo, render)
	authHandler := handler.NewAuthHandler(authService, render)
	settingsHandler := handler.NewSettingsHandler(userRepo, render)
	pageHandler := handler.NewPageHandler(render)

	// Public routes
	router.GET("/", movieHandler.Index)
	router.GET("/index", movieHandler.Index)
	// Create checks the session itself: anonymous posts bounce home silently
	router.POST("/", movieHandler.Create)
	router.POST("/index", movieHandler.Create)

	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)

	router.GET("/hello", pageHandler.Hello)
	router.GET("/hello/:name", pageHandler.Hello)

	// Protected routes (login required)
	protected := router.Group("/")
	protected.Use(middleware.LoginRequired())
	{
		protected.GET("/movie/edit/:id", movieHandler.EditForm)
		protected.POST("/movie/edit/:id", movieHandler.Update)
		protected.POST("/movie/delete/:id", movieHandler.Delete)
		protected.GET("/logout", authHandler.Logout)
		protected.GET("/settings", settingsHandler.Form)
		protected.POST("/settings", settingsHandler.Update)
	}

	// Everything else is the 404 page
	router.NoRoute(pageHandler.NotFound)

	return &Server{
		router: router,
		config: cfg,
	}
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		fmt.Printf("Starting HTTPS server on %s\n", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
