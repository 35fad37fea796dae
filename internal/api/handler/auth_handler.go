package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/cavanliu/watchlist/internal/api/form"
	"github.com/cavanliu/watchlist/internal/api/middleware"
	"github.com/cavanliu/watchlist/internal/core/service"
)

type AuthHandler struct {
	auth   *service.AuthService
	render *Renderer
}

func NewAuthHandler(auth *service.AuthService, render *Renderer) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		render: render,
	}
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "login.html", nil)
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	f := form.LoginForm{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}
	if result := f.Validate(); !result.OK {
		flash(c, result.Message)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.auth.Login(c.Request.Context(), f.Username, f.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			flash(c, "Invalid username or password.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		log.Error().Err(err).Msg("login failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.AuthID())
	session.AddFlash("Login success.")
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save session")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionUserKey)
	session.AddFlash("Goodbye.")
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save session")
	}

	c.Redirect(http.StatusFound, "/")
}
