package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/cavanliu/watchlist/internal/api/form"
	"github.com/cavanliu/watchlist/internal/api/middleware"
	"github.com/cavanliu/watchlist/internal/core/repository"
)

type SettingsHandler struct {
	users  repository.UserRepository
	render *Renderer
}

func NewSettingsHandler(users repository.UserRepository, render *Renderer) *SettingsHandler {
	return &SettingsHandler{
		users:  users,
		render: render,
	}
}

// Form handles GET /settings
func (h *SettingsHandler) Form(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "settings.html", nil)
}

// Update handles POST /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	f := form.SettingsForm{Name: c.PostForm("name")}
	if result := f.Validate(); !result.OK {
		flash(c, result.Message)
		c.Redirect(http.StatusFound, "/settings")
		return
	}

	// LoginRequired guarantees a user here
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user.Name = f.Name
	if err := h.users.Update(c.Request.Context(), user); err != nil {
		log.Error().Err(err).Msg("failed to update settings")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash(c, "Settings updated.")
	c.Redirect(http.StatusFound, "/")
}
