package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/cavanliu/watchlist/internal/api/middleware"
	"github.com/cavanliu/watchlist/internal/core/repository"
)

// Renderer builds the payload every template expects: the sole admin row (the
// page owner), the viewer's auth state, and any pending flash messages. It is
// the explicit replacement for template-context globals.
type Renderer struct {
	users repository.UserRepository
}

func NewRenderer(users repository.UserRepository) *Renderer {
	return &Renderer{users: users}
}

func (r *Renderer) HTML(c *gin.Context, status int, name string, extra gin.H) {
	data := gin.H{
		"User":          nil,
		"Authenticated": false,
		"Flashes":       popFlashes(c),
	}

	owner, err := r.users.First(c.Request.Context())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Error().Err(err).Msg("failed to load admin user")
	}
	if owner != nil {
		data["User"] = owner
	}

	if _, ok := middleware.GetCurrentUser(c); ok {
		data["Authenticated"] = true
	}

	for k, v := range extra {
		data[k] = v
	}

	c.HTML(status, name, data)
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(c *gin.Context) {
	r.HTML(c, http.StatusNotFound, "404.html", nil)
}

// popFlashes drains the one-shot flash messages from the session.
func popFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() removes the messages; the session must be saved for the
	// removal to stick.
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save session")
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// flash queues a one-shot message for the next rendered page.
func flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save session")
	}
}
