package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/cavanliu/watchlist/internal/api/form"
	"github.com/cavanliu/watchlist/internal/api/middleware"
	"github.com/cavanliu/watchlist/internal/core/domain"
	"github.com/cavanliu/watchlist/internal/core/repository"
)

type MovieHandler struct {
	movies repository.MovieRepository
	render *Renderer
}

func NewMovieHandler(movies repository.MovieRepository, render *Renderer) *MovieHandler {
	return &MovieHandler{
		movies: movies,
		render: render,
	}
}

// Index handles GET / and GET /index
func (h *MovieHandler) Index(c *gin.Context) {
	movies, err := h.movies.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list movies")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	h.render.HTML(c, http.StatusOK, "index.html", gin.H{
		"Movies": movies,
		"Count":  len(movies),
	})
}

// Create handles POST / and POST /index. Anonymous posts are redirected home
// without a flash; the page they land on shows no create form anyway.
func (h *MovieHandler) Create(c *gin.Context) {
	if _, ok := middleware.GetCurrentUser(c); !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	f := form.MovieForm{
		Title: c.PostForm("title"),
		Year:  c.PostForm("year"),
	}
	if result := f.Validate(); !result.OK {
		flash(c, result.Message)
		c.Redirect(http.StatusFound, "/")
		return
	}

	movie := domain.NewMovie(f.Title, f.Year)
	if err := h.movies.Create(c.Request.Context(), movie); err != nil {
		log.Error().Err(err).Msg("failed to create movie")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash(c, "Item created.")
	c.Redirect(http.StatusFound, "/")
}

// EditForm handles GET /movie/edit/:id
func (h *MovieHandler) EditForm(c *gin.Context) {
	movie, ok := h.findMovie(c)
	if !ok {
		return
	}

	h.render.HTML(c, http.StatusOK, "edit.html", gin.H{"Movie": movie})
}

// Update handles POST /movie/edit/:id
func (h *MovieHandler) Update(c *gin.Context) {
	movie, ok := h.findMovie(c)
	if !ok {
		return
	}

	f := form.MovieForm{
		Title: c.PostForm("title"),
		Year:  c.PostForm("year"),
	}
	if result := f.Validate(); !result.OK {
		flash(c, result.Message)
		c.Redirect(http.StatusFound, "/movie/edit/"+strconv.FormatInt(movie.ID, 10))
		return
	}

	movie.Title = f.Title
	movie.Year = f.Year
	if err := h.movies.Update(c.Request.Context(), movie); err != nil {
		log.Error().Err(err).Msg("failed to update movie")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash(c, "Item updated.")
	c.Redirect(http.StatusFound, "/")
}

// Delete handles POST /movie/delete/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.render.NotFound(c)
		return
	}

	if err := h.movies.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.render.NotFound(c)
			return
		}
		log.Error().Err(err).Msg("failed to delete movie")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash(c, "Item deleted.")
	c.Redirect(http.StatusFound, "/")
}

// findMovie resolves the :id path parameter, rendering the 404 page for
// non-numeric or unknown ids.
func (h *MovieHandler) findMovie(c *gin.Context) (*domain.Movie, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.render.NotFound(c)
		return nil, false
	}

	movie, err := h.movies.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.render.NotFound(c)
			return nil, false
		}
		log.Error().Err(err).Msg("failed to find movie")
		c.AbortWithStatus(http.StatusInternalServerError)
		return nil, false
	}

	return movie, true
}
