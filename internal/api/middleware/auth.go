package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/cavanliu/watchlist/internal/core/domain"
	"github.com/cavanliu/watchlist/internal/core/repository"
)

const (
	// SessionUserKey is the session cookie key holding the logged-in user id.
	SessionUserKey = "user_id"
	// UserContextKey is the gin context key holding the resolved *domain.User.
	UserContextKey = "currentUser"
)

// CurrentUser resolves the session cookie to the logged-in user and stores it
// in the request context. It never aborts; anonymous requests simply carry no
// user.
func CurrentUser(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if id, ok := session.Get(SessionUserKey).(int64); ok {
			if user, err := userRepo.FindByID(c.Request.Context(), id); err == nil {
				c.Set(UserContextKey, user)
			}
		}
		c.Next()
	}
}

// GetCurrentUser retrieves the logged-in user from the request context.
func GetCurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*domain.User)
	if !ok || !user.IsAuthenticated() {
		return nil, false
	}
	return user, true
}

// LoginRequired redirects anonymous requests to the login page.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
