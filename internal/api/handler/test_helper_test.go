package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cavanliu/watchlist/internal/api"
	"github.com/cavanliu/watchlist/internal/core/domain"
	"github.com/cavanliu/watchlist/internal/core/repository"
	"github.com/cavanliu/watchlist/internal/core/service"
	"github.com/cavanliu/watchlist/internal/infrastructure/sqlite"
	"github.com/cavanliu/watchlist/pkg/config"
)

// testEnv holds all test dependencies
type testEnv struct {
	db     *sqlite.DB
	users  repository.UserRepository
	movies repository.MovieRepository
	auth   *service.AuthService
}

// setupTestEnv creates a test environment with an in-memory SQLite database,
// one admin (admin/111111) and one movie ("Test Movie Title", 2019), plus a
// cookie-carrying browser against the full route table.
func setupTestEnv(t *testing.T) (*testEnv, *browser) {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.CreateSchema(); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	users := sqlite.NewUserRepository(db)
	movies := sqlite.NewMovieRepository(db)
	auth := service.NewAuthService(users)

	ctx := context.Background()

	hash, err := auth.HashPassword("111111")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := users.Create(ctx, domain.NewUser("Admin", "admin", hash)); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	if err := movies.Create(ctx, domain.NewMovie("Test Movie Title", "2019")); err != nil {
		t.Fatalf("failed to seed movie: %v", err)
	}

	cfg := &config.Config{
		DatabaseFile: ":memory:",
		SecretKey:    "test-secret",
		Host:         "127.0.0.1",
		Port:         5000,
	}
	server := api.NewServer(cfg, users, movies, auth)

	env := &testEnv{
		db:     db,
		users:  users,
		movies: movies,
		auth:   auth,
	}
	return env, &browser{t: t, handler: server.Handler()}
}

// browser drives the router like a cookie-keeping HTTP client.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)
	b.storeCookies(w)
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return b.do(http.MethodPost, path, form)
}

// postFollow posts and follows redirects to the final rendered page, so the
// body includes the flash message queued by the redirecting handler.
func (b *browser) postFollow(path string, form url.Values) *httptest.ResponseRecorder {
	return b.follow(b.post(path, form))
}

func (b *browser) getFollow(path string) *httptest.ResponseRecorder {
	return b.follow(b.get(path))
}

func (b *browser) follow(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	b.t.Helper()

	for i := 0; i < 5 && w.Code >= 300 && w.Code < 400; i++ {
		location := w.Header().Get("Location")
		if location == "" {
			b.t.Fatalf("redirect response without Location header")
		}
		w = b.do(http.MethodGet, location, nil)
	}
	return w
}

func (b *browser) storeCookies(w *httptest.ResponseRecorder) {
	for _, fresh := range w.Result().Cookies() {
		replaced := false
		for i, existing := range b.cookies {
			if existing.Name == fresh.Name {
				b.cookies[i] = fresh
				replaced = true
				break
			}
		}
		if !replaced {
			b.cookies = append(b.cookies, fresh)
		}
	}
}

// login signs the browser in as the seeded admin.
func (b *browser) login() {
	b.t.Helper()

	w := b.post("/login", url.Values{"username": {"admin"}, "password": {"111111"}})
	if w.Code != http.StatusFound {
		b.t.Fatalf("login returned status %d, want %d", w.Code, http.StatusFound)
	}
}

func assertContains(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), want) {
		t.Errorf("body does not contain %q\nBody: %s", want, w.Body.String())
	}
}

func assertNotContains(t *testing.T, w *httptest.ResponseRecorder, unwanted string) {
	t.Helper()
	if strings.Contains(w.Body.String(), unwanted) {
		t.Errorf("body contains %q\nBody: %s", unwanted, w.Body.String())
	}
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Errorf("status = %d, want %d", w.Code, want)
	}
}
