package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/cavanliu/watchlist/internal/core/domain"
	"github.com/cavanliu/watchlist/internal/core/repository"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := db.CreateSchema(); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMovieRepositoryCreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	first := domain.NewMovie("Leon", "1994")
	second := domain.NewMovie("Mahjong", "1996")

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if first.ID == 0 || second.ID == 0 {
		t.Fatalf("Create() did not assign ids: %d, %d", first.ID, second.ID)
	}
	if second.ID <= first.ID {
		t.Errorf("ids not increasing: %d then %d", first.ID, second.ID)
	}

	movies, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("List() returned %d movies, want 2", len(movies))
	}
	if movies[0].Title != "Leon" || movies[1].Title != "Mahjong" {
		t.Errorf("List() not in insertion order: %q, %q", movies[0].Title, movies[1].Title)
	}
}

func TestMovieRepositoryFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	movie := domain.NewMovie("Leon", "1994")
	if err := repo.Create(ctx, movie); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Title != "Leon" || found.Year != "1994" {
		t.Errorf("FindByID() = %+v", found)
	}

	if _, err := repo.FindByID(ctx, 999); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("FindByID(999) error = %v, want ErrNotFound", err)
	}
}

func TestMovieRepositoryUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	movie := domain.NewMovie("Leon", "1994")
	if err := repo.Create(ctx, movie); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	movie.Title = "Leon: The Professional"
	movie.Year = "1995"
	if err := repo.Update(ctx, movie); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := repo.FindByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Title != "Leon: The Professional" || found.Year != "1995" {
		t.Errorf("Update() not persisted: %+v", found)
	}

	missing := &domain.Movie{ID: 999, Title: "x", Year: "2000"}
	if err := repo.Update(ctx, missing); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMovieRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	movie := domain.NewMovie("Leon", "1994")
	if err := repo.Create(ctx, movie); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, movie.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.FindByID(ctx, movie.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, movie.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}
}
