package service

import (
	"context"
	"path/filepath"
	"testing"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store/sqlitestore"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := sqlitestore.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

func createTestUser(t *testing.T, st store.Store, email, name string) *model.UserProfile {
	t.Helper()
	u := &model.UserProfile{
		Email:    email,
		Name:     name,
		Badges:   []string{},
		GroupIDs: []string{},
	}
	if err := st.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func createTestChallenge(t *testing.T, st store.Store, day int, title string) *model.Challenge {
	t.Helper()
	c := &model.Challenge{
		Day:         day,
		Title:       title,
		Description: "test challenge",
		Duration:    "1 min",
		Difficulty:  1,
		Points:      100,
		IsActive:    true,
	}
	if err := st.CreateChallenge(context.Background(), c); err != nil {
		t.Fatalf("create challenge day %d: %v", day, err)
	}
	return c
}
