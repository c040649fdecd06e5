package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/MassBabyGeek/FitDaily-backend/internal/api"
	"github.com/MassBabyGeek/FitDaily-backend/internal/handler"
	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store/sqlitestore"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func newTestRouter(t *testing.T) (http.Handler, store.Store) {
	t.Helper()
	st, err := sqlitestore.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return api.SetupRouter(handler.New(st, nil)), st
}

func do(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %s: %v", rec.Body.String(), err)
	}
	return rec, env
}

func createUserHTTP(t *testing.T, router http.Handler, email, name string) model.UserProfile {
	t.Helper()
	rec, env := do(t, router, http.MethodPost, "/api/users", map[string]string{"email": email, "name": name})
	if rec.Code != http.StatusOK {
		t.Fatalf("create user: status %d, body %s", rec.Code, rec.Body.String())
	}
	var u model.UserProfile
	if err := json.Unmarshal(env.Data, &u); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return u
}

func TestUserEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	u := createUserHTTP(t, router, "alice@test.dev", "Alice")
	if u.ID == "" {
		t.Fatal("user ID not assigned")
	}

	rec, env := do(t, router, http.MethodGet, "/api/users/"+u.ID, nil)
	if rec.Code != http.StatusOK || !env.Success {
		t.Errorf("get user: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec, _ = do(t, router, http.MethodGet, "/api/users/email/alice@test.dev", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("get by email: status %d", rec.Code)
	}

	rec, env = do(t, router, http.MethodGet, "/api/users/nope", nil)
	if rec.Code != http.StatusNotFound || env.Success {
		t.Errorf("unknown user: status %d, success %v", rec.Code, env.Success)
	}

	// Email déjà pris
	rec, _ = do(t, router, http.MethodPost, "/api/users", map[string]string{"email": "alice@test.dev", "name": "Clone"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate email: status %d, want 400", rec.Code)
	}

	// Champs manquants
	rec, _ = do(t, router, http.MethodPost, "/api/users", map[string]string{"email": "x@test.dev"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing name: status %d, want 400", rec.Code)
	}

	// Mise à jour partielle
	rec, env = do(t, router, http.MethodPut, "/api/users/"+u.ID, map[string]string{"name": "Alicia"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d", rec.Code)
	}
	var updated model.UserProfile
	json.Unmarshal(env.Data, &updated)
	if updated.Name != "Alicia" || updated.Email != "alice@test.dev" {
		t.Errorf("updated user = %+v", updated)
	}
}

func TestChallengeEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	body := map[string]interface{}{
		"day":         1,
		"title":       "Plank",
		"description": "Hold a plank",
		"difficulty":  2,
	}
	rec, env := do(t, router, http.MethodPost, "/api/challenges", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("create challenge: status %d, body %s", rec.Code, rec.Body.String())
	}
	var c model.Challenge
	json.Unmarshal(env.Data, &c)
	if c.Points != 100 || !c.IsActive {
		t.Errorf("defaults not applied: %+v", c)
	}

	rec, env = do(t, router, http.MethodGet, "/api/challenges", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d", rec.Code)
	}
	var list []model.Challenge
	json.Unmarshal(env.Data, &list)
	if len(list) != 1 {
		t.Errorf("list = %d entries, want 1", len(list))
	}

	rec, _ = do(t, router, http.MethodGet, "/api/challenges/day/1", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("get by day: status %d", rec.Code)
	}
	rec, _ = do(t, router, http.MethodGet, "/api/challenges/day/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad day: status %d, want 400", rec.Code)
	}
	rec, _ = do(t, router, http.MethodGet, "/api/challenges/day/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown day: status %d, want 404", rec.Code)
	}

	rec, _ = do(t, router, http.MethodPost, "/api/challenges", map[string]interface{}{"day": 2, "title": "x", "description": "y", "difficulty": 9})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad difficulty: status %d, want 400", rec.Code)
	}
}

func TestSubmissionFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	u := createUserHTTP(t, router, "bob@test.dev", "Bob")
	_, env := do(t, router, http.MethodPost, "/api/challenges", map[string]interface{}{
		"day": 1, "title": "Plank", "description": "x", "difficulty": 1,
	})
	var c model.Challenge
	json.Unmarshal(env.Data, &c)

	rec, env := do(t, router, http.MethodPost, "/api/submissions", map[string]interface{}{
		"userId":       u.ID,
		"challengeId":  c.ID,
		"challengeDay": 1,
		"type":         "text",
		"content":      "did it",
		"isSuccess":    true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: status %d, body %s", rec.Code, rec.Body.String())
	}
	var sub model.Submission
	json.Unmarshal(env.Data, &sub)
	if sub.Points != 100 {
		t.Errorf("points = %d, want 100", sub.Points)
	}

	// Les stats sont appliquées de façon synchrone
	_, env = do(t, router, http.MethodGet, "/api/users/"+u.ID, nil)
	var after model.UserProfile
	json.Unmarshal(env.Data, &after)
	if after.TotalPoints != 100 || after.CurrentStreak != 1 {
		t.Errorf("stats = %d pts, streak %d", after.TotalPoints, after.CurrentStreak)
	}

	rec, _ = do(t, router, http.MethodPost, "/api/submissions", map[string]interface{}{
		"userId": u.ID, "challengeId": c.ID, "challengeDay": 1, "type": "gif", "content": "x", "isSuccess": true,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad type: status %d, want 400", rec.Code)
	}

	// Réactions et commentaires
	rec, env = do(t, router, http.MethodPost, "/api/submissions/"+sub.ID+"/reactions", map[string]string{"userId": u.ID, "type": "fire"})
	if rec.Code != http.StatusOK {
		t.Fatalf("reaction: status %d, body %s", rec.Code, rec.Body.String())
	}
	var reacted model.Submission
	json.Unmarshal(env.Data, &reacted)
	if len(reacted.Reactions) != 1 {
		t.Errorf("reactions = %+v", reacted.Reactions)
	}

	rec, env = do(t, router, http.MethodPost, "/api/submissions/"+sub.ID+"/comments", map[string]string{"userId": u.ID, "content": "nice"})
	if rec.Code != http.StatusOK {
		t.Fatalf("comment: status %d", rec.Code)
	}
	var commented model.Submission
	json.Unmarshal(env.Data, &commented)
	if len(commented.Comments) != 1 || commented.Comments[0].Content != "nice" {
		t.Errorf("comments = %+v", commented.Comments)
	}

	rec, _ = do(t, router, http.MethodGet, "/api/users/"+u.ID+"/submissions", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("list submissions: status %d", rec.Code)
	}
}

func TestGroupFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	owner := createUserHTTP(t, router, "owner@test.dev", "Owner")
	member := createUserHTTP(t, router, "member@test.dev", "Member")

	rec, env := do(t, router, http.MethodPost, "/api/groups", map[string]interface{}{
		"name": "Morning crew", "ownerId": owner.ID,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create group: status %d, body %s", rec.Code, rec.Body.String())
	}
	var g model.Group
	json.Unmarshal(env.Data, &g)
	if len(g.InviteCode) != 6 {
		t.Errorf("invite code %q, want 6 chars", g.InviteCode)
	}

	rec, _ = do(t, router, http.MethodPost, "/api/groups/join", map[string]string{"inviteCode": g.InviteCode, "userId": member.ID})
	if rec.Code != http.StatusOK {
		t.Fatalf("join: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec, _ = do(t, router, http.MethodPost, "/api/groups/join", map[string]string{"inviteCode": g.InviteCode, "userId": member.ID})
	if rec.Code != http.StatusConflict {
		t.Errorf("double join: status %d, want 409", rec.Code)
	}

	rec, _ = do(t, router, http.MethodPost, "/api/groups/join", map[string]string{"inviteCode": "ZZZZZZ", "userId": member.ID})
	if rec.Code != http.StatusNotFound {
		t.Errorf("bad code: status %d, want 404", rec.Code)
	}

	rec, env = do(t, router, http.MethodGet, "/api/groups/"+g.ID+"/members", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("members: status %d", rec.Code)
	}
	var members []model.UserProfile
	json.Unmarshal(env.Data, &members)
	if len(members) != 2 {
		t.Errorf("members = %d, want 2", len(members))
	}

	rec, env = do(t, router, http.MethodGet, "/api/groups/"+g.ID+"/ranking", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("ranking: status %d", rec.Code)
	}
	var rankings []model.WeeklyRanking
	json.Unmarshal(env.Data, &rankings)
	if len(rankings) != 2 {
		t.Fatalf("rankings = %d entries, want 2", len(rankings))
	}
	if rankings[0].Rank != 1 || rankings[1].Rank != 2 {
		t.Errorf("ranks = %d, %d", rankings[0].Rank, rankings[1].Rank)
	}

	rec, _ = do(t, router, http.MethodGet, "/api/users/"+member.ID+"/groups", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("user groups: status %d", rec.Code)
	}

	rec, _ = do(t, router, http.MethodGet, "/api/users/"+member.ID+"/activity", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("user activity: status %d", rec.Code)
	}
}

func TestMiscEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK || env.Message != "ok" {
		t.Errorf("health: status %d, message %q", rec.Code, env.Message)
	}

	rec, _ = do(t, router, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("root: status %d", rec.Code)
	}

	rec, env = do(t, router, http.MethodGet, "/api/nope", nil)
	if rec.Code != http.StatusNotFound || env.Success {
		t.Errorf("unknown route: status %d", rec.Code)
	}

	// Cloudinary non configuré: upload indisponible
	req := httptest.NewRequest(http.MethodPost, "/api/submissions/upload", nil)
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusServiceUnavailable {
		t.Errorf("upload without media: status %d, want 503", rec2.Code)
	}
}
