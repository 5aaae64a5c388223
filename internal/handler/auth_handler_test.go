package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/everestwc/everest-backend/internal/middleware"
	"github.com/everestwc/everest-backend/internal/model"
	"github.com/everestwc/everest-backend/internal/repository"
	"github.com/everestwc/everest-backend/internal/service"
)

type fakeAdminStore struct {
	admin  *model.Admin
	getErr error
}

func (f *fakeAdminStore) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.admin == nil || f.admin.Username != username {
		return nil, repository.ErrNotFound
	}
	return f.admin, nil
}

type fakeSessionManager struct {
	password   string
	sessionID  string
	createErr  error
	destroyErr error
	adminIDErr error

	destroyed []string
}

func (f *fakeSessionManager) CheckPassword(hash, password string) error {
	if password != f.password {
		return service.ErrInvalidCredentials
	}
	return nil
}

func (f *fakeSessionManager) CreateSession(ctx context.Context, adminID string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.sessionID, nil
}

func (f *fakeSessionManager) AdminID(ctx context.Context, sessionID string) (string, error) {
	if f.adminIDErr != nil {
		return "", f.adminIDErr
	}
	if sessionID != f.sessionID {
		return "", service.ErrNoSession
	}
	return "admin-1", nil
}

func (f *fakeSessionManager) DestroySession(ctx context.Context, sessionID string) error {
	if f.destroyErr != nil {
		return f.destroyErr
	}
	f.destroyed = append(f.destroyed, sessionID)
	return nil
}

func newAuthRouter(admins *fakeAdminStore, sessions *fakeSessionManager) *gin.Engine {
	h := NewAuthHandler(admins, sessions, CookieSettings{
		MaxAge:   3600,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}, testLog)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/check", h.Check)
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	admin := &model.Admin{ID: "admin-1", Username: "everest", PasswordHash: "hashed"}

	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		sessions := &fakeSessionManager{password: "secret", sessionID: "sess-1"}
		r := newAuthRouter(&fakeAdminStore{admin: admin}, sessions)

		w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "everest", "password": "secret"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		ck := sessionCookie(w)
		if ck == nil {
			t.Fatal("session cookie not set")
		}
		if ck.Value != "sess-1" {
			t.Errorf("cookie value = %q, want sess-1", ck.Value)
		}
		if !ck.HttpOnly {
			t.Error("cookie must be HttpOnly")
		}
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		sessions := &fakeSessionManager{password: "secret", sessionID: "sess-1"}
		r := newAuthRouter(&fakeAdminStore{admin: admin}, sessions)

		unknown := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "nobody", "password": "secret"})
		wrong := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "everest", "password": "nope"})

		if unknown.Code != http.StatusUnauthorized || wrong.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d/%d, want 401/401", unknown.Code, wrong.Code)
		}
		if unknown.Body.String() != wrong.Body.String() {
			t.Errorf("bodies differ: %q vs %q", unknown.Body.String(), wrong.Body.String())
		}
		assertMessage(t, wrong, "Invalid credentials")
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		r := newAuthRouter(&fakeAdminStore{admin: admin}, &fakeSessionManager{password: "secret"})
		w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "everest"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("admin store failure is a 500, not a 401", func(t *testing.T) {
		admins := &fakeAdminStore{getErr: errors.New("connection refused")}
		r := newAuthRouter(admins, &fakeSessionManager{password: "secret"})

		w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "everest", "password": "secret"})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		assertMessage(t, w, "Login failed")
	})

	t.Run("session store failure is a 500", func(t *testing.T) {
		sessions := &fakeSessionManager{password: "secret", createErr: errors.New("redis down")}
		r := newAuthRouter(&fakeAdminStore{admin: admin}, sessions)

		w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "everest", "password": "secret"})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		assertMessage(t, w, "Login failed")
	})
}

func TestLogout(t *testing.T) {
	t.Run("destroys the session and expires the cookie", func(t *testing.T) {
		sessions := &fakeSessionManager{sessionID: "sess-1"}
		r := newAuthRouter(&fakeAdminStore{}, sessions)

		req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "sess-1"})
		w := serve(r, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if len(sessions.destroyed) != 1 || sessions.destroyed[0] != "sess-1" {
			t.Errorf("destroyed = %v, want [sess-1]", sessions.destroyed)
		}
		ck := sessionCookie(w)
		if ck == nil {
			t.Fatal("expected expiring cookie")
		}
		if ck.MaxAge >= 0 {
			t.Errorf("cookie MaxAge = %d, want negative", ck.MaxAge)
		}
	})

	t.Run("no cookie is still a success", func(t *testing.T) {
		sessions := &fakeSessionManager{}
		r := newAuthRouter(&fakeAdminStore{}, sessions)

		w := doJSON(t, r, http.MethodPost, "/auth/logout", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if len(sessions.destroyed) != 0 {
			t.Errorf("destroyed = %v, want none", sessions.destroyed)
		}
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		sessions := &fakeSessionManager{destroyErr: errors.New("redis down")}
		r := newAuthRouter(&fakeAdminStore{}, sessions)

		req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "sess-1"})
		w := serve(r, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		assertMessage(t, w, "Logout failed")
	})
}

func TestCheck(t *testing.T) {
	sessions := &fakeSessionManager{sessionID: "sess-1"}
	r := newAuthRouter(&fakeAdminStore{}, sessions)

	cases := []struct {
		name   string
		cookie string
		want   bool
	}{
		{"live session", "sess-1", true},
		{"unknown session", "dead", false},
		{"no cookie", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/auth/check", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: tc.cookie})
			}
			w := serve(r, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var body map[string]bool
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["authenticated"] != tc.want {
				t.Errorf("authenticated = %v, want %v", body["authenticated"], tc.want)
			}
		})
	}

	t.Run("store failure counts as unauthenticated", func(t *testing.T) {
		broken := &fakeSessionManager{adminIDErr: errors.New("redis down")}
		r := newAuthRouter(&fakeAdminStore{}, broken)

		req, _ := http.NewRequest(http.MethodGet, "/auth/check", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "sess-1"})
		w := serve(r, req)

		var body map[string]bool
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["authenticated"] {
			t.Error("authenticated = true, want false")
		}
	})
}
