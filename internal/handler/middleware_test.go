package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/model"
	"github.com/taskhub/backend/internal/service"
	"github.com/taskhub/backend/internal/store"
)

// staticTokens verifies only the tokens it was seeded with.
type staticTokens map[string]uuid.UUID

func (s staticTokens) Issue(userID uuid.UUID) (string, error) {
	return "token-" + userID.String(), nil
}

func (s staticTokens) Verify(token string) (uuid.UUID, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return uuid.Nil, service.ErrUnauthorized
}

type staticUsers map[uuid.UUID]*model.User

func (s staticUsers) CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	return nil, store.ErrEmailExists
}

func (s staticUsers) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, store.ErrNotFound
}

func (s staticUsers) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if user, ok := s[id]; ok {
		return user, nil
	}
	return nil, store.ErrNotFound
}

func newProtectedRouter(tokens service.TokenManager, users store.UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens, users), func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			c.String(http.StatusInternalServerError, "no user in context")
			return
		}
		c.String(http.StatusOK, user.Email)
	})
	return r
}

func TestAuthMiddlewareRejections(t *testing.T) {
	userID := uuid.New()
	tokens := staticTokens{"good": userID, "orphan": uuid.New()}
	users := staticUsers{userID: {ID: userID, Email: "a@x.com"}}
	r := newProtectedRouter(tokens, users)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Token good"},
		{"empty token", "Bearer   "},
		{"invalid token", "Bearer bad"},
		{"unknown identity", "Bearer orphan"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestAuthMiddlewareAttachesIdentity(t *testing.T) {
	userID := uuid.New()
	tokens := staticTokens{"good": userID}
	users := staticUsers{userID: {ID: userID, Email: "a@x.com"}}
	r := newProtectedRouter(tokens, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "a@x.com" {
		t.Fatalf("expected resolved identity, got %q", w.Body.String())
	}
}

func TestGetCurrentUserWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if GetCurrentUser(c) != nil {
		t.Fatal("expected nil user on unauthenticated context")
	}
}
