package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

type stubTokenService struct {
	owner uuid.UUID
}

func (s *stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != "good" {
		return nil, errors.New("invalid token")
	}
	return &adapter.TokenClaims{UserID: s.owner, Email: "owner@example.com"}, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthenticate(t *testing.T) {
	owner := uuid.New()
	auth := NewAuthMiddleware(&stubTokenService{owner: owner})

	router := gin.New()
	router.GET("/me", auth.Authenticate(), func(c *gin.Context) {
		id, ok := GetOwnerIDFromContext(c)
		email, _ := GetOwnerEmailFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"owner_id": id.String(), "email": email})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", http.StatusUnauthorized, string(domainerror.ErrCodeMissingToken)},
		{"not bearer", "Basic abc", http.StatusUnauthorized, string(domainerror.ErrCodeInvalidToken)},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, string(domainerror.ErrCodeMissingToken)},
		{"invalid token", "Bearer bad", http.StatusUnauthorized, string(domainerror.ErrCodeInvalidToken)},
		{"valid token", "Bearer good", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				var resp dto.ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode error: %v", err)
				}
				if resp.Code != tt.wantCode {
					t.Errorf("code = %s, want %s", resp.Code, tt.wantCode)
				}
				return
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body["owner_id"] != owner.String() || body["email"] != "owner@example.com" {
				t.Errorf("unexpected body %v", body)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiterWithConfig(2, time.Minute)
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	alice := uuid.New()
	bob := uuid.New()

	router := gin.New()
	router.GET("/export", func(c *gin.Context) {
		if id, err := uuid.Parse(c.Query("owner")); err == nil {
			c.Set(string(OwnerIDKey), id)
		}
		c.Next()
	}, limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	call := func(owner uuid.UUID) int {
		req := httptest.NewRequest(http.MethodGet, "/export?owner="+owner.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := call(alice); code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, code)
		}
	}
	if code := call(alice); code != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", code)
	}
	if code := call(bob); code != http.StatusOK {
		t.Errorf("other owner status = %d, want 200", code)
	}

	current = current.Add(2 * time.Minute)
	if code := call(alice); code != http.StatusOK {
		t.Errorf("status after window = %d, want 200", code)
	}

	current = current.Add(2 * time.Minute)
	limiter.Cleanup()
	if len(limiter.entries) != 0 {
		t.Errorf("entries after cleanup = %d, want 0", len(limiter.entries))
	}
}
