package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/agendly/booking-system/internal/core/domain"
	"github.com/agendly/booking-system/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, name, email, password string, provider bool) (*domain.User, error)
	updateFn   func(ctx context.Context, userID uint, input ports.UpdateProfileInput) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, name, email, password string, provider bool) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password, provider)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID uint, input ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateFn(ctx, userID, input)
}

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, name, email, password string, provider bool) (*domain.User, error) {
			if name != "Sam Barber" || !provider {
				t.Fatalf("unexpected args: %s provider=%v", name, provider)
			}
			return &domain.User{ID: 3, Name: name, Email: email, Provider: provider, PasswordHash: "sekrit-hash"}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/users",
		`{"name":"Sam Barber","email":"sam@example.com","password":"hunter22","provider":true}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["provider"] != true || resp["email"] != "sam@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	for _, key := range []string{"password", "password_hash"} {
		if _, leaked := resp[key]; leaked {
			t.Fatalf("%s must never appear in responses", key)
		}
	}
}

func TestUserHandler_Register_Validation(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, name, email, password string, provider bool) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	cases := []string{
		`{"email":"sam@example.com","password":"hunter22"}`, // missing name
		`{"name":"Sam","email":"nope","password":"hunter22"}`,
		`{"name":"Sam","email":"sam@example.com","password":"short"}`,
	}
	for _, body := range cases {
		c, _ := newTestContext(http.MethodPost, "/users", body)
		err := handler.Register(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Errorf("body %q: error = %v, want 400", body, err)
		}
	}
}

func TestUserHandler_Register_EmailTaken(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, name, email, password string, provider bool) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/users",
		`{"name":"Sam Barber","email":"sam@example.com","password":"hunter22"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("error = %v, want ErrEmailTaken passed through", err)
	}
}

func TestUserHandler_Update_Success(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID uint, input ports.UpdateProfileInput) (*domain.User, error) {
			if userID != 7 {
				t.Fatalf("userID = %d, want 7", userID)
			}
			if input.Password != "correct-horse" || input.OldPassword != "hunter22" {
				t.Fatalf("password change not forwarded: %+v", input)
			}
			return &domain.User{ID: 7, Name: "Dana C. Cole", Email: "dana@example.com"}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/users",
		`{"name":"Dana C. Cole","old_password":"hunter22","password":"correct-horse","confirm_password":"correct-horse"}`)
	c.Set("user_id", uint(7))

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_ConfirmationMismatch(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID uint, input ports.UpdateProfileInput) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newTestContext(http.MethodPut, "/users",
		`{"old_password":"hunter22","password":"correct-horse","confirm_password":"different"}`)
	c.Set("user_id", uint(7))

	err := handler.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("error = %v, want 400", err)
	}
}

func TestUserHandler_Update_MissingAuth(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodPut, "/users", `{"name":"Dana"}`)
	err := handler.Update(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("error = %v, want 401", err)
	}
}
