package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"skyouth_backend/internals/configs"
	"skyouth_backend/internals/constants"
)

const testSecret = "test-secret"

func init() {
	configs.JWTSecret = testSecret
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func newApp(mw ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{}, mw...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		id, _ := c.Locals("user_id").(string)
		role, _ := c.Locals("userRole").(string)
		return c.SendString(id + "|" + role)
	})
	app.Get("/", handlers...)
	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	valid := signToken(t, jwt.MapClaims{"id": userID.String(), "role": "Admin", "exp": time.Now().Add(time.Hour).Unix()})
	expired := signToken(t, jwt.MapClaims{"id": userID.String(), "exp": time.Now().Add(-time.Hour).Unix()})
	noID := signToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid", header: "Bearer " + valid, want: fiber.StatusOK},
		{name: "missing", header: "", want: fiber.StatusUnauthorized},
		{name: "bad format", header: "Token " + valid, want: fiber.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, want: fiber.StatusUnauthorized},
		{name: "no user id", header: "Bearer " + noID, want: fiber.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc.def.ghi", want: fiber.StatusUnauthorized},
	}

	app := newApp(AuthMiddleware(nil), OnlyRoles("", RoleAdmin, RoleOwner))
	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if resp.StatusCode != tt.want {
			t.Fatalf("%s: status = %d, want %d", tt.name, resp.StatusCode, tt.want)
		}
	}
}

func TestOnlyRoles_Forbidden(t *testing.T) {
	t.Parallel()

	tok := signToken(t, jwt.MapClaims{"id": uuid.NewString(), "role": "user", "exp": time.Now().Add(time.Hour).Unix()})
	app := newApp(AuthMiddleware(nil), OnlyRoles("admins only", RoleAdmin))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestOnlyRoles_FormDeletionNeedsAdmin(t *testing.T) {
	t.Parallel()

	msg := constants.RoleErrorAdmin("form deletion")
	tests := []struct {
		role   string
		status int
	}{
		{constants.RoleStaff, fiber.StatusForbidden},
		{constants.RoleUser, fiber.StatusForbidden},
		{constants.RoleAdmin, fiber.StatusOK},
		{constants.RoleOwner, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			t.Parallel()

			tok := signToken(t, jwt.MapClaims{"id": uuid.NewString(), "role": tt.role, "exp": time.Now().Add(time.Hour).Unix()})
			app := newApp(AuthMiddleware(nil), OnlyRoles(msg, constants.OwnerAndAbove...))

			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set("Authorization", "Bearer "+tok)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.status == fiber.StatusForbidden {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != msg {
					t.Fatalf("body = %q, want %q", body, msg)
				}
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Parallel()

	app := newApp(OptionalAuthMiddleware(nil))

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("anonymous request: status=%v err=%v", resp, err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("bad token should continue anonymously: status=%v err=%v", resp, err)
	}
}
