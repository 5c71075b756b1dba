package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/webstore/catalog-api/pkg/auth"
)

func guardedApp(t *testing.T, svc *Service) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", NewGuard(svc), func(c *fiber.Ctx) error {
		id, _ := c.Locals(LocalsAccountID).(int64)
		email, _ := c.Locals(LocalsEmail).(string)
		return c.JSON(fiber.Map{"accountId": id, "email": email})
	})
	return app
}

func TestGuard_MissingHeader(t *testing.T) {
	svc := NewService("secret", "catalog-api", time.Hour)
	app := guardedApp(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuard_InvalidToken(t *testing.T) {
	svc := NewService("secret", "catalog-api", time.Hour)
	app := guardedApp(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGuard_ExpiredToken(t *testing.T) {
	expired := NewService("secret", "catalog-api", -time.Minute)
	tok, err := expired.Issue(context.Background(), auth.Account{ID: 7, Email: "a@x.com"})
	require.NoError(t, err)

	svc := NewService("secret", "catalog-api", time.Hour)
	app := guardedApp(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGuard_ValidToken(t *testing.T) {
	svc := NewService("secret", "catalog-api", time.Hour)
	tok, err := svc.Issue(context.Background(), auth.Account{ID: 7, Email: "a@x.com"})
	require.NoError(t, err)

	app := guardedApp(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuard_BareTokenWithoutPrefix(t *testing.T) {
	svc := NewService("secret", "catalog-api", time.Hour)
	tok, err := svc.Issue(context.Background(), auth.Account{ID: 7, Email: "a@x.com"})
	require.NoError(t, err)

	app := guardedApp(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
