package delivery

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmls/domain"
	"gmls/middleware"
	"gmls/services/gmls/repository"
)

func TestLoginEstablishesSessionAndIssuesToken(t *testing.T) {
	app := fiber.New()
	auth := repository.NewSessionAuthService()
	NewAuthDelivery(app, auth)

	req := httptest.NewRequest("POST", "/login/user", strings.NewReader(`{"uid":"uid-1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body domain.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)

	claims, err := middleware.VerifyJWT(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UID)

	uid, err := auth.CurrentUserID(context.Background())
	require.NoError(t, err, "login signs the session in for the use cases")
	assert.Equal(t, "uid-1", uid)
}

func TestLoginTokenPassesAuthRequired(t *testing.T) {
	app := fiber.New()
	auth := repository.NewSessionAuthService()
	NewAuthDelivery(app, auth)

	app.Get("/whoami", middleware.AuthRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uid": c.Locals("uid")})
	})

	login := httptest.NewRequest("POST", "/login/user", strings.NewReader(`{"uid":"uid-1"}`))
	login.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(login)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body domain.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	authed := httptest.NewRequest("GET", "/whoami", nil)
	authed.Header.Set("Authorization", body.Token)

	resp, err = app.Test(authed)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var who struct {
		UID string `json:"uid"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&who))
	assert.Equal(t, "uid-1", who.UID)
}

func TestLoginRejectsMissingUID(t *testing.T) {
	app := fiber.New()
	NewAuthDelivery(app, repository.NewSessionAuthService())

	req := httptest.NewRequest("POST", "/login/user", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
