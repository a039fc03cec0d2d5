package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localwork/marketplace/internal/identity"
	"github.com/localwork/marketplace/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatedApp(message string) *fiber.App {
	app := fiber.New(fiber.Config{Views: web.NewEngine()})
	app.Use(func(c *fiber.Ctx) error {
		switch c.Query("as") {
		case "loading":
			identity.WithState(c, identity.Loading())
		case "member":
			identity.WithState(c, identity.Authenticated(identity.Member{ID: "m-1", Nickname: "kim"}))
		}
		return c.Next()
	})
	app.Get("/secret", Protected(message), func(c *fiber.Ctx) error {
		return c.SendString("secret content for " + identity.FromCtx(c).Member().DisplayName())
	})
	return app
}

func call(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestProtectedLoading(t *testing.T) {
	code, body := call(t, gatedApp("Members only"), "/secret?as=loading")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, "Loading...")
	assert.NotContains(t, body, "secret content")
	assert.NotContains(t, body, "Members only")
}

func TestProtectedSignInPrompt(t *testing.T) {
	code, body := call(t, gatedApp("Members only"), "/secret")
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Contains(t, body, "Members only")
	assert.Contains(t, body, "/auth/login?next=%2fsecret")
	assert.NotContains(t, body, "secret content")
}

func TestProtectedDefaultMessage(t *testing.T) {
	_, body := call(t, gatedApp(""), "/secret")
	assert.Contains(t, body, identity.DefaultSignInMessage)
}

func TestProtectedPassesMembers(t *testing.T) {
	code, body := call(t, gatedApp("Members only"), "/secret?as=member")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "secret content for kim", body)
}
