package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/Rubennaldos/pecaditos-web-sub000/internal/interfaces/http"
	pkgjwt "github.com/Rubennaldos/pecaditos-web-sub000/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "pecaditos-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireModule para autorizar el acceso al módulo
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(moduleID string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireModule(moduleID),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el rol y los módulos indicados.
func tokenFor(t *testing.T, role string, modules []string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, modules, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireModule
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: rol admin ve todos los módulos → HTTP 200.
func TestRequireModule_AdminVeTodo(t *testing.T) {
	app := buildTestApp("orders-admin")
	resp := doRequest(t, app, tokenFor(t, "admin", nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe acceder a cualquier módulo sin grants explícitos")
}

// Caso 1b: grant exacto del módulo → HTTP 200.
func TestRequireModule_GrantExacto(t *testing.T) {
	app := buildTestApp("orders-admin")
	resp := doRequest(t, app, tokenFor(t, "pedidos", []string{"orders-admin"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "pedidos", body["role"], "el role debe ser pedidos")
}

// Caso 1c: grant por alias legado (pedidos ↔ orders-admin) → HTTP 200.
func TestRequireModule_GrantPorAlias(t *testing.T) {
	app := buildTestApp("orders-admin")
	resp := doRequest(t, app, tokenFor(t, "pedidos", []string{"pedidos"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el grant legado pedidos debe abrir orders-admin")
}

// Caso 2: grant de otro módulo → HTTP 403 Forbidden.
func TestRequireModule_SinGrantDelModulo(t *testing.T) {
	app := buildTestApp("orders-admin")
	resp := doRequest(t, app, tokenFor(t, "reparto", []string{"delivery-admin"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"reparto no debe acceder al panel de pedidos")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: sin grants en absoluto → HTTP 403 (se niega ante la duda).
func TestRequireModule_SinGrants_SeNiega(t *testing.T) {
	app := buildTestApp("production-admin")
	resp := doRequest(t, app, tokenFor(t, "produccion", nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"sin grants la resolución debe negar, nunca asumir acceso")
}

// Caso 3: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireModule_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("orders-admin")
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireModule_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("orders-admin")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
			"modules": apphttp.GetModules(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "pedidos", []string{"orders-admin", "dashboard"}))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID  string   `json:"user_id"`
		Role    string   `json:"role"`
		Modules []string `json:"modules"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, "pedidos", body.Role)
	assert.Equal(t, []string{"orders-admin", "dashboard"}, body.Modules)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con módulos
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConModulos(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "produccion", []string{"production-admin"}, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "produccion", claims.Role)
	assert.Equal(t, []string{"production-admin"}, claims.Modules)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", nil, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", nil, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
