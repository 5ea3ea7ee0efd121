package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/factora/pos-api/internal/interfaces/http"
)

// Los casos 400 se validan antes de tocar el caso de uso, así que basta un
// handler sin dependencias reales.
func buildMovementApp() *fiber.App {
	app := fiber.New()
	h := apphttp.NewMovementHandler(nil)
	app.Post("/api/movimientos", h.Create)
	app.Get("/api/productos/:id/movimientos", h.ListByProduct)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestMovementCreate_CuerpoInvalido_Retorna400(t *testing.T) {
	app := buildMovementApp()
	resp := postJSON(t, app, "/api/movimientos", "{esto no es json")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovementCreate_TipoDesconocido_Retorna400(t *testing.T) {
	app := buildMovementApp()
	resp := postJSON(t, app, "/api/movimientos",
		`{"id_producto": 1, "tipo": "AJUSTE", "cantidad": 5}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"un tipo fuera de ENTRADA|SALIDA debe rechazarse")
}

func TestMovementCreate_CantidadNoPositiva_Retorna400(t *testing.T) {
	app := buildMovementApp()
	for _, body := range []string{
		`{"id_producto": 1, "tipo": "ENTRADA", "cantidad": 0}`,
		`{"id_producto": 1, "tipo": "SALIDA", "cantidad": -3}`,
	} {
		resp := postJSON(t, app, "/api/movimientos", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "cuerpo: %s", body)
		resp.Body.Close()
	}
}

func TestMovementCreate_SinProducto_Retorna400(t *testing.T) {
	app := buildMovementApp()
	resp := postJSON(t, app, "/api/movimientos", `{"tipo": "ENTRADA", "cantidad": 5}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovementListByProduct_IDInvalido_Retorna400(t *testing.T) {
	app := buildMovementApp()
	req := httptest.NewRequest(http.MethodGet, "/api/productos/abc/movimientos", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
