package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	apphttp "github.com/jhoicas/Granja-api/internal/interfaces/http"
)

// fakeSummaryReader implementa el contrato mínimo del handler de resúmenes.
type fakeSummaryReader struct {
	metrics      *dto.FlockMetricsDTO
	metricsCalls int
}

func (f *fakeSummaryReader) GetFlockSummaries(context.Context, *string) ([]dto.FlockSummaryDTO, error) {
	return nil, nil
}

func (f *fakeSummaryReader) GetAnimalSummaries(context.Context, *string) ([]dto.AnimalSummaryDTO, error) {
	return nil, nil
}

func (f *fakeSummaryReader) GetFlockMetrics(_ context.Context, _ string) (*dto.FlockMetricsDTO, error) {
	f.metricsCalls++
	return f.metrics, nil
}

func buildSummaryApp(reader *fakeSummaryReader) *fiber.App {
	app := fiber.New()
	h := apphttp.NewSummaryHandler(reader)
	app.Get("/api/financial-summary/flocks/:flockId/metrics", h.GetFlockMetrics)
	return app
}

func getMetrics(t *testing.T, app *fiber.App, flockID string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/financial-summary/flocks/"+flockID+"/metrics", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Un flockId que no es uuid no puede nombrar ningún lote: 404 sin tocar
// el caso de uso (nunca un 500 por error de sintaxis en la consulta).
func TestGetFlockMetrics_IdMalformado_Retorna404(t *testing.T) {
	reader := &fakeSummaryReader{}
	app := buildSummaryApp(reader)

	resp := getMetrics(t, app, "no-soy-un-uuid")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, reader.metricsCalls, "un id malformado no debe llegar al caso de uso")

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}

// Un uuid bien formado pero inexistente también es 404 (nunca 200 vacío).
func TestGetFlockMetrics_LoteInexistente_Retorna404(t *testing.T) {
	reader := &fakeSummaryReader{metrics: nil}
	app := buildSummaryApp(reader)

	resp := getMetrics(t, app, "11111111-1111-1111-1111-111111111111")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 1, reader.metricsCalls)
}

func TestGetFlockMetrics_LoteExistente_Retorna200(t *testing.T) {
	reader := &fakeSummaryReader{metrics: &dto.FlockMetricsDTO{
		FlockSummaryDTO: dto.FlockSummaryDTO{FlockID: "11111111-1111-1111-1111-111111111111", FlockName: "Lote A"},
		ActiveCount:     3,
	}}
	app := buildSummaryApp(reader)

	resp := getMetrics(t, app, "11111111-1111-1111-1111-111111111111")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
}
