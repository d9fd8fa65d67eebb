package finance

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de SummaryRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeSummaryRepo struct {
	flocks  []repository.FlockSummaryResult
	animals []repository.AnimalSummaryResult
	metrics *repository.FlockMetricsResult
	err     error
}

func (f *fakeSummaryRepo) GetFlockSummaries(_ context.Context, _ *string) ([]repository.FlockSummaryResult, error) {
	return f.flocks, f.err
}

func (f *fakeSummaryRepo) GetAnimalSummaries(_ context.Context, _ *string) ([]repository.AnimalSummaryResult, error) {
	return f.animals, f.err
}

func (f *fakeSummaryRepo) GetFlockMetrics(_ context.Context, _ string) (*repository.FlockMetricsResult, error) {
	return f.metrics, f.err
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivación de neto y ROI
// ──────────────────────────────────────────────────────────────────────────────

// Compra 1000, gastos 200, venta 1500 → neto 300, ROI 25% (300/1200).
func TestSummary_EscenarioBase_Neto300ROI25(t *testing.T) {
	repo := &fakeSummaryRepo{flocks: []repository.FlockSummaryResult{{
		FlockID:           "f1",
		FlockName:         "Lote A",
		AnimalCount:       10,
		PurchaseCost:      dec("1000"),
		SaleRevenue:       dec("1500"),
		ProductionRevenue: decimal.Zero,
		TotalExpenses:     dec("200"),
		MedicalCosts:      decimal.Zero,
	}}}
	uc := NewSummaryUseCase(repo)

	out, err := uc.GetFlockSummaries(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.True(t, out[0].NetProfitLoss.Equal(dec("300")),
		"neto = 1500 − 1000 − 200 = 300, obtuvo %s", out[0].NetProfitLoss)
	assert.True(t, out[0].ROIPercentage.Equal(dec("25")),
		"roi = 300 / 1200 × 100 = 25, obtuvo %s", out[0].ROIPercentage)
}

// Conservación: neto = venta + producción − compra − gastos − tratamientos.
func TestSummary_Conservacion(t *testing.T) {
	row := repository.FlockSummaryResult{
		FlockID:           "f1",
		FlockName:         "Lote B",
		PurchaseCost:      dec("350.50"),
		SaleRevenue:       dec("980.25"),
		ProductionRevenue: dec("120.75"),
		TotalExpenses:     dec("210.10"),
		MedicalCosts:      dec("45.40"),
	}
	uc := NewSummaryUseCase(&fakeSummaryRepo{flocks: []repository.FlockSummaryResult{row}})

	out, err := uc.GetFlockSummaries(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, out, 1)

	esperado := row.SaleRevenue.Add(row.ProductionRevenue).
		Sub(row.PurchaseCost).Sub(row.TotalExpenses).Sub(row.MedicalCosts)
	assert.True(t, out[0].NetProfitLoss.Equal(esperado),
		"el neto debe conservar la identidad contable")
}

// Base de costo cero → ROI 0, nunca NaN ni pánico por división por cero.
func TestSummary_BaseCero_ROICero(t *testing.T) {
	repo := &fakeSummaryRepo{flocks: []repository.FlockSummaryResult{{
		FlockID:           "f1",
		FlockName:         "Lote regalado",
		SaleRevenue:       dec("500"),
		ProductionRevenue: decimal.Zero,
		PurchaseCost:      decimal.Zero,
		TotalExpenses:     decimal.Zero,
		MedicalCosts:      decimal.Zero,
	}}}
	uc := NewSummaryUseCase(repo)

	out, err := uc.GetFlockSummaries(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.True(t, out[0].ROIPercentage.IsZero(),
		"sin base de costo el ROI debe ser 0, obtuvo %s", out[0].ROIPercentage)
	assert.True(t, out[0].NetProfitLoss.Equal(dec("500")))
}

// Lecturas puras: dos llamadas con el mismo repo producen el mismo resultado.
func TestSummary_LecturaIdempotente(t *testing.T) {
	repo := &fakeSummaryRepo{animals: []repository.AnimalSummaryResult{{
		LivestockID:   "a1",
		TagID:         "VAC-001",
		FlockID:       "f1",
		Status:        "active",
		PurchasePrice: dec("500"),
		SaleRevenue:   dec("800"),
		TotalExpenses: dec("100"),
		DaysOwned:     90,
	}}}
	uc := NewSummaryUseCase(repo)

	primera, err := uc.GetAnimalSummaries(context.Background(), nil)
	require.NoError(t, err)
	segunda, err := uc.GetAnimalSummaries(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, primera, segunda)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato de métricas de lote
// ──────────────────────────────────────────────────────────────────────────────

// Lote inexistente: el repo devuelve nil y el use case lo propaga sin error.
func TestSummary_MetricasLoteInexistente_Nil(t *testing.T) {
	uc := NewSummaryUseCase(&fakeSummaryRepo{metrics: nil})

	out, err := uc.GetFlockMetrics(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out, "lote inexistente debe devolver nil, no un rollup vacío")
}

func TestSummary_MetricasLote_DerivaYCuenta(t *testing.T) {
	repo := &fakeSummaryRepo{metrics: &repository.FlockMetricsResult{
		FlockSummaryResult: repository.FlockSummaryResult{
			FlockID:       "f1",
			FlockName:     "Lote A",
			AnimalCount:   5,
			PurchaseCost:  dec("1000"),
			SaleRevenue:   dec("1500"),
			TotalExpenses: dec("200"),
		},
		ActiveCount:   3,
		SoldCount:     1,
		DeceasedCount: 1,
	}}
	uc := NewSummaryUseCase(repo)

	out, err := uc.GetFlockMetrics(context.Background(), "f1")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 3, out.ActiveCount)
	assert.Equal(t, 1, out.SoldCount)
	assert.Equal(t, 1, out.DeceasedCount)
	assert.True(t, out.NetProfitLoss.Equal(dec("300")))
	assert.True(t, out.ROIPercentage.Equal(dec("25")))
}
