package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de LivestockReportRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	financials    []repository.FlockFinancialRow
	financialsErr error
	production    []repository.ProductionSummaryRow
	productionErr error
	breakdown     []repository.ExpenseBreakdownRow
	breakdownErr  error

	lastStart *time.Time
	lastEnd   *time.Time
}

func (f *fakeReportRepo) GetFlockFinancials(_ context.Context) ([]repository.FlockFinancialRow, error) {
	return f.financials, f.financialsErr
}

func (f *fakeReportRepo) GetProductionSummary(_ context.Context, startDate, endDate *time.Time) ([]repository.ProductionSummaryRow, error) {
	f.lastStart, f.lastEnd = startDate, endDate
	return f.production, f.productionErr
}

func (f *fakeReportRepo) GetExpenseBreakdown(_ context.Context) ([]repository.ExpenseBreakdownRow, error) {
	return f.breakdown, f.breakdownErr
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivación de inversión y neto por lote
// ──────────────────────────────────────────────────────────────────────────────

func TestLivestockReport_DerivaInversionYNeto(t *testing.T) {
	repo := &fakeReportRepo{financials: []repository.FlockFinancialRow{{
		FlockID:           "f1",
		FlockName:         "Lote A",
		TotalAnimals:      10,
		ActiveAnimals:     8,
		SoldAnimals:       2,
		PurchaseCost:      dec("1000"),
		TotalExpenses:     dec("300"),
		MedicalCosts:      dec("100"),
		SaleRevenue:       dec("900"),
		ProductionRevenue: dec("600"),
	}}}
	uc := NewLivestockReportUseCase(repo)

	out, err := uc.GetReport(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, out.FinancialSummary, 1)

	row := out.FinancialSummary[0]
	assert.True(t, row.TotalInvestment.Equal(dec("1400")),
		"inversión = 1000 + 300 + 100, obtuvo %s", row.TotalInvestment)
	assert.True(t, row.NetProfitLoss.Equal(dec("100")),
		"neto = 900 + 600 − 1400, obtuvo %s", row.NetProfitLoss)
}

// Las tres secciones llegan lado a lado, sin cruzarse entre sí.
func TestLivestockReport_TresSeccionesIndependientes(t *testing.T) {
	repo := &fakeReportRepo{
		financials: []repository.FlockFinancialRow{
			{FlockID: "f1", FlockName: "Lote A"},
			{FlockID: "f2", FlockName: "Lote B"},
		},
		production: []repository.ProductionSummaryRow{
			{ProductType: "milk", RecordCount: 4, TotalQuantity: dec("480"), TotalRevenue: dec("720")},
		},
		breakdown: []repository.ExpenseBreakdownRow{
			{Category: "feed", EntryCount: 6, TotalAmount: dec("1200")},
			{Category: "vet", EntryCount: 2, TotalAmount: dec("150")},
		},
	}
	uc := NewLivestockReportUseCase(repo)

	out, err := uc.GetReport(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Len(t, out.FinancialSummary, 2)
	require.Len(t, out.ProductionSummary, 1)
	assert.Equal(t, "milk", out.ProductionSummary[0].ProductType)
	require.Len(t, out.ExpenseBreakdown, 2)
	assert.Equal(t, "feed", out.ExpenseBreakdown[0].Category)
}

// El rango de fechas solo viaja a la sección de producción y se ecoa
// en el timeframe de la respuesta.
func TestLivestockReport_FechasSoloAplicanAProduccion(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewLivestockReportUseCase(repo)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	out, err := uc.GetReport(context.Background(), &start, &end)
	require.NoError(t, err)

	require.NotNil(t, repo.lastStart)
	assert.Equal(t, start, *repo.lastStart)
	require.NotNil(t, repo.lastEnd)
	assert.Equal(t, end, *repo.lastEnd)

	require.NotNil(t, out.Timeframe.StartDate)
	assert.Equal(t, "2026-01-01", *out.Timeframe.StartDate)
	require.NotNil(t, out.Timeframe.EndDate)
	assert.Equal(t, "2026-03-31", *out.Timeframe.EndDate)
}

// Sin datos: secciones vacías (no nil) y sin error.
func TestLivestockReport_SinDatos_SeccionesVacias(t *testing.T) {
	uc := NewLivestockReportUseCase(&fakeReportRepo{})

	out, err := uc.GetReport(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.NotNil(t, out.FinancialSummary)
	assert.Empty(t, out.FinancialSummary)
	assert.Empty(t, out.ProductionSummary)
	assert.Empty(t, out.ExpenseBreakdown)
}

// Un error en cualquiera de las tres consultas invalida el reporte completo.
func TestLivestockReport_ErrorEnCualquierSeccion_SePropaga(t *testing.T) {
	boom := errors.New("timeout")

	casos := []struct {
		nombre string
		repo   *fakeReportRepo
	}{
		{"financiero", &fakeReportRepo{financialsErr: boom}},
		{"produccion", &fakeReportRepo{productionErr: boom}},
		{"gastos", &fakeReportRepo{breakdownErr: boom}},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			uc := NewLivestockReportUseCase(caso.repo)
			out, err := uc.GetReport(context.Background(), nil, nil)
			assert.Error(t, err)
			assert.Nil(t, out)
		})
	}
}

// Neto negativo cuando la inversión supera los ingresos.
func TestLivestockReport_NetoNegativo(t *testing.T) {
	repo := &fakeReportRepo{financials: []repository.FlockFinancialRow{{
		FlockID:       "f1",
		FlockName:     "Lote en pérdida",
		PurchaseCost:  dec("2000"),
		TotalExpenses: dec("500"),
		MedicalCosts:  decimal.Zero,
		SaleRevenue:   dec("1800"),
	}}}
	uc := NewLivestockReportUseCase(repo)

	out, err := uc.GetReport(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, out.FinancialSummary, 1)

	assert.True(t, out.FinancialSummary[0].NetProfitLoss.Equal(dec("-700")))
}
