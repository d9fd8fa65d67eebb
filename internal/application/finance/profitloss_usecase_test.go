package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de FinanceRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeFinanceRepo struct {
	summary    repository.ProfitLossSummaryResult
	summaryErr error
	roiByCrop  []repository.CropROIResult
	roiErr     error

	periodRows []repository.PeriodROIResult
	periodErr  error
	// períodos con los que fue invocado GetROIByPeriod
	periodsCalled []string

	// filtros recibidos en la última llamada
	lastStart *time.Time
	lastEnd   *time.Time
}

func (f *fakeFinanceRepo) GetProfitLossSummary(_ context.Context, startDate, endDate *time.Time) (repository.ProfitLossSummaryResult, error) {
	f.lastStart, f.lastEnd = startDate, endDate
	return f.summary, f.summaryErr
}

func (f *fakeFinanceRepo) GetROIByCrop(_ context.Context, _, _ *time.Time) ([]repository.CropROIResult, error) {
	return f.roiByCrop, f.roiErr
}

func (f *fakeFinanceRepo) GetROIByPeriod(_ context.Context, period string) ([]repository.PeriodROIResult, error) {
	f.periodsCalled = append(f.periodsCalled, period)
	return f.periodRows, f.periodErr
}

// ──────────────────────────────────────────────────────────────────────────────
// GetProfitLoss
// ──────────────────────────────────────────────────────────────────────────────

func TestProfitLoss_DerivaNetoYROI(t *testing.T) {
	repo := &fakeFinanceRepo{summary: repository.ProfitLossSummaryResult{
		TotalRevenue:  dec("3400"),
		TotalExpenses: dec("1200"),
	}}
	uc := NewProfitLossUseCase(repo)

	out, err := uc.GetProfitLoss(context.Background(), nil, nil)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Summary.NetProfit.Equal(dec("2200")),
		"neto = 3400 − 1200, obtuvo %s", out.Summary.NetProfit)
	// roi = 2200 / 1200 × 100 = 183.33 (redondeado a 2 decimales)
	assert.True(t, out.Summary.ROIPercentage.Equal(dec("183.33")),
		"roi esperado 183.33, obtuvo %s", out.Summary.ROIPercentage)
}

// Gastos cero → ROI 0, nunca división por cero.
func TestProfitLoss_SinGastos_ROICero(t *testing.T) {
	repo := &fakeFinanceRepo{summary: repository.ProfitLossSummaryResult{
		TotalRevenue:  dec("500"),
		TotalExpenses: decimal.Zero,
	}}
	uc := NewProfitLossUseCase(repo)

	out, err := uc.GetProfitLoss(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, out.Summary.ROIPercentage.IsZero())
	assert.True(t, out.Summary.NetProfit.Equal(dec("500")))
}

// Fechas nil deben llegar al repo como nil (sin filtro) y el timeframe
// de la respuesta debe reflejarlo con null.
func TestProfitLoss_SinFechas_TimeframeNull(t *testing.T) {
	repo := &fakeFinanceRepo{}
	uc := NewProfitLossUseCase(repo)

	out, err := uc.GetProfitLoss(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Nil(t, repo.lastStart)
	assert.Nil(t, repo.lastEnd)
	assert.Nil(t, out.Timeframe.StartDate)
	assert.Nil(t, out.Timeframe.EndDate)
}

// Solo startDate: los filtros son independientes.
func TestProfitLoss_SoloStartDate_EcoEnTimeframe(t *testing.T) {
	repo := &fakeFinanceRepo{}
	uc := NewProfitLossUseCase(repo)

	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	out, err := uc.GetProfitLoss(context.Background(), &start, nil)
	require.NoError(t, err)

	require.NotNil(t, out.Timeframe.StartDate)
	assert.Equal(t, "2026-01-15", *out.Timeframe.StartDate)
	assert.Nil(t, out.Timeframe.EndDate)
}

func TestProfitLoss_IncluyeRankingPorCultivo(t *testing.T) {
	repo := &fakeFinanceRepo{
		summary: repository.ProfitLossSummaryResult{
			TotalRevenue:  dec("3400"),
			TotalExpenses: dec("1200"),
		},
		roiByCrop: []repository.CropROIResult{
			{CropID: "c1", CropName: "Maíz", Status: "SOLD", Revenue: dec("3400"), TotalExpenses: dec("1200"), NetProfit: dec("2200"), ROIPercentage: dec("183.33")},
			{CropID: "c2", CropName: "Papa", Status: "HARVESTED", Revenue: dec("0"), TotalExpenses: dec("300"), NetProfit: dec("-300"), ROIPercentage: dec("-100")},
		},
	}
	uc := NewProfitLossUseCase(repo)

	out, err := uc.GetProfitLoss(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, out.ROIByCrop, 2)

	assert.Equal(t, "Maíz", out.ROIByCrop[0].CropName)
	assert.True(t, out.ROIByCrop[1].NetProfit.IsNegative())
}

// Lecturas puras: dos llamadas consecutivas producen el mismo reporte.
func TestProfitLoss_LecturaIdempotente(t *testing.T) {
	repo := &fakeFinanceRepo{summary: repository.ProfitLossSummaryResult{
		TotalRevenue:  dec("100"),
		TotalExpenses: dec("40"),
	}}
	uc := NewProfitLossUseCase(repo)

	primera, err := uc.GetProfitLoss(context.Background(), nil, nil)
	require.NoError(t, err)
	segunda, err := uc.GetProfitLoss(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, primera, segunda)
}

func TestProfitLoss_ErrorDelRepo_SePropaga(t *testing.T) {
	repo := &fakeFinanceRepo{summaryErr: errors.New("conexión perdida")}
	uc := NewProfitLossUseCase(repo)

	out, err := uc.GetProfitLoss(context.Background(), nil, nil)
	assert.Error(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetROIAnalysis
// ──────────────────────────────────────────────────────────────────────────────

// Sin período explícito → monthly.
func TestROIAnalysis_PeriodoPorDefecto_Monthly(t *testing.T) {
	repo := &fakeFinanceRepo{}
	uc := NewProfitLossUseCase(repo)

	out, err := uc.GetROIAnalysis(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "monthly", out.Period)
	require.Len(t, repo.periodsCalled, 1)
	assert.Equal(t, "monthly", repo.periodsCalled[0])
}

// Período fuera del enum → ErrInvalidInput, sin tocar el repo.
func TestROIAnalysis_PeriodoInvalido_RetornaError(t *testing.T) {
	repo := &fakeFinanceRepo{}
	uc := NewProfitLossUseCase(repo)

	out, err := uc.GetROIAnalysis(context.Background(), "daily")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, out)
	assert.Empty(t, repo.periodsCalled, "un período inválido no debe llegar al repositorio")
}

func TestROIAnalysis_PeriodosValidos(t *testing.T) {
	for _, period := range []string{"weekly", "monthly", "quarterly"} {
		repo := &fakeFinanceRepo{periodRows: []repository.PeriodROIResult{{
			Period:           "2026-02",
			CropCount:        3,
			TotalRevenue:     dec("900"),
			TotalExpenses:    dec("450"),
			AvgROIPercentage: dec("100"),
			AvgNetProfit:     dec("150"),
		}}}
		uc := NewProfitLossUseCase(repo)

		out, err := uc.GetROIAnalysis(context.Background(), period)
		require.NoError(t, err, "período %s debe ser aceptado", period)
		assert.Equal(t, period, out.Period)
		require.Len(t, out.Buckets, 1)
		assert.Equal(t, 3, out.Buckets[0].CropCount)
	}
}
