package finance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// SummaryUseCase resúmenes financieros por lote y por animal.
//
// El repositorio devuelve agregados crudos (cada uno COALESCE(…, 0) en SQL);
// el neto y el ROI se derivan aquí con una única convención:
//
//	neto = venta + producción − compra − gastos − tratamientos
//	roi  = neto / (compra + gastos + tratamientos) × 100
//
// Base de costo cero → ROI 0, nunca NaN ni división por cero.
type SummaryUseCase struct {
	summaryRepo repository.SummaryRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(summaryRepo repository.SummaryRepository) *SummaryUseCase {
	return &SummaryUseCase{summaryRepo: summaryRepo}
}

// GetFlockSummaries devuelve el resumen de todos los lotes, o del lote
// indicado si flockID no es nil.
func (uc *SummaryUseCase) GetFlockSummaries(
	ctx context.Context,
	flockID *string,
) ([]dto.FlockSummaryDTO, error) {
	rows, err := uc.summaryRepo.GetFlockSummaries(ctx, flockID)
	if err != nil {
		return nil, fmt.Errorf("summary: lotes: %w", err)
	}
	out := make([]dto.FlockSummaryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toFlockSummaryDTO(row))
	}
	return out, nil
}

// GetAnimalSummaries devuelve el resumen por animal; animalID filtra por arete.
func (uc *SummaryUseCase) GetAnimalSummaries(
	ctx context.Context,
	animalID *string,
) ([]dto.AnimalSummaryDTO, error) {
	rows, err := uc.summaryRepo.GetAnimalSummaries(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("summary: animales: %w", err)
	}
	out := make([]dto.AnimalSummaryDTO, 0, len(rows))
	for _, row := range rows {
		net, roi := deriveNetAndROI(
			row.SaleRevenue, row.ProductionRevenue,
			row.PurchasePrice, row.TotalExpenses, row.MedicalCosts,
		)
		out = append(out, dto.AnimalSummaryDTO{
			LivestockID:       row.LivestockID,
			TagID:             row.TagID,
			FlockID:           row.FlockID,
			Status:            row.Status,
			PurchasePrice:     row.PurchasePrice,
			SaleRevenue:       row.SaleRevenue,
			ProductionRevenue: row.ProductionRevenue,
			TotalExpenses:     row.TotalExpenses,
			MedicalCosts:      row.MedicalCosts,
			NetProfitLoss:     net,
			ROIPercentage:     roi,
			DaysOwned:         row.DaysOwned,
		})
	}
	return out, nil
}

// GetFlockMetrics devuelve el rollup de un lote con conteos por estado.
// nil (sin error) cuando el lote no existe; el handler responde 404.
func (uc *SummaryUseCase) GetFlockMetrics(
	ctx context.Context,
	flockID string,
) (*dto.FlockMetricsDTO, error) {
	row, err := uc.summaryRepo.GetFlockMetrics(ctx, flockID)
	if err != nil {
		return nil, fmt.Errorf("summary: métricas de lote: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return &dto.FlockMetricsDTO{
		FlockSummaryDTO: toFlockSummaryDTO(row.FlockSummaryResult),
		ActiveCount:     row.ActiveCount,
		SoldCount:       row.SoldCount,
		DeceasedCount:   row.DeceasedCount,
	}, nil
}

func toFlockSummaryDTO(row repository.FlockSummaryResult) dto.FlockSummaryDTO {
	net, roi := deriveNetAndROI(
		row.SaleRevenue, row.ProductionRevenue,
		row.PurchaseCost, row.TotalExpenses, row.MedicalCosts,
	)
	return dto.FlockSummaryDTO{
		FlockID:           row.FlockID,
		FlockName:         row.FlockName,
		AnimalCount:       row.AnimalCount,
		PurchaseCost:      row.PurchaseCost,
		SaleRevenue:       row.SaleRevenue,
		ProductionRevenue: row.ProductionRevenue,
		TotalExpenses:     row.TotalExpenses,
		MedicalCosts:      row.MedicalCosts,
		NetProfitLoss:     net,
		ROIPercentage:     roi,
	}
}

// deriveNetAndROI aplica la convención única de neto y ROI.
func deriveNetAndROI(
	saleRevenue, productionRevenue, purchase, expenses, medical decimal.Decimal,
) (net, roi decimal.Decimal) {
	net = saleRevenue.Add(productionRevenue).Sub(purchase).Sub(expenses).Sub(medical).Round(2)
	costBasis := purchase.Add(expenses).Add(medical)
	roi = decimal.Zero
	if costBasis.IsPositive() {
		roi = net.Div(costBasis).Mul(hundred).Round(2)
	}
	return net, roi
}
