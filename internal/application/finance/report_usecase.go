package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// LivestockReportUseCase genera el reporte pecuario integral: resumen
// financiero por lote, producción por tipo de producto y desglose de gastos
// por categoría, devueltos lado a lado sin cruzarse.
type LivestockReportUseCase struct {
	reportRepo repository.LivestockReportRepository
}

// NewLivestockReportUseCase construye el caso de uso.
func NewLivestockReportUseCase(reportRepo repository.LivestockReportRepository) *LivestockReportUseCase {
	return &LivestockReportUseCase{reportRepo: reportRepo}
}

// GetReport construye el LivestockReportDTO. El rango de fechas solo aplica a
// la sección de producción; las otras dos son totales históricos.
//
// Tres llamadas en paralelo:
//  1. GetFlockFinancials       → financial_summary
//  2. GetProductionSummary     → production_summary (rango opcional)
//  3. GetExpenseBreakdown      → expense_breakdown
func (uc *LivestockReportUseCase) GetReport(
	ctx context.Context,
	startDate, endDate *time.Time,
) (*dto.LivestockReportDTO, error) {
	type financialsResult struct {
		rows []repository.FlockFinancialRow
		err  error
	}
	type productionResult struct {
		rows []repository.ProductionSummaryRow
		err  error
	}
	type breakdownResult struct {
		rows []repository.ExpenseBreakdownRow
		err  error
	}

	finCh := make(chan financialsResult, 1)
	prodCh := make(chan productionResult, 1)
	expCh := make(chan breakdownResult, 1)

	go func() {
		rows, err := uc.reportRepo.GetFlockFinancials(ctx)
		finCh <- financialsResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetProductionSummary(ctx, startDate, endDate)
		prodCh <- productionResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetExpenseBreakdown(ctx)
		expCh <- breakdownResult{rows, err}
	}()

	fin := <-finCh
	prod := <-prodCh
	exp := <-expCh

	if fin.err != nil {
		return nil, fmt.Errorf("reporte pecuario: financiero: %w", fin.err)
	}
	if prod.err != nil {
		return nil, fmt.Errorf("reporte pecuario: producción: %w", prod.err)
	}
	if exp.err != nil {
		return nil, fmt.Errorf("reporte pecuario: gastos: %w", exp.err)
	}

	financials := make([]dto.FlockFinancialDTO, 0, len(fin.rows))
	for _, row := range fin.rows {
		investment := row.PurchaseCost.Add(row.TotalExpenses).Add(row.MedicalCosts)
		net := row.SaleRevenue.Add(row.ProductionRevenue).Sub(investment).Round(2)
		financials = append(financials, dto.FlockFinancialDTO{
			FlockID:           row.FlockID,
			FlockName:         row.FlockName,
			TotalAnimals:      row.TotalAnimals,
			ActiveAnimals:     row.ActiveAnimals,
			SoldAnimals:       row.SoldAnimals,
			DeceasedAnimals:   row.DeceasedAnimals,
			PurchaseCost:      row.PurchaseCost,
			TotalExpenses:     row.TotalExpenses,
			MedicalCosts:      row.MedicalCosts,
			SaleRevenue:       row.SaleRevenue,
			ProductionRevenue: row.ProductionRevenue,
			TotalInvestment:   investment.Round(2),
			NetProfitLoss:     net,
		})
	}

	production := make([]dto.ProductionSummaryDTO, 0, len(prod.rows))
	for _, row := range prod.rows {
		production = append(production, dto.ProductionSummaryDTO{
			ProductType:   row.ProductType,
			RecordCount:   row.RecordCount,
			TotalQuantity: row.TotalQuantity,
			TotalRevenue:  row.TotalRevenue,
		})
	}

	breakdown := make([]dto.ExpenseBreakdownDTO, 0, len(exp.rows))
	for _, row := range exp.rows {
		breakdown = append(breakdown, dto.ExpenseBreakdownDTO{
			Category:    row.Category,
			EntryCount:  row.EntryCount,
			TotalAmount: row.TotalAmount,
		})
	}

	return &dto.LivestockReportDTO{
		FinancialSummary:  financials,
		ProductionSummary: production,
		ExpenseBreakdown:  breakdown,
		Timeframe:         toTimeframe(startDate, endDate),
	}, nil
}
