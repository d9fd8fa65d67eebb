package usecase

import (
	"context"

	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// SaleTxRunner ejecuta fn dentro de una transacción con repositorios ligados
// a ella. Registrar una venta de animal y marcar el animal como vendido (o
// revertirlo al eliminar la venta) son una sola unidad atómica: si cualquiera
// de las dos escrituras falla, ninguna persiste.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(saleRepo repository.SaleRepository, livestockRepo repository.LivestockRepository) error) error
}

// ExpenseTxRunner ejecuta fn dentro de una transacción con repositorios
// ligados a ella. Toda escritura de un gasto de cultivo recalcula
// crops.total_expenses en la misma transacción para que la suma denormalizada
// nunca quede desfasada.
type ExpenseTxRunner interface {
	RunExpense(ctx context.Context, fn func(expenseRepo repository.ExpenseRepository, cropRepo repository.CropRepository) error) error
}
