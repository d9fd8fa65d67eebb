package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Granja-api/internal/application/usecase"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de la capa de aplicación.
var _ usecase.SaleTxRunner = (*TxRunner)(nil)
var _ usecase.ExpenseTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Cubre las dos secuencias multi-sentencia del dominio: venta de animal
// (insert/delete de la venta + cambio de estado del animal) y escritura de
// gastos de cultivo (gasto + recálculo de crops.total_expenses). El commit
// parcial deja de ser posible: o se aplican todas las sentencias o ninguna.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale inicia una transacción con repos de ventas y animales atados a la tx.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	livestockRepo repository.LivestockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	livestockRepo := NewLivestockRepository(tx)

	if err := fn(saleRepo, livestockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunExpense inicia una transacción con repos de gastos y cultivos (para el
// recálculo del total denormalizado y el borrado en cascada de un cultivo).
func (r *TxRunner) RunExpense(ctx context.Context, fn func(
	expenseRepo repository.ExpenseRepository,
	cropRepo repository.CropRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	expenseRepo := NewExpenseRepository(tx)
	cropRepo := NewCropRepository(tx)

	if err := fn(expenseRepo, cropRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
