package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeExpenseRepo struct {
	byID    map[string]*entity.Expense
	created []*entity.Expense
	updated []*entity.Expense
	deleted []string
}

func newFakeExpenseRepo(expenses ...*entity.Expense) *fakeExpenseRepo {
	f := &fakeExpenseRepo{byID: map[string]*entity.Expense{}}
	for _, e := range expenses {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeExpenseRepo) Create(expense *entity.Expense) error {
	f.created = append(f.created, expense)
	f.byID[expense.ID] = expense
	return nil
}

func (f *fakeExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	return f.byID[id], nil
}

func (f *fakeExpenseRepo) ListByCrop(_ string, _, _ int) ([]*entity.Expense, error) {
	return f.created, nil
}

func (f *fakeExpenseRepo) Update(expense *entity.Expense) error {
	f.updated = append(f.updated, expense)
	return nil
}

func (f *fakeExpenseRepo) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeExpenseRepo) DeleteByCrop(string) error { return nil }

type fakeCropRepo struct {
	byID       map[string]*entity.Crop
	recomputed []string
}

func newFakeCropRepo(crops ...*entity.Crop) *fakeCropRepo {
	f := &fakeCropRepo{byID: map[string]*entity.Crop{}}
	for _, c := range crops {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCropRepo) Create(*entity.Crop) error { return nil }
func (f *fakeCropRepo) GetByID(id string) (*entity.Crop, error) {
	return f.byID[id], nil
}
func (f *fakeCropRepo) List(_ string, _, _ int) ([]*entity.Crop, error) { return nil, nil }
func (f *fakeCropRepo) Update(*entity.Crop) error                       { return nil }
func (f *fakeCropRepo) Delete(string) error                             { return nil }

func (f *fakeCropRepo) RecomputeTotalExpenses(cropID string) error {
	f.recomputed = append(f.recomputed, cropID)
	return nil
}

// fakeExpenseTx ejecuta el closure de inmediato con los mismos fakes.
type fakeExpenseTx struct {
	expenseRepo repository.ExpenseRepository
	cropRepo    repository.CropRepository
	calls       int
}

func (f *fakeExpenseTx) RunExpense(_ context.Context, fn func(repository.ExpenseRepository, repository.CropRepository) error) error {
	f.calls++
	return fn(f.expenseRepo, f.cropRepo)
}

func buildExpenseUC(expenseRepo *fakeExpenseRepo, cropRepo *fakeCropRepo) (*ExpenseUseCase, *fakeExpenseTx) {
	tx := &fakeExpenseTx{expenseRepo: expenseRepo, cropRepo: cropRepo}
	return NewExpenseUseCase(expenseRepo, cropRepo, tx), tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// El alta del gasto y el recálculo de crops.total_expenses corren en la
// misma transacción.
func TestExpenseCreate_RecalculaTotalEnTransaccion(t *testing.T) {
	expenseRepo := newFakeExpenseRepo()
	cropRepo := newFakeCropRepo(&entity.Crop{ID: "crop-1", Name: "Maíz"})
	uc, tx := buildExpenseUC(expenseRepo, cropRepo)

	out, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		CropID:   "crop-1",
		Category: "seeds",
		Amount:   decimal.NewFromInt(400),
		Date:     time.Now(),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 1, tx.calls)
	require.Len(t, expenseRepo.created, 1)
	assert.Equal(t, []string{"crop-1"}, cropRepo.recomputed,
		"todo alta de gasto debe recalcular el total del cultivo")
}

func TestExpenseCreate_CultivoInexistente_ErrNotFound(t *testing.T) {
	expenseRepo := newFakeExpenseRepo()
	cropRepo := newFakeCropRepo()
	uc, tx := buildExpenseUC(expenseRepo, cropRepo)

	out, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		CropID:   "no-existe",
		Category: "seeds",
		Amount:   decimal.NewFromInt(100),
		Date:     time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
	assert.Zero(t, tx.calls)
}

func TestExpenseCreate_MontoNegativo_ErrInvalidInput(t *testing.T) {
	expenseRepo := newFakeExpenseRepo()
	cropRepo := newFakeCropRepo(&entity.Crop{ID: "crop-1"})
	uc, _ := buildExpenseUC(expenseRepo, cropRepo)

	_, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		CropID:   "crop-1",
		Category: "seeds",
		Amount:   decimal.NewFromInt(-5),
		Date:     time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, expenseRepo.created)
}

func TestExpenseCreate_SinCategoria_ErrInvalidInput(t *testing.T) {
	uc, _ := buildExpenseUC(newFakeExpenseRepo(), newFakeCropRepo(&entity.Crop{ID: "crop-1"}))

	_, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		CropID: "crop-1",
		Amount: decimal.NewFromInt(100),
		Date:   time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseUpdate_ParcialYRecalcula(t *testing.T) {
	existing := &entity.Expense{
		ID:       "exp-1",
		CropID:   "crop-1",
		Category: "seeds",
		Amount:   decimal.NewFromInt(400),
	}
	expenseRepo := newFakeExpenseRepo(existing)
	cropRepo := newFakeCropRepo(&entity.Crop{ID: "crop-1"})
	uc, tx := buildExpenseUC(expenseRepo, cropRepo)

	nuevoMonto := decimal.NewFromInt(550)
	out, err := uc.Update(context.Background(), "exp-1", dto.UpdateExpenseRequest{
		Amount: &nuevoMonto,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Amount.Equal(nuevoMonto))
	assert.Equal(t, "seeds", out.Category, "los campos no enviados se conservan")
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []string{"crop-1"}, cropRepo.recomputed)
}

func TestExpenseUpdate_MontoNegativo_ErrInvalidInput(t *testing.T) {
	expenseRepo := newFakeExpenseRepo(&entity.Expense{ID: "exp-1", CropID: "crop-1"})
	cropRepo := newFakeCropRepo()
	uc, tx := buildExpenseUC(expenseRepo, cropRepo)

	negativo := decimal.NewFromInt(-1)
	_, err := uc.Update(context.Background(), "exp-1", dto.UpdateExpenseRequest{
		Amount: &negativo,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, tx.calls)
}

// Gasto inexistente: nil sin error; el handler responde 404.
func TestExpenseUpdate_Inexistente_NilSinError(t *testing.T) {
	uc, _ := buildExpenseUC(newFakeExpenseRepo(), newFakeCropRepo())

	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateExpenseRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseDelete_RecalculaTotalEnTransaccion(t *testing.T) {
	expenseRepo := newFakeExpenseRepo(&entity.Expense{ID: "exp-1", CropID: "crop-1"})
	cropRepo := newFakeCropRepo()
	uc, tx := buildExpenseUC(expenseRepo, cropRepo)

	require.NoError(t, uc.Delete(context.Background(), "exp-1"))

	assert.Equal(t, 1, tx.calls)
	assert.Contains(t, expenseRepo.deleted, "exp-1")
	assert.Equal(t, []string{"crop-1"}, cropRepo.recomputed,
		"la eliminación del gasto también debe recalcular el total")
}

func TestExpenseDelete_Inexistente_ErrNotFound(t *testing.T) {
	uc, tx := buildExpenseUC(newFakeExpenseRepo(), newFakeCropRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, tx.calls)
}
