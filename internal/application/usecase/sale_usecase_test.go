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

type fakeSaleRepo struct {
	created []*entity.Sale
	byID    map[string]*entity.Sale
	deleted []string
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{byID: map[string]*entity.Sale{}}
}

func (f *fakeSaleRepo) Create(sale *entity.Sale) error {
	f.created = append(f.created, sale)
	f.byID[sale.ID] = sale
	return nil
}

func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return f.byID[id], nil
}

func (f *fakeSaleRepo) List(_, _ string, _, _ int) ([]*entity.Sale, error) {
	return f.created, nil
}

func (f *fakeSaleRepo) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

type fakeLivestockRepo struct {
	byTag map[string]*entity.Livestock

	soldID    string
	soldPrice decimal.Decimal
	soldDate  time.Time

	revertedID string
}

func newFakeLivestockRepo(animals ...*entity.Livestock) *fakeLivestockRepo {
	f := &fakeLivestockRepo{byTag: map[string]*entity.Livestock{}}
	for _, a := range animals {
		f.byTag[a.TagID] = a
	}
	return f
}

func (f *fakeLivestockRepo) Create(*entity.Livestock) error { return nil }
func (f *fakeLivestockRepo) GetByID(string) (*entity.Livestock, error) {
	return nil, nil
}
func (f *fakeLivestockRepo) GetByTagID(tagID string) (*entity.Livestock, error) {
	return f.byTag[tagID], nil
}
func (f *fakeLivestockRepo) List(_, _ string, _, _ int) ([]*entity.Livestock, error) {
	return nil, nil
}
func (f *fakeLivestockRepo) Update(*entity.Livestock) error { return nil }
func (f *fakeLivestockRepo) Delete(string) error            { return nil }

func (f *fakeLivestockRepo) MarkSold(id string, salePrice decimal.Decimal, saleDate time.Time) error {
	f.soldID, f.soldPrice, f.soldDate = id, salePrice, saleDate
	return nil
}

func (f *fakeLivestockRepo) RevertSale(id string) error {
	f.revertedID = id
	return nil
}

// fakeSaleTx ejecuta el closure de inmediato con los mismos fakes, emulando
// una transacción que siempre confirma.
type fakeSaleTx struct {
	saleRepo      repository.SaleRepository
	livestockRepo repository.LivestockRepository
	calls         int
}

func (f *fakeSaleTx) RunSale(_ context.Context, fn func(repository.SaleRepository, repository.LivestockRepository) error) error {
	f.calls++
	return fn(f.saleRepo, f.livestockRepo)
}

func activeAnimal(tagID string) *entity.Livestock {
	return &entity.Livestock{
		ID:      "animal-" + tagID,
		FlockID: "flock-1",
		TagID:   tagID,
		Species: "bovino",
		Status:  entity.LivestockActive,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale — tipo animal
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_Animal_MarcaVendidoEnTransaccion(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	livestockRepo := newFakeLivestockRepo(activeAnimal("VAC-001"))
	tx := &fakeSaleTx{saleRepo: saleRepo, livestockRepo: livestockRepo}
	uc := NewSaleUseCase(saleRepo, livestockRepo, tx)

	fecha := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	out, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		SaleType:  entity.SaleAnimal,
		TagID:     "VAC-001",
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.NewFromInt(850),
		Buyer:     "Frigorífico Central",
		Date:      fecha,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 1, tx.calls, "la venta de animal debe correr dentro de la transacción")
	require.Len(t, saleRepo.created, 1)

	assert.Equal(t, "animal-VAC-001", livestockRepo.soldID)
	assert.True(t, livestockRepo.soldPrice.Equal(decimal.NewFromInt(850)),
		"el animal debe marcarse con el total de la venta")
	assert.Equal(t, fecha, livestockRepo.soldDate)

	require.NotNil(t, out.LivestockID)
	assert.Equal(t, "animal-VAC-001", *out.LivestockID)
	require.NotNil(t, out.FlockID)
	assert.Equal(t, "flock-1", *out.FlockID)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(850)))
}

// Cantidad cero → default 1; total = cantidad × precio unitario.
func TestRecordSale_CantidadPorDefectoUno(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	livestockRepo := newFakeLivestockRepo(activeAnimal("VAC-002"))
	tx := &fakeSaleTx{saleRepo: saleRepo, livestockRepo: livestockRepo}
	uc := NewSaleUseCase(saleRepo, livestockRepo, tx)

	out, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		SaleType:  entity.SaleAnimal,
		TagID:     "VAC-002",
		UnitPrice: decimal.NewFromInt(500),
		Date:      time.Now(),
	})
	require.NoError(t, err)

	assert.True(t, out.Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestRecordSale_AnimalInexistente_ErrNotFound(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	livestockRepo := newFakeLivestockRepo()
	tx := &fakeSaleTx{saleRepo: saleRepo, livestockRepo: livestockRepo}
	uc := NewSaleUseCase(saleRepo, livestockRepo, tx)

	out, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		SaleType:  entity.SaleAnimal,
		TagID:     "NO-EXISTE",
		UnitPrice: decimal.NewFromInt(100),
		Date:      time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
	assert.Zero(t, tx.calls, "no debe abrirse transacción si el animal no existe")
}

// Un animal ya vendido (o fallecido) no puede venderse otra vez.
func TestRecordSale_AnimalNoActivo_ErrAnimalNotActive(t *testing.T) {
	animal := activeAnimal("VAC-003")
	animal.Status = entity.LivestockSold
	saleRepo := newFakeSaleRepo()
	livestockRepo := newFakeLivestockRepo(animal)
	tx := &fakeSaleTx{saleRepo: saleRepo, livestockRepo: livestockRepo}
	uc := NewSaleUseCase(saleRepo, livestockRepo, tx)

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		SaleType:  entity.SaleAnimal,
		TagID:     "VAC-003",
		UnitPrice: decimal.NewFromInt(100),
		Date:      time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrAnimalNotActive)
	assert.Empty(t, saleRepo.created)
}

func TestRecordSale_Animal_SinArete_ErrInvalidInput(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	livestockRepo := newFakeLivestockRepo()
	uc := NewSaleUseCase(saleRepo, livestockRepo, &fakeSaleTx{saleRepo: saleRepo, livestockRepo: livestockRepo})

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		SaleType:  entity.SaleAnimal,
		UnitPrice: decimal.NewFromInt(100),
		Date:      time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale — tipo product
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_Producto_NoTocaAnimales(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	livestockRepo := newFakeLivestockRepo()
	tx := &fakeSaleTx{saleRepo: saleRepo, livestockRepo: livestockRepo}
	uc := NewSaleUseCase(saleRepo, livestockRepo, tx)

	flockID := "flock-1"
	out, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		SaleType:  entity.SaleProduct,
		FlockID:   &flockID,
		Quantity:  decimal.NewFromInt(200),
		UnitPrice: decimal.NewFromFloat(1.50),
		Buyer:     "Lechería El Prado",
		Date:      time.Now(),
	})
	require.NoError(t, err)

	assert.Zero(t, tx.calls, "una venta de producto no requiere transacción")
	require.Len(t, saleRepo.created, 1)
	assert.Empty(t, livestockRepo.soldID, "ningún animal debe marcarse vendido")
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(300)))
}

func TestRecordSale_Producto_SinLote_ErrInvalidInput(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	livestockRepo := newFakeLivestockRepo()
	uc := NewSaleUseCase(saleRepo, livestockRepo, &fakeSaleTx{saleRepo: saleRepo, livestockRepo: livestockRepo})

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		SaleType:  entity.SaleProduct,
		UnitPrice: decimal.NewFromInt(10),
		Date:      time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordSale_TipoInvalido_ErrInvalidInput(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	livestockRepo := newFakeLivestockRepo()
	uc := NewSaleUseCase(saleRepo, livestockRepo, &fakeSaleTx{saleRepo: saleRepo, livestockRepo: livestockRepo})

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		SaleType:  "trueque",
		UnitPrice: decimal.NewFromInt(10),
		Date:      time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteSale
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteSale_Animal_RevierteEnTransaccion(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	livestockRepo := newFakeLivestockRepo()
	tx := &fakeSaleTx{saleRepo: saleRepo, livestockRepo: livestockRepo}
	uc := NewSaleUseCase(saleRepo, livestockRepo, tx)

	livestockID := "animal-VAC-001"
	require.NoError(t, saleRepo.Create(&entity.Sale{
		ID:          "sale-1",
		SaleType:    entity.SaleAnimal,
		LivestockID: &livestockID,
	}))

	require.NoError(t, uc.DeleteSale(context.Background(), "sale-1"))

	assert.Equal(t, 1, tx.calls, "la eliminación debe correr dentro de la transacción")
	assert.Contains(t, saleRepo.deleted, "sale-1")
	assert.Equal(t, livestockID, livestockRepo.revertedID,
		"el animal debe volver a 'active' al eliminar su venta")
}

func TestDeleteSale_Producto_SinReversion(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	livestockRepo := newFakeLivestockRepo()
	tx := &fakeSaleTx{saleRepo: saleRepo, livestockRepo: livestockRepo}
	uc := NewSaleUseCase(saleRepo, livestockRepo, tx)

	require.NoError(t, saleRepo.Create(&entity.Sale{
		ID:       "sale-2",
		SaleType: entity.SaleProduct,
	}))

	require.NoError(t, uc.DeleteSale(context.Background(), "sale-2"))

	assert.Zero(t, tx.calls)
	assert.Contains(t, saleRepo.deleted, "sale-2")
	assert.Empty(t, livestockRepo.revertedID)
}

func TestDeleteSale_Inexistente_ErrNotFound(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	livestockRepo := newFakeLivestockRepo()
	uc := NewSaleUseCase(saleRepo, livestockRepo, &fakeSaleTx{saleRepo: saleRepo, livestockRepo: livestockRepo})

	err := uc.DeleteSale(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
