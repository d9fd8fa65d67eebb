package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.MedicalTreatmentRepository = (*MedicalTreatmentRepo)(nil)

// MedicalTreatmentRepo implementación del puerto MedicalTreatmentRepository sobre PostgreSQL.
type MedicalTreatmentRepo struct {
	q Querier
}

// NewMedicalTreatmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicalTreatmentRepository(q Querier) *MedicalTreatmentRepo {
	return &MedicalTreatmentRepo{q: q}
}

const medicalColumns = `id, livestock_id, flock_id, treatment, medication, cost, date, notes, created_at`

// Create persiste un tratamiento veterinario.
func (r *MedicalTreatmentRepo) Create(treatment *entity.MedicalTreatment) error {
	query := `
		INSERT INTO medical_treatments (id, livestock_id, flock_id, treatment, medication, cost, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		treatment.ID, treatment.LivestockID, treatment.FlockID, treatment.Treatment,
		treatment.Medication, treatment.Cost, treatment.Date, treatment.Notes, treatment.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert medical treatment: %w", err)
	}
	return nil
}

// GetByID obtiene un tratamiento por ID.
func (r *MedicalTreatmentRepo) GetByID(id string) (*entity.MedicalTreatment, error) {
	query := `SELECT ` + medicalColumns + ` FROM medical_treatments WHERE id = $1`
	var t entity.MedicalTreatment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.LivestockID, &t.FlockID, &t.Treatment, &t.Medication, &t.Cost, &t.Date, &t.Notes, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medical treatment: %w", err)
	}
	return &t, nil
}

// List lista tratamientos; livestockID filtra opcionalmente ("" = todos).
func (r *MedicalTreatmentRepo) List(livestockID string, limit, offset int) ([]*entity.MedicalTreatment, error) {
	query := `SELECT ` + medicalColumns + `
		FROM medical_treatments
		WHERE ($1::uuid IS NULL OR livestock_id = $1)
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, optionalID(livestockID), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list medical treatments: %w", err)
	}
	defer rows.Close()
	var list []*entity.MedicalTreatment
	for rows.Next() {
		var t entity.MedicalTreatment
		if err := rows.Scan(&t.ID, &t.LivestockID, &t.FlockID, &t.Treatment, &t.Medication, &t.Cost, &t.Date, &t.Notes, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan medical treatment: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina un tratamiento por ID.
func (r *MedicalTreatmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM medical_treatments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medical treatment: %w", err)
	}
	return nil
}
