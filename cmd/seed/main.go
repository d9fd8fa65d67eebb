// seed genera un script SQL con datos de demostración para desarrollo local:
// un lote con animales, un cultivo con gastos, producción y una venta.
//
// Uso: go run ./cmd/seed [ruta/salida.sql]
// Por defecto escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	outPath := "internal/infrastructure/postgres/migrations/002_seed_demo.sql"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	var b strings.Builder
	b.WriteString("-- Datos de demostración para desarrollo local. NO usar en producción.\n\n")

	b.WriteString(`INSERT INTO flocks (id, name, breed, purchase_date, total_purchase_cost, notes) VALUES
    ('11111111-1111-1111-1111-111111111111', 'Lote Ponedoras A', 'Lohmann Brown', '2026-01-15', 1000.00, 'lote de demostración')
ON CONFLICT (id) DO NOTHING;

`)

	b.WriteString(`INSERT INTO livestock (id, flock_id, tag_id, species, breed, status, purchase_price, purchase_date) VALUES
    ('22222222-2222-2222-2222-222222222201', '11111111-1111-1111-1111-111111111111', 'VAC-001', 'bovino', 'Normando', 'active', 500.00, '2026-01-15'),
    ('22222222-2222-2222-2222-222222222202', '11111111-1111-1111-1111-111111111111', 'VAC-002', 'bovino', 'Normando', 'active', 500.00, '2026-01-15')
ON CONFLICT (id) DO NOTHING;

`)

	b.WriteString(`INSERT INTO livestock_expenses (id, flock_id, category, description, amount, date) VALUES
    ('33333333-3333-3333-3333-333333333301', '11111111-1111-1111-1111-111111111111', 'feed', 'concentrado mensual', 200.00, '2026-02-01')
ON CONFLICT (id) DO NOTHING;

`)

	b.WriteString(`INSERT INTO production_records (id, flock_id, product_type, quantity, unit, sale_price, date) VALUES
    ('44444444-4444-4444-4444-444444444401', '11111111-1111-1111-1111-111111111111', 'milk', 120.00, 'litros', 1.50, '2026-03-01')
ON CONFLICT (id) DO NOTHING;

`)

	b.WriteString(`INSERT INTO crops (id, name, status, area, planting_date, harvest_date, expected_yield, actual_yield, market_price, total_expenses) VALUES
    ('55555555-5555-5555-5555-555555555501', 'Maíz La Vega', 'SOLD', 2.50, '2025-09-01', '2026-01-20', 9000.00, 8500.00, 0.40, 1200.00)
ON CONFLICT (id) DO NOTHING;

`)

	b.WriteString(`INSERT INTO expenses (id, crop_id, category, description, amount, date) VALUES
    ('66666666-6666-6666-6666-666666666601', '55555555-5555-5555-5555-555555555501', 'seeds', 'semilla certificada', 400.00, '2025-09-01'),
    ('66666666-6666-6666-6666-666666666602', '55555555-5555-5555-5555-555555555501', 'fertilizer', 'abono de siembra', 800.00, '2025-09-10')
ON CONFLICT (id) DO NOTHING;
`)

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Seed de demostración escrito en %s\n", outPath)
}
