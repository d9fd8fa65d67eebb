// Package pdf implementa la versión descargable del estado de pérdidas y
// ganancias agrícola.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Granja Pro  │  Título + rango de fechas            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos / Gastos / Neto / ROI                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cultivo | Estado | Ingresos | Gastos | Neto | ROI%  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/finance"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ finance.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa finance.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateProfitLossPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProfitLossPDF(
	_ context.Context,
	report *dto.ProfitLossReportDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Pérdidas y Ganancias", true).
		WithAuthor("Granja Pro", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report.Timeframe))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range cropRows(report.ROIByCrop) {
		m.AddRows(r)
	}
	if len(report.ROIByCrop) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin cultivos con gastos registrados en el rango.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Generado el "+time.Now().Format("02/01/2006 15:04"), props.Text{
			Size: 6.5, Color: colorGray, Top: 1, Align: align.Right,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la granja (izq) y título + rango (der).
func headerRow(tf dto.TimeframeDTO) core.Row {
	rango := "Todo el histórico"
	switch {
	case tf.StartDate != nil && tf.EndDate != nil:
		rango = *tf.StartDate + " a " + *tf.EndDate
	case tf.StartDate != nil:
		rango = "Desde " + *tf.StartDate
	case tf.EndDate != nil:
		rango = "Hasta " + *tf.EndDate
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Granja Pro", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Contabilidad agropecuaria", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE PÉRDIDAS Y GANANCIAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: bloque de totales del período.
func summaryRow(s dto.ProfitLossSummaryDTO) core.Row {
	netColor := colorPrimary
	if s.NetProfit.IsNegative() {
		netColor = colorRed
	}
	cell := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: c, Top: 8,
			}),
		)
	}
	return row.New(18).Add(
		cell("INGRESOS", "$"+s.TotalRevenue.StringFixed(2), colorPrimary),
		cell("GASTOS", "$"+s.TotalExpenses.StringFixed(2), colorGray),
		cell("NETO", "$"+s.NetProfit.StringFixed(2), netColor),
		cell("ROI", s.ROIPercentage.StringFixed(2)+"%", netColor),
	)
}

// tableHeaderRow: cabecera del ranking de cultivos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cultivo", 4, align.Left),
		h("Estado", 2, align.Center),
		h("Ingresos", 2, align.Right),
		h("Gastos", 2, align.Right),
		h("ROI%", 2, align.Right),
	)
}

// cropRows: una fila por cultivo del ranking.
func cropRows(crops []dto.CropROIDTO) []core.Row {
	result := make([]core.Row, 0, len(crops))
	for _, c := range crops {
		roiColor := colorPrimary
		if c.ROIPercentage.IsNegative() {
			roiColor = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				c.CropName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				c.Status,
				props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				"$"+c.Revenue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+c.TotalExpenses.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				c.ROIPercentage.StringFixed(2)+"%",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: roiColor},
			)),
		))
	}
	return result
}
