// Package pdf implementa la representación PDF del reporte diario de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: BrewFlow POS  │  Sucursal + Fecha                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total de ventas / Cantidad de transacciones        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR TRANSACCIÓN: ID + hora + total                          │
//	│     líneas: Cant | Producto | P.Unit                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
	"github.com/jhoicas/brewflow-pos/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 93, Green: 64, Blue: 55} // marrón café
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDailyReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDailyReportPDF(_ context.Context, rep *entity.DailyReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Daily Sales Report", true).
		WithAuthor("BrewFlow POS", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, tx := range rep.Transactions {
		m.AddRows(transactionRow(tx))
		for _, it := range tx.Items {
			m.AddRows(saleItemRow(it))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la aplicación (izq) y sucursal + fecha (der).
func headerRow(rep *entity.DailyReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("BrewFlow POS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Daily Sales Report", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(rep.Branch, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(rep.Date.Format("January 2, 2006"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: total de ventas y cantidad de transacciones del día.
func summaryRow(rep *entity.DailyReport) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Total Sales", props.Text{Size: 8, Color: colorGray}),
			text.New(money.Display(rep.TotalSales), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 4, Color: colorPrimary,
			}),
		),
		col.New(6).Add(
			text.New("Transactions", props.Text{Size: 8, Color: colorGray}),
			text.New(fmt.Sprintf("%d", rep.TransactionCount), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 4,
			}),
		),
	)
}

// transactionRow: encabezado de una transacción cerrada.
func transactionRow(tx entity.Sale) core.Row {
	return row.New(8).Add(
		col.New(4).Add(text.New(tx.ID, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
		col.New(4).Add(text.New(tx.Time.Format("03:04 PM"), props.Text{Size: 9, Top: 2, Color: colorGray})),
		col.New(4).Add(text.New(money.Display(tx.Total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
	)
}

// saleItemRow: una línea vendida dentro de la transacción.
func saleItemRow(it entity.SaleItem) core.Row {
	return row.New(6).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Top: 1})),
		col.New(7).Add(text.New(it.Name, props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(money.Display(it.UnitPrice), props.Text{
			Size: 8, Align: align.Right, Top: 1, Color: colorGray,
		})),
	)
}
