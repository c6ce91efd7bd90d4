package report

import (
	"context"

	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
)

// PDFGenerator contrato del generador de la representación PDF del reporte
// diario. Implementado en infrastructure/pdf con Maroto.
type PDFGenerator interface {
	GenerateDailyReportPDF(ctx context.Context, rep *entity.DailyReport) ([]byte, error)
}

// XMLBuilder contrato del constructor de la representación XML del reporte
// diario. Implementado en infrastructure/xmlexport con etree.
type XMLBuilder interface {
	BuildDailyReportXML(rep *entity.DailyReport) ([]byte, error)
}
