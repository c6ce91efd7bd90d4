package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brewflow-pos/internal/application/report"
	"github.com/jhoicas/brewflow-pos/internal/domain"
	"github.com/jhoicas/brewflow-pos/internal/infrastructure/memory"
	"github.com/jhoicas/brewflow-pos/internal/infrastructure/xmlexport"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// newReportUseCase arma el caso de uso con las ventas de demostración
// (dos de ayer en Branch A, una de ayer en Branch B, una de hoy en Branch A).
func newReportUseCase(t *testing.T) *report.UseCase {
	t.Helper()
	saleRepo := memory.NewSaleRepository()
	saleRepo.Load(memory.SeedSales())
	branchRepo := memory.NewBranchRepository(memory.SeedBranches())
	return report.NewUseCase(saleRepo, branchRepo, nil, xmlexport.NewReportXMLBuilder())
}

func ayer() time.Time { return time.Now().AddDate(0, 0, -1) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests del reporte diario
// ──────────────────────────────────────────────────────────────────────────────

// El reporte agrega solo las ventas de la sucursal y la fecha pedidas.
func TestReport_DailyAgregaPorFechaYSucursal(t *testing.T) {
	uc := newReportUseCase(t)

	out, err := uc.Daily(ayer(), "Branch A")
	require.NoError(t, err)

	assert.Equal(t, "Branch A", out.Branch)
	assert.Equal(t, 2, out.TransactionCount, "ayer hubo dos ventas en Branch A")
	assert.Equal(t, "12.25", out.TotalSales, "9.75 + 2.50")
	assert.Equal(t, "$12.25", out.DisplayTotal)
	require.Len(t, out.Transactions, 2)
	assert.Equal(t, "T001", out.Transactions[0].ID)
	assert.Equal(t, "T002", out.Transactions[1].ID)
}

// La sucursal se resuelve también por ID.
func TestReport_DailyResuelveSucursalPorID(t *testing.T) {
	uc := newReportUseCase(t)

	out, err := uc.Daily(ayer(), "branch-b")
	require.NoError(t, err)
	assert.Equal(t, "Branch B", out.Branch)
	assert.Equal(t, 1, out.TransactionCount)
	assert.Equal(t, "7.25", out.TotalSales)
}

// Un día sin ventas es un reporte válido con cero transacciones, no un error.
func TestReport_DailyDiaSinVentas(t *testing.T) {
	uc := newReportUseCase(t)

	sinVentas := time.Now().AddDate(0, 0, -30)
	out, err := uc.Daily(sinVentas, "Branch A")
	require.NoError(t, err)
	assert.Equal(t, 0, out.TransactionCount)
	assert.Equal(t, "0.00", out.TotalSales)
	assert.Empty(t, out.Transactions)
}

// Sucursal inexistente devuelve ErrNotFound.
func TestReport_DailySucursalInexistente(t *testing.T) {
	uc := newReportUseCase(t)

	_, err := uc.Daily(ayer(), "Branch Z")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de exportación
// ──────────────────────────────────────────────────────────────────────────────

// El export de texto conserva el formato descargable clásico: cabecera con
// fecha, sucursal y totales, seguida del detalle de transacciones.
func TestReport_ExportTextFormato(t *testing.T) {
	uc := newReportUseCase(t)

	txt, err := uc.ExportText(ayer(), "Branch A")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(txt, "Daily Sales Report\n"))
	assert.Contains(t, txt, "Branch: Branch A")
	assert.Contains(t, txt, "Total Sales: $12.25")
	assert.Contains(t, txt, "Total Transactions: 2")
	assert.Contains(t, txt, "ID: T001")
	assert.Contains(t, txt, "- Latte (Qty: 2, Price: $3.50)")
}

// El export XML produce un documento con el resumen y las transacciones.
func TestReport_ExportXML(t *testing.T) {
	uc := newReportUseCase(t)

	out, err := uc.ExportXML(ayer(), "Branch A")
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<DailyReport")
	assert.Contains(t, xml, "Branch A")
	assert.Contains(t, xml, "T001")
	assert.Contains(t, xml, "T002")
}
