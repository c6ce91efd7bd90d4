// Package report arma el reporte diario de ventas por sucursal y sus
// exportaciones (texto plano, PDF y XML).
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewflow-pos/internal/application/dto"
	"github.com/jhoicas/brewflow-pos/internal/domain"
	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
	"github.com/jhoicas/brewflow-pos/internal/domain/repository"
	"github.com/jhoicas/brewflow-pos/pkg/money"
)

// UseCase lectura de reportes diarios. Las ventas llegan vía SaleRepository
// (alimentado por los checkouts del POS y por la semilla de demostración).
type UseCase struct {
	saleRepo   repository.SaleRepository
	branchRepo repository.BranchRepository
	pdf        PDFGenerator
	xml        XMLBuilder
}

// NewUseCase construye el caso de uso.
func NewUseCase(saleRepo repository.SaleRepository, branchRepo repository.BranchRepository, pdf PDFGenerator, xml XMLBuilder) *UseCase {
	return &UseCase{saleRepo: saleRepo, branchRepo: branchRepo, pdf: pdf, xml: xml}
}

// Daily arma el reporte de la sucursal para la fecha dada.
// Devuelve ErrNotFound si la sucursal no existe; un día sin ventas es un
// reporte válido con cero transacciones, no un error.
func (uc *UseCase) Daily(day time.Time, branch string) (*dto.DailyReportResponse, error) {
	rep, err := uc.build(day, branch)
	if err != nil {
		return nil, err
	}
	return toDailyReportResponse(rep), nil
}

// ExportText genera el reporte en texto plano descargable.
func (uc *UseCase) ExportText(day time.Time, branch string) (string, error) {
	rep, err := uc.build(day, branch)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("Daily Sales Report\n")
	fmt.Fprintf(&b, "Date: %s\n", rep.Date.Format("January 2, 2006"))
	fmt.Fprintf(&b, "Branch: %s\n", rep.Branch)
	fmt.Fprintf(&b, "Total Sales: %s\n", money.Display(rep.TotalSales))
	fmt.Fprintf(&b, "Total Transactions: %d\n\n", rep.TransactionCount)
	b.WriteString("Transactions Summary:\n")
	for _, tx := range rep.Transactions {
		fmt.Fprintf(&b, "  ID: %s, Time: %s, Total: %s\n",
			tx.ID, tx.Time.Format("03:04 PM"), money.Display(tx.Total))
		for _, it := range tx.Items {
			fmt.Fprintf(&b, "    - %s (Qty: %d, Price: %s)\n",
				it.Name, it.Quantity, money.Display(it.UnitPrice))
		}
	}
	return b.String(), nil
}

// ExportPDF genera la representación PDF del reporte.
func (uc *UseCase) ExportPDF(ctx context.Context, day time.Time, branch string) ([]byte, error) {
	rep, err := uc.build(day, branch)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateDailyReportPDF(ctx, rep)
}

// ExportXML genera la representación XML del reporte.
func (uc *UseCase) ExportXML(day time.Time, branch string) ([]byte, error) {
	rep, err := uc.build(day, branch)
	if err != nil {
		return nil, err
	}
	return uc.xml.BuildDailyReportXML(rep)
}

func (uc *UseCase) build(day time.Time, branch string) (*entity.DailyReport, error) {
	b, err := uc.branchRepo.GetByID(branch)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	sales, err := uc.saleRepo.ListByDateAndBranch(day, b.Name)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	txs := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		total = total.Add(s.Total)
		txs = append(txs, *s)
	}
	return &entity.DailyReport{
		Date:             day,
		Branch:           b.Name,
		TotalSales:       total,
		TransactionCount: len(txs),
		Transactions:     txs,
	}, nil
}

func toDailyReportResponse(rep *entity.DailyReport) *dto.DailyReportResponse {
	txs := make([]dto.SaleResponse, 0, len(rep.Transactions))
	for _, tx := range rep.Transactions {
		items := make([]dto.SaleItemResponse, 0, len(tx.Items))
		for _, it := range tx.Items {
			items = append(items, dto.SaleItemResponse{
				Name:      it.Name,
				Quantity:  it.Quantity,
				UnitPrice: money.Fixed(it.UnitPrice),
			})
		}
		txs = append(txs, dto.SaleResponse{
			ID:    tx.ID,
			Time:  tx.Time.Format("03:04 PM"),
			Items: items,
			Total: money.Fixed(tx.Total),
		})
	}
	return &dto.DailyReportResponse{
		Date:             rep.Date.Format("2006-01-02"),
		Branch:           rep.Branch,
		TotalSales:       money.Fixed(rep.TotalSales),
		DisplayTotal:     money.Display(rep.TotalSales),
		TransactionCount: rep.TransactionCount,
		Transactions:     txs,
	}
}
