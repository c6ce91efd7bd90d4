// Package xmlexport implementa la representación XML del reporte diario
// (integración con sistemas contables externos).
package xmlexport

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
	"github.com/jhoicas/brewflow-pos/pkg/money"
)

// ReportXMLBuilder implementa report.XMLBuilder usando etree.
type ReportXMLBuilder struct{}

// NewReportXMLBuilder construye el builder.
func NewReportXMLBuilder() *ReportXMLBuilder { return &ReportXMLBuilder{} }

// BuildDailyReportXML serializa el reporte diario:
//
//	<DailyReport date="..." branch="...">
//	  <Summary totalSales="..." transactionCount="..."/>
//	  <Transactions>
//	    <Transaction id="..." time="..." total="...">
//	      <Item name="..." quantity="..." unitPrice="..."/>
//	    </Transaction>
//	  </Transactions>
//	</DailyReport>
func (b *ReportXMLBuilder) BuildDailyReportXML(rep *entity.DailyReport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("DailyReport")
	root.CreateAttr("date", rep.Date.Format("2006-01-02"))
	root.CreateAttr("branch", rep.Branch)

	summary := root.CreateElement("Summary")
	summary.CreateAttr("totalSales", money.Fixed(rep.TotalSales))
	summary.CreateAttr("transactionCount", fmt.Sprintf("%d", rep.TransactionCount))

	txs := root.CreateElement("Transactions")
	for _, tx := range rep.Transactions {
		e := txs.CreateElement("Transaction")
		e.CreateAttr("id", tx.ID)
		e.CreateAttr("time", tx.Time.Format("15:04:05"))
		e.CreateAttr("total", money.Fixed(tx.Total))
		for _, it := range tx.Items {
			item := e.CreateElement("Item")
			item.CreateAttr("name", it.Name)
			item.CreateAttr("quantity", fmt.Sprintf("%d", it.Quantity))
			item.CreateAttr("unitPrice", money.Fixed(it.UnitPrice))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar reporte: %w", err)
	}
	return out, nil
}
