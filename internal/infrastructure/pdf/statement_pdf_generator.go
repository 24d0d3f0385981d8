// Package pdf genera el extracto de parcelas de una venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Pasta                │  Venta + Fecha              │
//	│  CLIENTE: Nombre + documento                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LÍNEAS: Cant | Producto | Valor | Imp% | Com%              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARCELAS: N° | Días | Vencimiento | Valor | Comisión       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Bruto / Base neta / Comisión                      │
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Comissoes-api/internal/application/sales"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02/01/2006"

// StatementGenerator implementa sales.StatementPDFGenerator usando Maroto v2.
type StatementGenerator struct {
	printer *message.Printer
}

var _ sales.StatementPDFGenerator = (*StatementGenerator)(nil)

// NewStatementGenerator construye el generador; los montos salen en formato pt-BR.
func NewStatementGenerator() *StatementGenerator {
	return &StatementGenerator{printer: message.NewPrinter(language.BrazilianPortuguese)}
}

// Generate arma el documento y devuelve sus bytes.
func (g *StatementGenerator) Generate(_ context.Context, data sales.StatementData) ([]byte, error) {
	if data.Sale == nil || data.Supplier == nil {
		return nil, fmt.Errorf("pdf: %w: venta o pasta ausente", domain.ErrInvalidInput)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extrato de parcelas", true).
		WithAuthor(data.Supplier.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Sale, data.Supplier))
	m.AddRows(clientRow(data.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("ITENS"))
	m.AddRows(itemsHeaderRow())
	m.AddRows(g.itemRows(data.Items, data.Products, data.Sale.Mode == entity.SaleModeDetailed)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("PARCELAS " + data.Sale.PaymentNotation))
	m.AddRows(installmentsHeaderRow())
	m.AddRows(g.installmentRows(data.Installments)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(g.totalsRow(data.Sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(sale *entity.Sale, supplier *entity.Supplier) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(supplier.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("VENDA "+shortID(sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Data: "+sale.SaleDate.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func clientRow(client *entity.Client) core.Row {
	name, doc := "—", "—"
	if client != nil {
		name = client.Name
		doc = nonEmpty(client.Document, "—")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("%s   |   Documento: %s", name, doc), props.Text{Size: 9, Top: 6}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(s string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func itemsHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Qtd.", 1, align.Center),
		headerCell("Produto", 5, align.Left),
		headerCell("Valor", 3, align.Right),
		headerCell("Imp.%", 1, align.Center),
		headerCell("Com.%", 2, align.Right),
	)
}

func (g *StatementGenerator) itemRows(items []*entity.SaleItem, products map[string]*entity.Product, detailed bool) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		qty := "1"
		if detailed {
			qty = it.Quantity.String()
		}
		rows = append(rows, row.New(6).Add(
			cell(qty, 1, align.Center),
			cell(productLabel(products[it.ProductID]), 5, align.Left),
			cell(g.money(it.GrossValue), 3, align.Right),
			cell(it.TaxRate.String(), 1, align.Center),
			cell(it.CommissionRate.String(), 2, align.Right),
		))
	}
	return rows
}

func installmentsHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("N°", 1, align.Center),
		headerCell("Dias", 2, align.Center),
		headerCell("Vencimento", 3, align.Center),
		headerCell("Valor", 3, align.Right),
		headerCell("Comissão", 3, align.Right),
	)
}

func (g *StatementGenerator) installmentRows(installments []*entity.SaleInstallment) []core.Row {
	rows := make([]core.Row, 0, len(installments))
	for _, in := range installments {
		rows = append(rows, row.New(6).Add(
			cell(fmt.Sprint(in.Number), 1, align.Center),
			cell(fmt.Sprint(in.OffsetDays), 2, align.Center),
			cell(in.DueDate.Format(dateLayout), 3, align.Center),
			cell(g.money(in.Amount), 3, align.Right),
			cell(g.money(in.CommissionAmount), 3, align.Right),
		))
	}
	return rows
}

func (g *StatementGenerator) totalsRow(sale *entity.Sale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Valor bruto:"),
			label("Base líquida:"),
			label("Comissão:"),
		),
		col.New(3).Add(
			value(g.money(sale.TotalGross)),
			value(g.money(sale.NetBase)),
			value(g.money(sale.TotalCommission)),
		),
	)
}

// money formatea en reales con separadores pt-BR: 1234.5 → "R$ 1.234,50".
func (g *StatementGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprintf("R$ %.2f", d.Round(2).InexactFloat64())
}

func productLabel(p *entity.Product) string {
	if p == nil {
		return "—"
	}
	if p.SKU == "" {
		return p.Name
	}
	return p.SKU + " · " + p.Name
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
