package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/mmynk/agencydesk/internal/calculator"
)

// PDFRenderer lays a quote out on A4 pages.
type PDFRenderer struct{}

var _ Renderer = PDFRenderer{}

func NewPDFRenderer() PDFRenderer { return PDFRenderer{} }

func (PDFRenderer) ContentType() string { return "application/pdf" }

func (PDFRenderer) Extension() string { return ".pdf" }

var (
	titleStyle  = props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Left}
	folioStyle  = props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}
	labelStyle  = props.Text{Size: 9, Style: fontstyle.Bold}
	bodyStyle   = props.Text{Size: 9}
	rightStyle  = props.Text{Size: 9, Align: align.Right}
	headerStyle = props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	totalStyle  = props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
)

// Render builds the PDF. ctx is checked once before layout starts.
func (PDFRenderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()
	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(8, doc.Issuer.Name, titleStyle),
		text.NewCol(4, "COTIZACIÓN "+doc.Folio, folioStyle),
	)
	m.AddRows(partyRows(doc.Issuer)...)
	m.AddRows(line.NewRow(4))

	m.AddRow(6,
		text.NewCol(2, "Cliente", labelStyle),
		text.NewCol(6, doc.Recipient.Name, bodyStyle),
		text.NewCol(2, "Fecha", labelStyle),
		text.NewCol(2, doc.Issued, rightStyle),
	)
	m.AddRow(6,
		text.NewCol(2, "RUT", labelStyle),
		text.NewCol(6, doc.Recipient.RUT, bodyStyle),
		text.NewCol(2, "Válida hasta", labelStyle),
		text.NewCol(2, doc.ValidUntil, rightStyle),
	)
	if doc.Recipient.Giro != "" || doc.Delivery != "" {
		m.AddRow(6,
			text.NewCol(2, "Giro", labelStyle),
			text.NewCol(6, doc.Recipient.Giro, bodyStyle),
			text.NewCol(2, "Entrega", labelStyle),
			text.NewCol(2, doc.Delivery, rightStyle),
		)
	}
	if contact := joinNonEmpty(doc.Recipient.Email, doc.Recipient.Phone, doc.Recipient.City); contact != "" {
		m.AddRow(6,
			text.NewCol(2, "Contacto", labelStyle),
			text.NewCol(10, contact, bodyStyle),
		)
	}
	m.AddRows(line.NewRow(4))

	m.AddRow(7,
		text.NewCol(6, "Descripción", headerStyle),
		text.NewCol(2, "Cantidad", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Precio unitario", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, l := range doc.Lines {
		m.AddRows(lineRow(l))
	}
	m.AddRows(line.NewRow(4))
	m.AddRows(totalRows(doc.Totals)...)

	if strings.TrimSpace(doc.Terms) != "" {
		m.AddRows(text.NewRow(10, "Términos y condiciones", props.Text{Size: 10, Style: fontstyle.Bold, Top: 4}))
		for _, t := range strings.Split(doc.Terms, "\n") {
			m.AddRows(text.NewRow(5, t, bodyStyle))
		}
	}

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote %s: %w", doc.Folio, err)
	}
	return pdf.GetBytes(), nil
}

func partyRows(p Party) []core.Row {
	var rows []core.Row
	for _, v := range []string{
		joinNonEmpty(p.RUT, p.Giro),
		p.Address,
		joinNonEmpty(p.Email, p.Phone),
	} {
		if v != "" {
			rows = append(rows, text.NewRow(5, v, bodyStyle))
		}
	}
	return rows
}

func lineRow(l Line) core.Row {
	desc := col.New(6).Add(text.New(l.Name, bodyStyle))
	height := 6.0
	if l.Description != "" {
		desc.Add(text.New(l.Description, props.Text{Size: 8, Top: 4}))
		height = 10
	}
	return newRow(height,
		desc,
		text.NewCol(2, quantity(l.Quantity), rightStyle),
		text.NewCol(2, money(l.UnitPrice), rightStyle),
		text.NewCol(2, money(l.Amount), rightStyle),
	)
}

func newRow(height float64, cols ...core.Col) core.Row {
	return row.New(height).Add(cols...)
}

func totalRows(t calculator.Totals) []core.Row {
	return []core.Row{
		newRow(6, col.New(8), text.NewCol(2, "Neto", rightStyle), text.NewCol(2, money(t.Subtotal), rightStyle)),
		newRow(6, col.New(8), text.NewCol(2, "IVA 19%", rightStyle), text.NewCol(2, money(t.Tax), rightStyle)),
		newRow(8, col.New(8), text.NewCol(2, "Total", totalStyle), text.NewCol(2, money(t.Gross), totalStyle)),
	}
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " · ")
}
