// Package pdf implementa o documento imprimível da ordem de serviço.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo + Nome do negócio  │  ORDEM DE SERVIÇO #N      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + endereço + telefone                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Descrição | Tipo | Qtd | Preço Unit. | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VALOR TOTAL A PAGAR                                         │
//	│  PAGAMENTO VIA PIX (se houver chave)                         │
//	│  REGISTRO FOTOGRÁFICO: ANTES / DEPOIS (se houver fotos)      │
//	│  ASSINATURA DO CLIENTE (se coletada)                         │
//	│  FOOTER: "Documento gerado por <negócio> utilizando Servus"  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/servusapp/servus-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDark    = &props.Color{Red: 30, Green: 41, Blue: 59}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ImageFetcher baixa imagens remotas (logo, assinatura, fotos) para embutir no
// documento. Falha de download não aborta a geração: a imagem é omitida.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// MarotoPDFGenerator implementa orders.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	fetcher ImageFetcher
}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator(fetcher ImageFetcher) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{fetcher: fetcher}
}

// GenerateOrderPDF gera o PDF da O.S. e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateOrderPDF(
	ctx context.Context,
	order *entity.WorkOrder,
	profile *entity.Profile,
	customer *entity.Customer,
	issuedAt time.Time,
) ([]byte, error) {
	businessName := "Servus"
	if profile != nil && profile.BusinessName != "" {
		businessName = profile.BusinessName
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ordem de Serviço "+order.Number(), true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(ctx, order, profile, businessName, issuedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order.Total))

	if profile != nil && profile.PixKey != "" {
		m.AddRows(pixRows(profile.PixKey)...)
	}
	if len(order.Photos) > 0 {
		m.AddRows(g.photoRows(ctx, order.Photos)...)
	}
	if order.SignatureURL != "" {
		m.AddRows(g.signatureRows(ctx, order.SignatureURL, customer)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(businessName))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: logo + nome do negócio (esq) e título + número + data (dir).
func (g *MarotoPDFGenerator) headerRow(
	ctx context.Context,
	order *entity.WorkOrder,
	profile *entity.Profile,
	businessName string,
	issuedAt time.Time,
) core.Row {
	data := issuedAt.Format("02/01/2006")

	left := col.New(7)
	top := 1.0
	if profile != nil && profile.LogoURL != "" {
		if logo, err := g.fetcher.FetchImage(ctx, profile.LogoURL); err == nil {
			left.Add(image.NewFromBytes(logo, imageExt(profile.LogoURL), props.Rect{
				Top: 1, Percent: 60,
			}))
			top = 14
		}
	}
	left.Add(text.New(businessName, props.Text{
		Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: top,
	}))
	if contact := contactLine(profile); contact != "" {
		left.Add(text.New(contact, props.Text{
			Size: 8, Top: top + 7, Color: colorGray,
		}))
	}

	return row.New(26).Add(
		left,
		col.New(5).Add(
			text.New("ORDEM DE SERVIÇO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("#"+order.Number(), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: dados do cliente. Cliente removido do cadastro cai no nome
// copiado na O.S. sem endereço nem telefone.
func customerRow(customer *entity.Customer) core.Row {
	name := "—"
	detail := ""
	if customer != nil {
		name = customer.Name
		detail = joinNonEmpty("   |   ",
			prefixed("Endereço: ", customer.Address),
			prefixed("Tel: ", customer.Phone),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(nonEmpty(detail, " "), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorDark, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Descrição", 5, align.Left),
		h("Tipo", 2, align.Center),
		h("Qtd", 1, align.Center),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableItemRows: uma linha por item da O.S.
func tableItemRows(items []entity.OrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		subtotal := it.Quantity.Mul(it.UnitPrice)
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				it.Title,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				itemTypeLabel(it.Type),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: valor total em destaque, alinhado à direita.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(14).Add(
		col.New(6),
		col.New(4).Add(text.New("VALOR TOTAL A PAGAR", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 4, Right: 2,
		})),
		col.New(2).Add(text.New("R$ "+formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 4, Right: 1,
		})),
	)
}

// pixRows: bloco de pagamento via PIX.
func pixRows(pixKey string) []core.Row {
	return []core.Row{
		row.New(4),
		row.New(12).Add(col.New(12).Add(
			text.New("PAGAMENTO VIA PIX", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Chave: "+pixKey, props.Text{Size: 9, Top: 6}),
		)),
	}
}

// photoRows: registro fotográfico, fotos ANTES à esquerda e DEPOIS à direita.
func (g *MarotoPDFGenerator) photoRows(ctx context.Context, photos []entity.OrderPhoto) []core.Row {
	var before, after []entity.OrderPhoto
	for _, p := range photos {
		if p.Type == entity.PhotoTypeAfter {
			after = append(after, p)
		} else {
			before = append(before, p)
		}
	}

	rows := []core.Row{
		row.New(4),
		row.New(8).Add(col.New(12).Add(
			text.New("REGISTRO FOTOGRÁFICO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(6).Add(
			col.New(6).Add(text.New("ANTES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			})),
			col.New(6).Add(text.New("DEPOIS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			})),
		),
	}

	for i := 0; i < len(before) || i < len(after); i++ {
		r := row.New(55)
		r.Add(g.photoCol(ctx, before, i), g.photoCol(ctx, after, i))
		rows = append(rows, r)
	}
	return rows
}

func (g *MarotoPDFGenerator) photoCol(ctx context.Context, photos []entity.OrderPhoto, i int) core.Col {
	c := col.New(6)
	if i >= len(photos) {
		return c
	}
	p := photos[i]
	if data, err := g.fetcher.FetchImage(ctx, p.URL); err == nil {
		c.Add(image.NewFromBytes(data, imageExt(p.URL), props.Rect{
			Top: 1, Percent: 90, Center: true,
		}))
	} else {
		c.Add(text.New("(foto indisponível)", props.Text{
			Size: 7, Align: align.Center, Color: colorGray, Top: 25,
		}))
	}
	if p.Caption != "" {
		c.Add(text.New(p.Caption, props.Text{
			Size: 7, Align: align.Center, Color: colorGray, Top: 51,
		}))
	}
	return c
}

// signatureRows: imagem da assinatura coletada no aparelho.
func (g *MarotoPDFGenerator) signatureRows(ctx context.Context, signatureURL string, customer *entity.Customer) []core.Row {
	sigCol := col.New(6)
	if data, err := g.fetcher.FetchImage(ctx, signatureURL); err == nil {
		sigCol.Add(image.NewFromBytes(data, imageExt(signatureURL), props.Rect{
			Top: 1, Percent: 70, Center: true,
		}))
	}

	name := ""
	if customer != nil {
		name = customer.Name
	}
	return []core.Row{
		row.New(6),
		row.New(30).Add(col.New(3), sigCol, col.New(3)),
		row.New(8).Add(col.New(12).Add(
			text.New("Assinatura do Cliente", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
			}),
			text.New(name, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 5,
			}),
		)),
	}
}

// footerRow: crédito do documento.
func footerRow(businessName string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Documento gerado por %s utilizando Servus App", businessName),
			props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func itemTypeLabel(t string) string {
	if t == entity.ItemTypeMaterial {
		return "Peça/Material"
	}
	return "Serviço"
}

func contactLine(profile *entity.Profile) string {
	if profile == nil {
		return ""
	}
	return joinNonEmpty("   |   ",
		prefixed("Tel: ", profile.Phone),
		prefixed("Email: ", profile.Email),
		prefixed("CNPJ: ", profile.CNPJ),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func prefixed(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// formatMoney formata um decimal no padrão brasileiro.
// Ex: 1234.5 → "1.234,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	out := string(buf) + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// imageExt deduz a extensão da imagem pela URL; o host de mídia serve JPG por
// padrão.
func imageExt(url string) extension.Type {
	u := strings.ToLower(url)
	if i := strings.IndexByte(u, '?'); i >= 0 {
		u = u[:i]
	}
	if strings.HasSuffix(u, ".png") {
		return extension.Png
	}
	return extension.Jpg
}
