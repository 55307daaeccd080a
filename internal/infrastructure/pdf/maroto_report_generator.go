// Package pdf genera la versión imprimible del reporte de conteo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Conteo │ Almacén + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: EAN | Descripción | Marca | Bod | Mue | Inv | Ina | Av │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Bodega / Mueble / Inventario / Inactivo / Averías  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"strings"
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

	"github.com/jhoicas/conteo-api/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 239, Green: 243, Blue: 247}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator genera el PDF del reporte usando Maroto v2.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// Generate genera el PDF del reporte del almacén dado y devuelve sus bytes.
func (g *ReportGenerator) Generate(storeName string, rows []report.Row, totals report.Totals, date time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de Conteo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(storeName, date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for i, r := range rows {
		m.AddRows(tableDetailRow(r, i%2 == 1))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// Filename nombre del PDF exportado, mismo patrón que el xlsx.
func Filename(storeName string, date time.Time) string {
	name := strings.ReplaceAll(storeName, " ", "_")
	return fmt.Sprintf("Reporte_%s_%s.pdf", name, date.Format("2006-01-02"))
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y almacén + fecha (der).
func headerRow(storeName string, date time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Reporte de Conteo", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Almacén: "+storeName, props.Text{
				Size: 9, Top: 2, Align: align.Right,
			}),
			text.New("Fecha: "+date.Format("02/01/2006"), props.Text{
				Size: 9, Top: 7, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow encabezado de la tabla de conteos.
func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	headerNum := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New("EAN", header)),
		col.New(3).Add(text.New("Descripción", header)),
		col.New(2).Add(text.New("Marca", header)),
		col.New(1).Add(text.New("Bod.", headerNum)),
		col.New(1).Add(text.New("Mue.", headerNum)),
		col.New(1).Add(text.New("Inv.", headerNum)),
		col.New(1).Add(text.New("Ina.", headerNum)),
		col.New(1).Add(text.New("Av.", headerNum)),
	)
}

// tableDetailRow una fila de conteo; las filas impares llevan fondo rayado.
func tableDetailRow(r report.Row, striped bool) core.Row {
	cell := props.Text{Size: 8}
	num := props.Text{Size: 8, Align: align.Right}

	detail := row.New(5).Add(
		col.New(2).Add(text.New(r.EAN, cell)),
		col.New(3).Add(text.New(r.Description, cell)),
		col.New(2).Add(text.New(r.Marca, cell)),
		col.New(1).Add(text.New(strconv.Itoa(r.Bodega), num)),
		col.New(1).Add(text.New(strconv.Itoa(r.Mueble), num)),
		col.New(1).Add(text.New(strconv.Itoa(r.Inventario), num)),
		col.New(1).Add(text.New(strconv.Itoa(r.Inactivo), num)),
		col.New(1).Add(text.New(strconv.Itoa(r.Averias), num)),
	)
	if striped {
		detail = detail.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return detail
}

// totalsRow pie con los agregados del reporte.
func totalsRow(t report.Totals) core.Row {
	label := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	num := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary}
	return row.New(8).Add(
		col.New(7).Add(text.New("TOTALES", label)),
		col.New(1).Add(text.New(strconv.Itoa(t.Bodega), num)),
		col.New(1).Add(text.New(strconv.Itoa(t.Mueble), num)),
		col.New(1).Add(text.New(strconv.Itoa(t.Inventario), num)),
		col.New(1).Add(text.New(strconv.Itoa(t.Inactivo), num)),
		col.New(1).Add(text.New(strconv.Itoa(t.Averias), num)),
	)
}
