// Package excel implementa la importación del catálogo maestro y la
// exportación del reporte en formato xlsx.
package excel

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/domain/entity"
)

// fallbackDescription descripción para filas sin columna DESCRIPCION con valor.
const fallbackDescription = "Sin descripción"

// columnAliases nombres conocidos de columnas, comparados por subcadena
// sobre el encabezado normalizado (mayúsculas, sin tildes): "DESCRIPCIÓN"
// y "descripcion" encuentran la misma columna.
var columnAliases = map[string]string{
	"EAN":         "ean",
	"MAT":         "mat",
	"MARCA":       "marca",
	"FAMILIA":     "familia",
	"SUBFAMILIA":  "subfamilia",
	"DESCRIPCION": "description",
	"TIP":         "tip",
}

// Importer convierte hojas de cálculo en productos del catálogo.
type Importer struct{}

// NewImporter construye el importador.
func NewImporter() *Importer { return &Importer{} }

// ImportFile lee la primera hoja de un archivo xlsx y la convierte en
// productos. El reader recibe el archivo completo subido por el usuario.
func (im *Importer) ImportFile(r io.Reader) ([]entity.Product, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: no se pudo abrir el archivo", domain.ErrInvalidImport)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", sheets[0], err)
	}
	return im.Parse(rows)
}

// Parse interpreta la matriz de celdas: la fila 0 es el encabezado; EAN y
// DESCRIPCION son obligatorias, el resto opcional. Las filas sin EAN se
// saltan en silencio.
func (im *Importer) Parse(rows [][]string) ([]entity.Product, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptySheet
	}

	cols := locateColumns(rows[0])
	eanIdx, okEAN := cols["ean"]
	descIdx, okDesc := cols["description"]
	if !okEAN || !okDesc {
		return nil, fmt.Errorf("%w: el archivo debe contener las columnas EAN y DESCRIPCION", domain.ErrInvalidImport)
	}

	products := make([]entity.Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		ean := strings.TrimSpace(cell(row, eanIdx))
		if ean == "" {
			continue
		}
		desc := strings.TrimSpace(cell(row, descIdx))
		if desc == "" {
			desc = fallbackDescription
		}
		p := entity.Product{
			EAN:         ean,
			Description: desc,
		}
		if i, ok := cols["mat"]; ok {
			p.Mat = strings.TrimSpace(cell(row, i))
		}
		if i, ok := cols["marca"]; ok {
			p.Marca = strings.TrimSpace(cell(row, i))
		}
		if i, ok := cols["familia"]; ok {
			p.Familia = strings.TrimSpace(cell(row, i))
		}
		if i, ok := cols["subfamilia"]; ok {
			p.Subfamilia = strings.TrimSpace(cell(row, i))
		}
		if i, ok := cols["tip"]; ok {
			p.Tip = strings.TrimSpace(cell(row, i))
		}
		products = append(products, p)
	}
	return products, nil
}

// locateColumns devuelve el índice de cada campo conocido presente en el
// encabezado. SUBFAMILIA se resuelve antes que FAMILIA porque FAMILIA es
// subcadena de SUBFAMILIA.
func locateColumns(header []string) map[string]int {
	cols := make(map[string]int, len(columnAliases))
	for idx, raw := range header {
		h := foldHeader(raw)
		if h == "" {
			continue
		}
		for alias, field := range columnAliases {
			if _, taken := cols[field]; taken {
				continue
			}
			if field == "familia" && strings.Contains(h, "SUBFAMILIA") {
				continue
			}
			if strings.Contains(h, alias) {
				cols[field] = idx
			}
		}
	}
	return cols
}

// foldHeader normaliza un encabezado: mayúsculas y sin marcas diacríticas
// (NFD + eliminación de la categoría Mn), para que DESCRIPCIÓN ≡ DESCRIPCION.
func foldHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToUpper(strings.TrimSpace(folded))
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
