package excel

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/conteo-api/internal/domain/report"
)

// sheetName nombre de la hoja del reporte exportado.
const sheetName = "Reporte"

// exportHeader orden fijo de columnas del archivo exportado.
var exportHeader = []string{
	"EAN", "MAT", "MARCA", "FAMILIA", "SUBFAMILIA", "DESCRIPCION", "TIP",
	"BODEGA", "MUEBLE", "INVENTARIO", "INACTIVO", "AVERIAS",
}

// Exporter genera el xlsx del reporte de conteo.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export escribe las filas del reporte con los textos en mayúsculas y
// devuelve los bytes del archivo.
func (ex *Exporter) Export(rows []report.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}

	for i, r := range rows {
		values := []any{
			strings.ToUpper(r.EAN),
			strings.ToUpper(r.Mat),
			strings.ToUpper(r.Marca),
			strings.ToUpper(r.Familia),
			strings.ToUpper(r.Subfamilia),
			strings.ToUpper(r.Description),
			strings.ToUpper(r.Tip),
			r.Bodega,
			r.Mueble,
			r.Inventario,
			r.Inactivo,
			r.Averias,
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("celda fila %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, addr, &values); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename arma el nombre del archivo exportado:
// Reporte_<almacén con espacios como guiones bajos>_<fecha ISO>.xlsx
func Filename(storeName string, date time.Time) string {
	name := strings.ReplaceAll(storeName, " ", "_")
	return fmt.Sprintf("Reporte_%s_%s.xlsx", name, date.Format("2006-01-02"))
}
