package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/conteo-api/internal/domain/report"
	"github.com/jhoicas/conteo-api/internal/infrastructure/excel"
)

func TestExport_ColumnasFijasYMayusculas(t *testing.T) {
	ex := excel.NewExporter()

	data, err := ex.Export([]report.Row{
		{EAN: "111", Marca: "smart", Description: "Widget chico", Bodega: 2, Mueble: 3, Inventario: 5},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reporte")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"EAN", "MAT", "MARCA", "FAMILIA", "SUBFAMILIA", "DESCRIPCION", "TIP",
		"BODEGA", "MUEBLE", "INVENTARIO", "INACTIVO", "AVERIAS",
	}, rows[0])

	assert.Equal(t, "111", rows[1][0])
	assert.Equal(t, "SMART", rows[1][2], "los textos se exportan en mayúsculas")
	assert.Equal(t, "WIDGET CHICO", rows[1][5])
	assert.Equal(t, "5", rows[1][9])
}

// El ciclo exportar → reimportar reconstruye el subconjunto EAN/DESCRIPCION
// del catálogo (la descripción sobrevive, en mayúsculas por diseño).
func TestExport_ReimportarReconstruyeElCatalogo(t *testing.T) {
	ex := excel.NewExporter()
	im := excel.NewImporter()

	data, err := ex.Export([]report.Row{
		{EAN: "111", Description: "Widget"},
		{EAN: "222", Description: "Gadget"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Reporte")
	require.NoError(t, err)

	products, err := im.Parse(rows)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "111", products[0].EAN)
	assert.Equal(t, "WIDGET", products[0].Description)
	assert.Equal(t, "GADGET", products[1].Description)
}

func TestFilename_EspaciosComoGuionesBajos(t *testing.T) {
	date := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "Reporte_Tienda_Centro_2026-09-01.xlsx", excel.Filename("Tienda Centro", date))
}
