// Package report deriva las filas del reporte de conteo: la unión de los EAN
// del catálogo y del inventario del almacén activo, con los atributos del
// producto y los totales por ubicación.
package report

import (
	"sort"
	"strings"

	"github.com/jhoicas/conteo-api/internal/domain/entity"
)

// PlaceholderDescription descripción para EAN escaneados que no existen en el catálogo.
const PlaceholderDescription = "Producto no encontrado"

// brandPriority marcas propias que siempre van primero, en este orden.
var brandPriority = []string{"SMART", "NAILEN", "SP PRO"}

// Row fila derivada del reporte. Inventario = Bodega + Mueble.
type Row struct {
	EAN         string `json:"ean"`
	Mat         string `json:"mat,omitempty"`
	Marca       string `json:"marca,omitempty"`
	Familia     string `json:"familia,omitempty"`
	Subfamilia  string `json:"subfamilia,omitempty"`
	Description string `json:"description"`
	Tip         string `json:"tip,omitempty"`
	Bodega      int    `json:"bodega"`
	Mueble      int    `json:"mueble"`
	Inventario  int    `json:"inventario"`
	Inactivo    int    `json:"inactivo"`
	Averias     int    `json:"averias"`
}

// Totals agregados del reporte (pie de tabla).
type Totals struct {
	Bodega     int `json:"bodega"`
	Mueble     int `json:"mueble"`
	Inventario int `json:"inventario"`
	Inactivo   int `json:"inactivo"`
	Averias    int `json:"averias"`
}

// Build une catálogo e inventario sobre la unión de EANs y ordena el
// resultado: marcas prioritarias primero (en su orden fijo), el resto
// alfabético por marca en mayúsculas. Filas sin entrada en el inventario
// reportan 0 en todas las ubicaciones; EANs sin producto llevan descripción
// de relleno.
func Build(products []entity.Product, inventory entity.Inventory) []Row {
	byEAN := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byEAN[p.EAN] = p
	}

	seen := make(map[string]struct{}, len(products)+len(inventory))
	eans := make([]string, 0, len(products)+len(inventory))
	for _, p := range products {
		if _, ok := seen[p.EAN]; !ok {
			seen[p.EAN] = struct{}{}
			eans = append(eans, p.EAN)
		}
	}
	for ean := range inventory {
		if _, ok := seen[ean]; !ok {
			seen[ean] = struct{}{}
			eans = append(eans, ean)
		}
	}

	rows := make([]Row, 0, len(eans))
	for _, ean := range eans {
		counts := inventory[ean] // cero-valuado si no existe
		row := Row{
			EAN:         ean,
			Description: PlaceholderDescription,
			Bodega:      counts.Bodega,
			Mueble:      counts.Mueble,
			Inventario:  counts.Bodega + counts.Mueble,
			Inactivo:    counts.Inactivo,
			Averias:     counts.Averias,
		}
		if p, ok := byEAN[ean]; ok {
			row.Mat = p.Mat
			row.Marca = p.Marca
			row.Familia = p.Familia
			row.Subfamilia = p.Subfamilia
			row.Description = p.Description
			row.Tip = p.Tip
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return lessByBrand(rows[i], rows[j])
	})
	return rows
}

// lessByBrand ordena por la lista de prioridad de marcas y después
// alfabéticamente; empata por EAN para un orden determinista.
func lessByBrand(a, b Row) bool {
	brandA := strings.ToUpper(a.Marca)
	brandB := strings.ToUpper(b.Marca)
	idxA := brandIndex(brandA)
	idxB := brandIndex(brandB)

	switch {
	case idxA >= 0 && idxB >= 0:
		if idxA != idxB {
			return idxA < idxB
		}
	case idxA >= 0:
		return true
	case idxB >= 0:
		return false
	default:
		if brandA != brandB {
			return brandA < brandB
		}
	}
	return a.EAN < b.EAN
}

func brandIndex(brand string) int {
	for i, b := range brandPriority {
		if b == brand {
			return i
		}
	}
	return -1
}

// Sum acumula los totales de todas las filas.
func Sum(rows []Row) Totals {
	var t Totals
	for _, r := range rows {
		t.Bodega += r.Bodega
		t.Mueble += r.Mueble
		t.Inventario += r.Inventario
		t.Inactivo += r.Inactivo
		t.Averias += r.Averias
	}
	return t
}

// Filter devuelve las filas cuyo EAN, descripción o marca contienen el
// término (insensible a mayúsculas). Término vacío devuelve todo.
func Filter(rows []Row, term string) []Row {
	if term == "" {
		return rows
	}
	term = strings.ToLower(term)
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.EAN), term) ||
			strings.Contains(strings.ToLower(r.Description), term) ||
			strings.Contains(strings.ToLower(r.Marca), term) {
			out = append(out, r)
		}
	}
	return out
}
