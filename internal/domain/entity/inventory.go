package entity

// Location ubicación física donde se clasifica cada unidad contada.
type Location string

const (
	LocationBodega   Location = "Bodega"
	LocationMueble   Location = "Mueble"
	LocationAverias  Location = "Averias"
	LocationInactivo Location = "Inactivo"
)

// Locations todas las ubicaciones válidas.
var Locations = []Location{LocationBodega, LocationMueble, LocationAverias, LocationInactivo}

// Valid indica si la ubicación pertenece al conjunto fijo.
func (l Location) Valid() bool {
	switch l {
	case LocationBodega, LocationMueble, LocationAverias, LocationInactivo:
		return true
	}
	return false
}

// LocationCounts conteo por ubicación para un EAN. Los valores nunca son
// negativos: las ediciones manuales se recortan a 0.
type LocationCounts struct {
	Bodega   int `json:"Bodega"`
	Mueble   int `json:"Mueble"`
	Averias  int `json:"Averias"`
	Inactivo int `json:"Inactivo"`
}

// Get devuelve el conteo de la ubicación indicada.
func (c LocationCounts) Get(l Location) int {
	switch l {
	case LocationBodega:
		return c.Bodega
	case LocationMueble:
		return c.Mueble
	case LocationAverias:
		return c.Averias
	case LocationInactivo:
		return c.Inactivo
	}
	return 0
}

// Set fija el conteo de la ubicación indicada, recortando a 0 los negativos.
func (c *LocationCounts) Set(l Location, qty int) {
	if qty < 0 {
		qty = 0
	}
	switch l {
	case LocationBodega:
		c.Bodega = qty
	case LocationMueble:
		c.Mueble = qty
	case LocationAverias:
		c.Averias = qty
	case LocationInactivo:
		c.Inactivo = qty
	}
}

// Add incrementa el conteo de la ubicación indicada y devuelve el nuevo total.
func (c *LocationCounts) Add(l Location, delta int) int {
	c.Set(l, c.Get(l)+delta)
	return c.Get(l)
}

// Inventory inventario de un almacén: EAN -> conteos por ubicación.
// La entrada de un EAN se crea perezosamente en su primer escaneo.
type Inventory map[string]LocationCounts

// Inventories inventarios de todos los almacenes, indexados por id de almacén.
type Inventories map[string]Inventory

// RecentScan registro efímero de un escaneo exitoso. Quantity es el total
// de la ubicación después del incremento. No se persiste.
type RecentScan struct {
	ID          string   `json:"id"`
	EAN         string   `json:"ean"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Quantity    int      `json:"quantity"`
}
