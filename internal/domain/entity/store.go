package entity

// Store representa un almacén: un contexto de conteo independiente con su
// propio inventario. Color es una etiqueta visual asignada al crearlo.
type Store struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// StoreColors paleta fija de colores; se asigna cíclicamente según la
// cantidad de almacenes existentes al momento de crear uno nuevo.
var StoreColors = []string{
	"bg-blue-500", "bg-green-500", "bg-yellow-500", "bg-purple-500",
	"bg-pink-500", "bg-orange-500", "bg-teal-500",
}
