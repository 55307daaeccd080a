package entity

// Product representa un producto del catálogo maestro. El EAN es la clave
// única; el resto de atributos viene tal cual del archivo de importación.
type Product struct {
	EAN         string `json:"ean"`
	Mat         string `json:"mat,omitempty"`
	Marca       string `json:"marca,omitempty"`
	Familia     string `json:"familia,omitempty"`
	Subfamilia  string `json:"subfamilia,omitempty"`
	Description string `json:"description"`
	Tip         string `json:"tip,omitempty"`
}
