package templates

// CatalogEntry describes one selectable visual template to the browsing UI.
// The catalog is static configuration shipped with the application; it has no
// lifecycle beyond process startup.
type CatalogEntry struct {
	ID          string
	Name        string
	Description string
	Image       string
	Features    []string
	Category    string
	Popular     bool
}

var catalog = []CatalogEntry{
	{
		ID:          "classic-elegance",
		Name:        "Classic Elegance",
		Description: "Tata letak klasik dengan tipografi serif dan nuansa emas.",
		Image:       "/static/img/templates/classic-elegance.jpg",
		Features:    []string{"Hitung mundur acara", "Galeri foto", "Musik latar", "Peta lokasi"},
		Category:    "classic",
		Popular:     true,
	},
	{
		ID:          "rustic-garden",
		Name:        "Rustic Garden",
		Description: "Tema taman dengan ornamen daun dan warna bumi.",
		Image:       "/static/img/templates/rustic-garden.jpg",
		Features:    []string{"Galeri foto", "Cerita cinta", "Peta lokasi"},
		Category:    "rustic",
	},
	{
		ID:          "modern-minimal",
		Name:        "Modern Minimal",
		Description: "Desain bersih dengan banyak ruang kosong dan aksen monokrom.",
		Image:       "/static/img/templates/modern-minimal.jpg",
		Features:    []string{"Galeri foto", "Musik latar"},
		Category:    "modern",
	},
	{
		ID:          "floral-romance",
		Name:        "Floral Romance",
		Description: "Rangkaian bunga cat air dengan palet pastel.",
		Image:       "/static/img/templates/floral-romance.jpg",
		Features:    []string{"Cerita cinta", "Galeri foto", "Musik latar", "Peta lokasi"},
		Category:    "floral",
		Popular:     true,
	},
	{
		ID:          "traditional-jawa",
		Name:        "Traditional Jawa",
		Description: "Motif batik dan gunungan untuk pernikahan adat.",
		Image:       "/static/img/templates/traditional-jawa.jpg",
		Features:    []string{"Nama orang tua", "Jadwal akad & resepsi", "Peta lokasi"},
		Category:    "traditional",
	},
}

// Catalog returns the template catalog in display order.
func Catalog() []CatalogEntry {
	return catalog
}

// CatalogEntryByID looks up a catalog entry for the browsing UI. This is a
// separate lookup from renderer selection; see Select for the render-time
// fallback.
func CatalogEntryByID(id string) (CatalogEntry, bool) {
	for _, entry := range catalog {
		if entry.ID == id {
			return entry, true
		}
	}
	return CatalogEntry{}, false
}
