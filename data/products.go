package data

import "dukicks/models"

const (
	imgAirMax  = "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&h=500&fit=crop"
	imgWomen   = "https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=500&h=500&fit=crop"
	imgJordan  = "https://images.unsplash.com/photo-1556906781-9a412961c28c?w=500&h=500&fit=crop"
	imgCap     = "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?w=500&h=500&fit=crop"
	imgRunning = "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=500&h=500&fit=crop"
)

var (
	menSizes   = []string{"36", "37", "38", "39", "40", "41", "42", "43", "44", "45", "46"}
	womenSizes = []string{"33", "34", "35", "36", "37", "38", "39", "40", "41", "42"}
	capSizes   = []string{models.SizeUnique}
)

func available(v bool) *bool { return &v }

// SeedProducts is the built-in storefront catalog.
func SeedProducts() []models.RawProduct {
	return []models.RawProduct{
		{
			ID:          1,
			Brand:       "Nike",
			Model:       "Air Max 270",
			Category:    "Hombre",
			Type:        "Tenis",
			Description: "Diseño revolucionario con amortiguación Air Max visible. Perfecto para uso diario y deportivo.",
			Price:       3299,
			Discount:    10,
			Sizes:       []string{"36", "37", "38", "39", "40", "41", "42", "43", "44", "46"},
			Images:      []string{imgAirMax},
			InStock:     available(true),
			IsNew:       true,
			IsFeatured:  true,
		},
		{
			ID:          2,
			Brand:       "Adidas",
			Model:       "Ultraboost 22",
			Category:    "Hombre",
			Type:        "Tenis",
			Description: "Tecnología Boost para máxima comodidad. Ideal para correr y actividades diarias.",
			Price:       2899,
			Discount:    15,
			Sizes:       menSizes,
			Images:      []string{imgAirMax},
			InStock:     available(true),
		},
		{
			ID:          3,
			Brand:       "Jordan",
			Model:       "Retro 1",
			Category:    "Hombre",
			Type:        "Tenis",
			Description: "Ícono del básquetbol desde 1985. Piel premium y suela de goma clásica.",
			Price:       4299,
			Sizes:       menSizes,
			Image:       imgJordan,
			IsNew:       true,
		},
		{
			ID:          4,
			Brand:       "Puma",
			Model:       "RS-X",
			Category:    "Hombre",
			Type:        "Tenis",
			Description: "Estilo retro futurista con amortiguación RS. Para quienes no pasan desapercibidos.",
			Price:       2199,
			Discount:    20,
			Sizes:       menSizes,
			Images:      []string{imgRunning},
			InStock:     available(false),
		},
		{
			ID:          7,
			Brand:       "Nike",
			Model:       "Air Force 1",
			Category:    "Mujer",
			Type:        "Tenis",
			Description: "Clásico absoluto de Nike. Perfecto para combinar con cualquier outfit.",
			Price:       2599,
			Discount:    12,
			Sizes:       womenSizes,
			Images:      []string{imgWomen},
			InStock:     available(true),
			IsFeatured:  true,
		},
		{
			ID:          8,
			Brand:       "Adidas",
			Model:       "Ultraboost 22",
			Category:    "Mujer",
			Type:        "Tenis",
			Description: "Máxima comodidad con estilo deportivo. Para entrenamientos y uso casual.",
			Price:       3799,
			Discount:    8,
			Sizes:       womenSizes,
			Images:      []string{imgWomen},
			InStock:     available(true),
			IsNew:       true,
			IsFeatured:  true,
		},
		{
			ID:          13,
			Brand:       "Nike",
			Model:       "Swoosh Cap",
			Category:    "Gorras",
			Type:        "Gorra",
			Description: "Gorra clásica de Nike con diseño limpio. Perfecta para cualquier actividad.",
			Price:       599,
			Sizes:       capSizes,
			Images:      []string{imgCap},
			InStock:     available(true),
			IsFeatured:  true,
		},
		{
			ID:          14,
			Brand:       "Adidas",
			Model:       "Classic Six Panel",
			Category:    "Gorras",
			Type:        "Gorra",
			Description: "Diseño seis paneles. Comodidad y estilo garantizados.",
			Price:       499,
			Discount:    15,
			Sizes:       capSizes,
			Images:      []string{imgCap},
			InStock:     available(true),
		},
	}
}
