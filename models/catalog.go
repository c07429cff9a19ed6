package models

import "time"

type CatalogItem struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Price       int64     `gorm:"not null;default:0" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"type:text;not null" json:"image"`
	SortOrder   int       `gorm:"not null;default:0" json:"sortOrder"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DefaultCatalog is seeded when the catalog table is empty.
func DefaultCatalog() []CatalogItem {
	return []CatalogItem{
		{
			ID:          "Spa de manos",
			Title:       "Spa de Manos",
			Price:       25000,
			Description: "Exfoliación, hidratación profunda y cuidado de cutículas para unas manos suaves y renovadas.",
			Image:       "https://images.unsplash.com/photo-1616394584738-fc6e612e71b9?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "Mantenimiento",
			Title:       "Mantenimiento",
			Price:       80000,
			Description: "Relleno y perfeccionamiento en tonos Nude/Marrón. Ideal para mantener la elegancia.",
			Image:       "https://images.unsplash.com/photo-1632345031435-8727f6897d53?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "Curso Técnica de Uñas",
			Title:       "Curso Técnica de Uñas",
			Price:       400000,
			Description: "Formación profesional: Preparación, uso de brocas, Soft Gel, Semipermanente. Incluye certificado y materiales.",
			Image:       "https://images.unsplash.com/photo-1516975080664-ed2fc6a32937?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "Retiro",
			Title:       "Retiro",
			Price:       30000,
			Description: "Retiro cuidadoso de material preservando la salud de tu uña natural.",
			Image:       "https://images.unsplash.com/photo-1522337660859-02fbefca4702?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "Tradicional",
			Title:       "Tradicional",
			Price:       50000,
			Description: "Limpieza profunda y esmaltado clásico. Tonos vibrantes como el rojo intenso.",
			Image:       "https://images.unsplash.com/photo-1599695663678-01d7a35368a6?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "Semipermanente",
			Title:       "Semipermanente",
			Price:       60000,
			Description: "Esmaltado de larga duración con brillo intenso y curado en cabina. Acabado perfecto.",
			Image:       "https://images.unsplash.com/photo-1560750588-73207b1ef5b8?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "Soft gel",
			Title:       "Soft Gel",
			Price:       100000,
			Description: "Extensión completa con tips de gel. Aspecto natural, ligero y resistente.",
			Image:       "https://images.unsplash.com/photo-1519014816548-bf5fe059e98b?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "Esculpidas en gel",
			Title:       "Esculpidas en Gel",
			Price:       130000,
			Description: "Construcción artesanal para lograr la forma y largo perfecto. Diseños personalizados.",
			Image:       "https://images.unsplash.com/photo-1604654894610-df63bc536371?auto=format&fit=crop&q=80&w=800",
		},
	}
}
