package repository

import "gabriela-colchoes/internal/domain"

// DefaultProducts is the furniture catalog the store opens with.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Sofá 2 Lugares Elegance",
			Description: "Sofá confortável para 2 pessoas, ideal para salas pequenas. Revestimento em tecido de alta qualidade.",
			Price:       domain.BRL("899.90"),
			Image:       "https://images.pexels.com/photos/1866149/pexels-photo-1866149.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       15,
			Colors:      []string{"Branco", "Bege", "Cinza"},
		},
		{
			ID:          "2",
			Name:        "Sofá 3 Lugares Comfort",
			Description: "Sofá espaçoso e confortável para 3 pessoas, revestido em tecido de alta durabilidade. Perfeito para a sala de estar.",
			Price:       domain.BRL("1299.90"),
			Image:       "https://images.pexels.com/photos/1866149/pexels-photo-1866149.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       8,
			Colors:      []string{"Azul", "Cinza", "Marrom", "Preto"},
		},
		{
			ID:          "3",
			Name:        "Mesa de Jantar Moderna",
			Description: "Mesa de jantar para 6 pessoas em madeira maciça com acabamento refinado. Design moderno e elegante.",
			Price:       domain.BRL("1899.90"),
			Image:       "https://images.pexels.com/photos/1395967/pexels-photo-1395967.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       5,
			Colors:      []string{"Mogno", "Carvalho", "Nogueira"},
		},
		{
			ID:          "4",
			Name:        "Guarda-Roupa 6 Portas",
			Description: "Guarda-roupa espaçoso com 6 portas e compartimentos internos organizados. Ideal para quartos de casal.",
			Price:       domain.BRL("2299.90"),
			Image:       "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       3,
			Colors:      []string{"Branco", "Preto", "Amadeirado"},
		},
		{
			ID:          "5",
			Name:        "Poltrona Reclinável",
			Description: "Poltrona reclinável em couro sintético com sistema de massagem. Máximo conforto para relaxar.",
			Price:       domain.BRL("1599.90"),
			Image:       "https://images.pexels.com/photos/586799/pexels-photo-586799.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       12,
			Colors:      []string{"Preto", "Marrom", "Bege"},
		},
		{
			ID:          "6",
			Name:        "Cama Box Casal Premium",
			Description: "Cama box casal com colchão ortopédico incluído. Base resistente com design moderno.",
			Price:       domain.BRL("1799.90"),
			Image:       "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       7,
			Colors:      []string{"Branco", "Cinza", "Preto"},
		},
	}
}
