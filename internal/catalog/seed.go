package catalog

import "github.com/marcheapp/storefront/internal/domain"

// Встроенные данные рынка. Источник каталога внешний по отношению к
// ядру витрины; этот seed играет его роль для локальной разработки,
// демо и тестов.

var seedCategories = []domain.Category{
	{ID: "1", Name: "Fruits & Légumes", ImageURL: "https://images.pexels.com/photos/1660027/pexels-photo-1660027.jpeg", ProductsCount: 42},
	{ID: "2", Name: "Viandes", ImageURL: "https://images.pexels.com/photos/1927377/pexels-photo-1927377.jpeg", ProductsCount: 18},
	{ID: "3", Name: "Produits Laitiers", ImageURL: "https://images.pexels.com/photos/248412/pexels-photo-248412.jpeg", ProductsCount: 24},
	{ID: "4", Name: "Boulangerie", ImageURL: "https://images.pexels.com/photos/1775043/pexels-photo-1775043.jpeg", ProductsCount: 15},
	{ID: "5", Name: "Boissons", ImageURL: "https://images.pexels.com/photos/616833/pexels-photo-616833.jpeg", ProductsCount: 19},
	{ID: "6", Name: "Épicerie", ImageURL: "https://images.pexels.com/photos/1393382/pexels-photo-1393382.jpeg", ProductsCount: 31},
}

var seedProducers = []domain.Producer{
	{
		ID:          "1",
		Name:        "Ferme des Belles Récoltes",
		Description: "Ferme familiale spécialisée dans la culture de fruits et légumes biologiques depuis 1995.",
		Location:    "Saint-Paul-de-Vence",
		DistanceKm:  8.5,
		Rating:      4.8,
		Categories:  []string{"Fruits", "Légumes", "Bio"},
		ImageURL:    "https://images.pexels.com/photos/2382665/pexels-photo-2382665.jpeg",
	},
	{
		ID:          "2",
		Name:        "Fromagerie Dupont",
		Description: "Artisans fromagers de père en fils, nous perpétuons la tradition du fromage au lait cru.",
		Location:    "Valbonne",
		DistanceKm:  12.3,
		Rating:      4.6,
		Categories:  []string{"Fromages", "Produits Laitiers"},
		ImageURL:    "https://images.pexels.com/photos/6287264/pexels-photo-6287264.jpeg",
	},
	{
		ID:          "3",
		Name:        "Domaine Oliviers & Co",
		Description: "Producteurs d'huile d'olive extra vierge première pression à froid.",
		Location:    "Grasse",
		DistanceKm:  15.7,
		Rating:      4.9,
		Categories:  []string{"Huiles", "Épicerie Fine"},
		ImageURL:    "https://images.pexels.com/photos/533191/pexels-photo-533191.jpeg",
	},
	{
		ID:          "4",
		Name:        "Boucherie Martin",
		Description: "Élevage traditionnel de bovins et ovins nourris à l'herbe.",
		Location:    "Antibes",
		DistanceKm:  6.2,
		Rating:      4.7,
		Categories:  []string{"Viandes", "Charcuterie"},
		ImageURL:    "https://images.pexels.com/photos/1109197/pexels-photo-1109197.jpeg",
	},
	{
		ID:          "5",
		Name:        "Boulangerie Tradition",
		Description: "Artisan boulanger utilisant des farines biologiques locales.",
		Location:    "Cannes",
		DistanceKm:  10.8,
		Rating:      4.5,
		Categories:  []string{"Pains", "Viennoiseries", "Pâtisseries"},
		ImageURL:    "https://images.pexels.com/photos/1070946/pexels-photo-1070946.jpeg",
	},
}

var seedProducts = []domain.Product{
	{
		ID:          "1",
		Name:        "Tomates Anciennes Bio",
		Description: "Un mélange coloré de variétés anciennes de tomates cultivées sans pesticides.",
		PriceMinor:  495,
		Unit:        "kg",
		Category:    "Fruits & Légumes",
		ProducerID:  "1",
		ImageURL:    "https://images.pexels.com/photos/533280/pexels-photo-533280.jpeg",
		InStock:     true,
		IsOrganic:   true,
		IsLocal:     true,
		Rating:      4.7,
	},
	{
		ID:          "2",
		Name:        "Panier de Fraises",
		Description: "Fraises juteuses et sucrées cueillies à maturité, variété Gariguette.",
		PriceMinor:  650,
		Unit:        "barquette",
		Category:    "Fruits & Légumes",
		ProducerID:  "1",
		ImageURL:    "https://images.pexels.com/photos/89778/strawberries-frisch-ripe-sweet-89778.jpeg",
		InStock:     true,
		IsOrganic:   true,
		IsLocal:     true,
		Rating:      4.9,
	},
	{
		ID:          "3",
		Name:        "Camembert Fermier",
		Description: "Camembert au lait cru affiné pendant 3 semaines.",
		PriceMinor:  590,
		Unit:        "pièce",
		Category:    "Produits Laitiers",
		ProducerID:  "2",
		ImageURL:    "https://images.pexels.com/photos/773253/pexels-photo-773253.jpeg",
		InStock:     true,
		IsOrganic:   false,
		IsLocal:     true,
		Rating:      4.8,
	},
	{
		ID:          "4",
		Name:        "Huile d'Olive Extra Vierge",
		Description: "Huile d'olive première pression à froid, extraite d'olives cueillies à la main.",
		PriceMinor:  1290,
		Unit:        "50cl",
		Category:    "Épicerie",
		ProducerID:  "3",
		ImageURL:    "https://images.pexels.com/photos/33783/olive-oil-salad-dressing-cooking.jpg",
		InStock:     true,
		IsOrganic:   true,
		IsLocal:     true,
		Rating:      5.0,
	},
	{
		ID:          "5",
		Name:        "Entrecôte de Bœuf",
		Description: "Entrecôte de bœuf d'exception, issue de vaches élevées en plein air.",
		PriceMinor:  2580,
		Unit:        "kg",
		Category:    "Viandes",
		ProducerID:  "4",
		ImageURL:    "https://images.pexels.com/photos/618775/pexels-photo-618775.jpeg",
		InStock:     true,
		IsOrganic:   false,
		IsLocal:     true,
		Rating:      4.6,
	},
	{
		ID:          "6",
		Name:        "Pain de Campagne",
		Description: "Pain à la mie dense et à la croûte croustillante, cuit au feu de bois.",
		PriceMinor:  390,
		Unit:        "pièce",
		Category:    "Boulangerie",
		ProducerID:  "5",
		ImageURL:    "https://images.pexels.com/photos/1756061/pexels-photo-1756061.jpeg",
		InStock:     true,
		IsOrganic:   true,
		IsLocal:     true,
		Rating:      4.5,
	},
	{
		ID:          "7",
		Name:        "Yaourt Nature",
		Description: "Yaourt onctueux au lait entier de vache, sans sucre ajouté.",
		PriceMinor:  120,
		Unit:        "pot",
		Category:    "Produits Laitiers",
		ProducerID:  "2",
		ImageURL:    "https://images.pexels.com/photos/373882/pexels-photo-373882.jpeg",
		InStock:     true,
		IsOrganic:   false,
		IsLocal:     true,
		Rating:      4.3,
	},
	{
		ID:          "8",
		Name:        "Courgettes Bio",
		Description: "Courgettes vertes cultivées sans pesticides.",
		PriceMinor:  350,
		Unit:        "kg",
		Category:    "Fruits & Légumes",
		ProducerID:  "1",
		ImageURL:    "https://images.pexels.com/photos/128420/pexels-photo-128420.jpeg",
		InStock:     true,
		IsOrganic:   true,
		IsLocal:     true,
		Rating:      4.4,
	},
}
