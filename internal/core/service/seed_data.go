package service

import "github.com/maizul/restaurant-api/internal/core/domain"

func sampleImage(photo string) *string {
	url := "https://images.unsplash.com/photo-" + photo + "?w=400"
	return &url
}

// sampleMenu returns a fresh copy of the catalog inserted on first run.
// Every sample starts available.
func sampleMenu() []*domain.MenuItem {
	items := []*domain.MenuItem{
		{
			Category: domain.CategoryBreakfast, NameES: "Chilaquiles Verdes", NameEN: "Green Chilaquiles",
			DescriptionES: "Tortilla frita con salsa verde, crema, queso y huevo",
			DescriptionEN: "Fried tortilla with green salsa, cream, cheese and egg",
			Price:         145, IsFeatured: true, SortOrder: 1, Tags: []string{"popular"},
			Image: sampleImage("1534352956036-cd81e27dd615"),
		},
		{
			Category: domain.CategoryBreakfast, NameES: "Huevos Rancheros", NameEN: "Ranch-Style Eggs",
			DescriptionES: "Huevos fritos sobre tortilla con salsa ranchera",
			DescriptionEN: "Fried eggs on tortilla with ranchera sauce",
			Price:         125, SortOrder: 2, Tags: []string{},
			Image: sampleImage("1528712306091-ed0763094c98"),
		},
		{
			Category: domain.CategoryBreakfast, NameES: "Molletes Maizul", NameEN: "Maizul Molletes",
			DescriptionES: "Pan con frijoles, queso gratinado y pico de gallo",
			DescriptionEN: "Bread with beans, melted cheese and pico de gallo",
			Price:         115, SortOrder: 3, Tags: []string{"vegetarian"},
			Image: sampleImage("1565299585323-38d6b0865b47"),
		},
		{
			Category: domain.CategoryBreakfast, NameES: "Hot Cakes con Frutas", NameEN: "Pancakes with Fruits",
			DescriptionES: "Torre de hot cakes con frutas frescas y miel de maple",
			DescriptionEN: "Stack of pancakes with fresh fruits and maple syrup",
			Price:         135, SortOrder: 4, Tags: []string{"vegetarian"},
			Image: sampleImage("1567620905732-2d1ec7ab7445"),
		},
		{
			Category: domain.CategoryLunch, NameES: "Tacos de Pescado", NameEN: "Fish Tacos",
			DescriptionES: "Tacos de pescado fresco con pico de gallo y chipotle",
			DescriptionEN: "Fresh fish tacos with pico de gallo and chipotle",
			Price:         185, IsFeatured: true, SortOrder: 1, Tags: []string{"popular", "specialty"},
			Image: sampleImage("1551504734-5ee1c4a1479b"),
		},
		{
			Category: domain.CategoryLunch, NameES: "Aguachile Maizul", NameEN: "Maizul Aguachile",
			DescriptionES: "Camarón fresco en jugo de limón con pepino y chile serrano",
			DescriptionEN: "Fresh shrimp in lime juice with cucumber and serrano pepper",
			Price:         225, IsFeatured: true, SortOrder: 2, Tags: []string{"popular", "specialty"},
			Image: sampleImage("1681394421550-83cc9341b9f8"),
		},
		{
			Category: domain.CategoryLunch, NameES: "Bowl de Pollo Mediterráneo", NameEN: "Mediterranean Chicken Bowl",
			DescriptionES: "Pollo a las hierbas con quinoa, verduras y hummus",
			DescriptionEN: "Herb chicken with quinoa, vegetables and hummus",
			Price:         195, SortOrder: 3, Tags: []string{},
			Image: sampleImage("1546069901-ba9599a7e63c"),
		},
		{
			Category: domain.CategoryLunch, NameES: "Ensalada Tropical", NameEN: "Tropical Salad",
			DescriptionES: "Mix de lechugas, mango, aguacate y vinagreta de limón",
			DescriptionEN: "Mixed greens, mango, avocado and lime vinaigrette",
			Price:         155, SortOrder: 4, Tags: []string{"vegetarian"},
			Image: sampleImage("1512621776951-a57141f2eefd"),
		},
		{
			Category: domain.CategoryDinner, NameES: "Rib Eye al Carbón", NameEN: "Charcoal Rib Eye",
			DescriptionES: "Corte premium de 400g con guarnición",
			DescriptionEN: "Premium 400g cut with sides",
			Price:         485, IsFeatured: true, SortOrder: 1, Tags: []string{"specialty"},
			Image: sampleImage("1544025162-d76694265947"),
		},
		{
			Category: domain.CategoryDinner, NameES: "Pulpo a las Brasas", NameEN: "Grilled Octopus",
			DescriptionES: "Pulpo perfectamente asado con papas y chimichurri",
			DescriptionEN: "Perfectly grilled octopus with potatoes and chimichurri",
			Price:         395, IsFeatured: true, SortOrder: 2, Tags: []string{"specialty"},
			Image: sampleImage("1565557623262-b51c2513a641"),
		},
		{
			Category: domain.CategoryDinner, NameES: "Salmón Glaseado", NameEN: "Glazed Salmon",
			DescriptionES: "Salmón con glaseado de miel y soya, vegetales al vapor",
			DescriptionEN: "Salmon with honey soy glaze, steamed vegetables",
			Price:         345, SortOrder: 3, Tags: []string{},
			Image: sampleImage("1467003909585-2f8a72700288"),
		},
		{
			Category: domain.CategoryDinner, NameES: "Pasta Mariscos", NameEN: "Seafood Pasta",
			DescriptionES: "Linguini con camarones, pulpo y mejillones en salsa blanca",
			DescriptionEN: "Linguini with shrimp, octopus and mussels in white sauce",
			Price:         295, SortOrder: 4, Tags: []string{"popular"},
			Image: sampleImage("1473093295043-cdd812d0e601"),
		},
	}
	for _, it := range items {
		it.IsAvailable = true
	}
	return items
}
