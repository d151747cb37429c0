package catalog

// Fixed launch catalog: 4 categories, 8 products, two per category.
// Records get fresh ids when inserted, so seeding is only ever done once
// per store lifetime.

func SeedCategories() []NewCategory {
	return []NewCategory{
		{
			Name:        "Feminine Care",
			Slug:        "feminine-care",
			Description: "Organic, sustainable feminine hygiene products",
			Image:       "https://images.unsplash.com/photo-1559181567-c3190ca9959b?w=400&h=300&fit=crop",
		},
		{
			Name:        "Gaming & Tech",
			Slug:        "gaming-tech",
			Description: "Premium phone and gaming accessories",
			Image:       "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae?w=400&h=300&fit=crop",
		},
		{
			Name:        "Kids Learning",
			Slug:        "kids-learning",
			Description: "Educational toys and books for children",
			Image:       "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=400&h=300&fit=crop",
		},
		{
			Name:        "Fitness Gear",
			Slug:        "fitness-gear",
			Description: "Premium workout equipment and accessories",
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop",
		},
	}
}

func SeedProducts() []NewProduct {
	return []NewProduct{
		{
			Name:        "Organic Cotton Pads",
			Description: "100% organic cotton feminine hygiene pads for sensitive skin. Biodegradable and plastic-free.",
			Price:       "24.99",
			Category:    "feminine-care",
			Image:       "https://images.unsplash.com/photo-1559181567-c3190ca9959b?w=400&h=300&fit=crop",
			InStock:     50,
			Features:    []string{"100% Organic Cotton", "Biodegradable", "Plastic-Free", "Hypoallergenic"},
		},
		{
			Name:        "Menstrual Cup Set",
			Description: "Eco-friendly reusable menstrual cup with sterilizing case and cleaning brush.",
			Price:       "32.99",
			Category:    "feminine-care",
			Image:       "https://images.unsplash.com/photo-1559181567-c3190ca9959b?w=400&h=300&fit=crop",
			InStock:     30,
			Features:    []string{"Medical Grade Silicone", "Reusable", "Eco-Friendly", "Includes Case"},
		},
		{
			Name:        "Pro Gaming Controller",
			Description: "Wireless gaming controller for mobile devices with customizable buttons and ergonomic design.",
			Price:       "79.99",
			Category:    "gaming-tech",
			Image:       "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400&h=300&fit=crop",
			InStock:     25,
			Features:    []string{"Wireless Connectivity", "Customizable Buttons", "Ergonomic Design", "20-hour Battery"},
		},
		{
			Name:        "Wireless Charging Pad",
			Description: "Fast wireless charging for all Qi-enabled devices with LED status indicator.",
			Price:       "39.99",
			Category:    "gaming-tech",
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=300&fit=crop",
			InStock:     40,
			Features:    []string{"Fast Charging", "Qi-Compatible", "LED Indicator", "Compact Design"},
		},
		{
			Name:        "STEM Learning Kit",
			Description: "Interactive educational toys for ages 5-12 including building blocks, circuits, and coding games.",
			Price:       "45.99",
			Category:    "kids-learning",
			Image:       "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=400&h=300&fit=crop",
			InStock:     35,
			Features:    []string{"Ages 5-12", "STEM Education", "Interactive Learning", "Multiple Activities"},
		},
		{
			Name:        "Educational Puzzle Set",
			Description: "Set of 6 progressive puzzles teaching geography, animals, and problem-solving skills.",
			Price:       "28.99",
			Category:    "kids-learning",
			Image:       "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=400&h=300&fit=crop",
			InStock:     45,
			Features:    []string{"6 Puzzles Included", "Progressive Difficulty", "Educational Content", "Durable Materials"},
		},
		{
			Name:        "Premium Yoga Mat",
			Description: "Non-slip eco-friendly yoga mat with carrying strap and alignment lines.",
			Price:       "59.99",
			Category:    "fitness-gear",
			Image:       "https://images.unsplash.com/photo-1526506118085-60ce8714f8c5?w=400&h=300&fit=crop",
			InStock:     20,
			Features:    []string{"Non-Slip Surface", "Eco-Friendly", "Alignment Lines", "Carrying Strap"},
		},
		{
			Name:        "Resistance Band Set",
			Description: "Complete resistance band set with 5 different resistance levels and workout guide.",
			Price:       "34.99",
			Category:    "fitness-gear",
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop",
			InStock:     30,
			Features:    []string{"5 Resistance Levels", "Workout Guide", "Portable", "Durable Material"},
		},
	}
}
