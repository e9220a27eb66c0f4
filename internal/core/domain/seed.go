package domain

// SeedCatalog returns the built-in product catalog used to initialise an
// empty inventory and as the read fallback when the remote store is
// unreachable. Callers get a fresh copy on every call.
func SeedCatalog() []Product {
	seed := make([]Product, len(seedProducts))
	copy(seed, seedProducts)
	return seed
}

var seedProducts = []Product{
	// Mens - innerwear & essentials
	{
		ID:          "m1",
		Name:        "Ghost-Fit Technical Trunk",
		Category:    CategoryMens,
		Price:       1499,
		Description: "Ultra-thin Italian microfiber with a second-skin feel. Zero-bunching technology.",
		Image:       "https://images.unsplash.com/photo-1582533561751-ef6f6ab93a2e?q=80&w=800&auto=format&fit=crop",
		Badges:      []string{"Best Seller"},
		Stock:       50,
	},
	{
		ID:          "m2",
		Name:        "Bamboo-Lux Crew Vest",
		Category:    CategoryMens,
		Price:       1299,
		Description: "Thermo-regulating bamboo fiber that breathes 3x better than cotton.",
		Image:       "https://images.unsplash.com/photo-1603566233481-99890a55edba?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},
	{
		ID:          "m3",
		Name:        "Carbon-Fiber Performance Brief",
		Category:    CategoryMens,
		Price:       1899,
		Description: "Antimicrobial carbon-weave for the modern professional. Odor-locking tech.",
		Image:       "https://images.unsplash.com/photo-1617175548993-431804f38e78?q=80&w=800&auto=format&fit=crop",
		Badges:      []string{"Tech-Series"},
		Stock:       50,
	},
	{
		ID:          "m4",
		Name:        "Aero-Mesh Boxer Brief",
		Category:    CategoryMens,
		Price:       1699,
		Description: "Strategically placed ventilation zones for maximum airflow and cooling.",
		Image:       "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},
	{
		ID:          "m5",
		Name:        "Seamless Pima Cotton Tee",
		Category:    CategoryMens,
		Price:       2199,
		Description: "The ultimate base layer. Long-staple cotton for unmatched softness.",
		Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},
	{
		ID:          "m6",
		Name:        "Signature Modal Briefs",
		Category:    CategoryMens,
		Price:       1350,
		Description: "Classic silhouette reimagined in heavy-weight modal for premium drape.",
		Image:       "https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?q=80&w=800&auto=format&fit=crop",
		Badges:      []string{"Luxe Essentials"},
		Stock:       50,
	},

	// Womens - intimates & lingerie
	{
		ID:          "w1",
		Name:        "Ethereal Silk Bralette",
		Category:    CategoryWomens,
		Price:       3499,
		Description: "Pure Mulberry silk construction. Wire-free architecture for effortless poise.",
		Image:       "https://unsplash.com/photos/woman-in-white-sports-bra-and-white-panty-5FuBbHonciU?q=80&w=800&auto=format&fit=crop",
		Badges:      []string{"Artisan"},
		Stock:       50,
	},
	{
		ID:          "w2",
		Name:        "Sculpt-Flow Bodysuit",
		Category:    CategoryWomens,
		Price:       4899,
		Description: "Seamless contouring that defines without restricting. Perfect base layer.",
		Image:       "https://unsplash.com/photos/woman-kneeling-on-bed-WU_y9Iz5x4o?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},
	{
		ID:          "w3",
		Name:        "No-Show Aura Set",
		Category:    CategoryWomens,
		Price:       2299,
		Description: "Laser-cut precision edges. Invisible even under the most fitted silk dresses.",
		Image:       "https://unsplash.com/photos/a-woman-wearing-a-blue-swimsuit-_ppO1_1Gios?q=80&w=800&auto=format&fit=crop",
		Badges:      []string{"Essential"},
		Stock:       50,
	},
	{
		ID:          "w4",
		Name:        "Plunge Micro-Mesh Bra",
		Category:    CategoryWomens,
		Price:       3199,
		Description: "Architecture meets comfort. Strategic support with sheer aesthetic panels.",
		Image:       "https://unsplash.com/photos/three-womens-underwear-on-a-white-table-sTMqdpeJG6E?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},
	{
		ID:          "w5",
		Name:        "Silk Lace Chemise",
		Category:    CategoryWomens,
		Price:       5999,
		Description: "Intricate French lace paired with 22-momme silk for ultimate nighttime luxury.",
		Image:       "https://www.istockphoto.com/photo/yellow-cotton-bra-on-violet-background-gm475766222-65548767?q=80&w=800&auto=format&fit=crop",
		Badges:      []string{"Premium"},
		Stock:       50,
	},
	{
		ID:          "w6",
		Name:        "High-Waist Contour Brief",
		Category:    CategoryWomens,
		Price:       1799,
		Description: "Gentle compression mapping to smooth and support throughout the day.",
		Image:       "https://www.istockphoto.com/photo/beautiful-woman-in-the-bed-gm696817510-129002997?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},

	// Active - performance wear
	{
		ID:          "a1",
		Name:        "Gravity-Zero Sports Bra",
		Category:    CategoryActive,
		Price:       4299,
		Description: "Encapsulation technology for high-impact activities. Zero bounce, pure focus.",
		Image:       "https://images.unsplash.com/photo-1506629082955-511b1aa562c8?q=80&w=800&auto=format&fit=crop",
		Badges:      []string{"High Impact"},
		Stock:       50,
	},
	{
		ID:          "a2",
		Name:        "Compress-Tech Legging",
		Category:    CategoryActive,
		Price:       5499,
		Description: "Medical-grade compression mapping to improve blood flow during recovery.",
		Image:       "https://images.unsplash.com/photo-1548690312-e3b507d17a12?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},
	{
		ID:          "a3",
		Name:        "Velocity Base Layer",
		Category:    CategoryActive,
		Price:       2899,
		Description: "Micro-perforated fabric for extreme moisture management in peak heat.",
		Image:       "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},
	{
		ID:          "a4",
		Name:        "Dynamic Short Liner",
		Category:    CategoryActive,
		Price:       1999,
		Description: "Ultra-lightweight liner with hidden key pocket and anti-chafe finish.",
		Image:       "https://images.unsplash.com/photo-1539109132314-34a93663a700?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},
	{
		ID:          "a5",
		Name:        "Aero-Compression Tank",
		Category:    CategoryActive,
		Price:       3200,
		Description: "Stay dry with advanced moisture-wicking yarns and ergonomic seaming.",
		Image:       "https://images.unsplash.com/photo-1518310383802-640c2de311b2?q=80&w=800&auto=format&fit=crop",
		Badges:      []string{"Pro-Series"},
		Stock:       50,
	},
	{
		ID:          "a6",
		Name:        "Seamless Utility Bralette",
		Category:    CategoryActive,
		Price:       2799,
		Description: "Hybrid design for low-impact yoga and daily active lifestyle.",
		Image:       "https://images.unsplash.com/photo-1518459031867-a89b944bffe4?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},

	// Sleepwear - comfort & relaxation
	{
		ID:          "s1",
		Name:        "Midnight Modal Robe",
		Category:    CategorySleepwear,
		Price:       7999,
		Description: "A draped masterpiece in heavy-weight modal. The pinnacle of relaxation.",
		Image:       "https://images.unsplash.com/photo-1589156206699-bc21e38c8a7d?q=80&w=800&auto=format&fit=crop",
		Badges:      []string{"Collector"},
		Stock:       50,
	},
	{
		ID:          "s2",
		Name:        "Cloud-Knit Sleep Set",
		Category:    CategorySleepwear,
		Price:       4599,
		Description: "Brushed micro-knits that mimic the softness of a summer cloud.",
		Image:       "https://images.unsplash.com/photo-1614613535308-eb5fbd3d2c17?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},
	{
		ID:          "s3",
		Name:        "Pure Cashmere Eyemask",
		Category:    CategorySleepwear,
		Price:       2499,
		Description: "100% Grade-A cashmere. Total darkness for deep, restorative REM cycles.",
		Image:       "https://images.unsplash.com/photo-1520006403909-838d6b92c22e?q=80&w=800&auto=format&fit=crop",
		Badges:      []string{"Limited"},
		Stock:       50,
	},
	{
		ID:          "s4",
		Name:        "Nocturnal Silk Pant",
		Category:    CategorySleepwear,
		Price:       5299,
		Description: "Wide-leg architecture in 22mm momme silk. Cooling and decadent.",
		Image:       "https://images.unsplash.com/photo-1598559069352-3d8437b0d42c?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},
	{
		ID:          "s5",
		Name:        "Brushed Cotton Lounge Set",
		Category:    CategorySleepwear,
		Price:       3900,
		Description: "Heavyweight brushed cotton for chilly nights. Oversized, cozy fit.",
		Image:       "https://images.unsplash.com/photo-1516762689617-e1cffcef479d?q=80&w=800&auto=format&fit=crop",
		Stock:       50,
	},
	{
		ID:          "s6",
		Name:        "Organic Modal Nightgown",
		Category:    CategorySleepwear,
		Price:       4199,
		Description: "Minimalist drape with adjustable straps for a custom comfort level.",
		Image:       "https://images.unsplash.com/photo-1590735204550-51255e7a75fa?q=80&w=800&auto=format&fit=crop",
		Badges:      []string{"Eco-Luxe"},
		Stock:       50,
	},
}
