package vehicle

// Info is the display entry of a vehicle type in the vehicle picker.
type Info struct {
	Type        Type
	DisplayName string
	Name        string
	Icon        string
	Description string
	Features    []string
	MaxWeight   string
	BestFor     string
}

var catalog = map[Type]Info{
	BodaBoda: {
		Type:        BodaBoda,
		DisplayName: "Boda Boda (Motorcycle)",
		Name:        "Boda Boda",
		Icon:        "🏍️",
		Description: "Motorcycle - fastest in traffic, ideal for small packages",
		Features:    []string{"Fastest delivery", "Beats traffic", "Small packages only"},
		MaxWeight:   "20 kg",
		BestFor:     "Documents, food, small electronics",
	},
	TukTuk: {
		Type:        TukTuk,
		DisplayName: "TukTuk (Three-Wheeler)",
		Name:        "TukTuk",
		Icon:        "🛺",
		Description: "Three-wheeler - good capacity with traffic agility",
		Features:    []string{"Good capacity", "Weather protected", "Economical"},
		MaxWeight:   "100 kg",
		BestFor:     "Medium packages, groceries, multiple items",
	},
	Car: {
		Type:        Car,
		DisplayName: "Car",
		Name:        "Car",
		Icon:        "🚗",
		Description: "Sedan or hatchback - secure and comfortable",
		Features:    []string{"Secure transport", "Climate controlled", "Professional"},
		MaxWeight:   "80 kg",
		BestFor:     "Fragile items, electronics, clothing",
	},
	Van: {
		Type:        Van,
		DisplayName: "Van",
		Name:        "Van",
		Icon:        "🚐",
		Description: "Cargo van - for larger deliveries",
		Features:    []string{"Large capacity", "Weatherproof", "Bulk orders"},
		MaxWeight:   "500 kg",
		BestFor:     "Furniture, appliances, business supplies",
	},
	Pickup: {
		Type:        Pickup,
		DisplayName: "Pickup Truck",
		Name:        "Pickup Truck",
		Icon:        "🛻",
		Description: "Open bed truck - for heavy and oversized cargo",
		Features:    []string{"Maximum capacity", "Heavy loads", "Construction materials"},
		MaxWeight:   "1000 kg",
		BestFor:     "Building materials, large equipment, moving",
	},
}

// InfoOf returns the display entry of t.
func InfoOf(t Type) (Info, error) {
	if err := t.Validate(); err != nil {
		return Info{}, err
	}
	info := catalog[t]
	info.Features = append([]string(nil), info.Features...)
	return info, nil
}

// Catalog returns every display entry in registry order.
func Catalog() []Info {
	out := make([]Info, 0, len(catalog))
	for _, t := range Types() {
		info, _ := InfoOf(t)
		out = append(out, info)
	}
	return out
}
