package setup

const cdnBase = "https://cdn.example.com"

// StoreSeed is the target store configuration.
type StoreSeed struct {
	Name            string
	DefaultCurrency string
	Currencies      []string
}

// RegionSeed describes a region to create when none exist.
type RegionSeed struct {
	Name         string
	CurrencyCode string
	Countries    []string
}

// ChannelSeed describes an additional sales channel.
type ChannelSeed struct {
	Name        string
	Description string
}

// LocationSeed describes a warehouse with its postal address.
type LocationSeed struct {
	Name        string
	Address1    string
	Address2    string
	City        string
	CountryCode string
	Province    string
	PostalCode  string
	Phone       string
}

// KeySeed describes a publishable API key for a storefront.
type KeySeed struct {
	Title string
	Type  string
}

// CategorySeed is a node in the category tree. Children are created after
// their parent so parent_category_id can be wired.
type CategorySeed struct {
	Name        string
	Handle      string
	Description string
	Icon        string
	Children    []CategorySeed
}

// VariantSeed describes a product variant. Title encodes the option values
// positionally ("<value1> - <value2>").
type VariantSeed struct {
	Title  string
	SKU    string
	Amount int64
}

// OptionSeed is a product option with its allowed values.
type OptionSeed struct {
	Title  string
	Values []string
}

// ProductSeed describes a product to create if its handle is absent.
type ProductSeed struct {
	Title          string
	Handle         string
	Description    string
	CategoryHandle string
	Thumbnail      string
	Images         []string
	Options        []OptionSeed
	Variants       []VariantSeed
}

var storeSeed = StoreSeed{
	Name:            "Rox Store Pakistan",
	DefaultCurrency: "pkr",
	Currencies:      []string{"pkr", "usd"},
}

var regionSeeds = []RegionSeed{
	{Name: "Pakistan", CurrencyCode: "pkr", Countries: []string{"pk"}},
}

var channelSeeds = []ChannelSeed{
	{Name: "Mobile App", Description: "Mobile application sales channel"},
}

var locationSeeds = []LocationSeed{
	{
		Name:        "Karachi Warehouse",
		Address1:    "Block 7, SITE Industrial Area",
		Address2:    "Near Port Qasim",
		City:        "Karachi",
		CountryCode: "pk",
		Province:    "Sindh",
		PostalCode:  "75500",
		Phone:       "+92-21-32456789",
	},
	{
		Name:        "Lahore Warehouse",
		Address1:    "Plot 123, Industrial Area",
		Address2:    "Near Thokar Niaz Baig",
		City:        "Lahore",
		CountryCode: "pk",
		Province:    "Punjab",
		PostalCode:  "54000",
		Phone:       "+92-42-35761234",
	},
	{
		Name:        "Islamabad Fulfillment Center",
		Address1:    "I-9 Industrial Area",
		Address2:    "Sector I-9/3",
		City:        "Islamabad",
		CountryCode: "pk",
		Province:    "Islamabad Capital Territory",
		PostalCode:  "44000",
		Phone:       "+92-51-2876543",
	},
}

var keySeeds = []KeySeed{
	{Title: "Default Publishable API Key", Type: "publishable"},
	{Title: "Mobile App Publishable Key", Type: "publishable"},
}

var categorySeeds = []CategorySeed{
	{
		Name:        "Electronics",
		Handle:      "electronics",
		Description: "Electronic devices and gadgets",
		Icon:        cdnBase + "/categories/electronics/icon.png",
		Children: []CategorySeed{
			{
				Name:        "Apple",
				Handle:      "apple",
				Description: "Apple products",
				Children: []CategorySeed{
					{Name: "iPhone", Handle: "apple-iphone", Description: "Apple iPhone smartphones"},
					{Name: "Watch", Handle: "apple-watch", Description: "Apple Watch series"},
				},
			},
			{
				Name:        "Samsung",
				Handle:      "samsung",
				Description: "Samsung products",
				Children: []CategorySeed{
					{Name: "Phone", Handle: "samsung-phone", Description: "Samsung Galaxy smartphones"},
					{Name: "Tablet", Handle: "samsung-tablet", Description: "Samsung Galaxy tablets"},
				},
			},
		},
	},
}

var productSeeds = []ProductSeed{
	{
		Title:          "iPhone 15 Pro Max",
		Handle:         "iphone-15-pro-max",
		Description:    "The most powerful iPhone ever with A17 Pro chip, titanium design, and advanced camera system.",
		CategoryHandle: "apple-iphone",
		Thumbnail:      cdnBase + "/products/iphone-15-pro-max/thumbnail.jpg",
		Images: []string{
			cdnBase + "/products/iphone-15-pro-max/image-1.jpg",
			cdnBase + "/products/iphone-15-pro-max/image-2.jpg",
		},
		Options: []OptionSeed{
			{Title: "Storage", Values: []string{"256GB", "512GB", "1TB"}},
			{Title: "Color", Values: []string{"Natural Titanium", "Blue Titanium", "Black Titanium"}},
		},
		Variants: []VariantSeed{
			{Title: "256GB - Natural Titanium", SKU: "IP15PM-256-NT", Amount: 549999},
			{Title: "512GB - Natural Titanium", SKU: "IP15PM-512-NT", Amount: 649999},
			{Title: "1TB - Natural Titanium", SKU: "IP15PM-1TB-NT", Amount: 749999},
		},
	},
	{
		Title:          "iPhone 15",
		Handle:         "iphone-15",
		Description:    "The new iPhone 15 with Dynamic Island and advanced dual-camera system.",
		CategoryHandle: "apple-iphone",
		Thumbnail:      cdnBase + "/products/iphone-15/thumbnail.jpg",
		Images:         []string{cdnBase + "/products/iphone-15/image-1.jpg"},
		Options: []OptionSeed{
			{Title: "Storage", Values: []string{"128GB", "256GB"}},
			{Title: "Color", Values: []string{"Pink", "Blue", "Black"}},
		},
		Variants: []VariantSeed{
			{Title: "128GB - Pink", SKU: "IP15-128-PNK", Amount: 349999},
			{Title: "128GB - Blue", SKU: "IP15-128-BLU", Amount: 349999},
			{Title: "256GB - Pink", SKU: "IP15-256-PNK", Amount: 399999},
		},
	},
	{
		Title:          "Samsung Galaxy S24 Ultra",
		Handle:         "samsung-galaxy-s24-ultra",
		Description:    "The ultimate Samsung flagship with S Pen, 200MP camera, and AI features.",
		CategoryHandle: "samsung-phone",
		Thumbnail:      cdnBase + "/products/s24-ultra/thumbnail.jpg",
		Images:         []string{cdnBase + "/products/s24-ultra/image-1.jpg"},
		Options: []OptionSeed{
			{Title: "Storage", Values: []string{"256GB", "512GB", "1TB"}},
			{Title: "Color", Values: []string{"Titanium Gray", "Titanium Black"}},
		},
		Variants: []VariantSeed{
			{Title: "256GB - Titanium Gray", SKU: "S24U-256-GRY", Amount: 459999},
			{Title: "256GB - Titanium Black", SKU: "S24U-256-BLK", Amount: 459999},
			{Title: "512GB - Titanium Black", SKU: "S24U-512-BLK", Amount: 529999},
		},
	},
	{
		Title:          "Apple Watch Series 9",
		Handle:         "apple-watch-series-9",
		Description:    "Advanced health features, bright display, and powerful S9 chip.",
		CategoryHandle: "apple-watch",
		Thumbnail:      cdnBase + "/products/apple-watch-9/thumbnail.jpg",
		Images:         []string{cdnBase + "/products/apple-watch-9/image-1.jpg"},
		Options: []OptionSeed{
			{Title: "Size", Values: []string{"41mm", "45mm"}},
			{Title: "Case", Values: []string{"Aluminum", "Stainless Steel"}},
		},
		Variants: []VariantSeed{
			{Title: "45mm - Aluminum", SKU: "AW9-45-ALU", Amount: 149999},
			{Title: "45mm - Stainless Steel", SKU: "AW9-45-SS", Amount: 249999},
			{Title: "41mm - Aluminum", SKU: "AW9-41-ALU", Amount: 139999},
		},
	},
}
