package medusa

// Platform resource shapes, as returned by the commerce platform's store and
// admin APIs. Fields are snake_case on the wire; the domain services flatten
// them into the BFF's public DTOs.

type Product struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title"`
	Subtitle     *string                `json:"subtitle"`
	Description  *string                `json:"description"`
	Handle       string                 `json:"handle"`
	IsGiftcard   bool                   `json:"is_giftcard"`
	Status       string                 `json:"status"`
	Thumbnail    *string                `json:"thumbnail"`
	Images       []Image                `json:"images"`
	Options      []ProductOption        `json:"options"`
	Variants     []ProductVariant       `json:"variants"`
	Categories   []ProductCategoryRef   `json:"categories"`
	CollectionID *string                `json:"collection_id"`
	Collection   *Collection            `json:"collection"`
	Metadata     map[string]interface{} `json:"metadata"`
	CreatedAt    string                 `json:"created_at"`
	UpdatedAt    string                 `json:"updated_at"`
}

type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type ProductOption struct {
	ID     string              `json:"id"`
	Title  string              `json:"title"`
	Values []ProductOptionValue `json:"values"`
}

type ProductOptionValue struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	OptionID string `json:"option_id"`
}

type ProductVariant struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	SKU               *string              `json:"sku"`
	InventoryQuantity int                  `json:"inventory_quantity"`
	AllowBackorder    bool                 `json:"allow_backorder"`
	ManageInventory   bool                 `json:"manage_inventory"`
	Prices            []Price              `json:"prices"`
	Options           []ProductOptionValue `json:"options"`
}

type Price struct {
	ID           string `json:"id"`
	CurrencyCode string `json:"currency_code"`
	Amount       int64  `json:"amount"`
}

type ProductCategoryRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

type Collection struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Handle    string                 `json:"handle"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt string                 `json:"created_at"`
	UpdatedAt string                 `json:"updated_at"`
}

type ProductCategory struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Handle           string                 `json:"handle"`
	Description      string                 `json:"description"`
	IsActive         bool                   `json:"is_active"`
	IsInternal       bool                   `json:"is_internal"`
	Rank             int                    `json:"rank"`
	ParentCategoryID *string                `json:"parent_category_id"`
	ParentCategory   *ProductCategory       `json:"parent_category"`
	CategoryChildren []ProductCategory      `json:"category_children"`
	Metadata         map[string]interface{} `json:"metadata"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at"`
}

type Cart struct {
	ID              string           `json:"id"`
	Email           *string          `json:"email"`
	BillingAddress  *Address         `json:"billing_address"`
	ShippingAddress *Address         `json:"shipping_address"`
	Items           []LineItem       `json:"items"`
	RegionID        string           `json:"region_id"`
	CustomerID      *string          `json:"customer_id"`
	PaymentSessions []PaymentSession `json:"payment_sessions"`
	ShippingMethods []ShippingMethod `json:"shipping_methods"`
	Subtotal        int64            `json:"subtotal"`
	DiscountTotal   int64            `json:"discount_total"`
	ShippingTotal   int64            `json:"shipping_total"`
	TaxTotal        int64            `json:"tax_total"`
	Total           int64            `json:"total"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

type Address struct {
	ID          string  `json:"id"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Company     *string `json:"company"`
	Address1    *string `json:"address_1"`
	Address2    *string `json:"address_2"`
	City        *string `json:"city"`
	Province    *string `json:"province"`
	PostalCode  *string `json:"postal_code"`
	CountryCode *string `json:"country_code"`
	Phone       *string `json:"phone"`
}

type LineItem struct {
	ID          string  `json:"id"`
	CartID      string  `json:"cart_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	Quantity    int     `json:"quantity"`
	UnitPrice   int64   `json:"unit_price"`
	Subtotal    int64   `json:"subtotal"`
	Total       int64   `json:"total"`
	VariantID   string  `json:"variant_id"`
	ProductID   string  `json:"product_id"`
}

type PaymentSession struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id"`
	Status     string `json:"status"`
}

type ShippingMethod struct {
	ID               string `json:"id"`
	ShippingOptionID string `json:"shipping_option_id"`
	Price            int64  `json:"price"`
}

type ShippingOption struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Amount       int64  `json:"amount"`
	PriceInclTax int64  `json:"price_incl_tax"`
}

type ShippingProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type Order struct {
	ID                string     `json:"id"`
	DisplayID         int        `json:"display_id"`
	Status            string     `json:"status"`
	FulfillmentStatus string     `json:"fulfillment_status"`
	PaymentStatus     string     `json:"payment_status"`
	Email             string     `json:"email"`
	ShippingAddress   *Address   `json:"shipping_address"`
	Items             []LineItem `json:"items"`
	Subtotal          int64      `json:"subtotal"`
	ShippingTotal     int64      `json:"shipping_total"`
	TaxTotal          int64      `json:"tax_total"`
	Total             int64      `json:"total"`
	CreatedAt         string     `json:"created_at"`
	UpdatedAt         string     `json:"updated_at"`
}

type Customer struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Phone      *string `json:"phone"`
	HasAccount bool    `json:"has_account"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type StoreCurrency struct {
	ID           string `json:"id"`
	CurrencyCode string `json:"currency_code"`
	IsDefault    bool   `json:"is_default"`
	Currency     *struct {
		Code   string `json:"code"`
		Symbol string `json:"symbol"`
		Name   string `json:"name"`
	} `json:"currency"`
}

type Store struct {
	ID                    string                 `json:"id"`
	Name                  string                 `json:"name"`
	DefaultSalesChannelID *string                `json:"default_sales_channel_id"`
	DefaultRegionID       *string                `json:"default_region_id"`
	DefaultLocationID     *string                `json:"default_location_id"`
	SupportedCurrencies   []StoreCurrency        `json:"supported_currencies"`
	Metadata              map[string]interface{} `json:"metadata"`
	CreatedAt             string                 `json:"created_at"`
	UpdatedAt             string                 `json:"updated_at"`
}

type SalesChannel struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	IsDisabled  bool                   `json:"is_disabled"`
	Metadata    map[string]interface{} `json:"metadata"`
	CreatedAt   string                 `json:"created_at"`
	UpdatedAt   string                 `json:"updated_at"`
}

type Country struct {
	ISO2 string `json:"iso_2"`
	Name string `json:"name"`
}

type Region struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	CurrencyCode   string                 `json:"currency_code"`
	AutomaticTaxes bool                   `json:"automatic_taxes"`
	Countries      []Country              `json:"countries"`
	Metadata       map[string]interface{} `json:"metadata"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
}

type StockLocationAddress struct {
	Address1    string `json:"address_1"`
	Address2    string `json:"address_2,omitempty"`
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
	Province    string `json:"province,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type StockLocation struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Address   *StockLocationAddress  `json:"address"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt string                 `json:"created_at"`
	UpdatedAt string                 `json:"updated_at"`
}

type APIKey struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Token         string         `json:"token"`
	Redacted      string         `json:"redacted"`
	Type          string         `json:"type"`
	LastUsedAt    *string        `json:"last_used_at"`
	RevokedAt     *string        `json:"revoked_at"`
	SalesChannels []SalesChannel `json:"sales_channels"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

type Currency struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	SymbolNative  string `json:"symbol_native"`
	DecimalDigits int    `json:"decimal_digits"`
}

type LocationLevel struct {
	ID                string                 `json:"id"`
	LocationID        string                 `json:"location_id"`
	InventoryItemID   string                 `json:"inventory_item_id"`
	StockedQuantity   int                    `json:"stocked_quantity"`
	ReservedQuantity  int                    `json:"reserved_quantity"`
	AvailableQuantity int                    `json:"available_quantity"`
	IncomingQuantity  int                    `json:"incoming_quantity"`
	Metadata          map[string]interface{} `json:"metadata"`
}

type InventoryItem struct {
	ID               string          `json:"id"`
	SKU              *string         `json:"sku"`
	Title            string          `json:"title"`
	Description      *string         `json:"description"`
	Thumbnail        *string         `json:"thumbnail"`
	OriginCountry    *string         `json:"origin_country"`
	HSCode           *string         `json:"hs_code"`
	MIDCode          *string         `json:"mid_code"`
	Material         *string         `json:"material"`
	Weight           *float64        `json:"weight"`
	Length           *float64        `json:"length"`
	Height           *float64        `json:"height"`
	Width            *float64        `json:"width"`
	RequiresShipping bool            `json:"requires_shipping"`
	ReservedQuantity int             `json:"reserved_quantity"`
	StockedQuantity  int             `json:"stocked_quantity"`
	LocationLevels   []LocationLevel `json:"location_levels"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}
