package setup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
	"storefront-bff/pkg/config"
)

// fakePlatform simulates the admin API in memory so runs can be replayed
// against the same state. A fresh platform holds one store and the built-in
// default sales channel, the state migrations leave behind.
type fakePlatform struct {
	stores     []medusa.Store
	regions    []medusa.Region
	channels   []medusa.SalesChannel
	locations  []medusa.StockLocation
	keys       []medusa.APIKey
	categories []medusa.ProductCategory
	products   []medusa.Product
	profiles   []medusa.ShippingProfile
	items      []medusa.InventoryItem
	levels     map[string][]medusa.LocationLevel // inventory item id -> levels

	channelLinks  map[string][]string // location/key/product links by owner id
	storeUpdates  []map[string]interface{}
	productBodies []map[string]interface{}
	loginCalls    int
	seq           int
}

func newFakePlatform() *fakePlatform {
	defaultChannel := "sc_default"
	return &fakePlatform{
		stores: []medusa.Store{{
			ID:                    "store_1",
			Name:                  "Fresh Store",
			DefaultSalesChannelID: &defaultChannel,
		}},
		channels:     []medusa.SalesChannel{{ID: defaultChannel, Name: "Default Sales Channel"}},
		levels:       map[string][]medusa.LocationLevel{},
		channelLinks: map[string][]string{},
	}
}

func (f *fakePlatform) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s_%d", prefix, f.seq)
}

func respond(out, v interface{}) error {
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func decodeBody(body, into interface{}) {
	raw, _ := json.Marshal(body)
	_ = json.Unmarshal(raw, into)
}

func (f *fakePlatform) Request(_ context.Context, endpoint string, opts medusa.Options, out interface{}) error {
	if endpoint == "/auth/user/emailpass" && opts.Method == http.MethodPost {
		f.loginCalls++
		return respond(out, map[string]string{"token": "login-token"})
	}
	return fmt.Errorf("unexpected request %s %s", opts.Method, endpoint)
}

func (f *fakePlatform) StoreRequest(_ context.Context, endpoint string, opts medusa.Options, _ interface{}) error {
	return fmt.Errorf("unexpected store request %s %s", opts.Method, endpoint)
}

func (f *fakePlatform) AdminRequest(_ context.Context, endpoint string, opts medusa.Options, out interface{}) error {
	if opts.Headers["Authorization"] == "" || opts.Headers["Authorization"] == "Bearer " {
		return &apperr.PlatformError{StatusCode: http.StatusUnauthorized, Msg: "Unauthorized"}
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	parts := strings.Split(strings.TrimPrefix(endpoint, "/"), "/")

	switch {
	case method == http.MethodGet && endpoint == "/stores":
		return respond(out, map[string]interface{}{"stores": f.stores})

	case method == http.MethodPost && len(parts) == 2 && parts[0] == "stores":
		var body map[string]interface{}
		decodeBody(opts.Body, &body)
		f.storeUpdates = append(f.storeUpdates, body)
		if name, ok := body["name"].(string); ok && name != "" {
			f.stores[0].Name = name
		}
		return respond(out, map[string]interface{}{"store": f.stores[0]})

	case method == http.MethodGet && endpoint == "/shipping-profiles":
		return respond(out, map[string]interface{}{"shipping_profiles": f.profiles})

	case method == http.MethodPost && endpoint == "/shipping-profiles":
		var body struct {
			Name string `json:"name"`
			Type string `json:"type"`
		}
		decodeBody(opts.Body, &body)
		profile := medusa.ShippingProfile{ID: f.nextID("sp"), Name: body.Name, Type: body.Type}
		f.profiles = append(f.profiles, profile)
		return respond(out, map[string]interface{}{"shipping_profile": profile})

	case method == http.MethodGet && endpoint == "/regions":
		return respond(out, map[string]interface{}{"regions": f.regions})

	case method == http.MethodPost && endpoint == "/regions":
		var body struct {
			Name         string `json:"name"`
			CurrencyCode string `json:"currency_code"`
		}
		decodeBody(opts.Body, &body)
		region := medusa.Region{ID: f.nextID("reg"), Name: body.Name, CurrencyCode: body.CurrencyCode}
		f.regions = append(f.regions, region)
		return respond(out, map[string]interface{}{"region": region})

	case method == http.MethodGet && endpoint == "/sales-channels":
		return respond(out, map[string]interface{}{"sales_channels": f.channels})

	case method == http.MethodPost && endpoint == "/sales-channels":
		var body struct {
			Name string `json:"name"`
		}
		decodeBody(opts.Body, &body)
		ch := medusa.SalesChannel{ID: f.nextID("sc"), Name: body.Name}
		f.channels = append(f.channels, ch)
		return respond(out, map[string]interface{}{"sales_channel": ch})

	case method == http.MethodGet && endpoint == "/stock-locations":
		return respond(out, map[string]interface{}{"stock_locations": f.locations})

	case method == http.MethodPost && endpoint == "/stock-locations":
		var body struct {
			Name string `json:"name"`
		}
		decodeBody(opts.Body, &body)
		loc := medusa.StockLocation{ID: f.nextID("sloc"), Name: body.Name}
		f.locations = append(f.locations, loc)
		return respond(out, map[string]interface{}{"stock_location": loc})

	case method == http.MethodPost && len(parts) == 3 && parts[2] == "sales-channels":
		// stock location or api key channel links
		var body struct {
			Add []string `json:"add"`
		}
		decodeBody(opts.Body, &body)
		f.channelLinks[parts[1]] = append(f.channelLinks[parts[1]], body.Add...)
		return nil

	case method == http.MethodGet && endpoint == "/api-keys":
		return respond(out, map[string]interface{}{"api_keys": f.keys})

	case method == http.MethodPost && endpoint == "/api-keys":
		var body struct {
			Title string `json:"title"`
			Type  string `json:"type"`
		}
		decodeBody(opts.Body, &body)
		id := f.nextID("apk")
		key := medusa.APIKey{ID: id, Title: body.Title, Type: body.Type, Token: "pk_" + id}
		f.keys = append(f.keys, key)
		return respond(out, map[string]interface{}{"api_key": key})

	case method == http.MethodGet && endpoint == "/product-categories":
		return respond(out, map[string]interface{}{"product_categories": f.categories})

	case method == http.MethodPost && endpoint == "/product-categories":
		var body struct {
			Name   string `json:"name"`
			Handle string `json:"handle"`
		}
		decodeBody(opts.Body, &body)
		cat := medusa.ProductCategory{ID: f.nextID("pcat"), Name: body.Name, Handle: body.Handle}
		f.categories = append(f.categories, cat)
		return respond(out, map[string]interface{}{"product_category": cat})

	case method == http.MethodGet && endpoint == "/products":
		return respond(out, map[string]interface{}{"products": f.products})

	case method == http.MethodPost && endpoint == "/products":
		var raw map[string]interface{}
		decodeBody(opts.Body, &raw)
		f.productBodies = append(f.productBodies, raw)
		var body struct {
			Title    string `json:"title"`
			Handle   string `json:"handle"`
			Variants []struct {
				Title string `json:"title"`
				SKU   string `json:"sku"`
			} `json:"variants"`
		}
		decodeBody(opts.Body, &body)
		product := medusa.Product{ID: f.nextID("prod"), Title: body.Title, Handle: body.Handle}
		for _, v := range body.Variants {
			sku := v.SKU
			product.Variants = append(product.Variants, medusa.ProductVariant{
				ID:    f.nextID("variant"),
				Title: v.Title,
				SKU:   &sku,
			})
		}
		f.products = append(f.products, product)
		return respond(out, map[string]interface{}{"product": product})

	case method == http.MethodPost && len(parts) == 3 && parts[0] == "sales-channels" && parts[2] == "products":
		var body struct {
			Add []string `json:"add"`
		}
		decodeBody(opts.Body, &body)
		f.channelLinks[parts[1]] = append(f.channelLinks[parts[1]], body.Add...)
		return nil

	case method == http.MethodGet && endpoint == "/inventory-items":
		sku := opts.Query["sku"]
		matched := []medusa.InventoryItem{}
		for _, item := range f.items {
			if item.SKU != nil && *item.SKU == sku {
				matched = append(matched, item)
			}
		}
		return respond(out, map[string]interface{}{"inventory_items": matched})

	case method == http.MethodPost && endpoint == "/inventory-items":
		var body struct {
			SKU string `json:"sku"`
		}
		decodeBody(opts.Body, &body)
		sku := body.SKU
		item := medusa.InventoryItem{ID: f.nextID("iitem"), SKU: &sku}
		f.items = append(f.items, item)
		return respond(out, map[string]interface{}{"inventory_item": item})

	case method == http.MethodPost && len(parts) == 5 && parts[2] == "variants" && parts[4] == "inventory-items":
		return nil

	case len(parts) == 3 && parts[0] == "inventory-items" && parts[2] == "location-levels":
		itemID := parts[1]
		if method == http.MethodGet {
			return respond(out, map[string]interface{}{"inventory_levels": f.levels[itemID]})
		}
		var body struct {
			LocationID      string `json:"location_id"`
			StockedQuantity int    `json:"stocked_quantity"`
		}
		decodeBody(opts.Body, &body)
		for _, level := range f.levels[itemID] {
			if level.LocationID == body.LocationID {
				return &apperr.PlatformError{StatusCode: http.StatusConflict, Msg: "Inventory level already exists"}
			}
		}
		f.levels[itemID] = append(f.levels[itemID], medusa.LocationLevel{
			ID:              f.nextID("ilev"),
			LocationID:      body.LocationID,
			InventoryItemID: itemID,
			StockedQuantity: body.StockedQuantity,
		})
		return nil
	}

	return fmt.Errorf("unexpected admin request %s %s", method, endpoint)
}

func testData() Data {
	return Data{
		Store: StoreSeed{Name: "Test Store", DefaultCurrency: "pkr", Currencies: []string{"pkr", "usd"}},
		Regions: []RegionSeed{
			{Name: "Pakistan", CurrencyCode: "pkr", Countries: []string{"pk"}},
		},
		Channels: []ChannelSeed{
			{Name: "Mobile App", Description: "Mobile storefront"},
		},
		Locations: []LocationSeed{
			{Name: "Karachi Warehouse", Address1: "Block 7", City: "Karachi", CountryCode: "pk"},
			{Name: "Lahore Warehouse", Address1: "Plot 123", City: "Lahore", CountryCode: "pk"},
		},
		Keys: []KeySeed{
			{Title: "Storefront Key", Type: "publishable"},
		},
		Categories: []CategorySeed{
			{Name: "Electronics", Handle: "electronics", Children: []CategorySeed{
				{Name: "Phones", Handle: "phones"},
			}},
		},
		Products: []ProductSeed{
			{
				Title:          "Test Phone",
				Handle:         "test-phone",
				CategoryHandle: "phones",
				Options:        []OptionSeed{{Title: "Storage", Values: []string{"128GB", "256GB"}}},
				Variants: []VariantSeed{
					{Title: "128GB", SKU: "TP-128", Amount: 1000},
					{Title: "256GB", SKU: "TP-256", Amount: 1200},
				},
			},
		},
	}
}

func testRunner(platform *fakePlatform) *Runner {
	cfg := config.SetupConfig{AdminToken: "admin-token", DefaultStockLevel: 50}
	return NewRunner(platform, zap.NewNop(), cfg, testData())
}

func TestRunBootstrapsEmptyStore(t *testing.T) {
	platform := newFakePlatform()
	runner := testRunner(platform)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "store_1", summary.StoreID)
	assert.Equal(t, map[string]int{
		"region":           1,
		"sales_channel":    1,
		"stock_location":   2,
		"api_key":          1,
		"shipping_profile": 1,
		"category":         2,
		"product":          1,
		"inventory_item":   2,
		"inventory_level":  4, // 2 variants x 2 locations
	}, summary.Counters.Created)
	assert.Empty(t, summary.Counters.Reused)

	require.Len(t, summary.Keys, 1)
	assert.Equal(t, "Storefront Key", summary.Keys[0].Title)

	// First store update sets the name and the supported currency set,
	// with the first currency as default.
	require.Len(t, platform.storeUpdates, 2)
	settings := platform.storeUpdates[0]
	assert.Equal(t, "Test Store", settings["name"])
	assert.Equal(t, []interface{}{
		map[string]interface{}{"currency_code": "pkr", "is_default": true},
		map[string]interface{}{"currency_code": "usd", "is_default": false},
	}, settings["supported_currencies"])
	assert.Equal(t, "Test Store", platform.stores[0].Name)

	// Second store update points the defaults at the first region and
	// first location.
	defaults := platform.storeUpdates[1]
	assert.Equal(t, platform.regions[0].ID, defaults["default_region_id"])
	assert.Equal(t, platform.locations[0].ID, defaults["default_location_id"])

	// Product creation carries the shipping profile.
	require.Len(t, platform.productBodies, 1)
	require.Len(t, platform.profiles, 1)
	assert.Equal(t, platform.profiles[0].ID, platform.productBodies[0]["shipping_profile_id"])

	// The new key and every location got linked to both channels.
	keyID := summary.Keys[0].ID
	assert.Len(t, platform.channelLinks[keyID], 2)
	for _, loc := range platform.locations {
		assert.Len(t, platform.channelLinks[loc.ID], 2)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	platform := newFakePlatform()

	_, err := testRunner(platform).Run(context.Background())
	require.NoError(t, err)

	second, err := testRunner(platform).Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, second.Counters.Created, "second run must create nothing")
	assert.Equal(t, map[string]int{
		"region":           1,
		"sales_channel":    2, // built-in default plus the configured channel
		"stock_location":   2,
		"api_key":          1,
		"shipping_profile": 1,
		"category":         2,
		"product":          1,
		"inventory_item":   2,
		"inventory_level":  4,
	}, second.Counters.Reused)

	// Resource totals did not grow.
	assert.Len(t, platform.regions, 1)
	assert.Len(t, platform.channels, 2)
	assert.Len(t, platform.locations, 2)
	assert.Len(t, platform.keys, 1)
	assert.Len(t, platform.profiles, 1)
	assert.Len(t, platform.categories, 2)
	assert.Len(t, platform.products, 1)
	assert.Len(t, platform.items, 2)
}

func TestRunFailsWithoutStore(t *testing.T) {
	platform := newFakePlatform()
	platform.stores = nil

	_, err := testRunner(platform).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no store found")
}

func TestAuthenticate(t *testing.T) {
	t.Run("token wins without a login call", func(t *testing.T) {
		platform := newFakePlatform()
		cfg := config.SetupConfig{AdminToken: "admin-token"}
		runner := NewRunner(platform, zap.NewNop(), cfg, Data{})

		require.NoError(t, runner.Authenticate(context.Background(), cfg))
		assert.Zero(t, platform.loginCalls)
	})

	t.Run("email and password log in", func(t *testing.T) {
		platform := newFakePlatform()
		cfg := config.SetupConfig{AdminEmail: "admin@example.com", AdminPassword: "secret"}
		runner := NewRunner(platform, zap.NewNop(), cfg, Data{})

		require.NoError(t, runner.Authenticate(context.Background(), cfg))
		assert.Equal(t, 1, platform.loginCalls)
		assert.Equal(t, "Bearer login-token", runner.auth["Authorization"])
	})

	t.Run("missing credentials rejected", func(t *testing.T) {
		platform := newFakePlatform()
		cfg := config.SetupConfig{}
		runner := NewRunner(platform, zap.NewNop(), cfg, Data{})

		err := runner.Authenticate(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "admin credentials required")
	})
}

func TestIsAlreadyExists(t *testing.T) {
	assert.True(t, isAlreadyExists(&apperr.PlatformError{StatusCode: http.StatusConflict, Msg: "duplicate"}))
	assert.True(t, isAlreadyExists(&apperr.PlatformError{StatusCode: http.StatusBadRequest, Msg: "Sales channels already exist for key"}))
	assert.False(t, isAlreadyExists(&apperr.PlatformError{StatusCode: http.StatusBadRequest, Msg: "invalid payload"}))
	assert.False(t, isAlreadyExists(fmt.Errorf("network down")))
}
