// Package setup bootstraps store configuration against the commerce
// platform's admin API. Every step checks what already exists before
// creating, so the run is safe to repeat against a partially or fully
// configured store.
package setup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
	"storefront-bff/pkg/config"
)

// Data bundles the fixed configuration the runner converges the store
// toward. Tests substitute a smaller set.
type Data struct {
	Store      StoreSeed
	Regions    []RegionSeed
	Channels   []ChannelSeed
	Locations  []LocationSeed
	Keys       []KeySeed
	Categories []CategorySeed
	Products   []ProductSeed
}

// DefaultData returns the Pakistan store configuration.
func DefaultData() Data {
	return Data{
		Store:      storeSeed,
		Regions:    regionSeeds,
		Channels:   channelSeeds,
		Locations:  locationSeeds,
		Keys:       keySeeds,
		Categories: categorySeeds,
		Products:   productSeeds,
	}
}

// Counters tracks per-resource create/reuse totals for the run summary.
type Counters struct {
	Created map[string]int
	Reused  map[string]int
}

func newCounters() *Counters {
	return &Counters{Created: map[string]int{}, Reused: map[string]int{}}
}

func (c *Counters) created(resource string) { c.Created[resource]++ }
func (c *Counters) reused(resource string)  { c.Reused[resource]++ }

// StoreContext carries the ids resolved during a run. It is built in the
// first step and threaded through every later one; nothing here survives
// between runs.
type StoreContext struct {
	StoreID           string
	DefaultChannelID  string
	ShippingProfileID string
	RegionIDs         []string
	ChannelIDs        []string
	LocationIDs       []string
	Keys              []medusa.APIKey
	CategoryByHandle  map[string]string
}

// Summary is what a completed run reports.
type Summary struct {
	StoreID  string
	Counters *Counters
	Keys     []medusa.APIKey
}

// Runner executes the bootstrap sequence.
type Runner struct {
	gw         medusa.Gateway
	logger     *zap.Logger
	data       Data
	stockLevel int
	auth       map[string]string
}

// NewRunner builds a runner that authenticates with cfg's admin token, or
// logs in with the admin email/password when no token is set.
func NewRunner(gw medusa.Gateway, logger *zap.Logger, cfg config.SetupConfig, data Data) *Runner {
	return &Runner{
		gw:         gw,
		logger:     logger,
		data:       data,
		stockLevel: cfg.DefaultStockLevel,
		auth:       map[string]string{"Authorization": "Bearer " + cfg.AdminToken},
	}
}

// Authenticate resolves admin credentials into a bearer token. Called
// before Run when the config carries email/password instead of a token.
func (r *Runner) Authenticate(ctx context.Context, cfg config.SetupConfig) error {
	if cfg.AdminToken != "" {
		return nil
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return errors.New("admin credentials required: set MEDUSA_ADMIN_TOKEN or MEDUSA_ADMIN_EMAIL and MEDUSA_ADMIN_PASSWORD")
	}
	var resp struct {
		Token string `json:"token"`
	}
	err := r.gw.Request(ctx, "/auth/user/emailpass", medusa.Options{
		Method: http.MethodPost,
		Body:   map[string]string{"email": cfg.AdminEmail, "password": cfg.AdminPassword},
	}, &resp)
	if err != nil {
		return fmt.Errorf("admin login failed: %w", err)
	}
	r.auth = map[string]string{"Authorization": "Bearer " + resp.Token}
	return nil
}

func (r *Runner) get(ctx context.Context, endpoint string, query map[string]string, out interface{}) error {
	return r.gw.AdminRequest(ctx, endpoint, medusa.Options{Headers: r.auth, Query: query}, out)
}

func (r *Runner) post(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	return r.gw.AdminRequest(ctx, endpoint, medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: r.auth,
	}, out)
}

// isAlreadyExists reports whether the platform rejected a mutation because
// the resource or link is already in place. Those rejections are expected
// on re-runs and are swallowed.
func isAlreadyExists(err error) bool {
	var perr *apperr.PlatformError
	if !errors.As(err, &perr) {
		return false
	}
	if perr.StatusCode == http.StatusConflict {
		return true
	}
	return strings.Contains(strings.ToLower(perr.Msg), "already exist")
}

// Run executes all bootstrap steps in dependency order. Per-item failures
// are logged and skipped; only missing preconditions abort the run.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	counters := newCounters()
	sc := &StoreContext{CategoryByHandle: map[string]string{}}

	steps := []struct {
		name string
		fn   func(context.Context, *StoreContext, *Counters) error
	}{
		{"resolve store", r.resolveStore},
		{"store settings", r.applyStoreSettings},
		{"regions", r.ensureRegions},
		{"sales channels", r.ensureSalesChannels},
		{"stock locations", r.ensureStockLocations},
		{"location channel links", r.linkLocationsToChannels},
		{"api keys", r.ensureAPIKeys},
		{"api key channel links", r.linkKeysToChannels},
		{"shipping profile", r.ensureShippingProfile},
		{"categories", r.ensureCategories},
		{"products", r.ensureProducts},
		{"inventory", r.ensureInventory},
		{"store defaults", r.applyStoreDefaults},
	}

	for i, step := range steps {
		r.logger.Info("setup step",
			zap.Int("step", i+1),
			zap.Int("total", len(steps)),
			zap.String("name", step.name))
		if err := step.fn(ctx, sc, counters); err != nil {
			r.logger.Error("setup step failed", zap.String("name", step.name), zap.Error(err))
			return nil, fmt.Errorf("step %q: %w", step.name, err)
		}
	}

	return &Summary{StoreID: sc.StoreID, Counters: counters, Keys: sc.Keys}, nil
}

func (r *Runner) resolveStore(ctx context.Context, sc *StoreContext, _ *Counters) error {
	var resp struct {
		Stores []medusa.Store `json:"stores"`
	}
	if err := r.get(ctx, "/stores", nil, &resp); err != nil {
		return err
	}
	if len(resp.Stores) == 0 {
		return errors.New("no store found, run platform migrations first")
	}
	store := resp.Stores[0]
	sc.StoreID = store.ID
	if store.DefaultSalesChannelID != nil {
		sc.DefaultChannelID = *store.DefaultSalesChannelID
	}
	r.logger.Info("store resolved", zap.String("store_id", store.ID), zap.String("name", store.Name))
	return nil
}

// applyStoreSettings converges the store's name and supported currency set.
// The first configured currency becomes the default. Updating to the same
// values is harmless, so no existence check is needed.
func (r *Runner) applyStoreSettings(ctx context.Context, sc *StoreContext, _ *Counters) error {
	if r.data.Store.Name == "" && len(r.data.Store.Currencies) == 0 {
		return nil
	}

	currencies := make([]map[string]interface{}, 0, len(r.data.Store.Currencies))
	for i, code := range r.data.Store.Currencies {
		currencies = append(currencies, map[string]interface{}{
			"currency_code": code,
			"is_default":    i == 0,
		})
	}
	body := map[string]interface{}{
		"name":                 r.data.Store.Name,
		"supported_currencies": currencies,
	}
	if err := r.post(ctx, "/stores/"+sc.StoreID, body, nil); err != nil {
		return err
	}
	r.logger.Info("store settings applied",
		zap.String("name", r.data.Store.Name),
		zap.Int("currencies", len(currencies)))
	return nil
}

// ensureShippingProfile reuses the platform's first shipping profile or
// creates the default one. Products cannot be created without it.
func (r *Runner) ensureShippingProfile(ctx context.Context, sc *StoreContext, counters *Counters) error {
	var resp struct {
		ShippingProfiles []medusa.ShippingProfile `json:"shipping_profiles"`
	}
	if err := r.get(ctx, "/shipping-profiles", nil, &resp); err != nil {
		return err
	}
	if len(resp.ShippingProfiles) > 0 {
		sc.ShippingProfileID = resp.ShippingProfiles[0].ID
		counters.reused("shipping_profile")
		r.logger.Info("shipping profile reused", zap.String("id", sc.ShippingProfileID))
		return nil
	}

	var created struct {
		ShippingProfile medusa.ShippingProfile `json:"shipping_profile"`
	}
	body := map[string]interface{}{
		"name": "Default Shipping Profile",
		"type": "default",
	}
	if err := r.post(ctx, "/shipping-profiles", body, &created); err != nil {
		return err
	}
	sc.ShippingProfileID = created.ShippingProfile.ID
	counters.created("shipping_profile")
	r.logger.Info("shipping profile created", zap.String("id", sc.ShippingProfileID))
	return nil
}

func (r *Runner) ensureRegions(ctx context.Context, sc *StoreContext, counters *Counters) error {
	var resp struct {
		Regions []medusa.Region `json:"regions"`
	}
	if err := r.get(ctx, "/regions", nil, &resp); err != nil {
		return err
	}
	if len(resp.Regions) > 0 {
		for _, region := range resp.Regions {
			sc.RegionIDs = append(sc.RegionIDs, region.ID)
			counters.reused("region")
			r.logger.Info("region reused", zap.String("name", region.Name), zap.String("id", region.ID))
		}
		return nil
	}
	for _, seed := range r.data.Regions {
		var created struct {
			Region medusa.Region `json:"region"`
		}
		body := map[string]interface{}{
			"name":          seed.Name,
			"currency_code": seed.CurrencyCode,
			"countries":     seed.Countries,
		}
		if err := r.post(ctx, "/regions", body, &created); err != nil {
			r.logger.Warn("region create failed", zap.String("name", seed.Name), zap.Error(err))
			continue
		}
		sc.RegionIDs = append(sc.RegionIDs, created.Region.ID)
		counters.created("region")
		r.logger.Info("region created", zap.String("name", seed.Name), zap.String("id", created.Region.ID))
	}
	return nil
}

func (r *Runner) ensureSalesChannels(ctx context.Context, sc *StoreContext, counters *Counters) error {
	var resp struct {
		SalesChannels []medusa.SalesChannel `json:"sales_channels"`
	}
	if err := r.get(ctx, "/sales-channels", nil, &resp); err != nil {
		return err
	}
	for _, ch := range resp.SalesChannels {
		sc.ChannelIDs = append(sc.ChannelIDs, ch.ID)
	}
	// Only the platform's built-in default present means the configured
	// channels have not been created yet.
	if len(resp.SalesChannels) <= 1 {
		for _, seed := range r.data.Channels {
			var created struct {
				SalesChannel medusa.SalesChannel `json:"sales_channel"`
			}
			body := map[string]interface{}{"name": seed.Name, "description": seed.Description}
			if err := r.post(ctx, "/sales-channels", body, &created); err != nil {
				r.logger.Warn("sales channel create failed", zap.String("name", seed.Name), zap.Error(err))
				continue
			}
			sc.ChannelIDs = append(sc.ChannelIDs, created.SalesChannel.ID)
			counters.created("sales_channel")
			r.logger.Info("sales channel created", zap.String("name", seed.Name), zap.String("id", created.SalesChannel.ID))
		}
	} else {
		for _, ch := range resp.SalesChannels {
			counters.reused("sales_channel")
			r.logger.Info("sales channel reused", zap.String("name", ch.Name), zap.String("id", ch.ID))
		}
	}
	if sc.DefaultChannelID == "" && len(sc.ChannelIDs) > 0 {
		sc.DefaultChannelID = sc.ChannelIDs[0]
	}
	return nil
}

func (r *Runner) ensureStockLocations(ctx context.Context, sc *StoreContext, counters *Counters) error {
	var resp struct {
		StockLocations []medusa.StockLocation `json:"stock_locations"`
	}
	if err := r.get(ctx, "/stock-locations", nil, &resp); err != nil {
		return err
	}
	if len(resp.StockLocations) > 0 {
		for _, loc := range resp.StockLocations {
			sc.LocationIDs = append(sc.LocationIDs, loc.ID)
			counters.reused("stock_location")
			r.logger.Info("stock location reused", zap.String("name", loc.Name), zap.String("id", loc.ID))
		}
		return nil
	}
	for _, seed := range r.data.Locations {
		var created struct {
			StockLocation medusa.StockLocation `json:"stock_location"`
		}
		body := map[string]interface{}{
			"name": seed.Name,
			"address": map[string]interface{}{
				"address_1":    seed.Address1,
				"address_2":    seed.Address2,
				"city":         seed.City,
				"country_code": seed.CountryCode,
				"province":     seed.Province,
				"postal_code":  seed.PostalCode,
				"phone":        seed.Phone,
			},
		}
		if err := r.post(ctx, "/stock-locations", body, &created); err != nil {
			r.logger.Warn("stock location create failed", zap.String("name", seed.Name), zap.Error(err))
			continue
		}
		sc.LocationIDs = append(sc.LocationIDs, created.StockLocation.ID)
		counters.created("stock_location")
		r.logger.Info("stock location created", zap.String("name", seed.Name), zap.String("id", created.StockLocation.ID))
	}
	return nil
}

func (r *Runner) linkLocationsToChannels(ctx context.Context, sc *StoreContext, _ *Counters) error {
	for _, locID := range sc.LocationIDs {
		endpoint := fmt.Sprintf("/stock-locations/%s/sales-channels", locID)
		body := map[string]interface{}{"add": sc.ChannelIDs}
		if err := r.post(ctx, endpoint, body, nil); err != nil {
			if isAlreadyExists(err) {
				continue
			}
			r.logger.Warn("location channel link failed", zap.String("location_id", locID), zap.Error(err))
			continue
		}
		r.logger.Info("location linked to channels",
			zap.String("location_id", locID),
			zap.Int("channels", len(sc.ChannelIDs)))
	}
	return nil
}

func (r *Runner) ensureAPIKeys(ctx context.Context, sc *StoreContext, counters *Counters) error {
	var resp struct {
		APIKeys []medusa.APIKey `json:"api_keys"`
	}
	if err := r.get(ctx, "/api-keys", map[string]string{"type": "publishable"}, &resp); err != nil {
		return err
	}
	if len(resp.APIKeys) > 0 {
		sc.Keys = resp.APIKeys
		for _, key := range resp.APIKeys {
			counters.reused("api_key")
			r.logger.Info("api key reused", zap.String("title", key.Title), zap.String("id", key.ID))
		}
		return nil
	}
	for _, seed := range r.data.Keys {
		var created struct {
			APIKey medusa.APIKey `json:"api_key"`
		}
		body := map[string]interface{}{"title": seed.Title, "type": seed.Type}
		if err := r.post(ctx, "/api-keys", body, &created); err != nil {
			r.logger.Warn("api key create failed", zap.String("title", seed.Title), zap.Error(err))
			continue
		}
		sc.Keys = append(sc.Keys, created.APIKey)
		counters.created("api_key")
		r.logger.Info("api key created", zap.String("title", seed.Title), zap.String("id", created.APIKey.ID))
	}
	return nil
}

// PublishableKeys lists the platform's publishable keys with their sales
// channel links, for verification tooling.
func (r *Runner) PublishableKeys(ctx context.Context) ([]medusa.APIKey, error) {
	var resp struct {
		APIKeys []medusa.APIKey `json:"api_keys"`
	}
	query := map[string]string{
		"type":   "publishable",
		"fields": "id,title,token,redacted,*sales_channels",
	}
	if err := r.get(ctx, "/api-keys", query, &resp); err != nil {
		return nil, err
	}
	return resp.APIKeys, nil
}

func (r *Runner) linkKeysToChannels(ctx context.Context, sc *StoreContext, _ *Counters) error {
	for _, key := range sc.Keys {
		endpoint := fmt.Sprintf("/api-keys/%s/sales-channels", key.ID)
		body := map[string]interface{}{"add": sc.ChannelIDs}
		if err := r.post(ctx, endpoint, body, nil); err != nil {
			if isAlreadyExists(err) {
				continue
			}
			r.logger.Warn("api key channel link failed", zap.String("api_key_id", key.ID), zap.Error(err))
			continue
		}
		r.logger.Info("api key linked to channels",
			zap.String("title", key.Title),
			zap.Int("channels", len(sc.ChannelIDs)))
	}
	return nil
}

func (r *Runner) applyStoreDefaults(ctx context.Context, sc *StoreContext, _ *Counters) error {
	if len(sc.RegionIDs) == 0 || len(sc.LocationIDs) == 0 {
		r.logger.Warn("skipping store defaults, missing region or location")
		return nil
	}
	body := map[string]interface{}{
		"default_region_id":   sc.RegionIDs[0],
		"default_location_id": sc.LocationIDs[0],
	}
	if err := r.post(ctx, "/stores/"+sc.StoreID, body, nil); err != nil {
		return err
	}
	r.logger.Info("store defaults applied",
		zap.String("default_region_id", sc.RegionIDs[0]),
		zap.String("default_location_id", sc.LocationIDs[0]))
	return nil
}
