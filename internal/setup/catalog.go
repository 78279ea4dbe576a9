package setup

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"storefront-bff/internal/medusa"
)

// ensureCategories walks the category tree depth-first, parent before
// child, reusing any node whose handle the platform already knows.
func (r *Runner) ensureCategories(ctx context.Context, sc *StoreContext, counters *Counters) error {
	var resp struct {
		ProductCategories []medusa.ProductCategory `json:"product_categories"`
	}
	query := map[string]string{"limit": "1000"}
	if err := r.get(ctx, "/product-categories", query, &resp); err != nil {
		return err
	}
	for _, cat := range resp.ProductCategories {
		sc.CategoryByHandle[cat.Handle] = cat.ID
	}
	r.createCategoryLevel(ctx, sc, counters, r.data.Categories, "")
	return nil
}

func (r *Runner) createCategoryLevel(ctx context.Context, sc *StoreContext, counters *Counters, seeds []CategorySeed, parentID string) {
	for _, seed := range seeds {
		id, ok := sc.CategoryByHandle[seed.Handle]
		if ok {
			counters.reused("category")
			r.logger.Info("category reused", zap.String("handle", seed.Handle), zap.String("id", id))
			r.createCategoryLevel(ctx, sc, counters, seed.Children, id)
			continue
		}

		body := map[string]interface{}{
			"name":        seed.Name,
			"handle":      seed.Handle,
			"description": seed.Description,
			"is_active":   true,
			"is_internal": false,
		}
		if parentID != "" {
			body["parent_category_id"] = parentID
		}
		if seed.Icon != "" {
			body["metadata"] = map[string]interface{}{"icon": seed.Icon}
		}

		var created struct {
			ProductCategory medusa.ProductCategory `json:"product_category"`
		}
		if err := r.post(ctx, "/product-categories", body, &created); err != nil {
			r.logger.Warn("category create failed", zap.String("handle", seed.Handle), zap.Error(err))
			continue
		}
		id = created.ProductCategory.ID
		sc.CategoryByHandle[seed.Handle] = id
		counters.created("category")
		r.logger.Info("category created", zap.String("handle", seed.Handle), zap.String("id", id))
		r.createCategoryLevel(ctx, sc, counters, seed.Children, id)
	}
}

// ensureProducts creates each configured product unless its handle already
// exists. Existing and new products are both linked to every sales channel.
func (r *Runner) ensureProducts(ctx context.Context, sc *StoreContext, counters *Counters) error {
	if sc.ShippingProfileID == "" {
		return errors.New("no shipping profile found, cannot create products")
	}

	var resp struct {
		Products []medusa.Product `json:"products"`
	}
	query := map[string]string{"limit": "1000"}
	if err := r.get(ctx, "/products", query, &resp); err != nil {
		return err
	}

	existing := map[string]string{}
	for _, p := range resp.Products {
		existing[p.Handle] = p.ID
	}

	for _, p := range resp.Products {
		r.linkProductToChannels(ctx, sc, p.ID, p.Handle)
	}

	for _, seed := range r.data.Products {
		if _, ok := existing[seed.Handle]; ok {
			counters.reused("product")
			r.logger.Info("product reused", zap.String("handle", seed.Handle))
			continue
		}

		categoryID, ok := sc.CategoryByHandle[seed.CategoryHandle]
		if !ok {
			r.logger.Warn("product category missing, skipping product",
				zap.String("handle", seed.Handle),
				zap.String("category_handle", seed.CategoryHandle))
			continue
		}

		var created struct {
			Product medusa.Product `json:"product"`
		}
		if err := r.post(ctx, "/products", r.productBody(seed, categoryID, sc.ShippingProfileID), &created); err != nil {
			r.logger.Warn("product create failed", zap.String("handle", seed.Handle), zap.Error(err))
			continue
		}
		counters.created("product")
		r.logger.Info("product created", zap.String("handle", seed.Handle), zap.String("id", created.Product.ID))
		r.linkProductToChannels(ctx, sc, created.Product.ID, seed.Handle)
	}
	return nil
}

func (r *Runner) productBody(seed ProductSeed, categoryID, shippingProfileID string) map[string]interface{} {
	optionTitles := make([]string, 0, len(seed.Options))
	options := make([]map[string]interface{}, 0, len(seed.Options))
	for _, opt := range seed.Options {
		optionTitles = append(optionTitles, opt.Title)
		options = append(options, map[string]interface{}{"title": opt.Title, "values": opt.Values})
	}

	images := make([]map[string]string, 0, len(seed.Images))
	for _, url := range seed.Images {
		images = append(images, map[string]string{"url": url})
	}

	variants := make([]map[string]interface{}, 0, len(seed.Variants))
	for _, v := range seed.Variants {
		variants = append(variants, map[string]interface{}{
			"title":            v.Title,
			"sku":              v.SKU,
			"manage_inventory": true,
			"options":          medusa.ParseVariantTitle(v.Title, optionTitles),
			"prices": []map[string]interface{}{
				{"amount": v.Amount, "currency_code": r.data.Store.DefaultCurrency},
			},
		})
	}

	return map[string]interface{}{
		"title":               seed.Title,
		"handle":              seed.Handle,
		"description":         seed.Description,
		"status":              "published",
		"thumbnail":           seed.Thumbnail,
		"images":              images,
		"categories":          []map[string]string{{"id": categoryID}},
		"shipping_profile_id": shippingProfileID,
		"options":             options,
		"variants":            variants,
	}
}

func (r *Runner) linkProductToChannels(ctx context.Context, sc *StoreContext, productID, handle string) {
	for _, channelID := range sc.ChannelIDs {
		endpoint := fmt.Sprintf("/sales-channels/%s/products", channelID)
		body := map[string]interface{}{"add": []string{productID}}
		if err := r.post(ctx, endpoint, body, nil); err != nil && !isAlreadyExists(err) {
			r.logger.Warn("product channel link failed",
				zap.String("handle", handle),
				zap.String("channel_id", channelID),
				zap.Error(err))
		}
	}
}

// ensureInventory makes sure every managed variant has an inventory item
// and a stock level at every location. Existing levels are never touched,
// only gaps are filled.
func (r *Runner) ensureInventory(ctx context.Context, sc *StoreContext, counters *Counters) error {
	var resp struct {
		Products []medusa.Product `json:"products"`
	}
	query := map[string]string{"limit": "1000", "fields": "id,handle,*variants"}
	if err := r.get(ctx, "/products", query, &resp); err != nil {
		return err
	}

	for _, product := range resp.Products {
		for _, variant := range product.Variants {
			if variant.SKU == nil || *variant.SKU == "" {
				continue
			}
			itemID, err := r.ensureInventoryItem(ctx, product.ID, variant, counters)
			if err != nil {
				r.logger.Warn("inventory item failed", zap.String("sku", *variant.SKU), zap.Error(err))
				continue
			}
			r.ensureLevels(ctx, sc, itemID, *variant.SKU, counters)
		}
	}
	return nil
}

func (r *Runner) ensureInventoryItem(ctx context.Context, productID string, variant medusa.ProductVariant, counters *Counters) (string, error) {
	sku := *variant.SKU

	var resp struct {
		InventoryItems []medusa.InventoryItem `json:"inventory_items"`
	}
	if err := r.get(ctx, "/inventory-items", map[string]string{"sku": sku}, &resp); err != nil {
		return "", err
	}
	if len(resp.InventoryItems) > 0 {
		counters.reused("inventory_item")
		return resp.InventoryItems[0].ID, nil
	}

	var created struct {
		InventoryItem medusa.InventoryItem `json:"inventory_item"`
	}
	if err := r.post(ctx, "/inventory-items", map[string]interface{}{"sku": sku}, &created); err != nil {
		return "", err
	}
	counters.created("inventory_item")
	r.logger.Info("inventory item created", zap.String("sku", sku), zap.String("id", created.InventoryItem.ID))

	linkEndpoint := fmt.Sprintf("/products/%s/variants/%s/inventory-items", productID, variant.ID)
	linkBody := map[string]interface{}{
		"inventory_item_id": created.InventoryItem.ID,
		"required_quantity": 1,
	}
	if err := r.post(ctx, linkEndpoint, linkBody, nil); err != nil && !isAlreadyExists(err) {
		r.logger.Warn("variant inventory link failed", zap.String("sku", sku), zap.Error(err))
	}
	return created.InventoryItem.ID, nil
}

func (r *Runner) ensureLevels(ctx context.Context, sc *StoreContext, itemID, sku string, counters *Counters) {
	var levels struct {
		InventoryLevels []medusa.LocationLevel `json:"inventory_levels"`
	}
	endpoint := fmt.Sprintf("/inventory-items/%s/location-levels", itemID)
	existing := map[string]bool{}
	if err := r.get(ctx, endpoint, nil, &levels); err == nil {
		for _, level := range levels.InventoryLevels {
			existing[level.LocationID] = true
		}
	}

	for _, locationID := range sc.LocationIDs {
		if existing[locationID] {
			counters.reused("inventory_level")
			continue
		}
		body := map[string]interface{}{
			"location_id":      locationID,
			"stocked_quantity": r.stockLevel,
		}
		if err := r.post(ctx, endpoint, body, nil); err != nil {
			if isAlreadyExists(err) {
				counters.reused("inventory_level")
				continue
			}
			r.logger.Warn("inventory level create failed",
				zap.String("sku", sku),
				zap.String("location_id", locationID),
				zap.Error(err))
			continue
		}
		counters.created("inventory_level")
	}
}
