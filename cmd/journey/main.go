// Smoke test driving the storefront API the way a customer would: browse
// products, open one, build a cart, change a quantity, set a shipping
// address. Shipping method and payment need provider configuration and are
// logged as pending. Exits non-zero on the first failed step.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"storefront-bff/internal/medusa"
	"storefront-bff/internal/service"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

func main() {
	baseURL := getenv("BFF_URL", "http://localhost:3001/api/v1")
	regionID := getenv("REGION_ID", "")
	salesChannelID := getenv("SALES_CHANNEL_ID", "")

	if regionID == "" {
		fail("REGION_ID environment variable is required, run the setup tool and copy a region id from its summary")
	}

	client := medusa.NewClient(baseURL, "", 30*time.Second, zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fmt.Printf("Customer journey against %s\n\n", baseURL)

	// Step 1: browse products
	step(1, "Browse products")
	var list envelope[service.ProductList]
	must(client.Request(ctx, "/products", medusa.Options{Query: map[string]string{"limit": "10"}}, &list))
	products := list.Data.Products
	fmt.Printf("  found %d products\n", len(products))
	if len(products) == 0 {
		fail("no products available, run the setup tool first")
	}
	for i, p := range products {
		if i >= 5 {
			break
		}
		fmt.Printf("  %d. %s (%s)\n", i+1, p.Title, p.Handle)
	}

	// Step 2: view product details
	step(2, "View product details")
	var detail envelope[service.ProductEnvelope]
	must(client.Request(ctx, "/products/"+products[0].ID, medusa.Options{}, &detail))
	product := detail.Data.Product
	fmt.Printf("  %s, %d variant(s)\n", product.Title, len(product.Variants))
	if len(product.Variants) == 0 {
		fail("product has no variants to add to a cart")
	}

	// Step 3: create cart
	step(3, "Create cart")
	createBody := map[string]interface{}{"regionId": regionID}
	if salesChannelID != "" {
		createBody["salesChannelId"] = salesChannelID
	}
	var created envelope[service.CartEnvelope]
	must(client.Request(ctx, "/cart", medusa.Options{Method: http.MethodPost, Body: createBody}, &created))
	cartID := created.Data.Cart.ID
	fmt.Printf("  cart %s in region %s\n", cartID, created.Data.Cart.RegionID)

	// Step 4: add line item
	step(4, "Add item to cart")
	addBody := map[string]interface{}{"variantId": product.Variants[0].ID, "quantity": 1}
	var withItem envelope[service.CartEnvelope]
	must(client.Request(ctx, "/cart/"+cartID+"/line-items", medusa.Options{Method: http.MethodPost, Body: addBody}, &withItem))
	if len(withItem.Data.Cart.Items) == 0 {
		fail("cart is empty after adding an item")
	}
	item := withItem.Data.Cart.Items[0]
	fmt.Printf("  added %s x%d\n", item.Title, item.Quantity)

	// Step 5: update quantity
	step(5, "Update item quantity")
	updateBody := map[string]interface{}{"quantity": 3}
	var updated envelope[service.CartEnvelope]
	must(client.Request(ctx, "/cart/"+cartID+"/line-items/"+item.ID, medusa.Options{Method: http.MethodPut, Body: updateBody}, &updated))
	fmt.Printf("  %s now x%d\n", item.Title, updated.Data.Cart.Items[0].Quantity)

	// Step 6: shipping address
	step(6, "Add shipping address")
	address := map[string]interface{}{
		"firstName":   "Ahmed",
		"lastName":    "Khan",
		"address1":    "House 123, Street 5, F-7 Markaz",
		"address2":    "Near Jinnah Super Market",
		"city":        "Islamabad",
		"province":    "Islamabad Capital Territory",
		"postalCode":  "44000",
		"countryCode": "pk",
		"phone":       "+92-300-1234567",
		"email":       fmt.Sprintf("customer.%d@test.com", time.Now().Unix()),
	}
	var addressed envelope[service.CartEnvelope]
	must(client.Request(ctx, "/checkout/"+cartID+"/shipping-address", medusa.Options{Method: http.MethodPost, Body: address}, &addressed))
	fmt.Println("  shipping address set")

	step(7, "Shipping method and payment")
	fmt.Println("  pending, requires fulfillment and payment provider configuration")

	fmt.Printf("\nJourney completed, cart %s is ready for checkout\n", cartID)
}

func step(n int, title string) {
	fmt.Printf("\n[%d] %s\n", n, title)
}

func must(err error) {
	if err != nil {
		fail(err.Error())
	}
}

func fail(msg string) {
	fmt.Fprintf(os.Stderr, "\nJOURNEY FAILED: %s\n", msg)
	os.Exit(1)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
