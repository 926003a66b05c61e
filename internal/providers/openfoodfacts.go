package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// FoodProvider is the outbound food-database contract.
type FoodProvider interface {
	GetProduct(ctx context.Context, barcode string) (*gormModels.Product, error)
	SearchByName(ctx context.Context, query string, pageSize int) ([]*gormModels.Product, error)
}

// offFields limits the payload to what the products table stores.
const offFields = "code,product_name,brands,serving_size,serving_quantity," +
	"nutriments,nutrition_grades,image_front_small_url," +
	"categories_tags,allergens_tags"

// OFF usage policy requires an identifying User-Agent.
const offUserAgent = "CentroControl/1.0 (contacto@centrocontrol.app)"

type offProductPayload struct {
	Code            string                 `json:"code"`
	ProductName     string                 `json:"product_name"`
	Brands          string                 `json:"brands"`
	ServingSize     string                 `json:"serving_size"`
	ServingQuantity json.Number            `json:"serving_quantity"`
	Nutriments      map[string]interface{} `json:"nutriments"`
	NutritionGrades string                 `json:"nutrition_grades"`
	ImageURL        string                 `json:"image_front_small_url"`
	CategoriesTags  []string               `json:"categories_tags"`
	AllergensTags   []string               `json:"allergens_tags"`
}

// OpenFoodFactsClient talks to the OpenFoodFacts v2 API.
type OpenFoodFactsClient struct {
	BaseURL string
	Client  *http.Client
}

var _ FoodProvider = (*OpenFoodFactsClient)(nil)

func NewOpenFoodFactsClient(baseURL string) *OpenFoodFactsClient {
	return &OpenFoodFactsClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetProduct fetches one product by barcode.
func (c *OpenFoodFactsClient) GetProduct(ctx context.Context, barcode string) (*gormModels.Product, error) {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s?fields=%s",
		c.BaseURL, url.PathEscape(barcode), url.QueryEscape(offFields))

	var body struct {
		Status  int                `json:"status"`
		Product *offProductPayload `json:"product"`
	}
	if err := c.doGET(ctx, endpoint, &body); err != nil {
		return nil, err
	}

	if body.Status == 0 || body.Product == nil {
		return nil, apperrors.NotFound("product with barcode %s not found in food database", barcode)
	}

	return parseProduct(body.Product), nil
}

// SearchByName searches products by free text, sorted by popularity.
func (c *OpenFoodFactsClient) SearchByName(ctx context.Context, query string, pageSize int) ([]*gormModels.Product, error) {
	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("fields", offFields)
	params.Set("page_size", fmt.Sprintf("%d", pageSize))
	params.Set("sort_by", "popularity_key")
	endpoint := fmt.Sprintf("%s/api/v2/search?%s", c.BaseURL, params.Encode())

	var body struct {
		Products []offProductPayload `json:"products"`
	}
	if err := c.doGET(ctx, endpoint, &body); err != nil {
		return nil, err
	}

	products := make([]*gormModels.Product, 0, len(body.Products))
	for i := range body.Products {
		products = append(products, parseProduct(&body.Products[i]))
	}
	return products, nil
}

func (c *OpenFoodFactsClient) doGET(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.Upstream("failed to build food database request", err)
	}
	req.Header.Set("User-Agent", offUserAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return apperrors.Upstream("food database timed out", err)
		}
		return apperrors.Upstream("food database unavailable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return apperrors.Upstream("food database rate limit exceeded", nil)
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFound("product not found in food database")
	case resp.StatusCode >= 400:
		return apperrors.Upstream(fmt.Sprintf("food database returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return apperrors.Upstream("failed to decode food database response", err)
	}
	return nil
}

// parseProduct normalizes the OFF payload into a Product row (not persisted
// here; the service decides whether to cache it).
func parseProduct(raw *offProductPayload) *gormModels.Product {
	name := raw.ProductName
	if name == "" {
		name = "Unnamed product"
	}

	// OFF sometimes returns several comma-separated brands; keep the first.
	var brand *string
	if raw.Brands != "" {
		first := strings.TrimSpace(strings.SplitN(raw.Brands, ",", 2)[0])
		brand = strPtr(first)
	}

	product := &gormModels.Product{
		Barcode:     strPtr(raw.Code),
		ProductName: name,
		Brand:       brand,
		Nutriscore:  strPtr(raw.NutritionGrades),
		ImageURL:    strPtr(raw.ImageURL),
		Categories:  joinTruncated(raw.CategoriesTags, 500),
		Allergens:   joinTruncated(raw.AllergensTags, 300),
		Source:      "openfoodfacts",

		EnergyKcal100g:    nutriment(raw.Nutriments, "energy-kcal"),
		Proteins100g:      nutriment(raw.Nutriments, "proteins"),
		Carbohydrates100g: nutriment(raw.Nutriments, "carbohydrates"),
		Sugars100g:        nutriment(raw.Nutriments, "sugars"),
		Fat100g:           nutriment(raw.Nutriments, "fat"),
		SaturatedFat100g:  nutriment(raw.Nutriments, "saturated-fat"),
		Fiber100g:         nutriment(raw.Nutriments, "fiber"),
		Salt100g:          nutriment(raw.Nutriments, "salt"),
		Sodium100g:        nutriment(raw.Nutriments, "sodium"),
	}

	product.ServingSizeText = strPtr(raw.ServingSize)
	if qty, err := raw.ServingQuantity.Float64(); err == nil && raw.ServingQuantity != "" {
		product.ServingQuantityG = &qty
	}

	if payload, err := json.Marshal(raw); err == nil {
		product.RawPayload = payload
	}

	return product
}

// nutriment looks for the _100g key first, then the base key. Defensive
// against unexpected value types in the OFF payload.
func nutriment(nutriments map[string]interface{}, key string) *float64 {
	if nutriments == nil {
		return nil
	}
	value, ok := nutriments[key+"_100g"]
	if !ok || value == nil {
		value = nutriments[key]
	}
	switch v := value.(type) {
	case float64:
		return &v
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	case string:
		var f float64
		if _, err := fmt.Sscanf(v, "%g", &f); err == nil {
			return &f
		}
	}
	return nil
}

func joinTruncated(tags []string, max int) *string {
	if len(tags) == 0 {
		return nil
	}
	joined := strings.Join(tags, ",")
	if len(joined) > max {
		joined = joined[:max]
	}
	return &joined
}
