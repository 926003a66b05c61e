package gorm

import "time"

// Product is a global (not per-user) nutrition catalog entry. Rows are cached
// from OpenFoodFacts once and shared by every user referencing the barcode.
type Product struct {
	ID               uint     `gorm:"column:id;primaryKey"`
	Barcode          *string  `gorm:"column:barcode;type:varchar(30);uniqueIndex:ix_products_barcode,where:barcode IS NOT NULL"`
	ProductName      string   `gorm:"column:product_name;type:varchar(200);not null;index:ix_products_name"`
	Brand            *string  `gorm:"column:brand;type:varchar(100)"`
	ServingSizeText  *string  `gorm:"column:serving_size_text;type:varchar(50)"`
	ServingQuantityG *float64 `gorm:"column:serving_quantity_g"`
	Nutriscore       *string  `gorm:"column:nutriscore;type:varchar(10)"`
	ImageURL         *string  `gorm:"column:image_url;type:varchar(500)"`
	Categories       *string  `gorm:"column:categories;type:varchar(500)"`
	Allergens        *string  `gorm:"column:allergens;type:varchar(300)"`

	// Nutrients per 100 g. Nil means the source had no data; nil must
	// propagate into diary snapshots, never coerce to 0.
	EnergyKcal100g    *float64 `gorm:"column:energy_kcal_100g"`
	Proteins100g      *float64 `gorm:"column:proteins_100g"`
	Carbohydrates100g *float64 `gorm:"column:carbohydrates_100g"`
	Sugars100g        *float64 `gorm:"column:sugars_100g"`
	Fat100g           *float64 `gorm:"column:fat_100g"`
	SaturatedFat100g  *float64 `gorm:"column:saturated_fat_100g"`
	Fiber100g         *float64 `gorm:"column:fiber_100g"`
	Salt100g          *float64 `gorm:"column:salt_100g"`
	Sodium100g        *float64 `gorm:"column:sodium_100g"`

	Source     string    `gorm:"column:source;type:varchar(20);not null;default:openfoodfacts"`
	RawPayload []byte    `gorm:"column:raw_payload;type:jsonb"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Product) TableName() string {
	return "products"
}
