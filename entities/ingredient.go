package entities

const (
	IngredientTypeBun   = "bun"
	IngredientTypeMain  = "main"
	IngredientTypeSauce = "sauce"
)

// Ingredient is a catalog entry as served by the burger API. Instances
// are immutable once fetched; every other package reads them through
// the catalog selectors.
type Ingredient struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"` // "bun", "main" or "sauce"
	Proteins      float64 `json:"proteins"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
	Calories      float64 `json:"calories"`
	Price         int     `json:"price"`
	Image         string  `json:"image"`
	ImageMobile   string  `json:"image_mobile"`
	ImageLarge    string  `json:"image_large"`
}

// BuilderIngredient is one occurrence of a catalog ingredient inside
// the builder. InstanceID is minted on insertion and never reused, so
// the same catalog ingredient can appear several times and each
// occurrence stays individually addressable.
type BuilderIngredient struct {
	InstanceID string `json:"id"`
	Ingredient
}
