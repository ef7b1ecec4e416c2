package domain

// FoodFilter narrows food listings by simple equality/range predicates.
type FoodFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// Patch types carry partial updates; nil fields are left untouched.

type FoodPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	ImageURL    *string
}

type RewardPatch struct {
	Title          *string
	Description    *string
	Image          *string
	PointsRequired *int
	Inventory      *int
	IsActive       *bool
}

type GamePatch struct {
	Title         *string
	Description   *string
	URL           *string
	IconURL       *string
	PointsPerPlay *int
	Tags          *[]string
	IsActive      *bool
}
