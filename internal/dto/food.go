package dto

type FoodDTO struct {
	ID          int     `json:"id" example:"3"`
	Name        string  `json:"name" example:"Vegetable curry"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" example:"4.5"`
	Category    string  `json:"category" example:"mains"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type CreateFoodRequestDTO struct {
	Name        string  `json:"name" example:"Vegetable curry"`
	Description string  `json:"description"`
	Price       float64 `json:"price" example:"4.5"`
	Category    string  `json:"category" example:"mains"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// UpdateFoodRequestDTO is a partial patch; nil fields are left untouched.
type UpdateFoodRequestDTO struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}

type FoodResponseDTO struct {
	Status  string  `json:"status" example:"success"`
	Message string  `json:"message,omitempty"`
	Food    FoodDTO `json:"food"`
}
