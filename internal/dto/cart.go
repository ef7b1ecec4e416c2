package dto

type AddCartItemRequestDTO struct {
	FoodID int `json:"foodId" example:"3"`
	Qty    int `json:"qty" example:"2"`
}

type CartItemDTO struct {
	FoodID   int     `json:"foodId" example:"3"`
	Qty      int     `json:"qty" example:"2"`
	Name     string  `json:"name" example:"Vegetable curry"`
	Price    float64 `json:"price" example:"4.5"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

type CartResponseDTO struct {
	Status  string        `json:"status" example:"success"`
	Message string        `json:"message,omitempty"`
	Cart    []CartItemDTO `json:"cart"`
}
