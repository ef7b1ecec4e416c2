package dto

import "time"

type CreateOrderRequestDTO struct {
	Items []OrderItemRequestDTO `json:"items"`
}

type OrderItemRequestDTO struct {
	FoodID int `json:"foodId" example:"3"`
	Qty    int `json:"qty" example:"2"`
}

type OrderItemDTO struct {
	FoodID    int     `json:"foodId" example:"3"`
	Name      string  `json:"name" example:"Vegetable curry"`
	Price     float64 `json:"price" example:"4.5"`
	Qty       int     `json:"qty" example:"2"`
	LineTotal float64 `json:"lineTotal" example:"9"`
}

type OrderDTO struct {
	ID            int            `json:"id" example:"12"`
	UserID        int            `json:"userId" example:"1"`
	Items         []OrderItemDTO `json:"items"`
	Total         float64        `json:"total" example:"9"`
	Status        string         `json:"status" example:"placed"`
	CreatedAt     time.Time      `json:"createdAt"`
	CustomerName  string         `json:"customerName,omitempty"`
	CustomerEmail string         `json:"customerEmail,omitempty"`
}

type CreateOrderResponseDTO struct {
	Status      string         `json:"status" example:"success"`
	Message     string         `json:"message" example:"Order placed successfully"`
	OrderID     int            `json:"orderId" example:"12"`
	OrderStatus string         `json:"orderStatus" example:"placed"`
	Total       float64        `json:"total" example:"9"`
	Items       []OrderItemDTO `json:"items"`
}

type OrdersResponseDTO struct {
	Status  string     `json:"status" example:"success"`
	Message string     `json:"message,omitempty"`
	Orders  []OrderDTO `json:"orders"`
}

type UpdateOrderStatusRequestDTO struct {
	Status string `json:"status" example:"processing"`
}

type UpdateOrderStatusResponseDTO struct {
	Status      string   `json:"status" example:"success"`
	Message     string   `json:"message"`
	Order       OrderDTO `json:"order"`
	OrderID     int      `json:"orderId" example:"12"`
	OrderStatus string   `json:"orderStatus" example:"processing"`
}
