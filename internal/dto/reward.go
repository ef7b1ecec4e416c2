package dto

type RewardDTO struct {
	ID             int    `json:"id" example:"7"`
	Title          string `json:"title" example:"Tote bag"`
	Description    string `json:"description,omitempty"`
	Image          string `json:"image,omitempty"`
	PointsRequired int    `json:"pointsRequired" example:"100"`
	Inventory      int    `json:"inventory" example:"5"`
	IsActive       bool   `json:"isActive" example:"true"`
}

type CreateRewardRequestDTO struct {
	Title          string `json:"title" example:"Tote bag"`
	Description    string `json:"description,omitempty"`
	Image          string `json:"image,omitempty"`
	PointsRequired int    `json:"pointsRequired" example:"100"`
	Inventory      *int   `json:"inventory,omitempty" example:"5"`
	IsActive       *bool  `json:"isActive,omitempty" example:"true"`
}

type UpdateRewardRequestDTO struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	Image          *string `json:"image,omitempty"`
	PointsRequired *int    `json:"pointsRequired,omitempty"`
	Inventory      *int    `json:"inventory,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

type RedeemRequestDTO struct {
	RewardID int `json:"rewardId" example:"7"`
}

type RedeemResponseDTO struct {
	Message string    `json:"message" example:"Reward redeemed successfully"`
	Reward  RewardDTO `json:"reward"`
	User    UserDTO   `json:"user"`
}
