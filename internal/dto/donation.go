package dto

import "time"

type CreateDonationRequestDTO struct {
	DonorType     string `json:"donorType" example:"restaurant"`
	ContactName   string `json:"contactName" example:"Jamie Lee"`
	ContactPhone  string `json:"contactPhone" example:"+6012 345 6789"`
	ContactEmail  string `json:"contactEmail,omitempty"`
	FoodType      string `json:"foodType" example:"cooked meals"`
	Quantity      string `json:"quantity" example:"20 portions"`
	PickupAddress string `json:"pickupAddress"`
	PickupWindow  string `json:"pickupWindow" example:"18:00-20:00"`
	Notes         string `json:"notes,omitempty"`
}

type DonationDTO struct {
	ID                int       `json:"id" example:"5"`
	UserID            int       `json:"userId" example:"1"`
	DonorType         string    `json:"donorType" example:"restaurant"`
	ContactName       string    `json:"contactName"`
	ContactPhone      string    `json:"contactPhone"`
	ContactEmail      string    `json:"contactEmail,omitempty"`
	FoodType          string    `json:"foodType"`
	Quantity          string    `json:"quantity"`
	PickupAddress     string    `json:"pickupAddress"`
	PickupWindow      string    `json:"pickupWindow"`
	Notes             string    `json:"notes,omitempty"`
	Status            string    `json:"status" example:"pending"`
	AssignedVolunteer string    `json:"assignedVolunteer,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UserName          string    `json:"userName,omitempty"`
	UserEmail         string    `json:"userEmail,omitempty"`
}

type UpdateDonationStatusRequestDTO struct {
	Status            string `json:"status" example:"scheduled"`
	AssignedVolunteer string `json:"assignedVolunteer,omitempty"`
}
