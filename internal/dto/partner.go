package dto

import "time"

type CreatePartnerRequestDTO struct {
	OrganizationName string `json:"organizationName" example:"Helping Hands"`
	OrganizationType string `json:"organizationType" example:"ngo"`
	ContactPerson    string `json:"contactPerson" example:"Jamie Lee"`
	Email            string `json:"email" example:"contact@helpinghands.org"`
	Phone            string `json:"phone" example:"+6012 345 6789"`
	Location         string `json:"location" example:"Kuala Lumpur"`
	Website          string `json:"website,omitempty"`
	Message          string `json:"message,omitempty"`
	DocumentURL      string `json:"documentUrl,omitempty"`
}

type PartnerDTO struct {
	ID               int       `json:"id" example:"2"`
	UserID           int       `json:"userId" example:"1"`
	OrganizationName string    `json:"organizationName"`
	OrganizationType string    `json:"organizationType" example:"ngo"`
	ContactPerson    string    `json:"contactPerson"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Location         string    `json:"location"`
	Website          string    `json:"website,omitempty"`
	Message          string    `json:"message,omitempty"`
	DocumentURL      string    `json:"documentUrl,omitempty"`
	Status           string    `json:"status" example:"pending"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UserName         string    `json:"userName,omitempty"`
	UserEmail        string    `json:"userEmail,omitempty"`
}

type UpdatePartnerStatusRequestDTO struct {
	Status string `json:"status" example:"approved"`
	Notes  string `json:"notes,omitempty"`
}
