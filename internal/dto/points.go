package dto

import "time"

type AwardPointsRequestDTO struct {
	Points     int    `json:"points" example:"10"`
	SourceType string `json:"sourceType" example:"game"`
	SourceID   int    `json:"sourceId,omitempty" example:"4"`
	Note       string `json:"note,omitempty" example:"Completed sorting quiz"`
}

type PointsEntryDTO struct {
	ID         int       `json:"id" example:"31"`
	Points     int       `json:"points" example:"10"`
	SourceType string    `json:"sourceType" example:"game"`
	SourceID   int       `json:"sourceId,omitempty"`
	Note       string    `json:"note,omitempty"`
	Direction  string    `json:"direction" example:"credit"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AwardPointsResponseDTO struct {
	User UserDTO `json:"user"`
}

type PointsSummaryResponseDTO struct {
	Balance int              `json:"balance" example:"150"`
	History []PointsEntryDTO `json:"history"`
}
