package dto

type GameDTO struct {
	ID            int      `json:"id" example:"4"`
	Title         string   `json:"title" example:"Food sorting quiz"`
	Description   string   `json:"description,omitempty"`
	URL           string   `json:"url" example:"https://games.example.com/sorting"`
	IconURL       string   `json:"iconUrl,omitempty"`
	PointsPerPlay int      `json:"pointsPerPlay" example:"10"`
	Tags          []string `json:"tags"`
	IsActive      bool     `json:"isActive" example:"true"`
}

type CreateGameRequestDTO struct {
	Title         string   `json:"title" example:"Food sorting quiz"`
	Description   string   `json:"description,omitempty"`
	URL           string   `json:"url" example:"https://games.example.com/sorting"`
	IconURL       string   `json:"iconUrl,omitempty"`
	PointsPerPlay int      `json:"pointsPerPlay" example:"10"`
	Tags          []string `json:"tags,omitempty"`
}

type UpdateGameRequestDTO struct {
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	URL           *string   `json:"url,omitempty"`
	IconURL       *string   `json:"iconUrl,omitempty"`
	PointsPerPlay *int      `json:"pointsPerPlay,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	IsActive      *bool     `json:"isActive,omitempty"`
}
