package dto

type SignupRequestDTO struct {
	Name     string `json:"name" example:"Jamie Lee"`
	Email    string `json:"email" example:"jamie@example.com"`
	Phone    string `json:"phone,omitempty" example:"+6012 345 6789"`
	Password string `json:"password" example:"hunter42"`
	Role     string `json:"role" example:"receiver"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"jamie@example.com"`
	Password string `json:"password" example:"hunter42"`
}

type RefreshRequestDTO struct {
	RefreshToken string `json:"refreshToken"`
}

type UserDTO struct {
	ID     int    `json:"id" example:"1"`
	Name   string `json:"name" example:"Jamie Lee"`
	Email  string `json:"email" example:"jamie@example.com"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role" example:"receiver"`
	Points int    `json:"points" example:"150"`
}

type AuthResponseDTO struct {
	Status       string  `json:"status" example:"success"`
	Message      string  `json:"message,omitempty"`
	Token        string  `json:"token"`
	RefreshToken string  `json:"refreshToken"`
	User         UserDTO `json:"user"`
}

type TokenPairDTO struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type ProfileResponseDTO struct {
	Status string  `json:"status" example:"success"`
	User   UserDTO `json:"user"`
}
