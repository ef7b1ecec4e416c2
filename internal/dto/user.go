package dto

type UsersResponseDTO struct {
	Status string    `json:"status" example:"success"`
	Users  []UserDTO `json:"users"`
}

type UpdateRoleRequestDTO struct {
	Role string `json:"role" example:"donor"`
}

type UpdateRoleResponseDTO struct {
	Status string  `json:"status" example:"success"`
	User   UserDTO `json:"user"`
}
