package dto

type UserDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type ShortUserDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
