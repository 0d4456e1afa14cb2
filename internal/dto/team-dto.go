package dto

type CreateTeamDTO struct {
	Name      string   `json:"name" validate:"required,min=2,max=255"`
	CompanyID *uint64  `json:"companyId,omitempty" validate:"omitempty,gt=0"`
	Members   []uint64 `json:"members" validate:"omitempty,dive,gt=0"`
}

type UpdateTeamDTO struct {
	Name      string   `json:"name" validate:"required,min=2,max=255"`
	CompanyID *uint64  `json:"companyId,omitempty" validate:"omitempty,gt=0"`
	Members   []uint64 `json:"members" validate:"omitempty,dive,gt=0"`
}

type TeamDTO struct {
	ID        uint64       `json:"id"`
	Name      string       `json:"name"`
	CompanyID *uint64      `json:"companyId,omitempty"`
	Members   []RefItemDTO `json:"members"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at,omitempty"`
}
