package dto

type CreateCategoryDTO struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Responsible string  `json:"responsible,omitempty"`
	CompanyID   *uint64 `json:"companyId,omitempty" validate:"omitempty,gt=0"`
}

type UpdateCategoryDTO struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Responsible string  `json:"responsible,omitempty"`
	CompanyID   *uint64 `json:"companyId,omitempty" validate:"omitempty,gt=0"`
}

type CategoryDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Responsible *string `json:"responsible,omitempty"`
	CompanyID   *uint64 `json:"companyId,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}
