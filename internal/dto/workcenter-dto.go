package dto

import "github.com/aarondl/null/v8"

type CreateWorkCenterDTO struct {
	Name         string      `json:"name" validate:"required,min=2,max=255"`
	Department   null.String `json:"department,omitempty"`
	Description  null.String `json:"description,omitempty"`
	Tag          null.String `json:"tag,omitempty"`
	Alternatives null.String `json:"alternatives,omitempty"`
	CostPerHour  *float64    `json:"costPerHour,omitempty" validate:"omitempty,gte=0"`
	Capacity     *float64    `json:"capacity,omitempty" validate:"omitempty,gte=0,lte=100"`
	OEE          *float64    `json:"oee,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type UpdateWorkCenterDTO struct {
	Name         string      `json:"name" validate:"required,min=2,max=255"`
	Department   null.String `json:"department,omitempty"`
	Description  null.String `json:"description,omitempty"`
	Tag          null.String `json:"tag,omitempty"`
	Alternatives null.String `json:"alternatives,omitempty"`
	CostPerHour  *float64    `json:"costPerHour,omitempty" validate:"omitempty,gte=0"`
	Capacity     *float64    `json:"capacity,omitempty" validate:"omitempty,gte=0,lte=100"`
	OEE          *float64    `json:"oee,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type WorkCenterDTO struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	Department   *string  `json:"department,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Tag          *string  `json:"tag,omitempty"`
	Alternatives *string  `json:"alternatives,omitempty"`
	CostPerHour  *float64 `json:"costPerHour,omitempty"`
	Capacity     *float64 `json:"capacity,omitempty"`
	OEE          *float64 `json:"oee,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}
