package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name         string      `json:"name" validate:"required,min=2,max=255"`
	CategoryID   *uint64     `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	SerialNumber null.String `json:"serialNumber,omitempty"`
	TechnicianID *uint64     `json:"assignedTechnicianId,omitempty" validate:"omitempty,gt=0"`
	EmployeeID   *uint64     `json:"assignedEmployeeId,omitempty" validate:"omitempty,gt=0"`
	TeamID       *uint64     `json:"maintenanceTeamId,omitempty" validate:"omitempty,gt=0"`
	WorkCenterID *uint64     `json:"workCenterId,omitempty" validate:"omitempty,gt=0"`
	Description  null.String `json:"description,omitempty"`
}

type UpdateEquipmentDTO struct {
	Name         string      `json:"name" validate:"required,min=2,max=255"`
	CategoryID   *uint64     `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	SerialNumber null.String `json:"serialNumber,omitempty"`
	TechnicianID *uint64     `json:"assignedTechnicianId,omitempty" validate:"omitempty,gt=0"`
	EmployeeID   *uint64     `json:"assignedEmployeeId,omitempty" validate:"omitempty,gt=0"`
	TeamID       *uint64     `json:"maintenanceTeamId,omitempty" validate:"omitempty,gt=0"`
	WorkCenterID *uint64     `json:"workCenterId,omitempty" validate:"omitempty,gt=0"`
	Description  null.String `json:"description,omitempty"`
}

type EquipmentDTO struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	CategoryID   *uint64     `json:"categoryId,omitempty"`
	Category     *RefItemDTO `json:"category,omitempty"`
	SerialNumber *string     `json:"serialNumber,omitempty"`
	TechnicianID *uint64     `json:"assignedTechnicianId,omitempty"`
	EmployeeID   *uint64     `json:"assignedEmployeeId,omitempty"`
	TeamID       *uint64     `json:"maintenanceTeamId,omitempty"`
	WorkCenterID *uint64     `json:"workCenterId,omitempty"`
	Description  *string     `json:"description,omitempty"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at,omitempty"`
}
