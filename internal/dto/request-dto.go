package dto

import "github.com/aarondl/null/v8"

// CreateRequestDTO carries a new maintenance request. Either equipment_id or
// work_center_id must be present; the service enforces that, since the rule
// spans two fields.
type CreateRequestDTO struct {
	Subject       string      `json:"subject" validate:"required,min=3,max=255"`
	EquipmentID   *uint64     `json:"equipmentId,omitempty" validate:"omitempty,gt=0"`
	WorkCenterID  *uint64     `json:"workCenterId,omitempty" validate:"omitempty,gt=0"`
	RequestType   string      `json:"requestType,omitempty" validate:"omitempty,oneof=CORRECTIVE PREVENTIVE"`
	Priority      string      `json:"priority,omitempty" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	DueDate       string      `json:"dueDate" validate:"required,datetime=2006-01-02"`
	ScheduledDate null.String `json:"scheduledDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TeamID        uint64      `json:"teamId" validate:"required,gt=0"`
	TechnicianID  *uint64     `json:"assignedTechnicianId,omitempty" validate:"omitempty,gt=0"`
	Notes         null.String `json:"notes,omitempty"`
}

// UpdateRequestDTO is the full-record overwrite used by PUT: every
// client-editable field, including status, may change in one call.
type UpdateRequestDTO struct {
	Subject       string      `json:"subject" validate:"required,min=3,max=255"`
	EquipmentID   *uint64     `json:"equipmentId,omitempty" validate:"omitempty,gt=0"`
	WorkCenterID  *uint64     `json:"workCenterId,omitempty" validate:"omitempty,gt=0"`
	RequestType   string      `json:"requestType" validate:"required,oneof=CORRECTIVE PREVENTIVE"`
	Priority      string      `json:"priority" validate:"required,oneof=HIGH MEDIUM LOW"`
	Status        string      `json:"status" validate:"required,oneof=NEW IN_PROGRESS REPAIRED SCRAP"`
	DueDate       string      `json:"dueDate" validate:"required,datetime=2006-01-02"`
	ScheduledDate null.String `json:"scheduledDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TeamID        uint64      `json:"teamId" validate:"required,gt=0"`
	TechnicianID  *uint64     `json:"assignedTechnicianId,omitempty" validate:"omitempty,gt=0"`
	Notes         null.String `json:"notes,omitempty"`
}

// UpdateRequestStatusDTO is the narrow payload behind the Kanban drag.
type UpdateRequestStatusDTO struct {
	Status string `json:"status" validate:"required"`
}

type RequestDTO struct {
	ID            uint64  `json:"id"`
	Subject       string  `json:"subject"`
	EquipmentID   *uint64 `json:"equipmentId,omitempty"`
	WorkCenterID  *uint64 `json:"workCenterId,omitempty"`
	RequestType   string  `json:"requestType"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	DueDate       *string `json:"dueDate,omitempty"`
	ScheduledDate *string `json:"scheduledDate,omitempty"`
	TeamID        *uint64 `json:"teamId,omitempty"`
	TechnicianID  *uint64 `json:"assignedTechnicianId,omitempty"`
	RequesterID   *uint64 `json:"requesterId,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// RequestListFilter narrows List; zero values mean "no filter".
type RequestListFilter struct {
	RequesterID uint64
	EquipmentID uint64
}
