package dto

// RefItemDTO is the id/name pair used to populate selection controls.
type RefItemDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type CreateRequestMetaDTO struct {
	Equipment   []RefItemDTO `json:"equipment"`
	Teams       []RefItemDTO `json:"teams"`
	Technicians []RefItemDTO `json:"technicians"`
}

type CreateEquipmentMetaDTO struct {
	Categories  []RefItemDTO `json:"categories"`
	Teams       []RefItemDTO `json:"teams"`
	Technicians []RefItemDTO `json:"technicians"`
	Employees   []RefItemDTO `json:"employees"`
	WorkCenters []RefItemDTO `json:"workCenters"`
}
