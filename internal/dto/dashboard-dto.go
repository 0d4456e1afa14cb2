package dto

type CountByGroupDTO struct {
	Name  string `json:"name"`
	Count uint64 `json:"count"`
}

type DashboardSummaryDTO struct {
	EquipmentCount uint64            `json:"equipmentCount"`
	OpenRequests   uint64            `json:"openRequests"`
	ByStatus       []CountByGroupDTO `json:"byStatus"`
	ByTeam         []CountByGroupDTO `json:"byTeam"`
}
