package dto

// RequestReportItemDTO is a maintenance request joined with reference names
// for the export listing.
type RequestReportItemDTO struct {
	ID             uint64 `json:"id"`
	Subject        string `json:"subject"`
	EquipmentName  string `json:"equipment"`
	WorkCenterName string `json:"workCenter"`
	RequestType    string `json:"requestType"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	DueDate        string `json:"dueDate"`
	TeamName       string `json:"team"`
	TechnicianName string `json:"technician"`
	RequesterName  string `json:"requester"`
	CreatedAt      string `json:"created_at"`
}
