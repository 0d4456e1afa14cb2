package seeders

var categoryData = []string{
	"CNC Machines",
	"Conveyors",
	"Hand Tools",
	"HVAC",
}

var technicianData = []string{
	"Marco Diaz",
	"Lena Fischer",
	"Priya Nair",
	"Tomas Berg",
}

var employeeData = []string{
	"Olga Petrov",
	"Sam Carter",
	"Yuki Tanaka",
}

type teamSeed struct {
	Name        string
	Technicians []string
}

var teamData = []teamSeed{
	{Name: "Mechanics", Technicians: []string{"Marco Diaz", "Lena Fischer"}},
	{Name: "Electrics", Technicians: []string{"Priya Nair"}},
	{Name: "Facilities", Technicians: []string{"Tomas Berg"}},
}

type workCenterSeed struct {
	Name        string
	Department  string
	CostPerHour float64
}

var workCenterData = []workCenterSeed{
	{Name: "Assembly Line 1", Department: "Assembly", CostPerHour: 85},
	{Name: "Paint Shop", Department: "Finishing", CostPerHour: 60},
	{Name: "Packaging", Department: "Logistics", CostPerHour: 40},
}

type equipmentSeed struct {
	Name       string
	Category   string
	Team       string
	WorkCenter string
}

var equipmentData = []equipmentSeed{
	{Name: "Haas VF-2 Mill", Category: "CNC Machines", Team: "Mechanics", WorkCenter: "Assembly Line 1"},
	{Name: "Belt Conveyor B3", Category: "Conveyors", Team: "Mechanics", WorkCenter: "Packaging"},
	{Name: "Spray Booth Fan", Category: "HVAC", Team: "Facilities", WorkCenter: "Paint Shop"},
}
