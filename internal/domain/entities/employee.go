package entities

// EmployeeRole controls who may approve privileged actions. Admins approve
// price changes directly; everyone else goes through the PIN gate.
type EmployeeRole string

const (
	RoleAdmin      EmployeeRole = "Admin"
	RoleManager    EmployeeRole = "Manager"
	RoleTechnician EmployeeRole = "Technician"
)

// Employee is a staff account. PIN is the shop-floor approval secret for
// Admin-role accounts, stored and compared as plain text.
type Employee struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Role  EmployeeRole `json:"role"`
	Email string       `json:"email"`
	PIN   string       `json:"-"`
}
