package user

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access
	RoleHR       Role = "hr"       // Runs payroll and approves leave
	RoleFinance  Role = "finance"  // Reads compensation and budget reports
	RoleManager  Role = "manager"  // Approves timesheets and leave for a team
	RoleEmployee Role = "employee" // Regular employee
)

// Principal is the authenticated caller derived from the access token.
type Principal struct {
	UserID     string
	EmployeeID *string
	Role       Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanApprove checks if the caller can approve timesheets and leave
func (p Principal) CanApprove() bool {
	return p.Role == RoleAdmin || p.Role == RoleHR || p.Role == RoleManager
}

func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleHR, RoleFinance, RoleManager, RoleEmployee:
		return r, true
	}
	return "", false
}
