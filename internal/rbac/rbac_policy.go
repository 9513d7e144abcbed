package rbac

const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleEmployee = "EMPLOYEE"
)

type policy struct {
	Role     string
	Resource string
	Action   string
}

type inheritance struct {
	Child  string
	Parent string
}

// Every authenticated role can work with their own leave requests and
// notifications; HR additionally manages master data; ADMIN inherits HR.
var defaultPolicies = []policy{
	{RoleEmployee, "leave", "read"},
	{RoleEmployee, "leave", "create"},
	{RoleEmployee, "leave", "cancel"},
	{RoleEmployee, "leave", "decide"},
	{RoleEmployee, "leavetype", "read"},
	{RoleEmployee, "notification", "read"},
	{RoleEmployee, "employee", "read"},

	{RoleHR, "employee", "create"},
	{RoleHR, "employee", "update"},
	{RoleHR, "employee", "delete"},
	{RoleHR, "department", "create"},
	{RoleHR, "department", "update"},
	{RoleHR, "department", "delete"},
	{RoleHR, "position", "create"},
	{RoleHR, "position", "update"},
	{RoleHR, "position", "delete"},
	{RoleHR, "leavetype", "create"},

	{RoleEmployee, "department", "read"},
	{RoleEmployee, "position", "read"},
}

var defaultRoleInheritance = []inheritance{
	{RoleHR, RoleEmployee},
	{RoleAdmin, RoleHR},
}
