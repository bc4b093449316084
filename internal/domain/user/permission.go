package user

import "slices"

type Permission string

const (
	// Payroll
	PermissionPayrollView    Permission = "payroll.view"
	PermissionPayrollProcess Permission = "payroll.process"
	PermissionPeriodManage   Permission = "payroll.manage_periods"

	// Time & leave
	PermissionTimesheetSubmit  Permission = "timesheet.submit"
	PermissionTimesheetApprove Permission = "timesheet.approve"
	PermissionLeaveViewAll     Permission = "leave.view_all"
	PermissionLeaveApprove     Permission = "leave.approve"

	// Employees & compensation
	PermissionEmployeeViewAll  Permission = "employee.view_all"
	PermissionCompensationView Permission = "compensation.view"

	// Reports
	PermissionReportsView Permission = "reports.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionPayrollView,
		PermissionPayrollProcess,
		PermissionPeriodManage,
		PermissionTimesheetSubmit,
		PermissionTimesheetApprove,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionEmployeeViewAll,
		PermissionCompensationView,
		PermissionReportsView,
	},
	RoleHR: {
		PermissionPayrollView,
		PermissionPayrollProcess,
		PermissionPeriodManage,
		PermissionTimesheetSubmit,
		PermissionTimesheetApprove,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionEmployeeViewAll,
		PermissionCompensationView,
		PermissionReportsView,
	},
	RoleFinance: {
		PermissionPayrollView,
		PermissionEmployeeViewAll,
		PermissionCompensationView,
		PermissionReportsView,
	},
	RoleManager: {
		PermissionTimesheetSubmit,
		PermissionTimesheetApprove,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionEmployeeViewAll,
	},
	RoleEmployee: {
		PermissionTimesheetSubmit,
	},
}

// HasPermission reports whether role grants permission. Unknown roles grant
// nothing.
func HasPermission(role Role, permission Permission) bool {
	return slices.Contains(RolePermissions[role], permission)
}
