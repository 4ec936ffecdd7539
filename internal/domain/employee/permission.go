package employee

type Permission string

const (
	// Attendance
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceManage  Permission = "attendance.manage"

	// Leave
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Reports
	PermissionReportsViewOwn Permission = "reports.view_own"
	PermissionReportsViewAll Permission = "reports.view_all"
	PermissionReportsExport  Permission = "reports.export"
)

var staffPermissions = []Permission{
	PermissionAttendanceViewOwn,
	PermissionAttendanceCreate,
	PermissionAttendanceViewAll,
	PermissionAttendanceManage,
	PermissionLeaveViewOwn,
	PermissionLeaveCreate,
	PermissionLeaveViewAll,
	PermissionLeaveApprove,
	PermissionReportsViewOwn,
	PermissionReportsViewAll,
	PermissionReportsExport,
}

// RolePermissions maps roles to their permissions. HR and Admin share the
// same administrative surface.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: staffPermissions,
	RoleHR:    staffPermissions,
	RoleEmployee: {
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionReportsViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
