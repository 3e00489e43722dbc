package audit

// Enumerated action kinds. Every policy-gated mutation records one of these;
// login_failed is recorded without an actor.
const (
	ActionLogin        = "login"
	ActionLoginFailed  = "login_failed"
	ActionLogout       = "logout"
	ActionChangePasswd = "change_password"

	ActionCreateTransaction = "create_transaction"
	ActionUpdateTransaction = "update_transaction"
	ActionDeleteTransaction = "delete_transaction"

	ActionCreateCategory = "create_category"
	ActionDeleteCategory = "delete_category"

	ActionCreateEvent = "create_event"
	ActionUpdateEvent = "update_event"
	ActionDeleteEvent = "delete_event"

	ActionCreateUser       = "create_user"
	ActionDeleteUser       = "delete_user"
	ActionPermissionChange = "permission_change"
	ActionResetPassword    = "reset_password_request"
	ActionUpdateProfile    = "update_profile"

	ActionExportReport = "export_report"
)
