package swagger

// @Tag.name Back Office Meta
// @Tag.description Operational probes and metadata about the back office service.

// @Tag.name Staff Auth
// @Tag.description Authentication and session flows for staff members.

// @Tag.name Staff Users
// @Tag.description Staff account administration, roles, and removal.

// @Tag.name Finances
// @Tag.description Income and expense transaction tracking.

// @Tag.name Categories
// @Tag.description Expense category administration.

// @Tag.name Calendar
// @Tag.description Shared team calendar events.

// @Tag.name Reports
// @Tag.description Financial summaries and exports.

// @Tag.name Audit Logs
// @Tag.description Owner-only access to the recorded action trail.
