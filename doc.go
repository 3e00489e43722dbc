// Package backoffice provides top-level metadata for the Back Office API.
//
// @title Back Office API
// @version 1.0.0
// @description Staff-facing back office API for finance tracking, calendar, reporting, and audit logging.
// @BasePath /
// @securityDefinitions.apikey StaffAuth
// @in header
// @name Authorization
// @description Provide the staff bearer token as `Bearer <token>`.
package backoffice
