package audit

import (
	"time"

	"backoffice/internal/models"
)

// One payload shape per action kind, so detail fields stay statically
// checked while the stored record keeps the serialized free-form shape.

type TransactionDetails struct {
	TransactionID string  `json:"transactionId"`
	Type          string  `json:"type,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Category      string  `json:"category,omitempty"`
}

type CategoryDetails struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name,omitempty"`
}

type EventDetails struct {
	EventID string `json:"eventId"`
	Title   string `json:"title,omitempty"`
}

type UserDetails struct {
	TargetUserID string      `json:"targetUserId"`
	Username     string      `json:"username,omitempty"`
	Role         models.Role `json:"role,omitempty"`
}

type PermissionChangeDetails struct {
	TargetUserID string      `json:"targetUserId"`
	OldRole      models.Role `json:"oldRole"`
	NewRole      models.Role `json:"newRole"`
}

type LoginDetails struct {
	Username string `json:"username"`
}

type ProfileDetails struct {
	DisplayName string `json:"displayName,omitempty"`
	PhotoSet    bool   `json:"photoSet,omitempty"`
}

type ExportDetails struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Rows  int       `json:"rows"`
}

func (r *Recorder) TransactionCreated(actor *models.StaffUser, t models.Transaction) {
	r.Record(actor, ActionCreateTransaction, TransactionDetails{
		TransactionID: t.ID,
		Type:          t.Type,
		Amount:        t.Amount,
		Category:      t.Category,
	})
}

func (r *Recorder) TransactionUpdated(actor *models.StaffUser, t models.Transaction) {
	r.Record(actor, ActionUpdateTransaction, TransactionDetails{
		TransactionID: t.ID,
		Type:          t.Type,
		Amount:        t.Amount,
		Category:      t.Category,
	})
}

func (r *Recorder) TransactionDeleted(actor *models.StaffUser, transactionID string) {
	r.Record(actor, ActionDeleteTransaction, TransactionDetails{
		TransactionID: transactionID,
	})
}

func (r *Recorder) CategoryCreated(actor *models.StaffUser, cat models.Category) {
	r.Record(actor, ActionCreateCategory, CategoryDetails{
		CategoryID: cat.ID,
		Name:       cat.Name,
	})
}

func (r *Recorder) CategoryDeleted(actor *models.StaffUser, categoryID string) {
	r.Record(actor, ActionDeleteCategory, CategoryDetails{
		CategoryID: categoryID,
	})
}

func (r *Recorder) EventCreated(actor *models.StaffUser, ce models.CalendarEvent) {
	r.Record(actor, ActionCreateEvent, EventDetails{
		EventID: ce.ID,
		Title:   ce.Title,
	})
}

func (r *Recorder) EventUpdated(actor *models.StaffUser, ce models.CalendarEvent) {
	r.Record(actor, ActionUpdateEvent, EventDetails{
		EventID: ce.ID,
		Title:   ce.Title,
	})
}

func (r *Recorder) EventDeleted(actor *models.StaffUser, eventID string) {
	r.Record(actor, ActionDeleteEvent, EventDetails{
		EventID: eventID,
	})
}

func (r *Recorder) UserCreated(actor *models.StaffUser, target models.StaffUser) {
	r.Record(actor, ActionCreateUser, UserDetails{
		TargetUserID: target.ID,
		Username:     target.Username,
		Role:         target.Role,
	})
}

func (r *Recorder) UserDeleted(actor *models.StaffUser, target models.StaffUser) {
	r.Record(actor, ActionDeleteUser, UserDetails{
		TargetUserID: target.ID,
		Username:     target.Username,
	})
}

func (r *Recorder) PermissionChanged(actor *models.StaffUser, target models.StaffUser, newRole models.Role) {
	r.Record(actor, ActionPermissionChange, PermissionChangeDetails{
		TargetUserID: target.ID,
		OldRole:      target.Role,
		NewRole:      newRole,
	})
}

func (r *Recorder) PasswordResetRequested(actor *models.StaffUser, target models.StaffUser) {
	r.Record(actor, ActionResetPassword, UserDetails{
		TargetUserID: target.ID,
		Username:     target.Username,
	})
}

func (r *Recorder) LoggedIn(actor *models.StaffUser) {
	r.Record(actor, ActionLogin, LoginDetails{Username: actor.Username})
}

// LoginFailed is recorded without an actor: the attempt never authenticated.
func (r *Recorder) LoginFailed(username string) {
	r.Record(nil, ActionLoginFailed, LoginDetails{Username: username})
}

func (r *Recorder) LoggedOut(actor *models.StaffUser) {
	r.Record(actor, ActionLogout, nil)
}

func (r *Recorder) PasswordChanged(actor *models.StaffUser) {
	r.Record(actor, ActionChangePasswd, nil)
}

func (r *Recorder) ProfileUpdated(actor *models.StaffUser, details ProfileDetails) {
	r.Record(actor, ActionUpdateProfile, details)
}

func (r *Recorder) ReportExported(actor *models.StaffUser, details ExportDetails) {
	r.Record(actor, ActionExportReport, details)
}
