package models

import "time"

// Session is the explicit login session record. It is created at login,
// destroyed at logout, and lives in the cache under session:<token> so a
// revoked token dies before its JWT expiry does.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userID"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

const SessionTTL = 30 * 24 * time.Hour
