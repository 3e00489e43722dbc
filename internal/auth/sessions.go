package auth

import (
	"encoding/json"
	"time"

	"backoffice/internal/db"
	"backoffice/internal/models"
)

func sessionKey(token string) string {
	return "session:" + token
}

func CreateSession(su *models.StaffUser, token string) error {
	session := models.Session{
		Token:     token,
		UserID:    su.ID,
		Role:      su.Role,
		CreatedAt: time.Now(),
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return db.CacheSetBytesTTL(sessionKey(token), raw, models.SessionTTL)
}

func GetSession(token string) (models.Session, bool) {
	raw, err := db.CacheGetBytes(sessionKey(token))
	if err != nil {
		return models.Session{}, false
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return models.Session{}, false
	}

	return session, true
}

func DestroySession(token string) error {
	return db.CacheDel(sessionKey(token))
}
