package models

import (
	"errors"
	"time"

	"backoffice/internal/db"
	"backoffice/internal/env"
	"backoffice/internal/errmsg"

	sj "github.com/brianvoe/sjwt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StaffUser is an actor of the back office. The credential pair is a
// username plus a bcrypt hash; the policy layer only ever reads ID and Role.
type StaffUser struct {
	ID          string    `json:"id" bson:"_id"`
	Username    string    `json:"username" bson:"username"`
	DisplayName string    `json:"displayName" bson:"displayName"`
	Role        Role      `json:"role" bson:"role"`
	PhotoURL    string    `json:"photoURL" bson:"photoURL"`
	Password    string    `json:"password,omitempty" bson:"password"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	Disabled    bool      `json:"disabled" bson:"disabled"`
}

// Label is what the audit log shows for the actor.
func (su *StaffUser) Label() string {
	if su.DisplayName != "" {
		return su.DisplayName
	}
	return su.Username
}

func (su *StaffUser) GenToken() string {
	claims, _ := sj.ToClaims(StaffUser{
		ID:       su.ID,
		Username: su.Username,
		Role:     su.Role,
	})
	claims.SetExpiresAt(time.Now().Add(30 * 24 * time.Hour))

	token := claims.Generate(env.JWT_SECRET)
	return token
}

func (su *StaffUser) ParseToken(token string) error {
	if !sj.Verify(token, env.JWT_SECRET) {
		return errors.New("token signature verification failed")
	}

	claims, err := sj.Parse(token)
	if err != nil {
		return err
	}
	if err := claims.Validate(); err != nil {
		return err
	}
	claims.ToStruct(&su)

	return nil
}

func (su *StaffUser) Get(id string) errmsg.StatusError {
	err := db.StaffUsers.FindOne(db.Ctx, bson.M{
		"_id": id,
	}).Decode(&su)
	if err == mongo.ErrNoDocuments {
		return errmsg.StaffUserNotExists
	}
	if err != nil {
		return errmsg.StoreUnavailable
	}

	if su.Disabled {
		return errmsg.StaffUserNotExists
	}

	return errmsg.EmptyStatusError
}

func (su *StaffUser) GetByUsername(username string) errmsg.StatusError {
	err := db.StaffUsers.FindOne(db.Ctx, bson.M{
		"username": username,
	}).Decode(&su)
	if err == mongo.ErrNoDocuments {
		return errmsg.StaffUserNotExists
	}
	if err != nil {
		return errmsg.StoreUnavailable
	}

	if su.Disabled || su.Password == "" {
		return errmsg.StaffUserNotExists
	}

	return errmsg.EmptyStatusError
}

func ListStaffUsers() ([]StaffUser, errmsg.StatusError) {
	cursor, err := db.StaffUsers.Find(db.Ctx, bson.M{
		"disabled": bson.M{"$ne": true},
	})
	if err != nil {
		return nil, errmsg.StoreUnavailable
	}

	var users []StaffUser
	if err := cursor.All(db.Ctx, &users); err != nil {
		return nil, errmsg.StoreUnavailable
	}

	for i := range users {
		users[i].Password = ""
	}

	return users, errmsg.EmptyStatusError
}
