package models

import (
	"time"

	"backoffice/internal/db"
	"backoffice/internal/errmsg"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Category struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (cat *Category) Get(id string) errmsg.StatusError {
	err := db.Categories.FindOne(db.Ctx, bson.M{
		"_id": id,
	}).Decode(&cat)
	if err == mongo.ErrNoDocuments {
		return errmsg.CategoryNotExists
	}
	if err != nil {
		return errmsg.StoreUnavailable
	}

	return errmsg.EmptyStatusError
}

func ListCategories() ([]Category, errmsg.StatusError) {
	cursor, err := db.Categories.Find(db.Ctx, bson.M{})
	if err != nil {
		return nil, errmsg.StoreUnavailable
	}

	var categories []Category
	if err := cursor.All(db.Ctx, &categories); err != nil {
		return nil, errmsg.StoreUnavailable
	}

	return categories, errmsg.EmptyStatusError
}
