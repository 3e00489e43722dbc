package models

import (
	"time"

	"backoffice/internal/db"
	"backoffice/internal/errmsg"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

type Transaction struct {
	ID          string    `json:"id" bson:"_id"`
	Type        string    `json:"type" bson:"type"`
	Amount      float64   `json:"amount" bson:"amount"`
	Category    string    `json:"category" bson:"category"`
	Description string    `json:"description" bson:"description"`
	Date        time.Time `json:"date" bson:"date"`
	FileURL     string    `json:"fileURL,omitempty" bson:"fileURL,omitempty"`
	CreatedBy   string    `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (t *Transaction) Validate() errmsg.StatusError {
	if t.Amount < 0 {
		return errmsg.TransactionInvalidPayload
	}
	if t.Type != TransactionIncome && t.Type != TransactionExpense {
		return errmsg.TransactionInvalidPayload
	}
	if t.Date.IsZero() {
		return errmsg.TransactionInvalidPayload
	}

	return errmsg.EmptyStatusError
}

func (t *Transaction) Get(id string) errmsg.StatusError {
	err := db.Finances.FindOne(db.Ctx, bson.M{
		"_id": id,
	}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return errmsg.TransactionNotExists
	}
	if err != nil {
		return errmsg.StoreUnavailable
	}

	return errmsg.EmptyStatusError
}

// ListTransactions returns the newest-dated transactions first, optionally
// clipped to a [start, end] date range.
func ListTransactions(start, end *time.Time) ([]Transaction, errmsg.StatusError) {
	filter := bson.M{}
	if start != nil || end != nil {
		dateFilter := bson.M{}
		if start != nil {
			dateFilter["$gte"] = *start
		}
		if end != nil {
			dateFilter["$lte"] = *end
		}
		filter["date"] = dateFilter
	}

	cursor, err := db.Finances.Find(
		db.Ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
	)
	if err != nil {
		return nil, errmsg.StoreUnavailable
	}

	var transactions []Transaction
	if err := cursor.All(db.Ctx, &transactions); err != nil {
		return nil, errmsg.StoreUnavailable
	}

	return transactions, errmsg.EmptyStatusError
}
