package models

import (
	"time"

	"backoffice/internal/db"
	"backoffice/internal/errmsg"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CalendarEvent struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Date        time.Time `json:"date" bson:"date"`
	CreatedBy   string    `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (ce *CalendarEvent) Validate() errmsg.StatusError {
	if ce.Title == "" || ce.Date.IsZero() {
		return errmsg.CalendarEventInvalidPayload
	}

	return errmsg.EmptyStatusError
}

func (ce *CalendarEvent) Get(id string) errmsg.StatusError {
	err := db.CalendarEvents.FindOne(db.Ctx, bson.M{
		"_id": id,
	}).Decode(&ce)
	if err == mongo.ErrNoDocuments {
		return errmsg.CalendarEventNotExists
	}
	if err != nil {
		return errmsg.StoreUnavailable
	}

	return errmsg.EmptyStatusError
}

// ListCalendarEvents returns events in ascending date order, the way the
// calendar renders them.
func ListCalendarEvents() ([]CalendarEvent, errmsg.StatusError) {
	cursor, err := db.CalendarEvents.Find(
		db.Ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}),
	)
	if err != nil {
		return nil, errmsg.StoreUnavailable
	}

	var events []CalendarEvent
	if err := cursor.All(db.Ctx, &events); err != nil {
		return nil, errmsg.StoreUnavailable
	}

	return events, errmsg.EmptyStatusError
}
