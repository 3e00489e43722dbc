package db

import (
	"context"
	"log"
	"time"

	"backoffice/internal/env"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Ctx = context.Background()
var RDB *redis.Client
var Client *mongo.Client

var StaffUsers *mongo.Collection
var Finances *mongo.Collection
var Categories *mongo.Collection
var CalendarEvents *mongo.Collection
var Logs *mongo.Collection

func InitDB(deployment string) error {
	var err error

	Client, err = mongo.Connect(
		Ctx,
		options.Client().ApplyURI(env.MONGO_URI),
	)
	if err != nil {
		return err
	}

	err = Client.Ping(Ctx, nil)
	if err != nil {
		log.Fatal("COULD NOT CONNECT TO MONGODB")
		return err
	}

	database := "backoffice"
	if deployment != "" && deployment != "prod" {
		database = "backoffice_" + deployment
	}

	// loading collections
	StaffUsers = GetCollection(database, "staffusers", Client)
	Finances = GetCollection(database, "finances", Client)
	Categories = GetCollection(database, "categories", Client)
	CalendarEvents = GetCollection(database, "events", Client)
	Logs = GetCollection(database, "logs", Client)

	return nil
}

func GetCollection(database string, collectionName string, client *mongo.Client) *mongo.Collection {
	return client.Database(database).Collection(collectionName)
}

func InitCache() error {
	var err error

	RDB = redis.NewClient(&redis.Options{
		Addr:     env.REDIS_ADDR,
		Password: "",
		DB:       15,
	})

	err = RDB.Ping(Ctx).Err()
	if err != nil {
		log.Fatal("COULD NOT CONNECT TO REDIS")
		return err
	}

	return nil
}

func CacheSet(key string, value string) error {
	return RDB.Set(Ctx, key, value, 0).Err()
}

func CacheSetBytes(key string, value []byte) error {
	return RDB.Set(Ctx, key, value, 0).Err()
}

func CacheSetBytesTTL(key string, value []byte, ttl time.Duration) error {
	return RDB.Set(Ctx, key, value, ttl).Err()
}

func CacheGet(key string) (string, error) {
	return RDB.Get(Ctx, key).Result()
}

func CacheGetBytes(key string) ([]byte, error) {
	return RDB.Get(Ctx, key).Bytes()
}

func CacheDel(key string) error {
	_, err := RDB.Del(Ctx, key).Result()

	return err
}
