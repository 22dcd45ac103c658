package cursor

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"github.com/seriesbot/bot-telegram/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type storageMongo struct {
	conn *mongo.Client
	db   *mongo.Database
	coll *mongo.Collection
	key  string
}

type record struct {
	Key    string `bson:"key"`
	Offset int    `bson:"offset"`
}

const attrKey = "key"
const attrOffset = "offset"

var optsSrvApi = options.ServerAPI(options.ServerAPIVersion1)
var indices = []mongo.IndexModel{
	{
		Keys: bson.D{
			{
				Key:   attrKey,
				Value: 1,
			},
		},
		Options: options.
			Index().
			SetUnique(true),
	},
}
var projGet = bson.D{
	{
		Key:   attrOffset,
		Value: 1,
	},
}
var optsGet = options.
	FindOne().
	SetShowRecordID(false).
	SetProjection(projGet)
var optsSet = options.
	Update().
	SetUpsert(true)

// NewStorageMongo keeps the offset in the document identified by the key, so the bots may share a collection.
func NewStorageMongo(ctx context.Context, cfgDb config.CursorDbConfig, key string) (s Storage, err error) {
	clientOpts := options.
		Client().
		ApplyURI(cfgDb.Uri).
		SetServerAPIOptions(optsSrvApi)
	if cfgDb.Tls.Enabled {
		clientOpts = clientOpts.SetTLSConfig(&tls.Config{InsecureSkipVerify: cfgDb.Tls.Insecure})
	}
	if len(cfgDb.UserName) > 0 {
		auth := options.Credential{
			Username:    cfgDb.UserName,
			Password:    cfgDb.Password,
			PasswordSet: len(cfgDb.Password) > 0,
		}
		clientOpts = clientOpts.SetAuth(auth)
	}
	conn, err := mongo.Connect(ctx, clientOpts)
	var sm storageMongo
	if err == nil {
		db := conn.Database(cfgDb.Name)
		coll := db.Collection(cfgDb.Table.Name)
		sm.conn = conn
		sm.db = db
		sm.coll = coll
		sm.key = key
		_, err = sm.ensureIndices(ctx)
		if err != nil {
			_ = conn.Disconnect(ctx)
		}
	}
	if err == nil {
		s = sm
	}
	return
}

func (sm storageMongo) ensureIndices(ctx context.Context) ([]string, error) {
	return sm.coll.Indexes().CreateMany(ctx, indices)
}

func (sm storageMongo) Close() error {
	return sm.conn.Disconnect(context.TODO())
}

func (sm storageMongo) Get(ctx context.Context) (offset int, err error) {
	q := bson.M{
		attrKey: sm.key,
	}
	result := sm.coll.FindOne(ctx, q, optsGet)
	err = result.Err()
	var rec record
	if err == nil {
		err = result.Decode(&rec)
	}
	switch {
	case err == nil:
		offset = rec.Offset
	case errors.Is(err, mongo.ErrNoDocuments):
		err = nil
	default:
		err = fmt.Errorf("%w: %s", ErrInternal, err)
	}
	return
}

func (sm storageMongo) Set(ctx context.Context, offset int) (err error) {
	q := bson.M{
		attrKey: sm.key,
	}
	u := bson.M{
		"$set": bson.M{
			attrOffset: offset,
		},
	}
	_, err = sm.coll.UpdateOne(ctx, q, u, optsSet)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrInternal, err)
	}
	return
}
