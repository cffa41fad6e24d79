package store

import (
	"context"
	"errors"
	"time"

	"github.com/localnerve/innohub/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type mongoRepository[T any, P entity[T]] struct {
	coll *mongo.Collection
}

// NewMongoRepository returns a repository over a document collection named after the record's table
func NewMongoRepository[T any, P entity[T]](db *mongo.Database) Repository[T] {
	var zero T
	return &mongoRepository[T, P]{coll: db.Collection(P(&zero).TableName())}
}

func translateMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	}
	return err
}

// filter maps column conditions onto document keys
func filter(where Where) bson.M {
	out := bson.M{}
	for k, v := range where {
		if k == "id" {
			k = "_id"
		}
		out[k] = v
	}
	return out
}

func (r *mongoRepository[T, P]) Create(ctx context.Context, item *T) error {
	P(item).Prepare(time.Now().UTC())
	_, err := r.coll.InsertOne(ctx, item)
	return translateMongoError(err)
}

func (r *mongoRepository[T, P]) Get(ctx context.Context, id string) (*T, error) {
	return r.First(ctx, Where{"id": id})
}

func (r *mongoRepository[T, P]) First(ctx context.Context, where Where) (*T, error) {
	var item T
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	if err := r.coll.FindOne(ctx, filter(where), opts).Decode(&item); err != nil {
		return nil, translateMongoError(err)
	}
	return &item, nil
}

func (r *mongoRepository[T, P]) Find(ctx context.Context, q Query) ([]T, error) {
	f := filter(q.Where)
	if len(q.Any) > 0 {
		or := bson.A{}
		for _, w := range q.Any {
			or = append(or, filter(w))
		}
		f["$or"] = or
	}
	if q.After != "" {
		f["_id"] = bson.M{"$gt": q.After}
	}

	order := 1
	if q.Desc {
		order = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: order}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := r.coll.Find(ctx, f, opts)
	if err != nil {
		return nil, translateMongoError(err)
	}
	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, translateMongoError(err)
	}
	return items, nil
}

func (r *mongoRepository[T, P]) Count(ctx context.Context, where Where) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filter(where))
	return n, translateMongoError(err)
}

func (r *mongoRepository[T, P]) Update(ctx context.Context, item *T) error {
	P(item).Prepare(time.Now().UTC())
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": P(item).GetID()}, item)
	if err != nil {
		return translateMongoError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository[T, P]) Patch(ctx context.Context, id string, fields Fields) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": patchFields(fields, time.Now().UTC())})
	if err != nil {
		return translateMongoError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Transition moves a record from one status to another in a single conditional update
func (r *mongoRepository[T, P]) Transition(ctx context.Context, id string, from, to models.Status, fields Fields) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": transitionFields(to, fields, time.Now().UTC())})
	if err != nil {
		return translateMongoError(err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return translateMongoError(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrStatusConflict
}

func (r *mongoRepository[T, P]) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateMongoError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the secondary indexes the services query by
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	collections := map[string][]mongo.IndexModel{
		models.User{}.TableName(): {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		models.Startup{}.TableName(): {
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		models.StartupMetric{}.TableName(): {
			{
				Keys:    bson.D{{Key: "startup_id", Value: 1}, {Key: "period", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		models.ResearchPaper{}.TableName(): {
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		models.Filing{}.TableName(): {
			{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		},
		models.FundingRequest{}.TableName(): {
			{Keys: bson.D{{Key: "agency_id", Value: 1}}},
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		},
		models.Message{}.TableName(): {
			{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "_id", Value: 1}}},
			{Keys: bson.D{{Key: "recipient_id", Value: 1}}},
			{Keys: bson.D{{Key: "sender_id", Value: 1}}},
		},
		models.Upload{}.TableName(): {
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		},
	}

	for name, indexes := range collections {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}
	return nil
}
