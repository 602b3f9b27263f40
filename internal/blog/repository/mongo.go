package repository

import (
	"context"

	"github.com/blogstack/blog-service/internal/blog"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepo implements a MongoDB-backed repository for blogs. The blog id is
// stored as the document _id, so uniqueness comes from the collection itself.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(ctx context.Context, b *blog.Blog) (string, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if _, err := m.col.InsertOne(ctx, b); err != nil {
		return "", err
	}
	return b.ID, nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*blog.Blog, error) {
	var b blog.Blog
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*blog.Blog, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*blog.Blog{}
	for cur.Next(ctx) {
		var b blog.Blog
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoRepo) Update(ctx context.Context, id string, upd blog.Update) error {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Author != nil {
		set["author"] = *upd.Author
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if len(set) == 0 {
		// nothing to write, but the caller still needs the not-found check
		err := m.col.FindOne(ctx, bson.M{"_id": id}).Err()
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
