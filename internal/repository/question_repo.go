// Package repository supplies the question bank. The bank is immutable
// for the process lifetime regardless of backing.
package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"selectra/internal/model"
)

// QuestionRepo exposes the ordered question bank. GetByID returns
// (nil, nil) for an unknown id; callers translate that to
// model.ErrQuestionNotFound.
type QuestionRepo interface {
	GetAll(ctx context.Context) ([]model.QuestionSpec, error)
	GetByID(ctx context.Context, id int) (*model.QuestionSpec, error)
}

type mongoQuestionRepo struct {
	collection *mongo.Collection
}

// NewMongoQuestionRepo creates a MongoDB-backed question bank for
// deployments that manage the rubric externally.
func NewMongoQuestionRepo(client *mongo.Client, database string) QuestionRepo {
	return &mongoQuestionRepo{
		collection: client.Database(database).Collection("questions"),
	}
}

func (r *mongoQuestionRepo) GetAll(ctx context.Context) ([]model.QuestionSpec, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "listing questions")
	}
	defer cursor.Close(ctx)

	var questions []model.QuestionSpec
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, errors.Wrap(err, "decoding questions")
	}

	return questions, nil
}

func (r *mongoQuestionRepo) GetByID(ctx context.Context, id int) (*model.QuestionSpec, error) {
	var question model.QuestionSpec
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "finding question %d", id)
	}

	return &question, nil
}

// Seed upserts the given questions into the Mongo collection, keyed by
// question id.
func Seed(ctx context.Context, client *mongo.Client, database string, questions []model.QuestionSpec) error {
	collection := client.Database(database).Collection("questions")
	for _, q := range questions {
		_, err := collection.ReplaceOne(ctx,
			bson.M{"id": q.ID},
			q,
			options.Replace().SetUpsert(true),
		)
		if err != nil {
			return errors.Wrapf(err, "seeding question %d", q.ID)
		}
	}
	return nil
}
