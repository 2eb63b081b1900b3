package database

import (
	"context"
	"errors"
	"fmt"

	"matricula/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAlunoStore implements AlunoStore over a mongo collection.
type MongoAlunoStore struct {
	collection *mongo.Collection
}

func NewMongoAlunoStore(collection *mongo.Collection) *MongoAlunoStore {
	return &MongoAlunoStore{collection: collection}
}

func (s *MongoAlunoStore) FindByCPF(ctx context.Context, cpf string) (*models.Aluno, error) {
	var aluno models.Aluno
	err := s.collection.FindOne(ctx, bson.M{"cpf": cpf}).Decode(&aluno)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &aluno, nil
}

func (s *MongoAlunoStore) Insert(ctx context.Context, aluno *models.Aluno) (string, error) {
	res, err := s.collection.InsertOne(ctx, aluno)
	if err != nil {
		return "", err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (s *MongoAlunoStore) Update(ctx context.Context, id string, campos map[string]interface{}) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := s.collection.UpdateByID(ctx, objID, bson.M{"$set": campos})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoAlunoStore) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
