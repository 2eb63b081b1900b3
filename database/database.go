package database

import (
	"context"
	"log"
	"time"

	"matricula/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Client *mongo.Client
	Alunos AlunoStore
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to MongoDB and wires the alunos store
func ConnectDb() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	alunos := client.Database(config.AppConfig.DBName).Collection("alunos")

	// Save database instance globally
	Database = DbInstance{
		Client: client,
		Alunos: NewMongoAlunoStore(alunos),
	}
}
