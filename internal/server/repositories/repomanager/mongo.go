package repomanager

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

// DefaultMongoDatabase is used when the connection string names no database.
const DefaultMongoDatabase = "gophauth"

type MongoRepositoryManager struct {
	client   *mongo.Client
	database string
}

// NewMongoRepositoryManager connects to the deployment named by dsn. The
// driver dials lazily, so an unreachable server surfaces on Ping.
func NewMongoRepositoryManager(ctx context.Context, dsn string) (*MongoRepositoryManager, error) {
	cs, err := connstring.ParseAndValidate(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid mongodb uri: %w", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	name := cs.Database
	if name == "" {
		name = DefaultMongoDatabase
	}

	return newMongoRepositoryManager(client, name), nil
}

func newMongoRepositoryManager(client *mongo.Client, database string) *MongoRepositoryManager {
	return &MongoRepositoryManager{client: client, database: database}
}

func (m *MongoRepositoryManager) users() *users.MongoRepository {
	return users.NewMongoRepository(m.client.Database(m.database).Collection(users.CollectionName))
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users()
}

// RunMigrations creates the indexes the repositories rely on.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	return m.users().EnsureIndexes(ctx)
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
