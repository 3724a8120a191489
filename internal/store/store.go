package store

import (
	"context"
	"fmt"
	"log"

	"wegotboard/internal/config"
	"wegotboard/internal/repositories"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is the process-wide handle on the document store. It is opened once
// at startup and closed on shutdown.
type Store struct {
	*repositories.Repositories

	closer func() error
}

// Open connects to the store selected by cfg.DatabaseDriver.
func Open(cfg *config.Config) (*Store, error) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		return openGORM(postgres.Open(cfg.DatabaseURL), logger.Warn)
	case config.DriverSQLite:
		return openGORM(sqlite.Open(cfg.DatabaseURL), logger.Warn)
	case config.DriverMongo:
		return openMongo(cfg.DatabaseURL, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}

// NewGORM wraps an existing GORM connection, migrating the schema first.
func NewGORM(db *gorm.DB) (*Store, error) {
	if err := repositories.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return &Store{
		Repositories: repositories.NewGORMRepositories(db),
		closer: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}, nil
}

// NewMemory returns a store kept entirely in process memory.
func NewMemory() *Store {
	return &Store{
		Repositories: repositories.NewMockRepositories(),
		closer:       func() error { return nil },
	}
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

func openGORM(dialector gorm.Dialector, level logger.LogLevel) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Printf("Connected to %s database", dialector.Name())
	return NewGORM(db)
}

func openMongo(uri, database string) (*Store, error) {
	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(database)
	if err := repositories.EnsureMongoIndexes(ctx, db); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	log.Printf("Connected to MongoDB database %s", database)

	return &Store{
		Repositories: repositories.NewMongoRepositories(db),
		closer: func() error {
			return client.Disconnect(context.Background())
		},
	}, nil
}
