package db

import (
	"context"
	"fmt"

	"hub-service/internal/config"
	"hub-service/internal/domain/repositories"
	"hub-service/internal/infrastructure/db/mongo"
	"hub-service/internal/infrastructure/db/relational"
)

type Store struct {
	Users    repositories.UserRepository
	Posts    repositories.PostRepository
	Profiles repositories.ProfileRepository
	close    func(context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects the repositories selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, database, err := mongo.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("connect to MongoDB: %w", err)
		}
		return &Store{
			Users:    mongo.NewUserRepo(database),
			Posts:    mongo.NewPostRepo(database),
			Profiles: mongo.NewProfileRepo(database),
			close:    client.Disconnect,
		}, nil

	case config.StorePostgres, config.StoreSQLite:
		open := relational.OpenSQLite
		target := cfg.SQLitePath
		if cfg.StoreDriver == config.StorePostgres {
			open, target = relational.OpenPostgres, cfg.PostgresDSN
		}
		gormDB, err := open(target)
		if err != nil {
			return nil, err
		}
		return &Store{
			Users:    relational.NewUserRepository(gormDB),
			Posts:    relational.NewPostRepository(gormDB),
			Profiles: relational.NewProfileRepository(gormDB),
			close:    func(context.Context) error { return relational.Close(gormDB) },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
