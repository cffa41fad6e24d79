// store.go
//
// Multi-role innovation platform service: startups, research, IP filings and funding
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of innohub.
// innohub is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// innohub is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with innohub.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package store

import (
	"context"
	"fmt"

	"github.com/localnerve/innohub/internal/config"
	"github.com/localnerve/innohub/internal/database"
	"github.com/localnerve/innohub/internal/models"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"
)

// Store bundles one repository per record type over a single backend
type Store struct {
	Backend  string
	Users    Repository[models.User]
	Startups Repository[models.Startup]
	Metrics  Repository[models.StartupMetric]
	Papers   Repository[models.ResearchPaper]
	Filings  Repository[models.Filing]
	Funding  Repository[models.FundingRequest]
	Messages Repository[models.Message]
	Uploads  Repository[models.Upload]

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// NewGormStore builds a store over a relational database
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Backend:  db.Dialector.Name(),
		Users:    NewGormRepository[models.User](db),
		Startups: NewGormRepository[models.Startup](db),
		Metrics:  NewGormRepository[models.StartupMetric](db),
		Papers:   NewGormRepository[models.ResearchPaper](db),
		Filings:  NewGormRepository[models.Filing](db),
		Funding:  NewGormRepository[models.FundingRequest](db),
		Messages: NewGormRepository[models.Message](db),
		Uploads:  NewGormRepository[models.Upload](db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func(context.Context) error {
			return database.Close(db)
		},
	}
}

// NewMongoStore builds a store over a document database
func NewMongoStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		Backend:  "mongo",
		Users:    NewMongoRepository[models.User](db),
		Startups: NewMongoRepository[models.Startup](db),
		Metrics:  NewMongoRepository[models.StartupMetric](db),
		Papers:   NewMongoRepository[models.ResearchPaper](db),
		Filings:  NewMongoRepository[models.Filing](db),
		Funding:  NewMongoRepository[models.FundingRequest](db),
		Messages: NewMongoRepository[models.Message](db),
		Uploads:  NewMongoRepository[models.Upload](db),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		close: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	}
}

// Open connects the configured backend and prepares its schema or indexes
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg.IsMongo() {
		client, err := database.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.DBDatabase)
		if err := EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to create indexes: %w", err)
		}
		return NewMongoStore(client, db), nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return NewGormStore(db), nil
}

// Ping checks the backend connection
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the backend connection
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}
