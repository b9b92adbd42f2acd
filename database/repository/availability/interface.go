// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"nestulasli/database"
	"nestulasli/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository provides access to the blocked-period calendar per villa.
type Repository interface {
	GetByVilla(ctx context.Context, villaKey string) ([]models.BlockedPeriod, error)
	Add(ctx context.Context, period models.BlockedPeriod) error
	DeleteByVilla(ctx context.Context, villaKey string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB-backed Repository.
func NewMongoAvailabilityRepo() Repository {
	db := database.MongoClient.Database("nestulasli")
	return &mongoAvailabilityRepo{
		coll: db.Collection("blocked_periods"),
	}
}
