// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nestulasli/models"
)

func (r *mongoAvailabilityRepo) GetByVilla(ctx context.Context, villaKey string) ([]models.BlockedPeriod, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"villa_key": villaKey}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"from": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var periods []models.BlockedPeriod
	if err := cursor.All(ctx, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *mongoAvailabilityRepo) Add(ctx context.Context, period models.BlockedPeriod) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, period)
	return err
}

func (r *mongoAvailabilityRepo) DeleteByVilla(ctx context.Context, villaKey string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"villa_key": villaKey})
	return err
}
