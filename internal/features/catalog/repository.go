package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, shared with the reports aggregation lookups.
const (
	ThreatTypesCollection = "threat_types"
	StatusesCollection    = "report_statuses"
)

type Repository struct {
	threatTypes *mongo.Collection
	statuses    *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		threatTypes: db.Collection(ThreatTypesCollection),
		statuses:    db.Collection(StatusesCollection),
	}
}

// Seed upserts the fixed catalogs. Idempotent; runs on every startup.
func (r *Repository) Seed(ctx context.Context) error {
	opts := options.Replace().SetUpsert(true)
	for _, t := range DefaultThreatTypes {
		if _, err := r.threatTypes.ReplaceOne(ctx, bson.M{"_id": t.ID}, t, opts); err != nil {
			return err
		}
	}
	for _, s := range DefaultStatuses {
		if _, err := r.statuses.ReplaceOne(ctx, bson.M{"_id": s.ID}, s, opts); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) ListThreatTypes(ctx context.Context) ([]ThreatType, error) {
	cursor, err := r.threatTypes.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var types []ThreatType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *Repository) ListStatuses(ctx context.Context) ([]Status, error) {
	cursor, err := r.statuses.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var statuses []Status
	if err := cursor.All(ctx, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}
