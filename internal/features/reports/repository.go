package reports

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/cyberportal/api/internal/features/catalog"
	apperrors "github.com/cyberportal/api/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is the report store. The concurrency-critical primitive is
// UpdateStatus: a single conditional write keyed on (_id, version), atomic
// per document, so two callers presenting the same expected version can
// never both match.
// writeTimeout bounds how long a mutation may wait on the store. On expiry
// the caller sees ErrTransient and may retry with the same expected version.
const writeTimeout = 5 * time.Second

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("reports")

	// Create indexes
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status_id", Value: 1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, report *Report) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	report.CreatedAt = time.Now().UTC()
	report.Version = 1
	statusID, _ := catalog.StatusIDByCode(catalog.StatusNotOpened)
	report.StatusID = statusID

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return storeErr(err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid
	}
	return nil
}

// GetByID returns the report joined with its catalog display fields.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Report, error) {
	cursor, err := r.collection.Aggregate(ctx, projectionPipeline(bson.M{"_id": id}, false))
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	var results []Report
	if err := cursor.All(ctx, &results); err != nil {
		return nil, storeErr(err)
	}
	if len(results) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &results[0], nil
}

// List returns joined projections ordered by creation time descending.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]Report, error) {
	cursor, err := r.collection.Aggregate(ctx, projectionPipeline(listMatch(filter), true))
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	results := []Report{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, storeErr(err)
	}
	return results, nil
}

// UpdateStatus applies a transition only if the stored version still equals
// expectedVersion, bumping version by one in the same atomic write. Zero
// matched documents is the conflict signal; a follow-up existence check
// splits NotFound from Conflict.
func (r *Repository) UpdateStatus(ctx context.Context, id primitive.ObjectID, expectedVersion int64, statusID int) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "version": expectedVersion},
		bson.M{
			"$set": bson.M{"status_id": statusID},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return storeErr(err)
	}
	if result.MatchedCount == 1 {
		return nil
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err)
	}
	if count == 0 {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrConflict
}

// listMatch builds the $match stage for a listing. Factored out so filter
// construction is testable without a running store.
func listMatch(filter ListFilter) bson.M {
	match := bson.M{}

	if filter.StatusCode != "" {
		if statusID, ok := catalog.StatusIDByCode(filter.StatusCode); ok {
			match["status_id"] = statusID
		} else {
			// Unknown code matches nothing rather than everything.
			match["status_id"] = -1
		}
	}

	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		match["$or"] = bson.A{
			bson.M{"reporter_name": pattern},
			bson.M{"phone": pattern},
			bson.M{"location": pattern},
		}
	}

	return match
}

// projectionPipeline joins the threat-type and status catalogs into the
// report documents, the same shape the original portal produced with SQL
// joins.
func projectionPipeline(match bson.M, sorted bool) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         catalog.ThreatTypesCollection,
			"localField":   "type_id",
			"foreignField": "_id",
			"as":           "tt",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         catalog.StatusesCollection,
			"localField":   "status_id",
			"foreignField": "_id",
			"as":           "rs",
		}}},
		{{Key: "$set", Value: bson.M{
			"threat_type": bson.M{"$first": "$tt.name"},
			"status_code": bson.M{"$first": "$rs.code"},
		}}},
		{{Key: "$unset", Value: bson.A{"tt", "rs"}}},
	}
	if sorted {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}})
	}
	return pipeline
}

// storeErr maps driver failures onto the error taxonomy. Timeouts and
// network errors are retryable with the same expected version.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return apperrors.ErrTransient
	}
	return err
}
