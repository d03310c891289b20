package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-FormBuilder/src/models"
)

// ResponseRepository stores responses in MongoDB.
type ResponseRepository struct {
	coll *mongo.Collection
}

func NewResponseRepository(coll *mongo.Collection) *ResponseRepository {
	return &ResponseRepository{coll: coll}
}

func (r *ResponseRepository) Insert(ctx context.Context, resp *models.Response) error {
	res, err := r.coll.InsertOne(ctx, resp)
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		resp.ID = oid
	}
	return nil
}

func (r *ResponseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Response, error) {
	var resp models.Response
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&resp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("find response: %w", err)
	}
	return &resp, nil
}

// ListByFormID returns the responses of a form, newest first.
func (r *ResponseRepository) ListByFormID(ctx context.Context, formID primitive.ObjectID) ([]models.Response, error) {
	return r.list(ctx, bson.M{"formId": formID})
}

// ListBySlug returns the responses submitted under slug, newest first.
func (r *ResponseRepository) ListBySlug(ctx context.Context, slug string) ([]models.Response, error) {
	return r.list(ctx, bson.M{"formSlug": slug})
}

func (r *ResponseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete response: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteByFormID removes every response of a form and reports how many went.
func (r *ResponseRepository) DeleteByFormID(ctx context.Context, formID primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"formId": formID})
	if err != nil {
		return 0, fmt.Errorf("delete responses of form %s: %w", formID.Hex(), err)
	}
	return res.DeletedCount, nil
}

// CountByFormIDs counts responses per form in one aggregation. Forms with no
// responses are absent from the result.
func (r *ResponseRepository) CountByFormIDs(ctx context.Context, formIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error) {
	counts := make(map[primitive.ObjectID]int64, len(formIDs))
	if len(formIDs) == 0 {
		return counts, nil
	}
	pipeline := []bson.M{
		{"$match": bson.M{"formId": bson.M{"$in": formIDs}}},
		{"$group": bson.M{"_id": "$formId", "count": bson.M{"$sum": 1}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("count responses: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		FormID primitive.ObjectID `bson:"_id"`
		Count  int64              `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode response counts: %w", err)
	}
	for _, row := range rows {
		counts[row.FormID] = row.Count
	}
	return counts, nil
}

func (r *ResponseRepository) list(ctx context.Context, filter bson.M) ([]models.Response, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find responses: %w", err)
	}
	defer cursor.Close(ctx)

	responses := []models.Response{}
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, fmt.Errorf("decode responses: %w", err)
	}
	return responses, nil
}
