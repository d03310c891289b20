package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-FormBuilder/src/models"
)

// FormRepository stores forms in MongoDB.
type FormRepository struct {
	coll *mongo.Collection
}

func NewFormRepository(coll *mongo.Collection) *FormRepository {
	return &FormRepository{coll: coll}
}

func (r *FormRepository) Insert(ctx context.Context, form *models.Form) error {
	res, err := r.coll.InsertOne(ctx, form)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateSlug
		}
		return fmt.Errorf("insert form: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		form.ID = oid
	}
	return nil
}

func (r *FormRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindPublishedBySlug only matches forms that are currently published.
func (r *FormRepository) FindPublishedBySlug(ctx context.Context, slug string) (*models.Form, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "isPublished": true})
}

// List returns the dashboard view of every form, newest first.
func (r *FormRepository) List(ctx context.Context) ([]models.FormSummary, error) {
	opts := options.Find().
		SetProjection(bson.M{
			"title": 1, "description": 1, "headerImage": 1,
			"isPublished": 1, "createdAt": 1, "slug": 1,
		}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find forms: %w", err)
	}
	defer cursor.Close(ctx)

	forms := []models.FormSummary{}
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, fmt.Errorf("decode forms: %w", err)
	}
	return forms, nil
}

// Update applies the non-nil fields of req and returns the updated form.
func (r *FormRepository) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateFormRequest) (*models.Form, error) {
	return r.findOneAndUpdate(ctx, id, updateFields(req))
}

func (r *FormRepository) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (*models.Form, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"isPublished": published})
}

// Delete removes the form and returns what was deleted.
func (r *FormRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("delete form: %w", err)
	}
	return &form, nil
}

func (r *FormRepository) findOne(ctx context.Context, filter bson.M) (*models.Form, error) {
	var form models.Form
	if err := r.coll.FindOne(ctx, filter).Decode(&form); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("find form: %w", err)
	}
	return &form, nil
}

func (r *FormRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Form, error) {
	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var form models.Form
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("update form: %w", err)
	}
	return &form, nil
}

// updateFields builds the $set document. Settings are set field by field so
// the ones not sent keep their stored value.
func updateFields(req models.UpdateFormRequest) bson.M {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.HeaderImage != nil {
		set["headerImage"] = *req.HeaderImage
	}
	if req.Questions != nil {
		set["questions"] = *req.Questions
	}
	if p := req.Settings; p != nil {
		if p.AllowMultipleSubmissions != nil {
			set["settings.allowMultipleSubmissions"] = *p.AllowMultipleSubmissions
		}
		if p.ShowProgressBar != nil {
			set["settings.showProgressBar"] = *p.ShowProgressBar
		}
		if p.ThankYouMessage != nil {
			set["settings.thankYouMessage"] = *p.ThankYouMessage
		}
		if p.RedirectURL != nil {
			set["settings.redirectUrl"] = *p.RedirectURL
		}
	}
	if req.IsPublished != nil {
		set["isPublished"] = *req.IsPublished
	}
	if req.CreatedBy != nil {
		set["createdBy"] = *req.CreatedBy
	}
	return set
}
