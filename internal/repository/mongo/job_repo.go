package mongo

import (
	"context"
	"go-jobboard-backend/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type jobRepo struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) domain.JobRepository {
	return &jobRepo{coll: db.Collection(jobsCollection)}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	postedBy, err := objectID(job.PostedBy)
	if err != nil {
		return err
	}
	doc := jobDocument{
		ID:           bson.NewObjectID(),
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Description:  job.Description,
		Requirements: nonNil(job.Requirements),
		Salary:       job.Salary,
		Type:         string(job.Type),
		PostedBy:     postedBy,
		PostedDate:   job.PostedDate,
		IsActive:     job.IsActive,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return translateError(err)
	}
	job.ID = doc.ID.Hex()
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc jobDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	return doc.toDomain(), nil
}

func (r *jobRepo) List(ctx context.Context) ([]domain.Job, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	var docs []jobDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	jobs := make([]domain.Job, 0, len(docs))
	for i := range docs {
		jobs = append(jobs, *docs[i].toDomain())
	}
	return jobs, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	oid, err := objectID(job.ID)
	if err != nil {
		return err
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":        job.Title,
		"company":      job.Company,
		"location":     job.Location,
		"description":  job.Description,
		"requirements": nonNil(job.Requirements),
		"salary":       job.Salary,
		"type":         string(job.Type),
		"is_active":    job.IsActive,
		"updated_at":   job.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
