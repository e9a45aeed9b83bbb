package mongo

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type applicationRepo struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) domain.ApplicationRepository {
	return &applicationRepo{coll: db.Collection(applicationsCollection)}
}

// Create depends on the applications_job_applicant_key index; the insert
// itself is the uniqueness check.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	jobID, err := objectID(app.JobID)
	if err != nil {
		return err
	}
	applicantID, err := objectID(app.ApplicantID)
	if err != nil {
		return err
	}
	doc := applicationDocument{
		ID:            bson.NewObjectID(),
		JobID:         jobID,
		ApplicantID:   applicantID,
		ApplicantName: app.ApplicantName,
		CoverLetter:   app.CoverLetter,
		Resume:        app.Resume,
		Status:        string(app.Status),
		AppliedDate:   app.AppliedDate,
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return translateError(err)
	}
	app.ID = doc.ID.Hex()
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc applicationDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	return doc.toDomain(), nil
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	oid, err := bson.ObjectIDFromHex(jobID)
	if err != nil {
		return []domain.Application{}, nil
	}
	return r.find(ctx, bson.M{"job_id": oid})
}

func (r *applicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	oid, err := bson.ObjectIDFromHex(applicantID)
	if err != nil {
		return []domain.Application{}, nil
	}
	return r.find(ctx, bson.M{"applicant_id": oid})
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, updatedAt time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": updatedAt,
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) find(ctx context.Context, filter bson.M) ([]domain.Application, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	var docs []applicationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	apps := make([]domain.Application, 0, len(docs))
	for i := range docs {
		apps = append(apps, *docs[i].toDomain())
	}
	return apps, nil
}
