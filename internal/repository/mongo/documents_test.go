package mongo

import (
	"errors"
	"go-jobboard-backend/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestObjectIDRejectsMalformedIDAsNotFound(t *testing.T) {
	_, err := objectID("not-a-hex-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	oid := bson.NewObjectID()
	parsed, err := objectID(oid.Hex())
	assert.NoError(t, err)
	assert.Equal(t, oid, parsed)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(mongo.ErrNoDocuments), domain.ErrNotFound)

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.ErrorIs(t, translateError(dup), domain.ErrDuplicate)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other))
}

func TestApplicationDocumentToDomain(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := applicationDocument{
		ID:            bson.NewObjectID(),
		JobID:         bson.NewObjectID(),
		ApplicantID:   bson.NewObjectID(),
		ApplicantName: "Ada",
		Status:        "interview",
		AppliedDate:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	app := doc.toDomain()
	assert.Equal(t, doc.ID.Hex(), app.ID)
	assert.Equal(t, doc.JobID.Hex(), app.JobID)
	assert.Equal(t, doc.ApplicantID.Hex(), app.ApplicantID)
	assert.Equal(t, domain.ApplicationStatusInterview, app.Status)
}

func TestNonNil(t *testing.T) {
	assert.Equal(t, []string{}, nonNil(nil))
	assert.Equal(t, []string{"go"}, nonNil([]string{"go"}))
}
