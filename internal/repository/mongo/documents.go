package mongo

import (
	"go-jobboard-backend/internal/domain"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	usersCollection        = "users"
	jobsCollection         = "jobs"
	applicationsCollection = "applications"
)

type userDocument struct {
	ID                   bson.ObjectID `bson:"_id,omitempty"`
	Name                 string        `bson:"name"`
	Email                string        `bson:"email"`
	PasswordHash         string        `bson:"password_hash"`
	Role                 string        `bson:"role"`
	Company              string        `bson:"company"`
	Title                string        `bson:"title"`
	Skills               []string      `bson:"skills"`
	About                string        `bson:"about"`
	ResetPasswordToken   string        `bson:"reset_password_token,omitempty"`
	ResetPasswordExpires *time.Time    `bson:"reset_password_expires,omitempty"`
	CreatedAt            time.Time     `bson:"created_at"`
	UpdatedAt            time.Time     `bson:"updated_at"`
}

func (d *userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:                   d.ID.Hex(),
		Name:                 d.Name,
		Email:                d.Email,
		PasswordHash:         d.PasswordHash,
		Role:                 domain.Role(d.Role),
		Company:              d.Company,
		Title:                d.Title,
		Skills:               d.Skills,
		About:                d.About,
		ResetPasswordToken:   d.ResetPasswordToken,
		ResetPasswordExpires: d.ResetPasswordExpires,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

type jobDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Title        string        `bson:"title"`
	Company      string        `bson:"company"`
	Location     string        `bson:"location"`
	Description  string        `bson:"description"`
	Requirements []string      `bson:"requirements"`
	Salary       string        `bson:"salary,omitempty"`
	Type         string        `bson:"type"`
	PostedBy     bson.ObjectID `bson:"posted_by"`
	PostedDate   time.Time     `bson:"posted_date"`
	IsActive     bool          `bson:"is_active"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}

func (d *jobDocument) toDomain() *domain.Job {
	return &domain.Job{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Company:      d.Company,
		Location:     d.Location,
		Description:  d.Description,
		Requirements: d.Requirements,
		Salary:       d.Salary,
		Type:         domain.JobType(d.Type),
		PostedBy:     d.PostedBy.Hex(),
		PostedDate:   d.PostedDate,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type applicationDocument struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	JobID         bson.ObjectID `bson:"job_id"`
	ApplicantID   bson.ObjectID `bson:"applicant_id"`
	ApplicantName string        `bson:"applicant_name"`
	CoverLetter   string        `bson:"cover_letter,omitempty"`
	Resume        string        `bson:"resume,omitempty"`
	Status        string        `bson:"status"`
	AppliedDate   time.Time     `bson:"applied_date"`
	CreatedAt     time.Time     `bson:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at"`
}

func (d *applicationDocument) toDomain() *domain.Application {
	return &domain.Application{
		ID:            d.ID.Hex(),
		JobID:         d.JobID.Hex(),
		ApplicantID:   d.ApplicantID.Hex(),
		ApplicantName: d.ApplicantName,
		CoverLetter:   d.CoverLetter,
		Resume:        d.Resume,
		Status:        domain.ApplicationStatus(d.Status),
		AppliedDate:   d.AppliedDate,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// objectID parses a hex id. Ids that cannot name a document are reported as
// ErrNotFound.
func objectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, domain.ErrNotFound
	}
	return oid, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
