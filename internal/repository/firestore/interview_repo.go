package firestore

import (
	"context"

	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/internal/repository/projection"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionInterviews = "interviews"

type interviewRepo struct {
	client *firestore.Client
}

func NewInterviewRepository(client *firestore.Client) domain.InterviewRepository {
	return &interviewRepo{client: client}
}

// ListByCandidate issues one equality query ordered by submission time.
// Requires the composite index (candidateUID ASC, submittedAt DESC).
func (r *interviewRepo) ListByCandidate(ctx context.Context, candidateUID string) ([]domain.InterviewRecord, error) {
	docs, err := r.client.Collection(collectionInterviews).
		Where(projection.FieldCandidateUID, "==", candidateUID).
		OrderBy(projection.FieldSubmittedAt, firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	records := make([]domain.InterviewRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, projection.Interview(doc.Ref.ID, doc.Data()))
	}
	return records, nil
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*domain.InterviewRecord, error) {
	snap, err := r.client.Collection(collectionInterviews).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !snap.Exists() {
		return nil, domain.ErrNotFound
	}

	rec := projection.Interview(snap.Ref.ID, snap.Data())
	return &rec, nil
}
