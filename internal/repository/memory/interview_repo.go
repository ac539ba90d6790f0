package memory

import (
	"context"

	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/internal/repository/projection"
)

type interviewRepo struct {
	store *Store
}

func NewInterviewRepository(store *Store) domain.InterviewRepository {
	return &interviewRepo{store: store}
}

func (r *interviewRepo) ListByCandidate(_ context.Context, candidateUID string) ([]domain.InterviewRecord, error) {
	docs := r.store.where(CollectionInterviews, projection.FieldCandidateUID, candidateUID)
	sortDesc(docs, projection.FieldSubmittedAt)

	records := make([]domain.InterviewRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, projection.Interview(d.id, d.fields))
	}
	return records, nil
}

func (r *interviewRepo) GetByID(_ context.Context, id string) (*domain.InterviewRecord, error) {
	d, ok := r.store.get(CollectionInterviews, id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	rec := projection.Interview(d.id, d.fields)
	return &rec, nil
}
