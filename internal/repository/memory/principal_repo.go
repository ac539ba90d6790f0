package memory

import (
	"context"
	"errors"
	"time"

	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/internal/repository/projection"
)

type principalRepo struct {
	store *Store
}

func NewPrincipalRepository(store *Store) domain.PrincipalRepository {
	return &principalRepo{store: store}
}

func (r *principalRepo) GetByUID(_ context.Context, uid string) (*domain.Principal, error) {
	d, ok := r.store.get(CollectionUsers, uid)
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := projection.Principal(d.id, d.fields)
	return &p, nil
}

func (r *principalRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.Principal, error) {
	docs := r.store.where(CollectionUsers, projection.FieldRole, string(role))
	sortDesc(docs, projection.FieldCreatedAt)

	principals := make([]domain.Principal, 0, len(docs))
	for _, d := range docs {
		principals = append(principals, projection.Principal(d.id, d.fields))
	}
	return principals, nil
}

func (r *principalRepo) UpdateAccountStatus(_ context.Context, uid string, status domain.AccountStatus) (time.Time, error) {
	at, err := r.store.update(CollectionUsers, uid,
		map[string]any{projection.FieldAccountStatus: string(status)},
		projection.FieldUpdatedAt,
	)
	if errors.Is(err, errMissingDocument) {
		return time.Time{}, domain.ErrNotFound
	}
	return at, err
}
