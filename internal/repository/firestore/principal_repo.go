package firestore

import (
	"context"
	"errors"
	"time"

	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/internal/repository/projection"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// User documents are keyed by uid.
const collectionUsers = "users"

type principalRepo struct {
	client *firestore.Client
}

func NewPrincipalRepository(client *firestore.Client) domain.PrincipalRepository {
	return &principalRepo{client: client}
}

func (r *principalRepo) GetByUID(ctx context.Context, uid string) (*domain.Principal, error) {
	snap, err := r.client.Collection(collectionUsers).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !snap.Exists() {
		return nil, domain.ErrNotFound
	}

	p := projection.Principal(snap.Ref.ID, snap.Data())
	return &p, nil
}

// ListByRole requires the composite index (role ASC, createdAt DESC).
func (r *principalRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Principal, error) {
	docs, err := r.client.Collection(collectionUsers).
		Where(projection.FieldRole, "==", string(role)).
		OrderBy(projection.FieldCreatedAt, firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	principals := make([]domain.Principal, 0, len(docs))
	for _, doc := range docs {
		principals = append(principals, projection.Principal(doc.Ref.ID, doc.Data()))
	}
	return principals, nil
}

// UpdateAccountStatus writes both fields in one update; updatedAt takes the
// commit time, which is also the returned write time.
func (r *principalRepo) UpdateAccountStatus(ctx context.Context, uid string, accountStatus domain.AccountStatus) (time.Time, error) {
	res, err := r.client.Collection(collectionUsers).Doc(uid).Update(ctx, []firestore.Update{
		{Path: projection.FieldAccountStatus, Value: string(accountStatus)},
		{Path: projection.FieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, err
	}
	return res.UpdateTime.UTC(), nil
}

// Ping reads at most one user document to prove the store is reachable.
func Ping(ctx context.Context, client *firestore.Client) error {
	return probeFirst(client.Collection(collectionUsers).Limit(1).Documents(ctx))
}

type documentIterator interface {
	Next() (*firestore.DocumentSnapshot, error)
	Stop()
}

// probeFirst reads one document and always releases the iterator. An empty
// collection is reachable.
func probeFirst(iter documentIterator) error {
	defer iter.Stop()
	_, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil
	}
	return err
}
