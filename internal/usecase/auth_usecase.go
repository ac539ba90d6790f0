package usecase

import (
	"context"
	"errors"

	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/pkg/apperror"
	"go-interview-report-backend/pkg/logger"

	"go.uber.org/zap"
)

type authUsecase struct {
	repo   domain.PrincipalRepository
	photos PhotoResolver
}

func NewAuthUsecase(repo domain.PrincipalRepository, photos PhotoResolver) domain.AuthUsecase {
	return &authUsecase{repo: repo, photos: photos}
}

// ResolvePrincipal loads the account behind a verified token. The role
// comes from the stored account, never from token claims.
func (u *authUsecase) ResolvePrincipal(ctx context.Context, uid string) (*domain.Principal, error) {
	if uid == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	p, err := u.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		logger.Log.Error("failed to resolve principal", zap.String("uid", uid), zap.Error(err))
		return nil, apperror.Internal(err)
	}

	if p.AccountStatus == domain.AccountStatusDisabled {
		return nil, apperror.Forbidden("Account disabled")
	}
	return p, nil
}

func (u *authUsecase) GetProfile(ctx context.Context, who domain.Identity) (*domain.Principal, error) {
	p, err := u.ResolvePrincipal(ctx, who.UID)
	if err != nil {
		return nil, err
	}
	if u.photos != nil {
		p.ProfilePhotoURL = u.photos.Resolve(ctx, p.ProfilePhotoURL)
	}
	return p, nil
}
