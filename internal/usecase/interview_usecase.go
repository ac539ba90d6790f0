package usecase

import (
	"context"
	"time"

	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/pkg/apperror"
	"go-interview-report-backend/pkg/listing"
	"go-interview-report-backend/pkg/logger"

	"go.uber.org/zap"
)

type interviewUsecase struct {
	repo     domain.InterviewRepository
	settings domain.PresentationSettings
}

func NewInterviewUsecase(repo domain.InterviewRepository, settings domain.PresentationSettings) domain.InterviewUsecase {
	return &interviewUsecase{repo: repo, settings: settings}
}

// ListHistory builds the history screen for the caller. A failed query is
// logged and rendered as an empty history.
func (u *interviewUsecase) ListHistory(ctx context.Context, who domain.Identity, query domain.InterviewListQuery) (*domain.InterviewHistory, error) {
	if who.UID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	records, err := u.repo.ListByCandidate(ctx, who.UID)
	if err != nil {
		logger.Log.Error("failed to load interview history",
			zap.String("candidate_uid", who.UID),
			zap.Error(err),
		)
		records = nil
	}

	order := listing.ParseSortOrder(query.Sort)
	visible := listing.Filter(records, query.Search, func(r domain.InterviewRecord) []string {
		return []string{r.JobTitle}
	})
	visible = listing.SortByTime(visible, order, func(r domain.InterviewRecord) time.Time {
		return r.SubmittedAt
	})

	cards := make([]domain.InterviewCard, 0, len(visible))
	for _, r := range visible {
		cards = append(cards, u.card(r))
	}

	return &domain.InterviewHistory{
		Stats:      domain.ComputeInterviewStats(records),
		Search:     query.Search,
		Sort:       string(order),
		Interviews: cards,
	}, nil
}

func (u *interviewUsecase) card(r domain.InterviewRecord) domain.InterviewCard {
	radius := u.settings.CardRingRadius
	return domain.InterviewCard{
		ID:          r.ID,
		JobTitle:    r.JobTitle,
		SubmittedAt: timePtr(r.SubmittedAt),
		DisplayDate: shortDate(r.SubmittedAt),
		Status:      r.Status,
		Score:       domain.NewScoreCard(r.Score, radius),
		ResumeScore: domain.NewScoreCard(r.ResumeScore, radius),
		QnAScore:    domain.NewScoreCard(r.QnAScore, radius),
		ReportPath:  reportPath + r.ID,
	}
}
