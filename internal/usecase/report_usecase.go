package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/pkg/apperror"
	"go-interview-report-backend/pkg/logger"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// Shown when the assessment did not produce its own text.
var (
	defaultStrengths = []string{
		"Strong communication skills",
		"Good technical foundation",
		"Relevant project experience",
	}
	defaultWeaknesses = []string{
		"Elaborate more on system design",
		"Use more specific metrics in answers",
		"Improve pacing of speech",
	}
)

const defaultFeedback = "The candidate demonstrated a solid understanding of the core concepts. " +
	"Their resume is well-structured but could benefit from more quantifiable achievements. " +
	"During the Q&A, they answered technical questions confidently but hesitated slightly on behavioral scenarios. " +
	"Overall, a strong candidate with potential for growth in this role."

type reportUsecase struct {
	repo     domain.InterviewRepository
	settings domain.PresentationSettings
}

func NewReportUsecase(repo domain.InterviewRepository, settings domain.PresentationSettings) domain.ReportUsecase {
	return &reportUsecase{repo: repo, settings: settings}
}

func (u *reportUsecase) GetReport(ctx context.Context, who domain.Identity, interviewID string) (*domain.InterviewReport, error) {
	rec, err := u.load(ctx, who, interviewID)
	if err != nil {
		return nil, err
	}

	radius := u.settings.ReportRingRadius
	return &domain.InterviewReport{
		ID:            rec.ID,
		CandidateUID:  rec.CandidateUID,
		JobTitle:      rec.JobTitle,
		SubmittedAt:   timePtr(rec.SubmittedAt),
		InterviewedOn: longDate(rec.SubmittedAt),
		Status:        rec.Status,
		Overall:       domain.NewScoreCard(rec.Score, radius),
		Label:         u.settings.Label(rec.Score),
		Resume:        domain.NewScoreCard(rec.ResumeScore, radius),
		QnA:           domain.NewScoreCard(rec.QnAScore, radius),
		Strengths:     orDefault(rec.Strengths, defaultStrengths),
		Weaknesses:    orDefault(rec.Weaknesses, defaultWeaknesses),
		Feedback:      orDefaultText(rec.Feedback, defaultFeedback),
		BackPath:      historyPath,
		ExportPath:    "/v1/interviews/" + rec.ID + "/report/pdf",
		ExportName:    domain.ReportFilename(rec.JobTitle, u.settings.ExportExtension),
	}, nil
}

// ExportReport renders the one-page summary document.
func (u *reportUsecase) ExportReport(ctx context.Context, who domain.Identity, interviewID string) ([]byte, string, error) {
	rec, err := u.load(ctx, who, interviewID)
	if err != nil {
		return nil, "", err
	}

	data, err := renderReportPDF(rec)
	if err != nil {
		logger.Log.Error("failed to render report",
			zap.String("interview_id", rec.ID),
			zap.Error(err),
		)
		return nil, "", apperror.New(http.StatusInternalServerError, "Failed to generate report", err)
	}
	return data, domain.ReportFilename(rec.JobTitle, u.settings.ExportExtension), nil
}

// load fetches the record and checks the caller may see it. Fetch failures
// are logged and reported as not found.
func (u *reportUsecase) load(ctx context.Context, who domain.Identity, interviewID string) (*domain.InterviewRecord, error) {
	if who.UID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	interviewID = strings.TrimSpace(interviewID)
	if interviewID == "" {
		return nil, apperror.NotFound("Interview not found")
	}

	rec, err := u.repo.GetByID(ctx, interviewID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Log.Error("failed to load interview",
				zap.String("interview_id", interviewID),
				zap.Error(err),
			)
		}
		return nil, apperror.NotFound("Interview not found")
	}

	if rec.CandidateUID != who.UID && !who.Role.IsStaff() {
		return nil, apperror.Forbidden("You can only view your own interview reports")
	}
	return rec, nil
}

func renderReportPDF(rec *domain.InterviewRecord) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Interview Report", true)
	pdf.SetCreator("go-interview-report-backend", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(20, 20, "Interview Report")

	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(20, 35, tr("Job: "+rec.JobTitle))
	pdf.Text(20, 45, "Date: "+shortDate(rec.SubmittedAt))

	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(20, 60, fmt.Sprintf("Overall Score: %s", rec.Score.Percent()))
	pdf.Text(20, 70, fmt.Sprintf("Resume Match: %s", rec.ResumeScore.Percent()))
	pdf.Text(20, 80, fmt.Sprintf("Q&A Score: %s", rec.QnAScore.Percent()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// orDefault keeps an explicitly stored list, even an empty one.
func orDefault(items, fallback []string) []string {
	if items == nil {
		out := make([]string, len(fallback))
		copy(out, fallback)
		return out
	}
	return items
}

func orDefaultText(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
