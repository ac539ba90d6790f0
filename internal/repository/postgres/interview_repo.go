package postgres

import (
	"context"
	"errors"
	"time"

	"go-interview-report-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

const interviewColumns = `id, candidate_uid, job_title, submitted_at, COALESCE(status, ''),
	COALESCE(score, ''), COALESCE(resume_score, ''), COALESCE(qna_score, ''),
	strengths, weaknesses, COALESCE(feedback, '')`

func (r *interviewRepo) ListByCandidate(ctx context.Context, candidateUID string) ([]domain.InterviewRecord, error) {
	query := `SELECT ` + interviewColumns + `
		FROM interviews
		WHERE candidate_uid = $1
		ORDER BY submitted_at DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query, candidateUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.InterviewRecord{}
	for rows.Next() {
		rec, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*domain.InterviewRecord, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`

	rec, err := scanInterview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func scanInterview(row pgx.Row) (domain.InterviewRecord, error) {
	var (
		rec                          domain.InterviewRecord
		submittedAt                  *time.Time
		status                       string
		score, resumeScore, qnaScore string
		strengths, weaknesses        []string
	)
	err := row.Scan(
		&rec.ID, &rec.CandidateUID, &rec.JobTitle, &submittedAt, &status,
		&score, &resumeScore, &qnaScore,
		pq.Array(&strengths), pq.Array(&weaknesses), &rec.Feedback,
	)
	if err != nil {
		return domain.InterviewRecord{}, err
	}

	if submittedAt != nil {
		rec.SubmittedAt = submittedAt.UTC()
	}
	rec.Status = domain.ParseInterviewStatus(status)
	rec.Score = domain.ParseScore(score)
	rec.ResumeScore = domain.ParseScore(resumeScore)
	rec.QnAScore = domain.ParseScore(qnaScore)
	rec.Strengths = strengths
	rec.Weaknesses = weaknesses
	return rec, nil
}
