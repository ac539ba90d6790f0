package projection_test

import (
	"testing"
	"time"

	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/internal/repository/projection"

	"github.com/stretchr/testify/assert"
)

func TestInterview(t *testing.T) {
	submitted := time.Date(2024, 3, 9, 14, 30, 0, 0, time.FixedZone("WIB", 7*3600))

	t.Run("Merges id with fields", func(t *testing.T) {
		rec := projection.Interview("iv-1", map[string]any{
			"candidateUID": "cand-1",
			"jobTitle":     "Senior Backend Engineer",
			"submittedAt":  submitted,
			"status":       "Hired",
			"score":        "75",
			"resumeScore":  int64(80),
			"qnaScore":     "68.5",
			"strengths":    []any{"Go", "", 42, "SQL"},
			"feedback":     "Solid.",
		})

		assert.Equal(t, "iv-1", rec.ID)
		assert.Equal(t, "cand-1", rec.CandidateUID)
		assert.Equal(t, submitted.UTC(), rec.SubmittedAt)
		assert.Equal(t, domain.InterviewStatusHired, rec.Status)
		assert.Equal(t, domain.Score{Value: 75, Valid: true}, rec.Score)
		assert.Equal(t, domain.Score{Value: 80, Valid: true}, rec.ResumeScore)
		assert.Equal(t, domain.Score{Value: 68.5, Valid: true}, rec.QnAScore)
		assert.Equal(t, []string{"Go", "SQL"}, rec.Strengths)
		assert.Nil(t, rec.Weaknesses)
		assert.Equal(t, "Solid.", rec.Feedback)
	})

	t.Run("Defaults missing fields", func(t *testing.T) {
		rec := projection.Interview("iv-2", map[string]any{"score": "abc"})

		assert.Equal(t, domain.InterviewStatusPending, rec.Status)
		assert.True(t, rec.SubmittedAt.IsZero())
		assert.False(t, rec.Score.Valid)
		assert.False(t, rec.ResumeScore.Valid)
	})
}

func TestPrincipal(t *testing.T) {
	p := projection.Principal("doc-id", map[string]any{
		"uid":           "user-9",
		"role":          "candidate",
		"fullname":      "Ayu Lestari",
		"email":         "ayu@example.com",
		"experience":    "4",
		"accountStatus": "disabled",
		"createdAt":     "2024-01-02T03:04:05Z",
	})

	assert.Equal(t, "user-9", p.UID)
	assert.Equal(t, domain.RoleCandidate, p.Role)
	assert.Equal(t, 4, p.Experience)
	assert.Equal(t, domain.AccountStatusDisabled, p.AccountStatus)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), p.CreatedAt)
	assert.True(t, p.UpdatedAt.IsZero())

	fallback := projection.Principal("doc-id", map[string]any{})
	assert.Equal(t, "doc-id", fallback.UID)
	assert.Equal(t, domain.AccountStatusActive, fallback.AccountStatus)
}

func TestTime(t *testing.T) {
	assert.True(t, projection.Time(nil).IsZero())
	assert.True(t, projection.Time("not a date").IsZero())
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), projection.Time(int64(1700000000000)))
}
