package domain

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// InterviewStatus is the recruiter decision recorded on an interview.
type InterviewStatus string

const (
	InterviewStatusPending   InterviewStatus = "Pending"
	InterviewStatusScheduled InterviewStatus = "Interview Scheduled"
	InterviewStatusHired     InterviewStatus = "Hired"
	InterviewStatusRejected  InterviewStatus = "Rejected"
)

// ParseInterviewStatus maps a stored value onto a known status.
// Absent or unrecognised values are Pending.
func ParseInterviewStatus(raw string) InterviewStatus {
	switch s := InterviewStatus(strings.TrimSpace(raw)); s {
	case InterviewStatusScheduled, InterviewStatusHired, InterviewStatusRejected:
		return s
	default:
		return InterviewStatusPending
	}
}

// Score is a percentage in [0,100]. Valid is false when the stored value
// was missing or not numeric, in which case Value is 0.
type Score struct {
	Value float64
	Valid bool
}

// ParseScore accepts numbers or numeric strings (an optional trailing "%"
// is ignored) and clamps the result to [0,100].
func ParseScore(raw any) Score {
	var v float64
	switch t := raw.(type) {
	case nil:
		return Score{}
	case float64:
		v = t
	case float32:
		v = float64(t)
	case int:
		v = float64(t)
	case int32:
		v = float64(t)
	case int64:
		v = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Score{}
		}
		v = f
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(t), "%")
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Score{}
		}
		v = f
	default:
		return Score{}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Score{}
	}
	return Score{Value: math.Max(0, math.Min(100, v)), Valid: true}
}

// String renders the score without trailing zeros, or "N/A".
func (s Score) String() string {
	if !s.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(s.Value, 'f', -1, 64)
}

// Percent renders the score with a percent sign, or "N/A".
func (s Score) Percent() string {
	if !s.Valid {
		return "N/A"
	}
	return s.String() + "%"
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

func (s *Score) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseScore(raw)
	return nil
}

// InterviewRecord is a submitted interview as read from the document store.
// SubmittedAt is the zero time when the store had no usable timestamp.
type InterviewRecord struct {
	ID           string          `json:"id"`
	CandidateUID string          `json:"candidateUID"`
	JobTitle     string          `json:"jobTitle"`
	SubmittedAt  time.Time       `json:"submittedAt"`
	Status       InterviewStatus `json:"status"`
	Score        Score           `json:"score"`
	ResumeScore  Score           `json:"resumeScore"`
	QnAScore     Score           `json:"qnaScore"`
	Strengths    []string        `json:"strengths,omitempty"`
	Weaknesses   []string        `json:"weaknesses,omitempty"`
	Feedback     string          `json:"feedback,omitempty"`
}

// InterviewStats partitions a result set by outcome. Pending covers every
// record that is neither Hired nor Rejected.
type InterviewStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Hired    int `json:"hired"`
	Rejected int `json:"rejected"`
}

func ComputeInterviewStats(records []InterviewRecord) InterviewStats {
	stats := InterviewStats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case InterviewStatusHired:
			stats.Hired++
		case InterviewStatusRejected:
			stats.Rejected++
		default:
			stats.Pending++
		}
	}
	return stats
}

// InterviewListQuery carries the history screen's search and sort parameters.
type InterviewListQuery struct {
	Search string `form:"search" binding:"omitempty,search_term"`
	Sort   string `form:"sort"`
}

// InterviewCard is one entry of the history screen.
type InterviewCard struct {
	ID          string          `json:"id"`
	JobTitle    string          `json:"jobTitle"`
	SubmittedAt *time.Time      `json:"submittedAt"`
	DisplayDate string          `json:"displayDate"`
	Status      InterviewStatus `json:"status"`
	Score       ScoreCard       `json:"score"`
	ResumeScore ScoreCard       `json:"resumeScore"`
	QnAScore    ScoreCard       `json:"qnaScore"`
	ReportPath  string          `json:"reportPath"`
}

// InterviewHistory is the history screen: stats over the full set plus the
// filtered and sorted cards.
type InterviewHistory struct {
	Stats      InterviewStats  `json:"stats"`
	Search     string          `json:"search"`
	Sort       string          `json:"sort"`
	Interviews []InterviewCard `json:"interviews"`
}

type InterviewRepository interface {
	// ListByCandidate returns the candidate's interviews, newest submission first.
	ListByCandidate(ctx context.Context, candidateUID string) ([]InterviewRecord, error)
	// GetByID returns ErrNotFound when the document does not exist.
	GetByID(ctx context.Context, id string) (*InterviewRecord, error)
}

type InterviewUsecase interface {
	ListHistory(ctx context.Context, who Identity, query InterviewListQuery) (*InterviewHistory, error)
}
