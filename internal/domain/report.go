package domain

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

type ScoreLabel string

const (
	LabelExcellent        ScoreLabel = "Excellent"
	LabelGood             ScoreLabel = "Good"
	LabelNeedsImprovement ScoreLabel = "Needs Improvement"
)

// PresentationSettings are display parameters, not business rules.
type PresentationSettings struct {
	ExcellentThreshold float64
	GoodThreshold      float64
	CardRingRadius     float64
	ReportRingRadius   float64
	ExportExtension    string
}

func DefaultPresentationSettings() PresentationSettings {
	return PresentationSettings{
		ExcellentThreshold: 70,
		GoodThreshold:      40,
		CardRingRadius:     36,
		ReportRingRadius:   56,
		ExportExtension:    ".pdf",
	}
}

// Label grades an overall score; both thresholds are inclusive lower bounds.
func (p PresentationSettings) Label(s Score) ScoreLabel {
	switch {
	case s.Value >= p.ExcellentThreshold:
		return LabelExcellent
	case s.Value >= p.GoodThreshold:
		return LabelGood
	default:
		return LabelNeedsImprovement
	}
}

// ScoreRing describes a circular progress stroke of the given radius.
type ScoreRing struct {
	Radius        float64 `json:"radius"`
	Circumference float64 `json:"circumference"`
	Arc           float64 `json:"arc"`
	DashArray     string  `json:"dashArray"`
}

// NewScoreRing computes arc = score/100 * 2*pi*r. Invalid scores draw nothing.
func NewScoreRing(s Score, radius float64) ScoreRing {
	circumference := 2 * math.Pi * radius
	arc := 0.0
	if s.Valid {
		arc = s.Value / 100 * circumference
	}
	return ScoreRing{
		Radius:        radius,
		Circumference: circumference,
		Arc:           arc,
		DashArray:     fmt.Sprintf("%.2f %.2f", arc, circumference),
	}
}

// ScoreCard is a score with its display text and ring.
type ScoreCard struct {
	Value   Score     `json:"value"`
	Display string    `json:"display"`
	Ring    ScoreRing `json:"ring"`
}

func NewScoreCard(s Score, radius float64) ScoreCard {
	return ScoreCard{Value: s, Display: s.Percent(), Ring: NewScoreRing(s, radius)}
}

// ReportFilename builds "report-<job-title>" plus ext, lower-cased with
// whitespace runs collapsed to "-".
func ReportFilename(jobTitle, ext string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(jobTitle), "-"))
	if slug == "" {
		slug = "interview"
	}
	return "report-" + slug + ext
}

// InterviewReport is the single-interview report screen.
type InterviewReport struct {
	ID            string          `json:"id"`
	CandidateUID  string          `json:"candidateUID"`
	JobTitle      string          `json:"jobTitle"`
	SubmittedAt   *time.Time      `json:"submittedAt"`
	InterviewedOn string          `json:"interviewedOn"`
	Status        InterviewStatus `json:"status"`
	Overall       ScoreCard       `json:"overall"`
	Label         ScoreLabel      `json:"label"`
	Resume        ScoreCard       `json:"resume"`
	QnA           ScoreCard       `json:"qna"`
	Strengths     []string        `json:"strengths"`
	Weaknesses    []string        `json:"weaknesses"`
	Feedback      string          `json:"feedback"`
	BackPath      string          `json:"backPath"`
	ExportPath    string          `json:"exportPath"`
	ExportName    string          `json:"exportName"`
}

type ReportUsecase interface {
	GetReport(ctx context.Context, who Identity, interviewID string) (*InterviewReport, error)
	// ExportReport returns the rendered document and its download filename.
	ExportReport(ctx context.Context, who Identity, interviewID string) ([]byte, string, error)
}
