// Package projection turns raw document field maps into domain records.
// Defaults for missing or malformed fields are applied here so nothing
// downstream sees untyped values.
package projection

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go-interview-report-backend/internal/domain"
)

// Stored field names.
const (
	FieldCandidateUID = "candidateUID"
	FieldJobTitle     = "jobTitle"
	FieldSubmittedAt  = "submittedAt"
	FieldStatus       = "status"
	FieldScore        = "score"
	FieldResumeScore  = "resumeScore"
	FieldQnAScore     = "qnaScore"
	FieldStrengths    = "strengths"
	FieldWeaknesses   = "weaknesses"
	FieldFeedback     = "feedback"

	FieldUID             = "uid"
	FieldRole            = "role"
	FieldFullName        = "fullname"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldExperience      = "experience"
	FieldProfilePhotoURL = "profilePhotoURL"
	FieldAccountStatus   = "accountStatus"
	FieldCreatedAt       = "createdAt"
	FieldUpdatedAt       = "updatedAt"
)

// Interview merges the document id with its fields.
func Interview(id string, data map[string]any) domain.InterviewRecord {
	return domain.InterviewRecord{
		ID:           id,
		CandidateUID: String(data[FieldCandidateUID]),
		JobTitle:     String(data[FieldJobTitle]),
		SubmittedAt:  Time(data[FieldSubmittedAt]),
		Status:       domain.ParseInterviewStatus(String(data[FieldStatus])),
		Score:        domain.ParseScore(data[FieldScore]),
		ResumeScore:  domain.ParseScore(data[FieldResumeScore]),
		QnAScore:     domain.ParseScore(data[FieldQnAScore]),
		Strengths:    Strings(data[FieldStrengths]),
		Weaknesses:   Strings(data[FieldWeaknesses]),
		Feedback:     String(data[FieldFeedback]),
	}
}

// Principal merges the document id with its fields. The stored uid field
// wins when present, matching how accounts are written at registration.
func Principal(id string, data map[string]any) domain.Principal {
	uid := String(data[FieldUID])
	if uid == "" {
		uid = id
	}
	return domain.Principal{
		UID:             uid,
		Role:            domain.ParseRole(String(data[FieldRole])),
		FullName:        String(data[FieldFullName]),
		Email:           String(data[FieldEmail]),
		Phone:           String(data[FieldPhone]),
		Experience:      Int(data[FieldExperience]),
		ProfilePhotoURL: String(data[FieldProfilePhotoURL]),
		AccountStatus:   domain.ParseAccountStatus(String(data[FieldAccountStatus])),
		CreatedAt:       Time(data[FieldCreatedAt]),
		UpdatedAt:       Time(data[FieldUpdatedAt]),
	}
}

// String returns v when it is a string, otherwise "".
func String(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// Strings accepts []string or []any and drops non-string and blank entries.
// A missing field yields nil.
func Strings(v any) []string {
	switch t := v.(type) {
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := String(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Int accepts numbers or numeric strings; anything else is 0.
func Int(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case json.Number:
		f, _ := t.Float64()
		return int(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return int(f)
	default:
		return 0
	}
}

// Time normalises store timestamps. Native times, RFC3339 strings and Unix
// milliseconds are accepted; anything else is the zero time (unknown).
func Time(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case *time.Time:
		if t == nil {
			return time.Time{}
		}
		return t.UTC()
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(t))
		if err != nil {
			return time.Time{}
		}
		return parsed.UTC()
	case int64:
		return time.UnixMilli(t).UTC()
	case float64:
		return time.UnixMilli(int64(t)).UTC()
	default:
		return time.Time{}
	}
}
