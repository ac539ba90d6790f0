package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/internal/repository/memory"
	"go-interview-report-backend/internal/usecase"
	"go-interview-report-backend/pkg/apperror"
	"go-interview-report-backend/pkg/inflight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Mock Repositories
type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) ListByCandidate(ctx context.Context, candidateUID string) ([]domain.InterviewRecord, error) {
	args := m.Called(ctx, candidateUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewRecord), args.Error(1)
}

func (m *MockInterviewRepo) GetByID(ctx context.Context, id string) (*domain.InterviewRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewRecord), args.Error(1)
}

type MockPrincipalRepo struct {
	mock.Mock
}

func (m *MockPrincipalRepo) GetByUID(ctx context.Context, uid string) (*domain.Principal, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

func (m *MockPrincipalRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Principal, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Principal), args.Error(1)
}

func (m *MockPrincipalRepo) UpdateAccountStatus(ctx context.Context, uid string, status domain.AccountStatus) (time.Time, error) {
	args := m.Called(ctx, uid, status)
	return args.Get(0).(time.Time), args.Error(1)
}

var (
	candidate = domain.Identity{UID: "cand-1", Role: domain.RoleCandidate}
	admin     = domain.Identity{UID: "admin-1", Role: domain.RoleAdmin}
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 10, 0, 0, 0, time.UTC)
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func seedHistory(store *memory.Store) {
	store.Seed(memory.CollectionInterviews, "i1", map[string]any{
		"candidateUID": "cand-1", "jobTitle": "Senior Backend Engineer", "submittedAt": day(1),
		"status": "Hired", "score": 82,
	})
	store.Seed(memory.CollectionInterviews, "i2", map[string]any{
		"candidateUID": "cand-1", "jobTitle": "Frontend Developer", "submittedAt": day(5),
		"status": "Rejected", "score": "35",
	})
	store.Seed(memory.CollectionInterviews, "i3", map[string]any{
		"candidateUID": "cand-1", "jobTitle": "Backend Intern", "submittedAt": day(3),
	})
	store.Seed(memory.CollectionInterviews, "i4", map[string]any{
		"candidateUID": "cand-1", "jobTitle": "Data Engineer", "status": "Interview Scheduled",
	})
	store.Seed(memory.CollectionInterviews, "other", map[string]any{
		"candidateUID": "cand-2", "jobTitle": "Backend", "status": "Hired",
	})
}

func cardIDs(h *domain.InterviewHistory) []string {
	ids := make([]string, 0, len(h.Interviews))
	for _, c := range h.Interviews {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestInterviewHistory(t *testing.T) {
	store := memory.NewStore(nil)
	seedHistory(store)
	uc := usecase.NewInterviewUsecase(memory.NewInterviewRepository(store), domain.DefaultPresentationSettings())
	ctx := context.Background()

	t.Run("Should partition stats over the full set", func(t *testing.T) {
		h, err := uc.ListHistory(ctx, candidate, domain.InterviewListQuery{})
		require.NoError(t, err)
		assert.Equal(t, domain.InterviewStats{Total: 4, Pending: 2, Hired: 1, Rejected: 1}, h.Stats)
		assert.Equal(t, h.Stats.Total, h.Stats.Pending+h.Stats.Hired+h.Stats.Rejected)
		assert.Equal(t, []string{"i2", "i3", "i1", "i4"}, cardIDs(h))
	})

	t.Run("Should keep stats when searching", func(t *testing.T) {
		h, err := uc.ListHistory(ctx, candidate, domain.InterviewListQuery{Search: "BACKEND"})
		require.NoError(t, err)
		assert.Equal(t, 4, h.Stats.Total)
		assert.Equal(t, []string{"i3", "i1"}, cardIDs(h))
	})

	t.Run("Should sort oldest first with unknown dates at the epoch", func(t *testing.T) {
		h, err := uc.ListHistory(ctx, candidate, domain.InterviewListQuery{Sort: "oldest"})
		require.NoError(t, err)
		assert.Equal(t, "oldest", h.Sort)
		assert.Equal(t, []string{"i4", "i1", "i3", "i2"}, cardIDs(h))
	})

	t.Run("Should default unknown sort to newest", func(t *testing.T) {
		h, err := uc.ListHistory(ctx, candidate, domain.InterviewListQuery{Sort: "sideways"})
		require.NoError(t, err)
		assert.Equal(t, "newest", h.Sort)
	})

	t.Run("Should render cards", func(t *testing.T) {
		h, err := uc.ListHistory(ctx, candidate, domain.InterviewListQuery{Search: "data"})
		require.NoError(t, err)
		require.Len(t, h.Interviews, 1)
		card := h.Interviews[0]
		assert.Equal(t, "N/A", card.DisplayDate)
		assert.Nil(t, card.SubmittedAt)
		assert.Equal(t, domain.InterviewStatusScheduled, card.Status)
		assert.Equal(t, "N/A", card.Score.Display)
		assert.Equal(t, 0.0, card.Score.Ring.Arc)
		assert.Equal(t, "/report/i4", card.ReportPath)

		h, err = uc.ListHistory(ctx, candidate, domain.InterviewListQuery{Search: "senior"})
		require.NoError(t, err)
		assert.Equal(t, "01/03/2024", h.Interviews[0].DisplayDate)
		assert.Equal(t, "82%", h.Interviews[0].Score.Display)
		assert.Equal(t, 36.0, h.Interviews[0].Score.Ring.Radius)
	})

	t.Run("Should reject anonymous callers", func(t *testing.T) {
		_, err := uc.ListHistory(ctx, domain.Identity{}, domain.InterviewListQuery{})
		assert.Equal(t, http.StatusUnauthorized, appCode(t, err))
	})
}

func TestInterviewHistory_QueryFailureRendersEmpty(t *testing.T) {
	repo := new(MockInterviewRepo)
	repo.On("ListByCandidate", mock.Anything, "cand-1").Return(nil, errors.New("unavailable"))
	uc := usecase.NewInterviewUsecase(repo, domain.DefaultPresentationSettings())

	h, err := uc.ListHistory(context.Background(), candidate, domain.InterviewListQuery{Search: "x"})
	require.NoError(t, err)
	assert.Equal(t, domain.InterviewStats{}, h.Stats)
	assert.NotNil(t, h.Interviews)
	assert.Empty(t, h.Interviews)
	repo.AssertExpectations(t)
}

func TestReport(t *testing.T) {
	store := memory.NewStore(nil)
	seedHistory(store)
	store.Seed(memory.CollectionInterviews, "explicit", map[string]any{
		"candidateUID": "cand-1", "jobTitle": "QA", "score": 50,
		"strengths": []any{}, "weaknesses": []any{"Speak up"}, "feedback": "Fine.",
	})
	uc := usecase.NewReportUsecase(memory.NewInterviewRepository(store), domain.DefaultPresentationSettings())
	ctx := context.Background()

	t.Run("Should render rings, label and default texts", func(t *testing.T) {
		r, err := uc.GetReport(ctx, candidate, "i1")
		require.NoError(t, err)
		assert.Equal(t, domain.LabelExcellent, r.Label)
		assert.Equal(t, "82%", r.Overall.Display)
		assert.Equal(t, 56.0, r.Overall.Ring.Radius)
		assert.Equal(t, "N/A", r.Resume.Display)
		assert.Equal(t, "Friday, 1 March 2024", r.InterviewedOn)
		assert.Len(t, r.Strengths, 3)
		assert.Equal(t, "Strong communication skills", r.Strengths[0])
		assert.Len(t, r.Weaknesses, 3)
		assert.True(t, strings.HasPrefix(r.Feedback, "The candidate demonstrated"))
		assert.Equal(t, "report-senior-backend-engineer.pdf", r.ExportName)
		assert.Equal(t, "/candidate/interviews", r.BackPath)
	})

	t.Run("Should keep stored texts", func(t *testing.T) {
		r, err := uc.GetReport(ctx, candidate, "explicit")
		require.NoError(t, err)
		assert.Equal(t, domain.LabelGood, r.Label)
		assert.Empty(t, r.Strengths)
		assert.Equal(t, []string{"Speak up"}, r.Weaknesses)
		assert.Equal(t, "Fine.", r.Feedback)
	})

	t.Run("Should refuse other candidates' reports", func(t *testing.T) {
		_, err := uc.GetReport(ctx, candidate, "other")
		assert.Equal(t, http.StatusForbidden, appCode(t, err))

		r, err := uc.GetReport(ctx, admin, "other")
		require.NoError(t, err)
		assert.Equal(t, "other", r.ID)
	})

	t.Run("Should report missing interviews as not found", func(t *testing.T) {
		_, err := uc.GetReport(ctx, candidate, "missing")
		assert.Equal(t, http.StatusNotFound, appCode(t, err))

		_, err = uc.GetReport(ctx, candidate, "  ")
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})
}

func TestReport_FetchFailureIsNotFound(t *testing.T) {
	repo := new(MockInterviewRepo)
	repo.On("GetByID", mock.Anything, "i1").Return(nil, errors.New("deadline exceeded"))
	uc := usecase.NewReportUsecase(repo, domain.DefaultPresentationSettings())

	_, err := uc.GetReport(context.Background(), candidate, "i1")
	assert.Equal(t, http.StatusNotFound, appCode(t, err))
}

func TestReport_LabelThresholds(t *testing.T) {
	cases := map[float64]domain.ScoreLabel{
		75: domain.LabelExcellent,
		70: domain.LabelExcellent,
		50: domain.LabelGood,
		40: domain.LabelGood,
		10: domain.LabelNeedsImprovement,
	}
	for score, want := range cases {
		repo := new(MockInterviewRepo)
		repo.On("GetByID", mock.Anything, "i").Return(&domain.InterviewRecord{
			ID: "i", CandidateUID: "cand-1", Score: domain.ParseScore(score),
		}, nil)
		uc := usecase.NewReportUsecase(repo, domain.DefaultPresentationSettings())

		r, err := uc.GetReport(context.Background(), candidate, "i")
		require.NoError(t, err)
		assert.Equal(t, want, r.Label, "score %v", score)
	}
}

func TestExportReport(t *testing.T) {
	store := memory.NewStore(nil)
	seedHistory(store)
	uc := usecase.NewReportUsecase(memory.NewInterviewRepository(store), domain.DefaultPresentationSettings())

	data, name, err := uc.ExportReport(context.Background(), candidate, "i1")
	require.NoError(t, err)
	assert.Equal(t, "report-senior-backend-engineer.pdf", name)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	_, _, err = uc.ExportReport(context.Background(), candidate, "other")
	assert.Equal(t, http.StatusForbidden, appCode(t, err))
}

func seedRoster(store *memory.Store) {
	store.Seed(memory.CollectionUsers, "u1", map[string]any{
		"role": "candidate", "fullname": "Ada Lovelace", "email": "ada@example.com",
		"experience": 5, "createdAt": day(2),
	})
	store.Seed(memory.CollectionUsers, "u2", map[string]any{
		"role": "candidate", "fullname": "Alan Turing", "email": "alan@bletchley.uk",
		"accountStatus": "disabled", "createdAt": day(4),
	})
	store.Seed(memory.CollectionUsers, "admin-1", map[string]any{
		"role": "admin", "fullname": "Grace Hopper", "email": "grace@example.com",
	})
}

func newRoster(store *memory.Store) domain.RosterUsecase {
	return usecase.NewRosterUsecase(
		memory.NewPrincipalRepository(store),
		inflight.NewGuard(nil, "toggle:", time.Second),
		nil,
	)
}

func TestRoster_List(t *testing.T) {
	store := memory.NewStore(nil)
	seedRoster(store)
	uc := newRoster(store)
	ctx := context.Background()

	t.Run("Should list candidates only, newest first", func(t *testing.T) {
		r, err := uc.ListCandidates(ctx, admin, "")
		require.NoError(t, err)
		require.Len(t, r.Candidates, 2)
		assert.Equal(t, "u2", r.Candidates[0].UID)
		assert.Equal(t, "Enable", r.Candidates[0].Action)
		assert.Equal(t, "Disable", r.Candidates[1].Action)
	})

	t.Run("Should search name or email", func(t *testing.T) {
		r, err := uc.ListCandidates(ctx, admin, "BLETCHLEY")
		require.NoError(t, err)
		require.Len(t, r.Candidates, 1)
		assert.Equal(t, "u2", r.Candidates[0].UID)
		assert.Equal(t, 2, r.Total)

		r, err = uc.ListCandidates(ctx, admin, "lovelace")
		require.NoError(t, err)
		require.Len(t, r.Candidates, 1)
		assert.Equal(t, "u1", r.Candidates[0].UID)
	})

	t.Run("Should refuse candidates", func(t *testing.T) {
		_, err := uc.ListCandidates(ctx, candidate, "")
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
	})
}

func TestRoster_ListFailureRendersEmpty(t *testing.T) {
	repo := new(MockPrincipalRepo)
	repo.On("ListByRole", mock.Anything, domain.RoleCandidate).Return(nil, errors.New("unavailable"))
	uc := usecase.NewRosterUsecase(repo, inflight.NewGuard(nil, "", time.Second), nil)

	r, err := uc.ListCandidates(context.Background(), admin, "")
	require.NoError(t, err)
	assert.Equal(t, 0, r.Total)
	assert.NotNil(t, r.Candidates)
	assert.Empty(t, r.Candidates)
}

func TestToggleStatus_DoubleToggleRestores(t *testing.T) {
	frozen := day(10)
	store := memory.NewStore(func() time.Time { return frozen })
	seedRoster(store)
	uc := newRoster(store)
	ctx := context.Background()

	first, err := uc.ToggleStatus(ctx, admin, "u1", true)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusDisabled, first.AccountStatus)

	second, err := uc.ToggleStatus(ctx, admin, "u1", true)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusActive, second.AccountStatus)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	r, err := uc.ListCandidates(ctx, admin, "ada")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusActive, r.Candidates[0].AccountStatus)
	assert.Equal(t, second.UpdatedAt, r.Candidates[0].UpdatedAt)
}

func TestToggleStatus_RequiresConfirmation(t *testing.T) {
	repo := new(MockPrincipalRepo)
	repo.On("GetByUID", mock.Anything, "u1").Return(&domain.Principal{
		UID: "u1", Role: domain.RoleCandidate, AccountStatus: domain.AccountStatusActive,
	}, nil)
	uc := usecase.NewRosterUsecase(repo, inflight.NewGuard(nil, "", time.Second), nil)

	_, err := uc.ToggleStatus(context.Background(), admin, "u1", false)
	assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	assert.Equal(t, "Are you sure you want to disable this account? Confirmation required", err.Error())
	repo.AssertNotCalled(t, "UpdateAccountStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleStatus_FailedWriteLeavesRoster(t *testing.T) {
	store := memory.NewStore(nil)
	seedRoster(store)
	uc := newRoster(store)
	ctx := context.Background()

	before, err := uc.ListCandidates(ctx, admin, "")
	require.NoError(t, err)
	beforeJSON, err := json.Marshal(before)
	require.NoError(t, err)

	store.FailWrites(errors.New("permission denied"))
	p, err := uc.ToggleStatus(ctx, admin, "u1", true)
	assert.Nil(t, p)
	assert.Equal(t, http.StatusInternalServerError, appCode(t, err))
	assert.Equal(t, "Failed to update status", err.Error())

	after, err := uc.ListCandidates(ctx, admin, "")
	require.NoError(t, err)
	afterJSON, err := json.Marshal(after)
	require.NoError(t, err)
	assert.Equal(t, string(beforeJSON), string(afterJSON))
}

func TestToggleStatus_InFlight(t *testing.T) {
	store := memory.NewStore(nil)
	seedRoster(store)
	guard := inflight.NewGuard(nil, "", time.Second)
	uc := usecase.NewRosterUsecase(memory.NewPrincipalRepository(store), guard, nil)
	ctx := context.Background()

	release, err := guard.Acquire(ctx, "u1")
	require.NoError(t, err)

	_, err = uc.ToggleStatus(ctx, admin, "u1", true)
	assert.Equal(t, http.StatusConflict, appCode(t, err))

	release()
	p, err := uc.ToggleStatus(ctx, admin, "u1", true)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusDisabled, p.AccountStatus)
}

func TestToggleStatus_OnlyCandidates(t *testing.T) {
	store := memory.NewStore(nil)
	seedRoster(store)
	uc := newRoster(store)
	ctx := context.Background()

	_, err := uc.ToggleStatus(ctx, admin, "admin-1", true)
	assert.Equal(t, http.StatusNotFound, appCode(t, err))

	_, err = uc.ToggleStatus(ctx, admin, "ghost", true)
	assert.Equal(t, http.StatusNotFound, appCode(t, err))

	_, err = uc.ToggleStatus(ctx, candidate, "u1", true)
	assert.Equal(t, http.StatusForbidden, appCode(t, err))
}

func TestExportCandidates(t *testing.T) {
	store := memory.NewStore(nil)
	seedRoster(store)
	uc := newRoster(store)
	ctx := context.Background()

	data, name, err := uc.ExportCandidates(ctx, admin, "ada", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "candidates_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Ada Lovelace,ada@example.com,,5,active,2024-03-02,", lines[1])

	data, name, err = uc.ExportCandidates(ctx, admin, "", "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))

	_, _, err = uc.ExportCandidates(ctx, admin, "", "pdf")
	assert.Equal(t, http.StatusBadRequest, appCode(t, err))
}

func TestExportCandidates_QuotesFormulaCells(t *testing.T) {
	store := memory.NewStore(nil)
	store.Seed(memory.CollectionUsers, "u9", map[string]any{
		"role":     "candidate",
		"fullname": `=HYPERLINK("http://evil.example","x")`,
		"email":    "@sum@example.com",
		"phone":    "+62 811 000",
	})
	uc := newRoster(store)
	ctx := context.Background()

	data, _, err := uc.ExportCandidates(ctx, admin, "", "csv")
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, `'=HYPERLINK("http://evil.example","x")`, rows[1][0])
	assert.Equal(t, "'@sum@example.com", rows[1][1])
	assert.Equal(t, "'+62 811 000", rows[1][2])

	data, _, err = uc.ExportCandidates(ctx, admin, "", "xlsx")
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	name, err := f.GetCellValue("Candidates", "A2")
	require.NoError(t, err)
	assert.Equal(t, `'=HYPERLINK("http://evil.example","x")`, name)
	formula, err := f.GetCellFormula("Candidates", "A2")
	require.NoError(t, err)
	assert.Empty(t, formula)
}

func TestAuth_ResolvePrincipal(t *testing.T) {
	store := memory.NewStore(nil)
	seedRoster(store)
	uc := usecase.NewAuthUsecase(memory.NewPrincipalRepository(store), nil)
	ctx := context.Background()

	p, err := uc.ResolvePrincipal(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCandidate, p.Role)

	_, err = uc.ResolvePrincipal(ctx, "u2")
	assert.Equal(t, http.StatusForbidden, appCode(t, err))

	_, err = uc.ResolvePrincipal(ctx, "ghost")
	assert.Equal(t, http.StatusUnauthorized, appCode(t, err))

	me, err := uc.GetProfile(ctx, domain.Identity{UID: "admin-1", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", me.FullName)
}

func TestHealth(t *testing.T) {
	uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"store": func(context.Context) error { return nil },
		"redis": func(context.Context) error { return errors.New("down") },
	})

	result, healthy := uc.Check(context.Background())
	assert.False(t, healthy)
	assert.Equal(t, map[string]string{"status": "degraded", "store": "ok", "redis": "unavailable"}, result)

	result, healthy = usecase.NewHealthUsecase(nil).Check(context.Background())
	assert.True(t, healthy)
	assert.Equal(t, "ok", result["status"])
}
