package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/pkg/apperror"
	"go-interview-report-backend/pkg/inflight"
	"go-interview-report-backend/pkg/listing"
	"go-interview-report-backend/pkg/logger"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type rosterUsecase struct {
	repo   domain.PrincipalRepository
	guard  ToggleGuard
	photos PhotoResolver
	now    func() time.Time
}

func NewRosterUsecase(repo domain.PrincipalRepository, guard ToggleGuard, photos PhotoResolver) domain.RosterUsecase {
	return &rosterUsecase{repo: repo, guard: guard, photos: photos, now: time.Now}
}

// ListCandidates returns every candidate account matching search on full
// name or email. Total counts all candidates before filtering.
func (u *rosterUsecase) ListCandidates(ctx context.Context, who domain.Identity, search string) (*domain.CandidateRoster, error) {
	if err := requireStaff(who); err != nil {
		return nil, err
	}

	all := u.loadCandidates(ctx)
	matched := filterCandidates(all, search)

	entries := make([]domain.RosterEntry, 0, len(matched))
	for _, p := range matched {
		p.ProfilePhotoURL = u.resolvePhoto(ctx, p.ProfilePhotoURL)
		entries = append(entries, domain.RosterEntry{Principal: p, Action: p.AccountStatus.Action()})
	}

	return &domain.CandidateRoster{
		Search:     search,
		Total:      len(all),
		Candidates: entries,
	}, nil
}

// ToggleStatus flips a candidate between active and disabled. The caller
// must confirm; only one toggle per account may be in flight. On a failed
// write nothing is returned and nothing changes.
func (u *rosterUsecase) ToggleStatus(ctx context.Context, who domain.Identity, uid string, confirmed bool) (*domain.Principal, error) {
	if err := requireStaff(who); err != nil {
		return nil, err
	}
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, apperror.BadRequest("Candidate id is required")
	}

	release, err := u.guard.Acquire(ctx, uid)
	if err != nil {
		if errors.Is(err, inflight.ErrInFlight) {
			return nil, apperror.Conflict("A status update for this account is already in progress")
		}
		return nil, apperror.Internal(err)
	}
	defer release()

	p, err := u.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		logger.Log.Error("failed to load candidate", zap.String("uid", uid), zap.Error(err))
		return nil, apperror.New(http.StatusInternalServerError, "Failed to update status", err)
	}
	if p.Role != domain.RoleCandidate {
		return nil, apperror.NotFound("Candidate not found")
	}

	if !confirmed {
		return nil, apperror.BadRequest(fmt.Sprintf(
			"Are you sure you want to %s this account? Confirmation required",
			strings.ToLower(p.AccountStatus.Action()),
		))
	}

	next := p.AccountStatus.Toggled()
	updatedAt, err := u.repo.UpdateAccountStatus(ctx, uid, next)
	if err != nil {
		logger.Log.Error("failed to update account status",
			zap.String("uid", uid),
			zap.String("status", string(next)),
			zap.Error(err),
		)
		return nil, apperror.New(http.StatusInternalServerError, "Failed to update status", err)
	}

	logger.Log.Info("account status changed",
		zap.String("uid", uid),
		zap.String("status", string(next)),
		zap.String("by", who.UID),
	)

	p.AccountStatus = next
	p.UpdatedAt = updatedAt
	p.ProfilePhotoURL = u.resolvePhoto(ctx, p.ProfilePhotoURL)
	return p, nil
}

// ExportCandidates writes the filtered roster as xlsx (default) or csv.
func (u *rosterUsecase) ExportCandidates(ctx context.Context, who domain.Identity, search, format string) ([]byte, string, error) {
	if err := requireStaff(who); err != nil {
		return nil, "", err
	}

	candidates := filterCandidates(u.loadCandidates(ctx), search)
	stamp := u.now().UTC().Format("20060102_150405")

	switch format {
	case "csv":
		data, err := exportRosterCSV(candidates)
		if err != nil {
			return nil, "", apperror.Internal(err)
		}
		return data, "candidates_" + stamp + ".csv", nil
	case "xlsx", "":
		data, err := exportRosterExcel(candidates)
		if err != nil {
			return nil, "", apperror.Internal(err)
		}
		return data, "candidates_" + stamp + ".xlsx", nil
	default:
		return nil, "", apperror.BadRequest(fmt.Sprintf("unsupported export format: %s", format))
	}
}

func (u *rosterUsecase) loadCandidates(ctx context.Context) []domain.Principal {
	principals, err := u.repo.ListByRole(ctx, domain.RoleCandidate)
	if err != nil {
		logger.Log.Error("failed to load candidates", zap.Error(err))
		return []domain.Principal{}
	}
	return principals
}

func (u *rosterUsecase) resolvePhoto(ctx context.Context, ref string) string {
	if u.photos == nil {
		return ref
	}
	return u.photos.Resolve(ctx, ref)
}

func filterCandidates(all []domain.Principal, search string) []domain.Principal {
	return listing.Filter(all, search, func(p domain.Principal) []string {
		return []string{p.FullName, p.Email}
	})
}

func requireStaff(who domain.Identity) error {
	if who.UID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if !who.Role.IsStaff() {
		return apperror.Forbidden("Admin access required")
	}
	return nil
}

var rosterColumns = []string{"FULL NAME", "EMAIL", "PHONE", "EXPERIENCE (YEARS)", "ACCOUNT STATUS", "JOINED", "LAST UPDATED"}

func rosterRow(p domain.Principal) []string {
	return []string{
		spreadsheetText(p.FullName),
		spreadsheetText(p.Email),
		spreadsheetText(p.Phone),
		strconv.Itoa(p.Experience),
		string(p.AccountStatus),
		isoDate(p.CreatedAt),
		isoDate(p.UpdatedAt),
	}
}

// spreadsheetText quotes values a spreadsheet would evaluate as a formula.
func spreadsheetText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func exportRosterExcel(candidates []domain.Principal) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Candidates"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, header := range rosterColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(rosterColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, p := range candidates {
		for colIdx, value := range rosterRow(p) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if colIdx == 3 {
				f.SetCellValue(sheetName, cell, p.Experience)
				continue
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range rosterColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 22)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func exportRosterCSV(candidates []domain.Principal) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(rosterColumns); err != nil {
		return nil, err
	}
	for _, p := range candidates {
		if err := w.Write(rosterRow(p)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}
	return buf.Bytes(), nil
}
