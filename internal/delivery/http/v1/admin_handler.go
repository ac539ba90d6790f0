package v1

import (
	"errors"
	"io"
	"net/http"

	"go-interview-report-backend/internal/delivery/http/middleware"
	"go-interview-report-backend/internal/delivery/http/response"
	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/pkg/apperror"
	"go-interview-report-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	rosterUC domain.RosterUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, rosterUC domain.RosterUsecase, exportLimit gin.HandlerFunc) {
	handler := &AdminHandler{rosterUC: rosterUC}

	admin := protected.Group("/admin")
	{
		admin.GET("/candidates", handler.ListCandidates)
		admin.PATCH("/candidates/:uid/status", handler.ToggleStatus)
		if exportLimit != nil {
			admin.GET("/candidates/export", exportLimit, handler.ExportCandidates)
		} else {
			admin.GET("/candidates/export", handler.ExportCandidates)
		}
	}
}

// ListCandidates godoc
// @Summary      List candidate accounts
// @Description  Returns all candidate accounts matching the search on full name or email, with the status action for each
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Case-insensitive name or email substring"
// @Success      200     {object}  response.Response{data=domain.CandidateRoster}
// @Failure      403     {object}  response.Response
// @Router       /admin/candidates [get]
func (h *AdminHandler) ListCandidates(c *gin.Context) {
	var query domain.RosterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", validation.FormatValidationErrors(err))
		return
	}

	roster, err := h.rosterUC.ListCandidates(c.Request.Context(), middleware.CurrentIdentity(c), query.Search)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates list", roster)
}

// ToggleStatus godoc
// @Summary      Enable or disable a candidate account
// @Description  Flips the account between active and disabled. The body must confirm the change
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uid   path      string                      true  "Candidate UID"
// @Param        body  body      domain.ToggleStatusRequest  true  "Confirmation"
// @Success      200   {object}  response.Response{data=domain.Principal}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /admin/candidates/{uid}/status [patch]
func (h *AdminHandler) ToggleStatus(c *gin.Context) {
	var req domain.ToggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	principal, err := h.rosterUC.ToggleStatus(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("uid"), req.Confirm)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Account status updated", principal)
}

// ExportCandidates godoc
// @Summary      Export candidate accounts
// @Description  Downloads the filtered roster as Excel (default) or CSV
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Security     BearerAuth
// @Param        search  query     string  false  "Case-insensitive name or email substring"
// @Param        format  query     string  false  "xlsx (default) or csv"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /admin/candidates/export [get]
func (h *AdminHandler) ExportCandidates(c *gin.Context) {
	var query domain.RosterExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", validation.FormatValidationErrors(err))
		return
	}

	data, filename, err := h.rosterUC.ExportCandidates(c.Request.Context(), middleware.CurrentIdentity(c), query.Search, query.Format)
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if query.Format == "csv" {
		contentType = "text/csv"
	}
	response.Attachment(c, filename, contentType, data)
}
