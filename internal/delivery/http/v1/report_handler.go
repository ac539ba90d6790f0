package v1

import (
	"net/http"

	"go-interview-report-backend/internal/delivery/http/middleware"
	"go-interview-report-backend/internal/delivery/http/response"
	"go-interview-report-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUC domain.ReportUsecase
}

// NewReportHandler registers the report routes. exportLimit guards the PDF
// endpoint; it may be nil.
func NewReportHandler(protected *gin.RouterGroup, reportUC domain.ReportUsecase, exportLimit gin.HandlerFunc) {
	handler := &ReportHandler{reportUC: reportUC}

	reports := protected.Group("/interviews/:id/report")
	{
		reports.GET("", handler.GetReport)
		if exportLimit != nil {
			reports.GET("/pdf", exportLimit, handler.ExportReport)
		} else {
			reports.GET("/pdf", handler.ExportReport)
		}
	}
}

// GetReport godoc
// @Summary      Get an interview report
// @Description  Returns score rings, the qualitative label, strengths, weaknesses and feedback for one interview
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  response.Response{data=domain.InterviewReport}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reportUC.GetReport(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview report", report)
}

// ExportReport godoc
// @Summary      Download an interview report
// @Description  Renders the report summary as a PDF named after the job title
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {file}    file
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /interviews/{id}/report/pdf [get]
func (h *ReportHandler) ExportReport(c *gin.Context) {
	data, filename, err := h.reportUC.ExportReport(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Attachment(c, filename, response.ContentTypeFor(filename, "application/pdf"), data)
}
