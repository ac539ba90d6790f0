package v1

import (
	"net/http"

	"go-interview-report-backend/internal/delivery/http/middleware"
	"go-interview-report-backend/internal/delivery/http/response"
	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(protected *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	protected.GET("/candidates/interviews", handler.ListHistory)
}

// ListHistory godoc
// @Summary      List the caller's interviews
// @Description  Returns outcome counts over all of the caller's interviews and the cards matching the search, sorted by submission date
// @Tags         interviews
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Case-insensitive job title substring"
// @Param        sort    query     string  false  "newest (default) or oldest"
// @Success      200     {object}  response.Response{data=domain.InterviewHistory}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Router       /candidates/interviews [get]
func (h *InterviewHandler) ListHistory(c *gin.Context) {
	var query domain.InterviewListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", validation.FormatValidationErrors(err))
		return
	}

	history, err := h.interviewUC.ListHistory(c.Request.Context(), middleware.CurrentIdentity(c), query)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview history", history)
}
