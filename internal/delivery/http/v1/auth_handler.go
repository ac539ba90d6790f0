package v1

import (
	"net/http"

	"go-interview-report-backend/internal/delivery/http/middleware"
	"go-interview-report-backend/internal/delivery/http/response"
	"go-interview-report-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	protected.GET("/me", handler.Me)
}

// Me godoc
// @Summary      Get current user
// @Description  Returns the account behind the bearer token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.Principal}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	me, err := h.authUC.GetProfile(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", me)
}
