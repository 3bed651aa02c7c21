package v1

import (
	"net/http"

	"project-request-backend/internal/delivery/http/response"
	"project-request-backend/internal/domain"
	"project-request-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectRequestHandler struct {
	projectRequestUC domain.ProjectRequestUsecase
	projectTypes     []domain.ProjectType
}

// NewProjectRequestHandler registers the project request routes (public, no auth required)
func NewProjectRequestHandler(public *gin.RouterGroup, projectRequestUC domain.ProjectRequestUsecase, projectTypes []domain.ProjectType) {
	handler := &ProjectRequestHandler{
		projectRequestUC: projectRequestUC,
		projectTypes:     projectTypes,
	}

	public.POST("/submit-request", handler.SubmitRequest)
	public.GET("/project-types", handler.ListProjectTypes)
}

// SubmitRequest godoc
// @Summary      Submit Project Request
// @Description  Validate a project request, notify the business and send the submitter a confirmation email.
// @Tags         project-requests
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ProjectRequest  true  "Project Request"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /submit-request [post]
func (h *ProjectRequestHandler) SubmitRequest(c *gin.Context) {
	var req domain.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(domain.MsgInvalidBody))
		return
	}

	outcome, err := h.projectRequestUC.Submit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, outcome.Message, nil)
}

// ListProjectTypes godoc
// @Summary      List Project Types
// @Description  Get the project types offered by the request form, with their indicative prices.
// @Tags         project-requests
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ProjectType}
// @Router       /project-types [get]
func (h *ProjectRequestHandler) ListProjectTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, "Project types retrieved", h.projectTypes)
}
