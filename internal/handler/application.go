package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/jobbot-gateway/internal/service"
	"github.com/maxviazov/jobbot-gateway/pkg/response"
)

type ApplicationHandler struct {
	svc service.ApplicationService
}

func NewApplicationHandler(svc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Register mounts POST only; the GET of the same path is the paginated history screen.
func (h *ApplicationHandler) Register(r *gin.RouterGroup) {
	r.POST(userScope+"/applications", h.apply)
}

type applyRequest struct {
	VacancyID int64 `json:"vacancy_id" binding:"required,gt=0"`
}

func (h *ApplicationHandler) apply(c *gin.Context) {
	tgID, err := tgIDParam(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req applyRequest
	if err := bindJSON(c, &req); err != nil {
		response.WriteError(c, err)
		return
	}
	app, err := h.svc.Apply(c.Request.Context(), tgID, req.VacancyID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, app)
}
