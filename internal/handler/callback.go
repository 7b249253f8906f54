package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/jobbot-gateway/internal/service"
	"github.com/maxviazov/jobbot-gateway/pkg/response"
)

// CallbackHandler receives pressed inline buttons forwarded by the bot transport.
type CallbackHandler struct {
	svc service.CallbackService
}

func NewCallbackHandler(svc service.CallbackService) *CallbackHandler {
	return &CallbackHandler{svc: svc}
}

func (h *CallbackHandler) Register(r *gin.RouterGroup) {
	r.POST(userScope+"/callbacks", h.handle)
}

type callbackRequest struct {
	ActionToken string `json:"action_token" binding:"required,max=64"`
}

func (h *CallbackHandler) handle(c *gin.Context) {
	tgID, err := tgIDParam(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req callbackRequest
	if err := bindJSON(c, &req); err != nil {
		response.WriteError(c, err)
		return
	}
	screen, rendered, err := h.svc.HandleCallback(c.Request.Context(), tgID, req.ActionToken)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if !rendered {
		// Info buttons: the transport only acknowledges the callback.
		c.Status(http.StatusNoContent)
		return
	}
	response.WriteData(c, http.StatusOK, screen)
}
