package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/service"
	"github.com/maxviazov/jobbot-gateway/pkg/response"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Register(r *gin.RouterGroup) {
	r.POST("", h.register)
	r.GET(userScope, h.get)

	ban := userScope + "/admin/users/:target_tg_id/ban"
	r.POST(ban, h.changeBan(service.UserService.BanUser))
	r.DELETE(ban, h.changeBan(service.UserService.UnbanUser))
}

type registerUserRequest struct {
	TgID         int64  `json:"tg_id" binding:"required,gt=0"`
	Username     string `json:"username" binding:"max=64"`
	FirstName    string `json:"first_name" binding:"required,max=64"`
	LastName     string `json:"last_name" binding:"max=64"`
	LanguageCode string `json:"language_code" binding:"max=10"`
}

func (h *UserHandler) register(c *gin.Context) {
	var req registerUserRequest
	if err := bindJSON(c, &req); err != nil {
		response.WriteError(c, err)
		return
	}
	u, err := h.svc.RegisterUser(c.Request.Context(), model.User{
		TgID:         req.TgID,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		LanguageCode: req.LanguageCode,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, u)
}

func (h *UserHandler) get(c *gin.Context) {
	tgID, err := tgIDParam(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	u, err := h.svc.GetUser(c.Request.Context(), tgID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, u)
}

type banChanger func(svc service.UserService, ctx context.Context, adminTgID, targetTgID int64) (model.User, error)

// changeBan serves both ban and unban; :tg_id is the acting admin.
func (h *UserHandler) changeBan(change banChanger) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminTgID, err := tgIDParam(c)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		targetTgID, err := idParam(c, "target_tg_id")
		if err != nil {
			response.WriteError(c, err)
			return
		}
		u, err := change(h.svc, c.Request.Context(), adminTgID, targetTgID)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteData(c, http.StatusOK, u)
	}
}
