package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/service"
	"github.com/maxviazov/jobbot-gateway/pkg/response"
)

// ListingHandler serves paginated screens. Every response is a model.Screen.
type ListingHandler struct {
	svc service.ListingService
}

func NewListingHandler(svc service.ListingService) *ListingHandler { return &ListingHandler{svc: svc} }

func (h *ListingHandler) Register(r *gin.RouterGroup) {
	g := r.Group(userScope)
	{
		g.POST("/searches", h.search)
		g.GET("/searches/current", h.page(service.ListingService.VacancyPage))
		g.GET("/applications", h.page(service.ListingService.ApplicationHistory))
		g.GET("/admin/users", h.page(service.ListingService.AdminUsers))
		g.GET("/admin/active-users", h.page(service.ListingService.ActiveUsers))
	}
}

type searchRequest struct {
	Query string `json:"query" binding:"required"`
}

func (h *ListingHandler) search(c *gin.Context) {
	tgID, err := tgIDParam(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req searchRequest
	if err := bindJSON(c, &req); err != nil {
		response.WriteError(c, err)
		return
	}
	screen, err := h.svc.SearchVacancies(c.Request.Context(), tgID, req.Query)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, screen)
}

// pageRenderer is a ListingService method expression; the service is bound per request.
type pageRenderer func(svc service.ListingService, ctx context.Context, tgID int64, page int) (model.Screen, error)

// page adapts a listing use case to GET ...?page=N.
func (h *ListingHandler) page(render pageRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tgID, err := tgIDParam(c)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		page, err := pageQuery(c)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		screen, err := render(h.svc, c.Request.Context(), tgID, page)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteData(c, http.StatusOK, screen)
	}
}
