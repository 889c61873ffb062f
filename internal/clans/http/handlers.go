package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/GoSim-25-26J-441/clan-api/internal/clans/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) create(c *gin.Context) {
	var req createClanRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.fail(c, "create", domain.Validation("invalid body"))
		return
	}

	in, err := domain.NormalizeNewClan(req.Name, req.Region)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	clan, err := h.store.Create(c.Request.Context(), in.Name, in.Region)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	c.JSON(http.StatusOK, clanResponse{Data: clan})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, newClanList(items))
}

func (h *Handler) search(c *gin.Context) {
	var params searchClansQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		h.fail(c, "search", domain.Validation("invalid query"))
		return
	}

	q, err := domain.NormalizeSearchQuery(params.Name)
	if err != nil {
		h.fail(c, "search", err)
		return
	}

	items, err := h.store.Search(c.Request.Context(), q)
	if err != nil {
		h.fail(c, "search", err)
		return
	}
	c.JSON(http.StatusOK, newClanList(items))
}

func (h *Handler) delete(c *gin.Context) {
	// Reject malformed ids before spending a round trip on them.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, "delete", domain.Validation("invalid id"))
		return
	}

	deleted, err := h.store.Delete(c.Request.Context(), id.String())
	if err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{DeletedID: deleted})
}

func newClanList(items []domain.Clan) clanListResponse {
	if items == nil {
		items = []domain.Clan{}
	}
	return clanListResponse{Data: items, Count: len(items)}
}
