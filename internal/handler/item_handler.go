package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-platform/service-sharing/internal/application"
	"github.com/shareit-platform/service-sharing/internal/middleware"
	"github.com/shareit-platform/service-sharing/internal/response"
)

// ItemHandler handles HTTP requests for item catalog operations.
type ItemHandler struct {
	service *application.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *application.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes registers all item routes on the given router group.
func (h *ItemHandler) RegisterRoutes(r *gin.RouterGroup) {
	items := r.Group("/items")
	items.Use(middleware.SharerID())
	{
		items.POST("", h.CreateItem)
		items.PATCH("/:itemId", h.UpdateItem)
		items.GET("/search", h.SearchItems)
		items.GET("/:itemId", h.GetItem)
		items.GET("", h.GetOwnerItems)
		items.POST("/:itemId/comment", h.CreateComment)
	}
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	var req application.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateItem(c.Request.Context(), ownerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateItem handles PATCH /items/:itemId.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	var req application.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateItem(c.Request.Context(), ownerID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetItem handles GET /items/:itemId.
func (h *ItemHandler) GetItem(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	result, err := h.service.GetItemByID(c.Request.Context(), requesterID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOwnerItems handles GET /items?from=&size=.
func (h *ItemHandler) GetOwnerItems(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	from, size, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := h.service.GetOwnerItems(c.Request.Context(), ownerID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// SearchItems handles GET /items/search?text=&from=&size=.
func (h *ItemHandler) SearchItems(c *gin.Context) {
	from, size, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := h.service.SearchItems(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateComment handles POST /items/:itemId/comment.
func (h *ItemHandler) CreateComment(c *gin.Context) {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	var req application.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateComment(c.Request.Context(), authorID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
