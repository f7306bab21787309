package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-platform/service-sharing/internal/application"
	"github.com/shareit-platform/service-sharing/internal/middleware"
	"github.com/shareit-platform/service-sharing/internal/response"
)

// RequestHandler handles HTTP requests for item want-ads.
type RequestHandler struct {
	service *application.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *application.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes registers all item request routes on the given router group.
func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	requests.Use(middleware.SharerID())
	{
		requests.POST("", h.CreateRequest)
		requests.GET("/all", h.GetOtherRequests)
		requests.GET("/:requestId", h.GetRequest)
		requests.GET("", h.GetOwnRequests)
	}
}

// CreateRequest handles POST /requests.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	var req application.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateRequest(c.Request.Context(), requesterID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOwnRequests handles GET /requests.
func (h *RequestHandler) GetOwnRequests(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	result, err := h.service.GetOwnRequests(c.Request.Context(), requesterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOtherRequests handles GET /requests/all?from=&size=.
func (h *RequestHandler) GetOtherRequests(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	from, size, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := h.service.GetOtherRequests(c.Request.Context(), requesterID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetRequest handles GET /requests/:requestId.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	requestID, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid request id")
		return
	}

	result, err := h.service.GetRequestByID(c.Request.Context(), requesterID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
