package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/middleware"
	"github.com/SscSPs/bizdash/internal/notify"
	"github.com/gin-gonic/gin"
)

// NotificationFeed exposes recent notifications and the live websocket stream.
type NotificationFeed interface {
	Recent() []notify.Notification
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

type adminHandler struct {
	store portssvc.StoreAdminSvc
	users portssvc.UserReaderSvc
	feed  NotificationFeed
}

// RegisterAdminRoutes registers reload, the notification feed and the current user route.
// These stay reachable while the store is loading.
func RegisterAdminRoutes(rg *gin.RouterGroup, store portssvc.StoreAdminSvc, users portssvc.UserReaderSvc, feed NotificationFeed) {
	h := &adminHandler{store: store, users: users, feed: feed}

	rg.POST("/reload", h.reload)
	rg.GET("/me", h.getMe)
	if feed != nil {
		notifications := rg.Group("/notifications")
		{
			notifications.GET("", h.listNotifications)
			notifications.GET("/ws", gin.WrapH(feed))
		}
	}
}

// reload godoc
// @Summary Reload all data
// @Description Refetches every table. Data routes answer 503 only before the first load completes.
// @Tags admin
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reload [post]
func (h *adminHandler) reload(c *gin.Context) {
	if err := h.store.Load(c.Request.Context()); err != nil {
		respondError(c, err, "reload data")
		return
	}
	c.Status(http.StatusNoContent)
}

// getMe godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *adminHandler) getMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	user, err := h.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "get user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listNotifications godoc
// @Summary Recent notifications
// @Description The most recent notifications, newest first. Live updates are pushed on /notifications/ws.
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.ListResponse[notify.Notification]
// @Security BearerAuth
// @Router /notifications [get]
func (h *adminHandler) listNotifications(c *gin.Context) {
	recent := h.feed.Recent()
	c.JSON(http.StatusOK, dto.ListResponse[notify.Notification]{Data: recent, Count: len(recent)})
}
