package api

import (
	"errors"
	"net/http"

	reqdto "dealstack/internal/handler/dto/request"
	"dealstack/internal/handler/httperr"
	"dealstack/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SubscribeHandler struct {
	cmds commands.SubscribeCommands
}

func NewSubscribeHandler(cmds commands.SubscribeCommands) *SubscribeHandler {
	return &SubscribeHandler{cmds: cmds}
}

// @Summary Subscribe to the newsletter
// @Tags subscribe
// @Accept json
// @Produce json
// @Param request body reqdto.SubscribeRequest true "Subscribe request"
// @Success 202 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /subscribe [post]
func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Subscribe(c.Request.Context(), req.Email, c.ClientIP()); err != nil {
		if errors.Is(err, commands.ErrInvalidEmail) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email address", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Subscribe failed", nil)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Subscribed"})
}
