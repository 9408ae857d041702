package api

import (
	"errors"
	"net/http"

	reqdto "dealstack/internal/handler/dto/request"
	resdto "dealstack/internal/handler/dto/response"
	"dealstack/internal/handler/httperr"
	"dealstack/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ClickHandler struct {
	cmds commands.ClickCommands
}

func NewClickHandler(cmds commands.ClickCommands) *ClickHandler {
	return &ClickHandler{cmds: cmds}
}

// @Summary Record offer click
// @Description Resolve an offer reference, reveal its code and redirect target, and count the click
// @Tags offers
// @Accept json
// @Produce json
// @Param offerId path string true "Offer reference"
// @Param request body reqdto.ClickRequest false "Click context"
// @Success 200 {object} resdto.ClickResponse
// @Failure 404 {object} resdto.ClickResponse
// @Failure 429 {object} resdto.ClickResponse
// @Failure 500 {object} resdto.ClickResponse
// @Router /offers/{offerId}/click [post]
func (h *ClickHandler) Click(c *gin.Context) {
	var body reqdto.ClickRequest
	// the body is optional context; a missing or malformed one is ignored
	_ = c.ShouldBindJSON(&body)

	result, err := h.cmds.Click(c.Request.Context(), commands.ClickInput{
		OfferRef:  c.Param("offerId"),
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  body.Referrer,
		Platform:  body.Platform,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, resdto.ClickResponse{OK: false, Message: "Too many clicks, try again later"})
		case errors.Is(err, commands.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, resdto.ClickResponse{OK: false, Message: "Offer not found"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Click failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ClickResponse{
		OK:          true,
		Code:        result.Code,
		RedirectURL: result.RedirectURL,
		Message:     "Click recorded",
	})
}
