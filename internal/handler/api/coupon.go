package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "dealstack/internal/handler/dto/response"
	"dealstack/internal/handler/httperr"
	"dealstack/internal/pkg/config"
	"dealstack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	q    queries.CouponQueries
	site config.SiteConfig
}

func NewCouponHandler(q queries.CouponQueries, cfg config.Config) *CouponHandler {
	return &CouponHandler{q: q, site: cfg.Site}
}

// @Summary List coupons
// @Description List coupons with filters and offset or cursor pagination
// @Tags coupons
// @Produce json
// @Param page query int false "Page (offset mode)"
// @Param limit query int false "Max items (1-100, default 20)"
// @Param q query string false "Free text search"
// @Param category query int false "Category id"
// @Param store query string false "Store slug"
// @Param type query string false "Coupon type"
// @Param status query string false "active or expired"
// @Param sort query string false "newest, ending_soon, popular, pinned"
// @Param locale query string false "Locale"
// @Param cursor query string false "Opaque cursor (keyset mode)"
// @Success 200 {object} resdto.ListResponse
// @Failure 400 {object} httperr.Response
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	req, err := parseListRequest(c, h.site)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category id", nil)
		return
	}

	page, err := h.q.List(c.Request.Context(), req)
	if err != nil {
		// cursor mode propagates store errors; the endpoint still degrades
		// to an empty page rather than failing the shell
		hasMore := false
		c.JSON(http.StatusOK, resdto.ListResponse{
			Data: []*resdto.CouponResponse{},
			Meta: resdto.Meta{Page: req.Page, Limit: req.Limit, HasMore: &hasMore, TotalPages: 1},
		})
		return
	}

	var meta resdto.Meta
	if req.Cursor != "" {
		meta = cursorMeta(req, page)
	} else {
		meta = listMeta(c, h.site, "/api/coupons", req, page.Total)
		if page.NextCursor != "" {
			meta.NextCursor = page.NextCursor
		}
	}
	c.JSON(http.StatusOK, resdto.ListResponse{
		Data: resdto.FromCouponList(page.Rows),
		Meta: meta,
	})
}

// @Summary Get coupon
// @Description Get a coupon by numeric id
// @Tags coupons
// @Produce json
// @Param id path int true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}
