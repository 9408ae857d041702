package api

import (
	"errors"
	"net/http"

	resdto "dealstack/internal/handler/dto/response"
	"dealstack/internal/handler/httperr"
	"dealstack/internal/pkg/config"
	"dealstack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MerchantHandler struct {
	q    queries.MerchantQueries
	site config.SiteConfig
}

func NewMerchantHandler(q queries.MerchantQueries, cfg config.Config) *MerchantHandler {
	return &MerchantHandler{q: q, site: cfg.Site}
}

// @Summary List stores
// @Description List stores with filters and offset pagination
// @Tags stores
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Max items (1-100, default 20)"
// @Param q query string false "Free text search"
// @Param category query int false "Category id"
// @Param sort query string false "newest or popular"
// @Param locale query string false "Locale"
// @Success 200 {object} resdto.ListResponse
// @Failure 400 {object} httperr.Response
// @Router /stores [get]
func (h *MerchantHandler) List(c *gin.Context) {
	req, err := parseListRequest(c, h.site)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category id", nil)
		return
	}

	page, _ := h.q.List(c.Request.Context(), req) // degrades internally, never errors
	c.JSON(http.StatusOK, resdto.ListResponse{
		Data: resdto.FromMerchantList(page.Rows),
		Meta: listMeta(c, h.site, "/api/stores", req, page.Total),
	})
}

// @Summary Get store
// @Description Get a store by slug
// @Tags stores
// @Produce json
// @Param slug path string true "Store slug"
// @Success 200 {object} resdto.MerchantResponse
// @Failure 404 {object} httperr.Response
// @Router /stores/{slug} [get]
func (h *MerchantHandler) Get(c *gin.Context) {
	view, err := h.q.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrMerchantNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMerchantView(view))
}
