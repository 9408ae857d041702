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

type BlogHandler struct {
	q    queries.BlogQueries
	site config.SiteConfig
}

func NewBlogHandler(q queries.BlogQueries, cfg config.Config) *BlogHandler {
	return &BlogHandler{q: q, site: cfg.Site}
}

// @Summary List blog posts
// @Description List published blog posts with offset pagination
// @Tags blogs
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Max items (1-100, default 20)"
// @Param q query string false "Free text search"
// @Param category query int false "Category id"
// @Param locale query string false "Locale"
// @Success 200 {object} resdto.ListResponse
// @Failure 400 {object} httperr.Response
// @Router /blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	req, err := parseListRequest(c, h.site)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category id", nil)
		return
	}

	page, _ := h.q.List(c.Request.Context(), req) // degrades internally, never errors
	c.JSON(http.StatusOK, resdto.ListResponse{
		Data: resdto.FromBlogList(page.Rows),
		Meta: listMeta(c, h.site, "/api/blogs", req, page.Total),
	})
}

// @Summary Get blog post
// @Description Get a published blog post by slug
// @Tags blogs
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} resdto.BlogResponse
// @Failure 404 {object} httperr.Response
// @Router /blogs/{slug} [get]
func (h *BlogHandler) Get(c *gin.Context) {
	view, err := h.q.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrBlogNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlogView(view))
}
