package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dealstack/internal/handler/api"
	"dealstack/internal/handler/middleware"
	"dealstack/internal/pkg/config"
	"dealstack/internal/pkg/ratelimit"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	couponHandler *api.CouponHandler,
	merchantHandler *api.MerchantHandler,
	blogHandler *api.BlogHandler,
	clickHandler *api.ClickHandler,
	subscribeHandler *api.SubscribeHandler,
	ipLimiter *ratelimit.IPLimiterPool,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, couponHandler, merchantHandler, blogHandler, clickHandler, subscribeHandler, ipLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	couponHandler *api.CouponHandler,
	merchantHandler *api.MerchantHandler,
	blogHandler *api.BlogHandler,
	clickHandler *api.ClickHandler,
	subscribeHandler *api.SubscribeHandler,
	ipLimiter *ratelimit.IPLimiterPool,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/coupons", Handler: couponHandler.List},
			{Method: http.MethodGet, Path: "/coupons/:id", Handler: couponHandler.Get},
			{Method: http.MethodGet, Path: "/stores", Handler: merchantHandler.List},
			{Method: http.MethodGet, Path: "/stores/:slug", Handler: merchantHandler.Get},
			{Method: http.MethodGet, Path: "/blogs", Handler: blogHandler.List},
			{Method: http.MethodGet, Path: "/blogs/:slug", Handler: blogHandler.Get},
			{Method: http.MethodPost, Path: "/offers/:offerId/click", Handler: clickHandler.Click},
			{Method: http.MethodPost, Path: "/subscribe", Handler: subscribeHandler.Subscribe,
				Mw: []gin.HandlerFunc{middleware.IPRateLimit(ipLimiter)}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
