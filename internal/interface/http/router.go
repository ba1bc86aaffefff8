package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/outfit-advisor/internal/domain/auth"
	"github.com/yanqian/outfit-advisor/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/refresh", handler.Refresh)
		authGroup.GET("/me", authMiddleware(authSvc), handler.Me)

		api.POST("/outfits/preview", handler.PreviewOutfit)

		secured := api.Group("", authMiddleware(authSvc))
		secured.POST("/wardrobe/items", handler.AddItem)
		secured.GET("/wardrobe/items", handler.ListItems)
		secured.DELETE("/wardrobe/items/:id", handler.DeleteItem)
		secured.GET("/wardrobe/items/:id/image", handler.ItemImage)
		secured.POST("/outfits/suggest", handler.SuggestOutfit)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
