package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/cardlink/pkg/auth"
	"github.com/khoahotran/cardlink/pkg/logger"
	"github.com/khoahotran/cardlink/pkg/metrics"
)

type Handlers struct {
	Auth        *AuthHandler
	Account     *AccountHandler
	Profile     *ProfileHandler
	ProfileLink *ProfileLinkHandler
	VCard       *VCardHandler
	Photo       *PhotoHandler
}

func NewRouter(h Handlers, jwtSvc *auth.JWTService, log logger.Logger) *gin.Engine {
	RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery(), metrics.Middleware(), ErrorMiddleware(log))

	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/refresh-token", h.Auth.RefreshToken)
		api.POST("/accounts", h.Account.RegisterAccount)

		api.GET("/profiles", h.Profile.GetProfileByCard)
		api.GET("/profiles/:profileId", h.Profile.GetPublicProfile)

		acc := api.Group("/accounts/:accountId")
		acc.Use(AuthMiddleware(jwtSvc, log), AccountOwnerMiddleware())
		{
			acc.GET("", h.Account.GetAccount)
			acc.PUT("", h.Account.UpdateAccount)
			acc.PUT("/cards/:cardId", h.Account.UpdateCard)

			types := acc.Group("/custom-link-types")
			{
				types.POST("", h.Account.CreateCustomLinkType)
				types.PUT("/:typeId", h.Account.UpdateCustomLinkType)
				types.DELETE("/:typeId", h.Account.DeleteCustomLinkType)
			}

			acc.POST("/profiles", h.Profile.CreateProfile)
			acc.POST("/cards/:cardId/profiles", h.Profile.CreateProfile)

			// Account and card profiles share one set of handlers; cardId is
			// absent on the first shape.
			registerProfileRoutes(acc.Group("/profiles/:profileId"), h)
			registerProfileRoutes(acc.Group("/cards/:cardId/profiles/:profileId"), h)
		}
	}

	return router
}

func registerProfileRoutes(g *gin.RouterGroup, h Handlers) {
	g.PUT("", h.Profile.UpdateProfile)
	g.DELETE("", h.Profile.DeleteProfile)

	links := g.Group("/links")
	{
		links.POST("", h.ProfileLink.CreateLink)
		links.PUT("/:linkId", h.ProfileLink.UpdateLink)
		links.DELETE("/:linkId", h.ProfileLink.DeleteLink)
	}

	vcards := g.Group("/v-cards")
	{
		vcards.POST("", h.VCard.CreateVCard)
		vcards.PUT("/:vCardId", h.VCard.UpdateVCard)
		vcards.DELETE("/:vCardId", h.VCard.DeleteVCard)
	}

	photos := g.Group("/photos")
	{
		photos.POST("", h.Photo.UploadPhoto)
		photos.PUT("/:photoId", h.Photo.ReplacePhoto)
		photos.DELETE("/:photoId", h.Photo.DeletePhoto)
	}
}
