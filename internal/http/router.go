package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robertnguyen279/son-phuong-nam-backend/internal/http/handlers"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/http/middleware"
)

func BuildRouter(uh *handlers.UserHandlers, ch *handlers.CatalogHandlers, th *handlers.ContentHandlers, fh *handlers.UploadHandlers, authmw *middleware.AuthMW, corsOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), cors.New(corsConfig(corsOrigins)), middleware.RequestLogger(logger), middleware.ErrorResponder(logger))
	r.NoRoute(middleware.NotFoundRoute())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	user := r.Group("/user")
	user.POST("", uh.Signup)
	user.POST("/login", uh.Login)
	user.POST("/token", uh.Token)
	user.POST("/loginByThirdParty", uh.LoginByThirdParty)

	self := user.Group("").Use(authmw.RequireAuth())
	self.GET("", uh.Me)
	self.PATCH("", uh.UpdateSelf)
	self.PATCH("/password", uh.ChangePassword)
	self.DELETE("/logout", uh.Logout)

	sup := user.Group("").Use(authmw.RequireAuth(), authmw.RequireSuperviser())
	sup.GET("/findUsers", uh.FindUsers)
	sup.GET("/:id", uh.GetByID)
	sup.PATCH("/:id", uh.UpdateByID)
	sup.DELETE("/:id", uh.DeleteByID)

	adm := user.Group("").Use(authmw.RequireAuth(), authmw.RequireAdmin())
	adm.POST("/createByAdmin", uh.CreateByAdmin)
	adm.PATCH("/admin/:id", uh.UpdateByAdmin)
	adm.DELETE("/admin/:id", uh.DeleteByAdmin)

	product := r.Group("/product")
	product.GET("", ch.List)
	product.GET("/:id", ch.GetByID)
	product.GET("/url/:urlString", ch.GetBySlug)

	productMut := product.Group("").Use(authmw.RequireAuth(), authmw.RequireSuperviser())
	productMut.POST("", ch.Create)
	productMut.PATCH("/:id", ch.Update)
	productMut.DELETE("/:id", ch.Delete)

	post := r.Group("/post")
	post.GET("", th.ListPosts)
	post.GET("/:id", th.GetPost)

	postMut := post.Group("").Use(authmw.RequireAuth(), authmw.RequireSuperviser())
	postMut.POST("", th.CreatePost)
	postMut.PATCH("/:id", th.UpdatePost)
	postMut.DELETE("/:id", th.DeletePost)

	r.GET("/site", th.GetSiteInfo)
	r.PATCH("/site", authmw.RequireAuth(), authmw.RequireAdmin(), th.UpdateSiteInfo)

	carousel := r.Group("/carousel")
	carousel.GET("", th.ListCarousel)

	carouselMut := carousel.Group("").Use(authmw.RequireAuth(), authmw.RequireSuperviser())
	carouselMut.POST("", th.CreateCarouselItem)
	carouselMut.PATCH("/:id", th.UpdateCarouselItem)
	carouselMut.DELETE("/:id", th.DeleteCarouselItem)

	r.POST("/upload", authmw.RequireAuth(), authmw.RequireSuperviser(), fh.Upload)

	return r
}

// corsConfig allows the configured browser origins; with no explicit list the
// API stays open to any origin, without credentials.
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
