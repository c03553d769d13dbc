package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KozhevnikovM/devman-sensive-blog/controllers"
	"github.com/KozhevnikovM/devman-sensive-blog/middleware"
	"github.com/KozhevnikovM/devman-sensive-blog/services"
)

func SetupBlogRoutes(r *gin.Engine, db *gorm.DB, mediaURL string, visits *services.VisitCounter) {
	blogController := controllers.NewBlogController(db, mediaURL)

	r.GET("/", middleware.TrackVisit(visits, "index"), blogController.Index)
	r.GET("/posts/:slug/", middleware.TrackVisit(visits, "post_detail"), blogController.PostDetail)
	r.GET("/tags/:tag_title/", middleware.TrackVisit(visits, "tag_filter"), blogController.TagFilter)
	r.GET("/contacts/", middleware.TrackVisit(visits, controllers.ContactsPage), blogController.Contacts)
	r.NoRoute(blogController.NotFound)
}
