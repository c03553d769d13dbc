package routes

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KozhevnikovM/devman-sensive-blog/config"
	"github.com/KozhevnikovM/devman-sensive-blog/middleware"
	"github.com/KozhevnikovM/devman-sensive-blog/services"
	"github.com/KozhevnikovM/devman-sensive-blog/templates"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер.
// visits может быть nil: тогда посещения не считаются.
func SetupRouter(cfg *config.Config, db *gorm.DB, visits *services.VisitCounter) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.RecoveryMiddleware())

	// CORS нужен только для отдачи static/media на чужие домены
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.AllowedOrigins,
			AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type"},
			ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		}))
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.Static("/static", cfg.StaticDir)
	r.Static("/media", cfg.MediaDir)

	SetupBlogRoutes(r, db, cfg.MediaURL, visits)

	return r, nil
}
