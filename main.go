package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/KozhevnikovM/devman-sensive-blog/config"
	"github.com/KozhevnikovM/devman-sensive-blog/database"
	"github.com/KozhevnikovM/devman-sensive-blog/routes"
	"github.com/KozhevnikovM/devman-sensive-blog/services"
	"github.com/KozhevnikovM/devman-sensive-blog/utils"
)

func main() {
	cfg := config.LoadConfig()

	// Часовой пояс сайта для логов и дат на страницах
	utils.SetLocalZone(cfg.TimeZone)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	if err := utils.InitLogger(cfg.LogsDir); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Миграция
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	if cfg.SeedDemo {
		if err := services.SeedDemo(context.Background(), db); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
		log.Println("Demo data seeded (if needed)")
	}

	// Redis нужен только для статистики посещений
	var visits *services.VisitCounter
	if cfg.RedisAddr != "" {
		var rdb *redis.Client
		rdb, err = utils.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer rdb.Close()
		log.Println("Connected to Redis")

		visits = services.NewVisitCounter(rdb)
		c, err := services.StartVisitFlushCron(db, visits, cfg.VisitFlushSchedule)
		if err != nil {
			log.Fatalf("failed to start visit flush cron: %v", err)
		}
		defer c.Stop()
	} else {
		log.Println("REDIS_ADDR is empty, visit statistics disabled")
	}

	r, err := routes.SetupRouter(cfg, db, visits)
	if err != nil {
		log.Fatalf("failed to setup router: %v", err)
	}

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
