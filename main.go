package main

import (
	"garden/config"
	"garden/db"
	"garden/handlers"
	"garden/loader"
	"garden/models"
	"garden/utils"
	"garden/web"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const tagListCacheTime = 300 // seconds, tags only change on start-up seeding

func main() {
	db.Init()
	models.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter()

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length", utils.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, forms must never be served stale

	// HTML templates
	router.LoadHTMLGlob(config.TEMPLATES_GLOB)

	// Plant tags, the plant is resolved from :plant_id before the handler runs
	plantRouter := &loader.Router{Base: router}
	plantRouter.GET("/plants/:plant_id/plant_tags/new", handlers.PlantTagNew)
	plantRouter.POST("/plants/:plant_id/plant_tags", handlers.PlantTagCreate)
	// Tags, overrides the default no-cache header
	router.GET("/tags", (&utils.CacheRouter{CacheTime: tagListCacheTime}).Handler(), handlers.TagList)
	// Gardens
	router.GET("/gardens/:garden_id", web.GardenView)
	// Misc
	router.GET("/robots.txt", handlers.DisallowRobots)
	return router
}
