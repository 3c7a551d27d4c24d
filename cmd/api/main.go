package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diegodonald/saas-barber-sub001/internal/config"
	dbpkg "github.com/diegodonald/saas-barber-sub001/internal/db"
	"github.com/diegodonald/saas-barber-sub001/internal/infra/lock"
	"github.com/diegodonald/saas-barber-sub001/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := dbpkg.NewRedis(cfg)
	locker := lock.NewBarberLocker(rdb)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, locker, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
