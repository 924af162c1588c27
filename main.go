package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Jead100/restaurant-api/configs"
	"github.com/Jead100/restaurant-api/middlewares"
	"github.com/Jead100/restaurant-api/routes"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedGroups(db); err != nil {
		log.Fatalf("seed groups: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
