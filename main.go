package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"shakwa-be/config"
	"shakwa-be/controllers"
	"shakwa-be/routes"
	"shakwa-be/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}

	log.Println("MongoDB connection established successfully!")

	config.ConnectRedis()

	store, err := storage.NewS3Store(
		context.Background(),
		os.Getenv("S3_REGION"),
		os.Getenv("S3_BUCKET"),
		os.Getenv("S3_ENDPOINT"),
	)
	if err != nil {
		log.Fatalf("Failed to init object storage: %v", err)
	}
	controllers.Media = storage.NewMediaHelper(store, storage.ImageMode(os.Getenv("IMAGE_STORAGE_MODE")))

	dailyLimit := 10
	if v, err := strconv.Atoi(os.Getenv("COMPLAINT_DAILY_LIMIT")); err == nil && v > 0 {
		dailyLimit = v
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = []string{origins}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	r.Use(cors.New(corsConfig))

	routes.AuthRoutes(r)
	routes.ComplaintRoutes(r, dailyLimit)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
