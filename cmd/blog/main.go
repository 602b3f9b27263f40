package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/blogstack/blog-service/internal/blog/handler"
	"github.com/blogstack/blog-service/internal/blog/repository"
	"github.com/blogstack/blog-service/internal/blog/service"
	"github.com/blogstack/blog-service/internal/database"
	"github.com/gin-gonic/gin"
)

// Minimal standalone blog service: just the /posts endpoints, no limiter or
// metrics. Handy for local development and integration tests.
func main() {
	port := os.Getenv("BLOG_SERVICE_PORT")
	if port == "" {
		port = "5010"
	}

	r := gin.New()
	r.Use(gin.Recovery())

	var repo service.Repository
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI != "" {
		client, err := database.ConnectMongo(context.Background(), mongoURI, 10*time.Second)
		if err != nil {
			log.Printf("warning: cannot connect to MongoDB (%v) — using memory-backed repo", err)
			repo = repository.NewMemoryRepo()
		} else {
			repo = repository.NewMongoRepo(database.BlogCollection(client, os.Getenv("MONGODB_DATABASE")))
		}
	} else {
		repo = repository.NewMemoryRepo()
	}

	handler.RegisterBlogRoutes(r, service.New(repo))

	log.Printf("blog service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
