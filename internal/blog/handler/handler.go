package handler

import (
	"errors"
	"net/http"

	"github.com/blogstack/blog-service/internal/blog"
	"github.com/blogstack/blog-service/internal/blog/service"
	"github.com/blogstack/blog-service/pkg/logger"
	"github.com/gin-gonic/gin"
)

type createRequest struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

type updateRequest struct {
	ID      string  `json:"id"`
	Title   *string `json:"title,omitempty"`
	Author  *string `json:"author,omitempty"`
	Content *string `json:"content,omitempty"`
}

// RegisterBlogRoutes registers the /posts CRUD endpoints on the given engine.
func RegisterBlogRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/posts", listBlogs(svc))
	r.POST("/posts", createBlog(svc))
	r.GET("/posts/:id", getBlog(svc))
	r.PUT("/posts/:id", updateBlog(svc))
	r.DELETE("/posts/:id", deleteBlog(svc))
}

func listBlogs(svc service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			internalError(c, "list blogs", err)
			return
		}
		if list == nil {
			list = []*blog.Blog{}
		}
		c.JSON(http.StatusOK, gin.H{"blogs": list})
	}
}

func getBlog(svc service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		b, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			internalError(c, "get blog", err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

func createBlog(svc service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}
		if req.Author == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "author is required"})
			return
		}
		b := &blog.Blog{Title: req.Title, Author: req.Author, Content: req.Content}
		if _, err := svc.Create(c.Request.Context(), b); err != nil {
			internalError(c, "create blog", err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

func updateBlog(svc service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req updateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// the path id is authoritative; a body id, when present, must agree
		if req.ID != "" && req.ID != id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body id does not match path id"})
			return
		}
		upd := blog.Update{Title: req.Title, Author: req.Author, Content: req.Content}
		if err := svc.Update(c.Request.Context(), id, upd); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			internalError(c, "update blog", err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func deleteBlog(svc service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			internalError(c, "delete blog", err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func internalError(c *gin.Context, op string, err error) {
	logger.Errorf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
