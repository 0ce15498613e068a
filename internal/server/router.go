// Package server exposes the codec over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcosfnsc/impl-huffman/internal/config"
	"github.com/marcosfnsc/impl-huffman/internal/logger"
)

type Dependencies struct {
	Codec *CodecHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/compress", d.Codec.Compress)
		v1.POST("/decompress", d.Codec.Decompress)
		v1.POST("/analyze", d.Codec.Analyze)
	}
}

// New returns an engine with every route registered. The gin mode is
// process-wide and left to the caller.
func New(cfg *config.Config, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), accessLog(log))

	Register(r, Dependencies{
		Codec: NewCodecHandler(log, cfg.HTTP.MaxBodySize),
	})
	return r
}

func accessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infof("%s %s %d %d bytes in %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), c.Writer.Size(), time.Since(start))
	}
}
