package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Kalashsatyapal/speech-to-text-backend/internal/api/handlers"
)

type Deps struct {
	Transcribe *handlers.TranscribeHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Synchronous pipeline: holds the request open until the transcript
	// is ready.
	r.POST("/transcribe", d.Transcribe.Transcribe)

	// Async variant: submit now, check status later.
	r.POST("/transcripts", d.Transcribe.Submit)
	r.GET("/transcripts/:id", d.Transcribe.Status)
	r.GET("/transcripts", d.Transcribe.List)
}
