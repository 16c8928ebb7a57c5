package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Kalashsatyapal/speech-to-text-backend/internal/utils"
)

// APIError is the single error shape on the wire: {"error": "..."}.
type APIError struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) && ae.Message != "" {
		c.JSON(status, APIError{Error: ae.Message})
		return
	}

	c.JSON(status, APIError{Error: "Failed to transcribe audio"})
}
