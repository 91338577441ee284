package response

import "github.com/gin-gonic/gin"

// Endpoints return resources as bare JSON bodies; failures carry a single
// error field so internals never leak into responses.

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"error": message})
}

func Message(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"message": message})
}
