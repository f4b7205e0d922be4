package handler

import "github.com/gin-gonic/gin"

// GetOperator extracts the authenticated operator name from the Gin context
func GetOperator(c *gin.Context) string {
	operator, exists := c.Get("operator")
	if !exists {
		return ""
	}
	name, ok := operator.(string)
	if !ok {
		return ""
	}
	return name
}
