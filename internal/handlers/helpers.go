package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam lê o :id da rota. Id não numérico é tratado como
// registro inexistente, nunca como erro de formato.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
