package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportapp/pkg/utils"
)

// idParam parses a positive numeric path parameter. It answers 404 itself when
// the value is malformed, since no such resource can exist.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusNotFound, "Not found")
		return 0, false
	}
	return uint(id), true
}
