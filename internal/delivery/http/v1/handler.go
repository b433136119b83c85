package v1

import (
	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into dst and records a client error on
// failure. Field rules are applied later by the schema functions.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(schema.DecodeError(err))
		return false
	}
	return true
}

func actorID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

func pageQuery(c *gin.Context, defaultLimit int) (domain.Page, bool) {
	page, err := schema.Page(schema.PaginationInput{Page: c.Query("page"), Limit: c.Query("limit")}, defaultLimit)
	if err != nil {
		_ = c.Error(err)
		return domain.Page{}, false
	}
	return page, true
}
