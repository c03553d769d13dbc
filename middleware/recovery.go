package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KozhevnikovM/devman-sensive-blog/utils"
)

// RecoveryMiddleware пишет панику в panics.log и отдаёт страницу 500
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(recovered, "HTTP Request "+c.Request.Method+" "+c.Request.URL.Path)

		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		c.Abort()
	})
}
