package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KozhevnikovM/devman-sensive-blog/services"
	"github.com/KozhevnikovM/devman-sensive-blog/utils"
)

const trackTimeout = 500 * time.Millisecond

// TrackVisit считает успешные показы страницы page. Ошибки redis только логируются.
func TrackVisit(counter *services.VisitCounter, page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if counter == nil || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), trackTimeout)
		defer cancel()
		if err := counter.Track(ctx, page); err != nil {
			utils.LogError(err, "track visit "+page)
		}
	}
}
