package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KozhevnikovM/devman-sensive-blog/utils"
)

func ServerError(c *gin.Context, err error, context string) {
	utils.LogError(err, context)
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
}
