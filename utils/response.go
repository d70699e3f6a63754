package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Success(c *gin.Context, status int, body gin.H) {
	resp := gin.H{"success": true}
	for k, v := range body {
		resp[k] = v
	}
	c.JSON(status, resp)
}

func Data(c *gin.Context, data interface{}) {
	Success(c, http.StatusOK, gin.H{"data": data})
}

func Error(c *gin.Context, status int, message string, err error) {
	resp := gin.H{"success": false, "error": message}
	if err != nil {
		resp["details"] = err.Error()
	}
	c.JSON(status, resp)
}

// Fail memetakan error apa pun ke response JSON. Error yang tidak dikenal hanya di-log.
func Fail(c *gin.Context, err error) {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		if appErr.Kind == KindUnexpected {
			log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), appErr.Err)
			Error(c, appErr.Status(), appErr.Message, nil)
			return
		}
		var details error
		if appErr.Kind == KindUpstream {
			details = appErr.Err
		}
		Error(c, appErr.Status(), appErr.Message, details)
	case errors.Is(err, gorm.ErrRecordNotFound):
		Error(c, http.StatusNotFound, "Data tidak ditemukan", nil)
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
		Error(c, http.StatusInternalServerError, msgUnexpected, nil)
	}
}
