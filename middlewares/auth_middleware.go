package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/raflyryhnsyh/ApotekQu-sub001/auth"
	"github.com/raflyryhnsyh/ApotekQu-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CtxUserID      = "user_id"
	CtxEmail       = "email"
	CtxAccessToken = "access_token"
)

// AuthRequired memverifikasi bearer token dan memastikan sesinya masih aktif.
func AuthRequired(p auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Error(c, http.StatusUnauthorized, "Token tidak ditemukan", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := p.Verify(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrInvalidToken) {
				utils.Error(c, http.StatusUnauthorized, "Token tidak valid atau sudah logout", nil)
			} else {
				log.Printf("❌ verifikasi sesi: %v", err)
				utils.Error(c, http.StatusInternalServerError, "Gagal memverifikasi sesi", nil)
			}
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, "Token tidak valid", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxAccessToken, tokenString)
		c.Next()
	}
}
