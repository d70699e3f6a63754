package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/raflyryhnsyh/ApotekQu-sub001/auth"
	"github.com/raflyryhnsyh/ApotekQu-sub001/middlewares"
	"github.com/raflyryhnsyh/ApotekQu-sub001/service"
	"github.com/raflyryhnsyh/ApotekQu-sub001/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Provider auth.Provider
	Profiles service.ProfileStore
}

const msgLoginRequired = "Email dan password wajib diisi"

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var in LoginInput
	if err := bindJSON(c, &in, msgLoginRequired); err != nil {
		utils.Fail(c, err)
		return
	}
	// spasi saja lolos dari tag required
	if strings.TrimSpace(in.Email) == "" {
		utils.Fail(c, utils.ValidationError(msgLoginRequired))
		return
	}

	ctx := c.Request.Context()
	sess, err := ac.Provider.SignInWithPassword(ctx, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.Fail(c, utils.AuthError("Email atau password salah"))
			return
		}
		utils.Fail(c, utils.UnexpectedError(err))
		return
	}

	profile, err := ac.Profiles.ProfileByID(ctx, sess.User.ID)
	if err != nil {
		// sesi tanpa profil tidak boleh dipakai
		if signOutErr := ac.Provider.SignOut(ctx, sess.AccessToken); signOutErr != nil {
			log.Printf("⚠️  Gagal mencabut sesi %s: %v", sess.User.ID, signOutErr)
		}
		if errors.Is(err, service.ErrNotFound) {
			utils.Fail(c, utils.NotFoundError("Profil pengguna tidak ditemukan"))
			return
		}
		utils.Fail(c, utils.UnexpectedError(err))
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"message": "Login berhasil",
		"user":    sess.User,
		"profile": profile,
		"session": sess,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString(middlewares.CtxAccessToken)
	if err := ac.Provider.SignOut(c.Request.Context(), token); err != nil {
		utils.Fail(c, utils.UpstreamError("Gagal logout", err))
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"message": "Logout berhasil"})
}

type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (ac *AuthController) Refresh(c *gin.Context) {
	var in RefreshInput
	if err := bindJSON(c, &in, "refresh_token wajib diisi"); err != nil {
		utils.Fail(c, err)
		return
	}

	sess, err := ac.Provider.Refresh(c.Request.Context(), in.RefreshToken)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidToken) {
			utils.Fail(c, utils.AuthError("Refresh token tidak valid"))
			return
		}
		utils.Fail(c, utils.UnexpectedError(err))
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (ac *AuthController) Me(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.Fail(c, utils.AuthError("Unauthorized"))
		return
	}

	profile, err := ac.Profiles.ProfileByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.Fail(c, utils.NotFoundError("Profil pengguna tidak ditemukan"))
			return
		}
		utils.Fail(c, utils.UpstreamError("Gagal mengambil profil", err))
		return
	}
	utils.Data(c, profile)
}
