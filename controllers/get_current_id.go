package controllers

import (
	"errors"
	"strconv"

	"github.com/raflyryhnsyh/ApotekQu-sub001/middlewares"
	"github.com/raflyryhnsyh/ApotekQu-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func currentUserID(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get(middlewares.CtxUserID)
	if !ok {
		return uuid.Nil, errors.New("user_id tidak ada di context")
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, errors.New("user_id tidak valid")
	}
	return id, nil
}

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, utils.ValidationError("ID tidak valid")
	}
	return uint(id), nil
}
