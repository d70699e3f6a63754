package controllers

import (
	"errors"

	"github.com/raflyryhnsyh/ApotekQu-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const msgPayloadInvalid = "Payload tidak valid"

// bindJSON men-decode body. Pelanggaran tag binding dilaporkan dengan pesan msg,
// JSON yang rusak dengan "Payload tidak valid".
func bindJSON(c *gin.Context, obj interface{}, msg string) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return utils.ValidationError(msg)
	}
	return utils.ValidationError(msgPayloadInvalid)
}
