package resp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

// ValidationError รายงาน error รายฟิลด์
func ValidationError(c *gin.Context, msg string, fields []string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg, "errors": fields})
}

// BindError แปลง binding error เป็น response: ถ้าเป็น validator error
// จะแตกเป็นรายการ violation รายฟิลด์ให้
func BindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr))
		for _, fe := range verr {
			fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		ValidationError(c, "validation failed", fields)
		return
	}
	BadRequest(c, err.Error())
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
// ServerError ไม่ส่งรายละเอียด error ให้ client (log อย่างเดียว)
func ServerError(c *gin.Context, err error) {
	log.Err(err).Str("path", c.FullPath()).Msg("internal error")
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "server error"})
}
