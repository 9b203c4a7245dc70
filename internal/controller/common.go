package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPage = 1
	defaultSize = 10
	maxSize     = 100
)

// parseUintParam 解析路径中的数字参数
func parseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(v), nil
}

// parsePagination 解析分页查询参数，越界时回退默认值
func parsePagination(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	size, _ = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if page < 1 {
		page = defaultPage
	}
	if size < 1 || size > maxSize {
		size = defaultSize
	}
	return page, size
}

// bindingMessage 将参数校验错误转换为客户端可读的提示
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return field + " is required"
		case "email":
			return field + " must be a valid email address"
		case "min":
			return field + " is too short"
		case "max":
			return field + " is too long"
		case "oneof":
			return field + " must be one of: " + fe.Param()
		default:
			return field + " is invalid"
		}
	}
	return "invalid request body"
}
