package handler

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/jobbot-gateway/internal/service"
)

var jsonNamesOnce sync.Once

// useJSONFieldNames makes binding errors name fields the way clients send them.
func useJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// tgIDParam reads the :tg_id path segment.
// Path and query numbers are always base 10: "010" is ten, "0x3" is rejected.
func tgIDParam(c *gin.Context) (int64, error) {
	return idParam(c, "tg_id")
}

func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.NewInvalidInputError([]service.FieldError{{Field: name, Message: "must be a positive integer"}})
	}
	return id, nil
}

// pageQuery reads ?page=; absent means the first page. Out-of-range values are clamped later.
func pageQuery(c *gin.Context) (int, error) {
	raw, ok := c.GetQuery("page")
	if !ok || raw == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, service.NewInvalidInputError([]service.FieldError{{Field: "page", Message: "must be an integer"}})
	}
	return page, nil
}

// bindJSON decodes the body and turns validator failures into field errors.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		ferrs := make([]service.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			ferrs = append(ferrs, service.FieldError{Field: fe.Field(), Message: ruleMessage(fe)})
		}
		return service.NewInvalidInputError(ferrs)
	}
	// не расшифровываем внутренние детали парсинга
	return service.NewInvalidInputError([]service.FieldError{{Field: "body", Message: "malformed JSON"}})
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be > " + fe.Param()
	case "max":
		return "length must be <= " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
