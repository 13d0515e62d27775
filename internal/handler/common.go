package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ripple/internal/domain"
	"ripple/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// respondError maps service errors to HTTP statuses with machine-readable
// bodies. Anything unrecognized is logged and hidden behind a 500.
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr.Fields)
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
	default:
		logging.L().Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindingErrors converts gin binding failures into the same per-field
// shape as domain.ValidationError bodies.
func bindingErrors(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["non_field_errors"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := snakeCase(fe.Field())
		out[field] = append(out[field], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
	default:
		return "invalid value"
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type pageParams struct {
	Page int
	Size int
}

// parsePage reads page/page_size query params with the default and cap
// applied.
func parsePage(c *gin.Context) pageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return pageParams{Page: page, Size: size}
}

func (p pageParams) Offset() int {
	return (p.Page - 1) * p.Size
}

// paginated shapes the standard paginated body: total count, absolute
// next/previous URLs (null at the edges) and the result list.
func paginated(c *gin.Context, total int64, p pageParams, results interface{}) gin.H {
	var next, previous interface{}
	if int64(p.Page*p.Size) < total {
		next = pageURL(c, p.Page+1)
	}
	if p.Page > 1 {
		previous = pageURL(c, p.Page-1)
	}
	return gin.H{
		"count":    total,
		"next":     next,
		"previous": previous,
		"results":  results,
	}
}

func pageURL(c *gin.Context, page int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	q := c.Request.URL.Query()
	q.Set("page", strconv.Itoa(page))
	return fmt.Sprintf("%s://%s%s?%s", scheme, c.Request.Host, c.Request.URL.Path, q.Encode())
}
