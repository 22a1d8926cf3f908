package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

// todayParam reads the optional ?today=YYYY-MM-DD override. A zero Date
// means the use case falls back to its clock.
func todayParam(c *gin.Context) (domain.Date, error) {
	raw := strings.TrimSpace(c.Query("today"))
	if raw == "" {
		return domain.Date{}, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}, httperr.ErrInvalidArgument(domain.CodeInvalidDate)
	}
	return d, nil
}

// intParam returns def when the parameter is absent.
func intParam(c *gin.Context, key string, def int, code string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, httperr.ErrInvalidArgument(code)
	}
	return n, nil
}
