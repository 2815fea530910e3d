package controller

import (
	"errors"
	"net/http"
	"strconv"

	"rudasumbwa_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondServiceError maps service sentinels onto the HTTP envelope. Anything
// unrecognized is logged and returned as a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrAttemptNotFound),
		errors.Is(err, util.ErrAnswerNotFound),
		errors.Is(err, util.ErrNoteNotFound),
		errors.Is(err, util.ErrClubNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(c)
	case errors.Is(err, util.ErrAccountNotApproved),
		errors.Is(err, util.ErrAccountDisabled):
		util.Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrAlreadyMember):
		util.BadRequest(c, err.Error())
	case errors.Is(err, util.ErrTutorQuotaReached):
		util.Error(c, http.StatusTooManyRequests, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id := util.MustParseUint(c.Param(name))
	if id == 0 {
		util.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
