package controller

import (
	"rudasumbwa_backend/internal/service"
	"rudasumbwa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetMe godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/users/me [get]
func (ctrl *UserController) GetMe(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	user, err := ctrl.UserService.GetUser(claims.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, user)
}

// UpdateMe godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} util.Response
// @Router /api/users/me [put]
func (ctrl *UserController) UpdateMe(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, err := ctrl.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, user)
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param search query string false "Name or email search"
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (ctrl *UserController) List(c *gin.Context) {
	page, limit := pagination(c)
	users, total, err := ctrl.UserService.ListUsers(c.Query("role"), c.Query("search"), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// PendingApprovals godoc
// @Summary List accounts awaiting approval
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/users/pending [get]
func (ctrl *UserController) PendingApprovals(c *gin.Context) {
	page, limit := pagination(c)
	users, total, err := ctrl.UserService.ListPendingApprovals(page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// Approve godoc
// @Summary Approve a pending account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/approve [post]
func (ctrl *UserController) Approve(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.UserService.Approve(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// Reject godoc
// @Summary Reject a pending account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/reject [post]
func (ctrl *UserController) Reject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.UserService.Reject(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

type setDisabledRequest struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

// SetDisabled godoc
// @Summary Enable or disable an account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/disabled [patch]
func (ctrl *UserController) SetDisabled(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req setDisabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.UserService.SetDisabled(id, *req.Disabled); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// Delete godoc
// @Summary Delete an account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (ctrl *UserController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.UserService.DeleteUser(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}
