package controller

import (
	"rudasumbwa_backend/internal/service"
	"rudasumbwa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ClubController struct {
	ClubService *service.ClubService
}

func NewClubController(clubService *service.ClubService) *ClubController {
	return &ClubController{ClubService: clubService}
}

// Create godoc
// @Summary Create a club
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ClubRequest true "Club payload"
// @Success 201 {object} util.Response
// @Router /api/clubs [post]
func (ctrl *ClubController) Create(c *gin.Context) {
	var req service.ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	club, err := ctrl.ClubService.CreateClub(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, club)
}

// Get godoc
// @Summary Fetch a club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club id"
// @Success 200 {object} util.Response
// @Router /api/clubs/{id} [get]
func (ctrl *ClubController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	club, err := ctrl.ClubService.GetClub(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, club)
}

// Update godoc
// @Summary Update a club
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club id"
// @Param request body service.ClubRequest true "Club payload"
// @Success 200 {object} util.Response
// @Router /api/clubs/{id} [put]
func (ctrl *ClubController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	club, err := ctrl.ClubService.UpdateClub(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, club)
}

// Delete godoc
// @Summary Delete a club and its memberships
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club id"
// @Success 200 {object} util.Response
// @Router /api/clubs/{id} [delete]
func (ctrl *ClubController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ClubService.DeleteClub(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// List godoc
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/clubs [get]
func (ctrl *ClubController) List(c *gin.Context) {
	page, limit := pagination(c)
	clubs, total, err := ctrl.ClubService.ListClubs(page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: clubs, Total: total, Page: page, Limit: limit})
}

// Join godoc
// @Summary Join a club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club id"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/clubs/{id}/join [post]
func (ctrl *ClubController) Join(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	member, err := ctrl.ClubService.Join(id, claims.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, member)
}

// Leave godoc
// @Summary Leave a club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club id"
// @Success 200 {object} util.Response
// @Router /api/clubs/{id}/leave [post]
func (ctrl *ClubController) Leave(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ClubService.Leave(id, claims.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// Members godoc
// @Summary List club members
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club id"
// @Success 200 {object} util.Response
// @Router /api/clubs/{id}/members [get]
func (ctrl *ClubController) Members(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	members, err := ctrl.ClubService.ListMembers(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, members)
}
