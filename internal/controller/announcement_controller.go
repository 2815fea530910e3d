package controller

import (
	"strconv"
	"time"

	"rudasumbwa_backend/internal/model"
	"rudasumbwa_backend/internal/service"
	"rudasumbwa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnnouncementController struct {
	AnnouncementService *service.AnnouncementService
	EventService        *service.EventService
}

func NewAnnouncementController(announcementService *service.AnnouncementService, eventService *service.EventService) *AnnouncementController {
	return &AnnouncementController{
		AnnouncementService: announcementService,
		EventService:        eventService,
	}
}

// Create godoc
// @Summary Publish an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.AnnouncementRequest true "Announcement payload"
// @Success 201 {object} util.Response
// @Router /api/announcements [post]
func (ctrl *AnnouncementController) Create(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	var req service.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	a, err := ctrl.AnnouncementService.Create(claims.UserID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, a)
}

// Update godoc
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement id"
// @Param request body service.AnnouncementRequest true "Announcement payload"
// @Success 200 {object} util.Response
// @Router /api/announcements/{id} [put]
func (ctrl *AnnouncementController) Update(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	a, err := ctrl.AnnouncementService.Update(id, claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, a)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement id"
// @Success 200 {object} util.Response
// @Router /api/announcements/{id} [delete]
func (ctrl *AnnouncementController) Delete(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.AnnouncementService.Delete(id, claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// List godoc
// @Summary Announcements visible to the caller, pinned first
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/announcements [get]
func (ctrl *AnnouncementController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	page, limit := pagination(c)

	items, total, err := ctrl.AnnouncementService.ListFor(claims.Role, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: items, Total: total, Page: page, Limit: limit})
}

type eventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	EndsAt      time.Time `json:"endsAt"`
}

// CreateEvent godoc
// @Summary Create a school event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body eventRequest true "Event payload"
// @Success 201 {object} util.Response
// @Router /api/events [post]
func (ctrl *AnnouncementController) CreateEvent(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	event, err := ctrl.EventService.Create(claims.UserID, &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event id"
// @Param request body eventRequest true "Event payload"
// @Success 200 {object} util.Response
// @Router /api/events/{id} [put]
func (ctrl *AnnouncementController) UpdateEvent(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	event, err := ctrl.EventService.Update(id, claims.UserID, claims.Role, &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event id"
// @Success 200 {object} util.Response
// @Router /api/events/{id} [delete]
func (ctrl *AnnouncementController) DeleteEvent(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.EventService.Delete(id, claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// ListEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param upcoming query bool false "Only upcoming events"
// @Success 200 {object} util.Response
// @Router /api/events [get]
func (ctrl *AnnouncementController) ListEvents(c *gin.Context) {
	if c.Query("upcoming") == "true" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		events, err := ctrl.EventService.ListUpcoming(limit)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		util.Success(c, events)
		return
	}

	page, limit := pagination(c)
	events, total, err := ctrl.EventService.List(page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: events, Total: total, Page: page, Limit: limit})
}
