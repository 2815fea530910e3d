package controller

import (
	"rudasumbwa_backend/internal/service"
	"rudasumbwa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

// Create godoc
// @Summary Publish a study note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.NoteRequest true "Note payload"
// @Success 201 {object} util.Response
// @Router /api/notes [post]
func (ctrl *NoteController) Create(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	var req service.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	note, err := ctrl.NoteService.CreateNote(claims.UserID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, note)
}

// Get godoc
// @Summary Fetch a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note id"
// @Success 200 {object} util.Response
// @Router /api/notes/{id} [get]
func (ctrl *NoteController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	note, err := ctrl.NoteService.GetNote(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, note)
}

// Update godoc
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note id"
// @Param request body service.NoteRequest true "Note payload"
// @Success 200 {object} util.Response
// @Router /api/notes/{id} [put]
func (ctrl *NoteController) Update(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	note, err := ctrl.NoteService.UpdateNote(id, claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, note)
}

// Delete godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note id"
// @Success 200 {object} util.Response
// @Router /api/notes/{id} [delete]
func (ctrl *NoteController) Delete(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.NoteService.DeleteNote(id, claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// List godoc
// @Summary List notes
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param className query string false "Filter by class"
// @Param subject query string false "Filter by subject"
// @Success 200 {object} util.Response
// @Router /api/notes [get]
func (ctrl *NoteController) List(c *gin.Context) {
	page, limit := pagination(c)
	notes, total, err := ctrl.NoteService.ListNotes(c.Query("className"), c.Query("subject"), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: notes, Total: total, Page: page, Limit: limit})
}
