package controller

import (
	"rudasumbwa_backend/internal/service"
	"rudasumbwa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TutorController struct {
	TutorService *service.TutorService
}

func NewTutorController(tutorService *service.TutorService) *TutorController {
	return &TutorController{TutorService: tutorService}
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

// Ask godoc
// @Summary Ask the study tutor a question
// @Description Subject to a daily per-student quota; the conversation window is replayed to the model
// @Tags tutor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body askRequest true "Question"
// @Success 200 {object} util.Response
// @Failure 429 {object} util.Response
// @Router /api/tutor/ask [post]
func (ctrl *TutorController) Ask(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	answer, err := ctrl.TutorService.Ask(c.Request.Context(), claims.UserID, req.Question)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"answer": answer})
}

// History godoc
// @Summary Recent tutor conversation
// @Tags tutor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/tutor/history [get]
func (ctrl *TutorController) History(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	messages, err := ctrl.TutorService.History(c.Request.Context(), claims.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, messages)
}

// ClearHistory godoc
// @Summary Forget the stored tutor conversation
// @Tags tutor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/tutor/history [delete]
func (ctrl *TutorController) ClearHistory(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	if err := ctrl.TutorService.ClearHistory(c.Request.Context(), claims.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}
