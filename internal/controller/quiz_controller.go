package controller

import (
	"rudasumbwa_backend/internal/service"
	"rudasumbwa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// Create godoc
// @Summary Create a quiz with its question tree
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateQuizRequest true "Quiz payload"
// @Success 201 {object} util.Response
// @Router /api/quizzes [post]
func (ctrl *QuizController) Create(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	var req service.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	quiz, err := ctrl.QuizService.CreateQuiz(claims.UserID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, quiz)
}

// Get godoc
// @Summary Fetch a quiz with questions
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz id"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (ctrl *QuizController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	quiz, err := ctrl.QuizService.GetQuiz(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, quiz)
}

// Update godoc
// @Summary Update quiz metadata
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz id"
// @Param request body service.UpdateQuizRequest true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [put]
func (ctrl *QuizController) Update(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	quiz, err := ctrl.QuizService.UpdateQuiz(id, claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, quiz)
}

// Delete godoc
// @Summary Delete a quiz and its questions
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz id"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [delete]
func (ctrl *QuizController) Delete(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.QuizService.DeleteQuiz(id, claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// List godoc
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param className query string false "Filter by class"
// @Param active query bool false "Only active quizzes"
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (ctrl *QuizController) List(c *gin.Context) {
	page, limit := pagination(c)
	activeOnly := c.Query("active") == "true"
	quizzes, total, err := ctrl.QuizService.ListQuizzes(c.Query("className"), activeOnly, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: quizzes, Total: total, Page: page, Limit: limit})
}

// ListMine godoc
// @Summary List quizzes created by the caller
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/quizzes/mine [get]
func (ctrl *QuizController) ListMine(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	page, limit := pagination(c)
	quizzes, total, err := ctrl.QuizService.ListMyQuizzes(claims.UserID, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: quizzes, Total: total, Page: page, Limit: limit})
}

// AddQuestion godoc
// @Summary Append a question to a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz id"
// @Param request body service.QuestionInput true "Question payload"
// @Success 201 {object} util.Response
// @Router /api/quizzes/{id}/questions [post]
func (ctrl *QuizController) AddQuestion(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.QuestionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	question, err := ctrl.QuizService.AddQuestion(id, claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, question)
}

// UpdateQuestion godoc
// @Summary Replace a question's content
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question id"
// @Param request body service.QuestionInput true "Question payload"
// @Success 200 {object} util.Response
// @Router /api/quizzes/questions/{id} [put]
func (ctrl *QuizController) UpdateQuestion(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.QuestionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	question, err := ctrl.QuizService.UpdateQuestion(id, claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, question)
}

// DeleteQuestion godoc
// @Summary Delete a question and its children
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question id"
// @Success 200 {object} util.Response
// @Router /api/quizzes/questions/{id} [delete]
func (ctrl *QuizController) DeleteQuestion(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.QuizService.DeleteQuestion(id, claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}
