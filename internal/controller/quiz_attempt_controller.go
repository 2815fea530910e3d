package controller

import (
	"rudasumbwa_backend/internal/service"
	"rudasumbwa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizAttemptController struct {
	AttemptService *service.QuizAttemptService
}

func NewQuizAttemptController(attemptService *service.QuizAttemptService) *QuizAttemptController {
	return &QuizAttemptController{AttemptService: attemptService}
}

// Start godoc
// @Summary Start an attempt on an active quiz
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz id"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/start [post]
func (ctrl *QuizAttemptController) Start(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	attempt, err := ctrl.AttemptService.StartAttempt(id, claims.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, attempt)
}

type submitRequest struct {
	Answers []service.SubmittedAnswer `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Submit answers for an attempt
// @Description Grades every answer, stores the total and updates the leaderboard in one transaction
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attempt id"
// @Param request body submitRequest true "Answers"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/attempts/{id}/submit [post]
func (ctrl *QuizAttemptController) Submit(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	total, err := ctrl.AttemptService.SubmitAnswers(id, claims.UserID, req.Answers)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"totalScore": total})
}

// Detail godoc
// @Summary Full attempt view with the question tree and given answers
// @Description Students see their own attempts without answer keys; the quiz creator and admins see keys
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attempt id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/attempts/{id}/details [get]
func (ctrl *QuizAttemptController) Detail(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := ctrl.AttemptService.GetAttemptDetail(id, claims)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, detail)
}

// ListMine godoc
// @Summary List the caller's attempts
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/quizzes/attempts/mine [get]
func (ctrl *QuizAttemptController) ListMine(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	page, limit := pagination(c)
	attempts, total, err := ctrl.AttemptService.ListMyAttempts(claims.UserID, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: attempts, Total: total, Page: page, Limit: limit})
}

// ListByQuiz godoc
// @Summary All attempts on a quiz
// @Tags grading
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz id"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id}/attempts [get]
func (ctrl *QuizAttemptController) ListByQuiz(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, limit := pagination(c)

	attempts, total, err := ctrl.AttemptService.ListQuizAttempts(id, claims.UserID, claims.Role, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: attempts, Total: total, Page: page, Limit: limit})
}

// PendingReview godoc
// @Summary Attempts of a quiz that still need manual grading
// @Tags grading
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz id"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id}/pending-review [get]
func (ctrl *QuizAttemptController) PendingReview(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	attempts, err := ctrl.AttemptService.ListPendingReview(id, claims.UserID, claims.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, attempts)
}

// GradeAnswer godoc
// @Summary Manually grade one answer
// @Description Overwrites the verdict, recomputes the attempt total and refreshes the leaderboard
// @Tags grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer id"
// @Param request body service.ManualGradeRequest true "Verdict"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/attempts/answers/{id}/grade [patch]
func (ctrl *QuizAttemptController) GradeAnswer(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.ManualGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	newTotal, err := ctrl.AttemptService.GradeStudentAnswer(id, claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"newTotalScore": newTotal})
}
