package controller

import (
	"strconv"

	"rudasumbwa_backend/internal/service"
	"rudasumbwa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// QuizTop godoc
// @Summary Top scores for one quiz
// @Tags leaderboards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz id"
// @Param limit query int false "Row count, default 20"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id}/leaderboard [get]
func (ctrl *LeaderboardController) QuizTop(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	rows, err := ctrl.LeaderboardService.TopByQuiz(c.Request.Context(), id, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, rows)
}

// OverallTop godoc
// @Summary School-wide standings summed across quizzes
// @Tags leaderboards
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Row count, default 20"
// @Success 200 {object} util.Response
// @Router /api/leaderboard [get]
func (ctrl *LeaderboardController) OverallTop(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	rows, err := ctrl.LeaderboardService.TopOverall(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, rows)
}
