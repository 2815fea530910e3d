package repository

import (
	"rudasumbwa_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaderboardRepository struct {
	DB *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{DB: db}
}

// Upsert writes the (quiz, student) row last-writer-wins. It runs on the
// caller's transaction handle so a rolled-back submission never leaks a
// leaderboard update.
func (r *LeaderboardRepository) Upsert(tx *gorm.DB, quizID, studentID uint, score float64) error {
	entry := model.LeaderboardEntry{
		QuizID:    quizID,
		StudentID: studentID,
		Score:     score,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "quiz_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&entry).Error
}

// assignRanks numbers rows 1..n in the order the query returned them.
func assignRanks(rows []RankedEntry) {
	for i := range rows {
		rows[i].Rank = i + 1
	}
}

type RankedEntry struct {
	Rank      int     `json:"rank"`
	StudentID uint    `json:"studentId"`
	Student   string  `json:"student"`
	ClassName string  `json:"className"`
	Score     float64 `json:"score"`
}

func (r *LeaderboardRepository) TopByQuiz(quizID uint, limit int) ([]RankedEntry, error) {
	var rows []RankedEntry
	err := r.DB.Table("leaderboard_entries le").
		Select("le.student_id, u.name as student, u.class_name, le.score").
		Joins("JOIN users u ON u.id = le.student_id").
		Where("le.quiz_id = ? AND le.deleted_at IS NULL", quizID).
		Order("le.score desc, le.updated_at asc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	assignRanks(rows)
	return rows, nil
}

// TopOverall ranks students by their summed score across all quizzes.
func (r *LeaderboardRepository) TopOverall(limit int) ([]RankedEntry, error) {
	var rows []RankedEntry
	err := r.DB.Table("leaderboard_entries le").
		Select("le.student_id, u.name as student, u.class_name, SUM(le.score) as score").
		Joins("JOIN users u ON u.id = le.student_id").
		Where("le.deleted_at IS NULL").
		Group("le.student_id, u.name, u.class_name").
		Order("score desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	assignRanks(rows)
	return rows, nil
}
