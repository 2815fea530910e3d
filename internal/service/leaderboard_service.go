package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rudasumbwa_backend/internal/repository"
	"rudasumbwa_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Rankings are cached briefly in redis; writes drop the affected keys so a
// fresh submission shows up on the next read.
const (
	leaderboardCacheTTL  = 30 * time.Second
	leaderboardCacheSize = 100
)

type LeaderboardService struct {
	Repo  *repository.LeaderboardRepository
	Redis *redis.Client
}

func NewLeaderboardService(repo *repository.LeaderboardRepository, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{Repo: repo, Redis: rdb}
}

func quizBoardKey(quizID uint) string {
	return fmt.Sprintf("leaderboard:quiz:%d", quizID)
}

const overallBoardKey = "leaderboard:overall"

// Upsert runs on the caller's transaction so standings only move when the
// surrounding submission or regrade commits. The cache keys are dropped
// best-effort; a rolled-back transaction then just costs one extra DB read.
func (s *LeaderboardService) Upsert(tx *gorm.DB, quizID, studentID uint, score float64) error {
	if err := s.Repo.Upsert(tx, quizID, studentID, score); err != nil {
		return err
	}
	if s.Redis != nil {
		s.Redis.Del(context.Background(), quizBoardKey(quizID), overallBoardKey)
	}
	return nil
}

func (s *LeaderboardService) TopByQuiz(ctx context.Context, quizID uint, limit int) ([]repository.RankedEntry, error) {
	rows, err := s.cached(ctx, quizBoardKey(quizID), func() ([]repository.RankedEntry, error) {
		return s.Repo.TopByQuiz(quizID, leaderboardCacheSize)
	})
	if err != nil {
		return nil, err
	}
	return clampBoard(rows, limit), nil
}

func (s *LeaderboardService) TopOverall(ctx context.Context, limit int) ([]repository.RankedEntry, error) {
	rows, err := s.cached(ctx, overallBoardKey, func() ([]repository.RankedEntry, error) {
		return s.Repo.TopOverall(leaderboardCacheSize)
	})
	if err != nil {
		return nil, err
	}
	return clampBoard(rows, limit), nil
}

// cached serves the key from redis when possible and falls back to the load
// function, writing the result back with a short TTL. Cache failures degrade
// to plain DB reads.
func (s *LeaderboardService) cached(ctx context.Context, key string, load func() ([]repository.RankedEntry, error)) ([]repository.RankedEntry, error) {
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var rows []repository.RankedEntry
			if err := json.Unmarshal([]byte(raw), &rows); err == nil {
				return rows, nil
			}
		}
	}

	rows, err := load()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(rows); err == nil {
			if err := s.Redis.Set(ctx, key, data, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return rows, nil
}

// clampBoard trims a ranked slice to the requested size. Entries keep the
// ranks they were assigned over the full board.
func clampBoard(rows []repository.RankedEntry, limit int) []repository.RankedEntry {
	if limit <= 0 || limit > leaderboardCacheSize {
		limit = 20
	}
	if len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
