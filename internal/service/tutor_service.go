package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rudasumbwa_backend/internal/config"
	"rudasumbwa_backend/internal/util"
	"rudasumbwa_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const tutorSystemPrompt = "You are a patient study tutor for secondary school students in Rwanda. " +
	"Explain step by step, keep answers short, and never just hand over final answers to graded work."

// TutorService keeps per-student chat history and a daily question quota in
// redis, so restarts and multiple instances see the same state.
type TutorService struct {
	Client *TutorClient
	Redis  *redis.Client
	Config config.TutorConfig
}

func NewTutorService(client *TutorClient, rdb *redis.Client, cfg config.TutorConfig) *TutorService {
	return &TutorService{Client: client, Redis: rdb, Config: cfg}
}

func tutorHistoryKey(userID uint) string {
	return fmt.Sprintf("tutor:history:%d", userID)
}

func tutorQuotaKey(userID uint, day time.Time) string {
	return fmt.Sprintf("tutor:quota:%d:%s", userID, day.Format("2006-01-02"))
}

// Ask checks the quota, replays the recent history to the model and appends
// both sides of the exchange to the stored transcript.
func (s *TutorService) Ask(ctx context.Context, userID uint, question string) (string, error) {
	quotaKey := tutorQuotaKey(userID, time.Now())
	count, err := s.Redis.Incr(ctx, quotaKey).Result()
	if err != nil {
		return "", err
	}
	if count == 1 {
		// Key is fresh, give it a day to live.
		s.Redis.Expire(ctx, quotaKey, 24*time.Hour)
	}
	if s.Config.DailyLimit > 0 && count > int64(s.Config.DailyLimit) {
		return "", util.ErrTutorQuotaReached
	}

	history, err := s.History(ctx, userID)
	if err != nil {
		logger.Log.Warn("failed to load tutor history", zap.Uint("userId", userID), zap.Error(err))
		history = nil
	}

	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: tutorSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Content: question})

	answer, err := s.Client.Chat(ctx, messages)
	if err != nil {
		return "", err
	}

	s.appendHistory(ctx, userID,
		ChatMessage{Role: "user", Content: question},
		ChatMessage{Role: "assistant", Content: answer})
	return answer, nil
}

// History returns the stored transcript window, oldest first.
func (s *TutorService) History(ctx context.Context, userID uint) ([]ChatMessage, error) {
	window := s.Config.HistoryWindow
	if window <= 0 {
		window = 10
	}
	// Each exchange is two entries.
	raw, err := s.Redis.LRange(ctx, tutorHistoryKey(userID), int64(-2*window), -1).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (s *TutorService) ClearHistory(ctx context.Context, userID uint) error {
	return s.Redis.Del(ctx, tutorHistoryKey(userID)).Err()
}

func (s *TutorService) appendHistory(ctx context.Context, userID uint, msgs ...ChatMessage) {
	key := tutorHistoryKey(userID)
	for _, msg := range msgs {
		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		if err := s.Redis.RPush(ctx, key, data).Err(); err != nil {
			logger.Log.Warn("failed to append tutor history", zap.Uint("userId", userID), zap.Error(err))
			return
		}
	}

	window := s.Config.HistoryWindow
	if window <= 0 {
		window = 10
	}
	s.Redis.LTrim(ctx, key, int64(-2*window), -1)

	ttl := s.Config.HistoryTTL
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	s.Redis.Expire(ctx, key, ttl)
}
