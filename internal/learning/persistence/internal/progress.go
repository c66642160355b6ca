package internal

import (
	"encoding/json"
	"log/slog"
	"time"

	"edudb-server/internal/learning/domain"
)

// ProgressID is the only row of user_progress.
const ProgressID = 1

type Progress struct {
	ID                  int64 `gorm:"primaryKey"`
	ModuleCompleted     int
	BeginnerScore       int
	IntermediateScore   int
	AdvancedScore       int
	BeginnerAnswers     *string
	IntermediateAnswers *string
	AdvancedAnswers     *string
	TotalTimeSpent      int
	LastUpdated         *time.Time
}

func (Progress) TableName() string {
	return "user_progress"
}

func (p Progress) ToDomain() domain.Progress {
	progress := domain.Progress{
		ModuleCompleted:     p.ModuleCompleted,
		BeginnerScore:       p.BeginnerScore,
		IntermediateScore:   p.IntermediateScore,
		AdvancedScore:       p.AdvancedScore,
		BeginnerAnswers:     decodeAnswers(p.BeginnerAnswers),
		IntermediateAnswers: decodeAnswers(p.IntermediateAnswers),
		AdvancedAnswers:     decodeAnswers(p.AdvancedAnswers),
		TotalTimeSpent:      p.TotalTimeSpent,
	}
	if p.LastUpdated != nil {
		progress.LastUpdated = *p.LastUpdated
	}
	return progress
}

// UpdateColumns lists every column written when progress is saved.
func UpdateColumns(progress domain.Progress, now time.Time) map[string]any {
	return map[string]any{
		"module_completed":     progress.ModuleCompleted,
		"beginner_score":       progress.BeginnerScore,
		"intermediate_score":   progress.IntermediateScore,
		"advanced_score":       progress.AdvancedScore,
		"beginner_answers":     encodeAnswers(progress.BeginnerAnswers),
		"intermediate_answers": encodeAnswers(progress.IntermediateAnswers),
		"advanced_answers":     encodeAnswers(progress.AdvancedAnswers),
		"total_time_spent":     progress.TotalTimeSpent,
		"last_updated":         now,
	}
}

func ResetColumns(now time.Time) map[string]any {
	return map[string]any{
		"module_completed":     0,
		"beginner_score":       0,
		"intermediate_score":   0,
		"advanced_score":       0,
		"beginner_answers":     nil,
		"intermediate_answers": nil,
		"advanced_answers":     nil,
		"total_time_spent":     0,
		"last_updated":         now,
	}
}

// decodeAnswers never fails: a missing or unreadable blob is an empty answer set.
func decodeAnswers(raw *string) domain.Answers {
	answers := domain.Answers{}
	if raw == nil || *raw == "" {
		return answers
	}
	if err := json.Unmarshal([]byte(*raw), &answers); err != nil {
		slog.Warn("discarding unreadable answers", slog.String("error", err.Error()))
		return domain.Answers{}
	}
	if answers == nil {
		return domain.Answers{}
	}
	return answers
}

func encodeAnswers(answers domain.Answers) string {
	if answers == nil {
		return "{}"
	}
	data, err := json.Marshal(answers)
	if err != nil {
		return "{}"
	}
	return string(data)
}
