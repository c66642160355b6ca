package domain

import "time"

// Answers are the exercise page's saved answers for one level, keyed by
// question.
type Answers map[string]any

// Progress is the single learner's exercise state.
type Progress struct {
	ModuleCompleted     int
	BeginnerScore       int
	IntermediateScore   int
	AdvancedScore       int
	BeginnerAnswers     Answers
	IntermediateAnswers Answers
	AdvancedAnswers     Answers
	TotalTimeSpent      int
	LastUpdated         time.Time
}

func (p Progress) Validate() error {
	if p.BeginnerScore < 0 || p.IntermediateScore < 0 || p.AdvancedScore < 0 {
		return ErrNegativeScore
	}
	return nil
}
