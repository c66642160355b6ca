package domain

import "math"

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Scoring holds the exercise rules. Scores are counts of correct answers.
type Scoring struct {
	QuestionsPerLevel int
	Levels            int
	PassingScore      float64
}

func DefaultScoring() Scoring {
	return Scoring{
		QuestionsPerLevel: 15,
		Levels:            3,
		PassingScore:      80,
	}
}

// LevelPercentage turns a level score into a percentage.
func (s Scoring) LevelPercentage(score int) float64 {
	if s.QuestionsPerLevel <= 0 {
		return 0
	}
	return round2(float64(score) / float64(s.QuestionsPerLevel) * 100)
}

func (s Scoring) Passed(score int) bool {
	return s.LevelPercentage(score) >= s.PassingScore
}

// OverallScore is the percentage of every question answered correctly, rounded
// to two decimals.
func (s Scoring) OverallScore(beginner, intermediate, advanced int) float64 {
	total := s.QuestionsPerLevel * s.Levels
	if total <= 0 {
		return 0
	}
	return round2(float64(beginner+intermediate+advanced) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
