package internal

import (
	"edudb-server/internal/infra/utils"
	"edudb-server/internal/learning/domain"
)

type ProgressRequest struct {
	ModuleCompleted     int            `json:"module_completed"`
	BeginnerScore       int            `json:"beginner_score"`
	IntermediateScore   int            `json:"intermediate_score"`
	AdvancedScore       int            `json:"advanced_score"`
	BeginnerAnswers     domain.Answers `json:"beginner_answers"`
	IntermediateAnswers domain.Answers `json:"intermediate_answers"`
	AdvancedAnswers     domain.Answers `json:"advanced_answers"`
	TotalTimeSpent      int            `json:"total_time_spent"`
}

func (r ProgressRequest) ToDomain() domain.Progress {
	return domain.Progress{
		ModuleCompleted:     r.ModuleCompleted,
		BeginnerScore:       r.BeginnerScore,
		IntermediateScore:   r.IntermediateScore,
		AdvancedScore:       r.AdvancedScore,
		BeginnerAnswers:     r.BeginnerAnswers,
		IntermediateAnswers: r.IntermediateAnswers,
		AdvancedAnswers:     r.AdvancedAnswers,
		TotalTimeSpent:      r.TotalTimeSpent,
	}
}

type Progress struct {
	ModuleCompleted     int            `json:"module_completed"`
	BeginnerScore       int            `json:"beginner_score"`
	IntermediateScore   int            `json:"intermediate_score"`
	AdvancedScore       int            `json:"advanced_score"`
	BeginnerAnswers     domain.Answers `json:"beginner_answers"`
	IntermediateAnswers domain.Answers `json:"intermediate_answers"`
	AdvancedAnswers     domain.Answers `json:"advanced_answers"`
	TotalTimeSpent      int            `json:"total_time_spent"`
	BeginnerPassed      bool           `json:"beginner_passed"`
	IntermediatePassed  bool           `json:"intermediate_passed"`
	AdvancedPassed      bool           `json:"advanced_passed"`
	PassingScore        float64        `json:"passing_score"`
	LastUpdated         *utils.Time    `json:"last_updated,omitempty"`
}

type ProgressResponse struct {
	Success  bool     `json:"success"`
	Progress Progress `json:"progress"`
}

func ToProgressResponse(progress domain.Progress, scoring domain.Scoring) ProgressResponse {
	dto := Progress{
		ModuleCompleted:     progress.ModuleCompleted,
		BeginnerScore:       progress.BeginnerScore,
		IntermediateScore:   progress.IntermediateScore,
		AdvancedScore:       progress.AdvancedScore,
		BeginnerAnswers:     nonNilAnswers(progress.BeginnerAnswers),
		IntermediateAnswers: nonNilAnswers(progress.IntermediateAnswers),
		AdvancedAnswers:     nonNilAnswers(progress.AdvancedAnswers),
		TotalTimeSpent:      progress.TotalTimeSpent,
		BeginnerPassed:      scoring.Passed(progress.BeginnerScore),
		IntermediatePassed:  scoring.Passed(progress.IntermediateScore),
		AdvancedPassed:      scoring.Passed(progress.AdvancedScore),
		PassingScore:        scoring.PassingScore,
	}
	if !progress.LastUpdated.IsZero() {
		dto.LastUpdated = &utils.Time{Time: progress.LastUpdated}
	}

	return ProgressResponse{Success: true, Progress: dto}
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func nonNilAnswers(answers domain.Answers) domain.Answers {
	if answers == nil {
		return domain.Answers{}
	}
	return answers
}
