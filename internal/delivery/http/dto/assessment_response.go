package dto

type AssessmentResponse struct {
	ID              int64 `json:"id"`
	SkillID         int64 `json:"skill_id"`
	StudentID       int64 `json:"student_id"`
	CurriculumLevel int   `json:"curriculum_level"`
	CompanyLevel    int   `json:"company_level"`
	FinalLevel      int   `json:"final_level"`
}

type AssessmentListResponse struct {
	RootSkillID int64                `json:"root_skill_id"`
	Items       []AssessmentResponse `json:"items"`
}

type StudentCategoryResponse struct {
	StudentID     int64  `json:"student_id"`
	GainedLevel   int    `json:"gained_level"`
	ExpectedLevel int    `json:"expected_level"`
	Category      string `json:"category"`
}

type CategorySummaryResponse struct {
	RootSkillID int64                     `json:"root_skill_id"`
	Above       int                       `json:"above"`
	On          int                       `json:"on"`
	Below       int                       `json:"below"`
	Students    []StudentCategoryResponse `json:"students"`
}

type RecomputeResponse struct {
	RootSkillID        int64 `json:"root_skill_id"`
	StudentsAssessed   int   `json:"students_assessed"`
	AssessmentsCreated int   `json:"assessments_created"`
	AssessmentsUpdated int   `json:"assessments_updated"`
}
