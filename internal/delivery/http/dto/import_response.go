package dto

type ImportResultResponse struct {
	RootSkillID        int64 `json:"root_skill_id"`
	CollectionsCreated int   `json:"collections_created"`
	CollectionsUpdated int   `json:"collections_updated"`
	AssessmentsCreated int   `json:"assessments_created"`
	AssessmentsUpdated int   `json:"assessments_updated"`
	RowsSkipped        int   `json:"rows_skipped"`
}
