package dto

type StatusResponse struct {
	Skills           int64 `json:"skills"`
	Students         int64 `json:"students"`
	SkillCollections int64 `json:"skill_collections"`
	SkillAssessments int64 `json:"skill_assessments"`
	DatabaseHealthy  bool  `json:"database_healthy"`
	CacheHealthy     bool  `json:"cache_healthy"`
}
