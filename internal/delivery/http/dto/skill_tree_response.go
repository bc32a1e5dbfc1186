package dto

type SkillTreeNodeResponse struct {
	ID       int64   `json:"id"`
	ParentID *int64  `json:"parent_id"`
	Name     string  `json:"name"`
	Domain   string  `json:"domain,omitempty"`
	Children []int64 `json:"children"`
	IsLeaf   bool    `json:"is_leaf"`
}

type SkillTreeResponse struct {
	RootSkillID int64                   `json:"root_skill_id"`
	Nodes       []SkillTreeNodeResponse `json:"nodes"`
	Leaves      []int64                 `json:"leaves"`
}
