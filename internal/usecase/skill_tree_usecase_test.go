package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-track/internal/repository"
)

type mockSkillRepo struct {
	byID map[int64]repository.Skill
}

func (m mockSkillRepo) FindByID(_ context.Context, id int64) (repository.Skill, error) {
	s, ok := m.byID[id]
	if !ok {
		return repository.Skill{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (m mockSkillRepo) FindByParentIDs(_ context.Context, parentIDs []int64) ([]repository.Skill, error) {
	out := make([]repository.Skill, 0)
	for _, pid := range parentIDs {
		for _, s := range m.byID {
			if s.ParentID != nil && *s.ParentID == pid {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (m mockSkillRepo) GetAllSkills(context.Context) ([]repository.Skill, error) { return nil, nil }
func (m mockSkillRepo) CreateSkill(_ context.Context, s repository.Skill) (repository.Skill, error) {
	return s, nil
}

type mockCloRepo struct {
	byID     map[int64]repository.Clo
	bySkills []repository.Clo
}

func (m mockCloRepo) FindByID(_ context.Context, id int64) (repository.Clo, error) {
	c, ok := m.byID[id]
	if !ok {
		return repository.Clo{}, repository.ErrCloNotFound
	}
	return c, nil
}

func (m mockCloRepo) FindBySkillIDs(_ context.Context, skillIDs []int64) ([]repository.Clo, error) {
	wanted := make(map[int64]bool, len(skillIDs))
	for _, id := range skillIDs {
		wanted[id] = true
	}
	out := make([]repository.Clo, 0)
	for _, c := range m.bySkills {
		if c.SkillID != nil && wanted[*c.SkillID] {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockCollectionRepo struct {
	rows []repository.SkillCollection

	savedCreates []repository.SkillCollection
	savedUpdates []repository.SkillCollectionUpdate
	saveCalls    int
}

func (m *mockCollectionRepo) FindByCourseAndClo(_ context.Context, courseID, cloID int64) ([]repository.SkillCollection, error) {
	out := make([]repository.SkillCollection, 0)
	for _, r := range m.rows {
		if r.CourseID == courseID && r.CloID == cloID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockCollectionRepo) FindByCloIDs(_ context.Context, cloIDs []int64) ([]repository.SkillCollection, error) {
	wanted := make(map[int64]bool, len(cloIDs))
	for _, id := range cloIDs {
		wanted[id] = true
	}
	out := make([]repository.SkillCollection, 0)
	for _, r := range m.rows {
		if wanted[r.CloID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockCollectionRepo) SaveBatch(_ context.Context, creates []repository.SkillCollection, updates []repository.SkillCollectionUpdate) error {
	m.saveCalls++
	m.savedCreates = append(m.savedCreates, creates...)
	m.savedUpdates = append(m.savedUpdates, updates...)
	return nil
}

func ptrInt64(v int64) *int64 { return &v }

func treeFixtureSkills() map[int64]repository.Skill {
	// root(1) -> A(2), B(3); A -> leaf(4).
	return map[int64]repository.Skill{
		1: {ID: 1, Name: "root"},
		2: {ID: 2, ParentID: ptrInt64(1), Name: "a"},
		3: {ID: 3, ParentID: ptrInt64(1), Name: "b"},
		4: {ID: 4, ParentID: ptrInt64(2), Name: "leaf"},
	}
}

func TestLoadSubtree_ResolvesRootFromInternalNode(t *testing.T) {
	uc := NewSkillTreeUsecase(
		mockSkillRepo{byID: treeFixtureSkills()},
		mockCloRepo{},
		&mockCollectionRepo{},
		nil, nil,
	)

	sub, err := uc.LoadSubtree(context.Background(), 4, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sub.Tree.RootID != 1 {
		t.Fatalf("expected root 1, got %d", sub.Tree.RootID)
	}
	if len(sub.Tree.Nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(sub.Tree.Nodes))
	}
	if len(sub.Tree.Leaves) != 2 {
		t.Fatalf("expected leaves {3,4}, got %v", sub.Tree.Leaves)
	}
}

func TestLoadSubtree_UnknownSkill(t *testing.T) {
	uc := NewSkillTreeUsecase(
		mockSkillRepo{byID: treeFixtureSkills()},
		mockCloRepo{},
		&mockCollectionRepo{},
		nil, nil,
	)

	if _, err := uc.LoadSubtree(context.Background(), 99, nil); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestLoadSubtree_SingleNodeIsItsOwnLeaf(t *testing.T) {
	uc := NewSkillTreeUsecase(
		mockSkillRepo{byID: map[int64]repository.Skill{7: {ID: 7, Name: "solo"}}},
		mockCloRepo{},
		&mockCollectionRepo{},
		nil, nil,
	)

	sub, err := uc.LoadSubtree(context.Background(), 7, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sub.Tree.RootID != 7 {
		t.Fatalf("expected root 7, got %d", sub.Tree.RootID)
	}
	if len(sub.Tree.Leaves) != 1 || sub.Tree.Leaves[0] != 7 {
		t.Fatalf("single node must be its own leaf, got %v", sub.Tree.Leaves)
	}
}

func TestLoadSubtree_FiltersEvidenceByStudents(t *testing.T) {
	clo := repository.Clo{ID: 10, SkillID: ptrInt64(4), ExpectLevel: 3}
	coll := &mockCollectionRepo{rows: []repository.SkillCollection{
		{ID: 1, StudentID: 100, CloID: 10, GainedLevel: 3},
		{ID: 2, StudentID: 200, CloID: 10, GainedLevel: 4},
	}}

	uc := NewSkillTreeUsecase(
		mockSkillRepo{byID: treeFixtureSkills()},
		mockCloRepo{bySkills: []repository.Clo{clo}},
		coll,
		nil, nil,
	)

	sub, err := uc.LoadSubtree(context.Background(), 1, []int64{200})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(sub.Evidence) != 1 || sub.Evidence[0].StudentID != 200 {
		t.Fatalf("expected only student 200's rows, got %+v", sub.Evidence)
	}
}
