package usecase

import (
	"context"
	"sort"

	"skill-track/internal/domain/assess"
	"skill-track/internal/repository"
)

type RecomputeResult struct {
	RootSkillID        int64
	StudentsAssessed   int
	AssessmentsCreated int
	AssessmentsUpdated int
}

type StudentCategory struct {
	StudentID     int64
	GainedLevel   int
	ExpectedLevel int
	Category      assess.Category
}

type CategorySummary struct {
	RootSkillID int64
	Counts      map[assess.Category]int
	Students    []StudentCategory
}

type AssessmentUsecase interface {
	RecomputeForSkill(ctx context.Context, skillID int64) (RecomputeResult, error)
	RecomputeSubtree(ctx context.Context, sub *Subtree) (RecomputeResult, error)
	ListForSkill(ctx context.Context, skillID int64) (int64, []repository.SkillAssessment, error)
	// SummarizeForSkill categorizes students against CLO expectations. An
	// empty studentIDs covers every student with evidence in the subtree.
	SummarizeForSkill(ctx context.Context, skillID int64, studentIDs []int64) (CategorySummary, error)
}

type Assessment struct {
	tree        SkillTreeUsecase
	assessments repository.SkillAssessmentRepository
}

func NewAssessmentUsecase(tree SkillTreeUsecase, assessments repository.SkillAssessmentRepository) *Assessment {
	return &Assessment{tree: tree, assessments: assessments}
}

func (u *Assessment) RecomputeForSkill(ctx context.Context, skillID int64) (RecomputeResult, error) {
	sub, err := u.tree.LoadSubtree(ctx, skillID, nil)
	if err != nil {
		return RecomputeResult{}, err
	}
	return u.RecomputeSubtree(ctx, sub)
}

// RecomputeSubtree aggregates every student with evidence in the subtree
// and upserts the root assessments: create when absent, update only when
// the stored curriculum level differs, otherwise no write. Students whose
// whole subtree holds no evidence are never touched, so rows computed in
// earlier rounds for other students stay as they are.
func (u *Assessment) RecomputeSubtree(ctx context.Context, sub *Subtree) (RecomputeResult, error) {
	if sub == nil || sub.Tree == nil {
		return RecomputeResult{}, ErrInvalidInput
	}

	gained, _ := studentPools(sub)

	rootLevels := make(map[int64]int, len(gained))
	for studentID, pools := range gained {
		if lv := assess.Aggregate(sub.Tree, pools); lv.Valid {
			rootLevels[studentID] = lv.Value
		}
	}

	existing, err := u.assessments.FindBySkillID(ctx, sub.Tree.RootID)
	if err != nil {
		return RecomputeResult{}, ErrInternal
	}
	byStudent := make(map[int64]repository.SkillAssessment, len(existing))
	for _, a := range existing {
		byStudent[a.StudentID] = a
	}

	creates := make([]repository.SkillAssessment, 0)
	updates := make([]repository.SkillAssessmentUpdate, 0)
	for studentID, level := range rootLevels {
		prev, ok := byStudent[studentID]
		if !ok {
			creates = append(creates, repository.SkillAssessment{
				SkillID:         sub.Tree.RootID,
				StudentID:       studentID,
				CurriculumLevel: level,
				FinalLevel:      level,
			})
			continue
		}
		if prev.CurriculumLevel == level {
			continue
		}
		updates = append(updates, repository.SkillAssessmentUpdate{
			ID:              prev.ID,
			CurriculumLevel: level,
			FinalLevel:      maxInt(level, prev.CompanyLevel),
		})
	}

	if err := u.assessments.UpsertBatch(ctx, creates, updates); err != nil {
		return RecomputeResult{}, ErrInternal
	}

	return RecomputeResult{
		RootSkillID:        sub.Tree.RootID,
		StudentsAssessed:   len(rootLevels),
		AssessmentsCreated: len(creates),
		AssessmentsUpdated: len(updates),
	}, nil
}

func (u *Assessment) ListForSkill(ctx context.Context, skillID int64) (int64, []repository.SkillAssessment, error) {
	sub, err := u.tree.LoadSubtree(ctx, skillID, nil)
	if err != nil {
		return 0, nil, err
	}
	rows, err := u.assessments.FindBySkillID(ctx, sub.Tree.RootID)
	if err != nil {
		return 0, nil, ErrInternal
	}
	return sub.Tree.RootID, rows, nil
}

// SummarizeForSkill reports, per student, how the gained roll-up compares to
// the CLO expectations. Where several expectation points apply to one
// student, underperformance anywhere dominates the summary. A non-empty
// studentIDs narrows the evidence load to those students.
func (u *Assessment) SummarizeForSkill(ctx context.Context, skillID int64, studentIDs []int64) (CategorySummary, error) {
	sub, err := u.tree.LoadSubtree(ctx, skillID, studentIDs)
	if err != nil {
		return CategorySummary{}, err
	}

	gained, expected := studentPools(sub)

	out := CategorySummary{
		RootSkillID: sub.Tree.RootID,
		Counts:      make(map[assess.Category]int),
		Students:    make([]StudentCategory, 0, len(gained)),
	}

	for _, studentID := range sortedStudentIDs(gained) {
		gainedAll := assess.AggregateAll(sub.Tree, gained[studentID])
		expectedAll := assess.AggregateAll(sub.Tree, expected[studentID])

		rootGained := gainedAll[sub.Tree.RootID]
		rootExpected := expectedAll[sub.Tree.RootID]
		if !rootGained.Valid || !rootExpected.Valid {
			continue
		}

		// One category per expectation point: every node carrying a CLO
		// relevant to this student contributes a comparison.
		cats := make([]assess.Category, 0)
		for node, pool := range expected[studentID] {
			if len(pool) == 0 {
				continue
			}
			g, e := gainedAll[node], expectedAll[node]
			if !g.Valid || !e.Valid {
				continue
			}
			cats = append(cats, assess.Classify(g.Value, e.Value))
		}

		category, ok := assess.Summarize(cats)
		if !ok {
			continue
		}

		out.Counts[category]++
		out.Students = append(out.Students, StudentCategory{
			StudentID:     studentID,
			GainedLevel:   rootGained.Value,
			ExpectedLevel: rootExpected.Value,
			Category:      category,
		})
	}
	return out, nil
}

// studentPools splits the subtree's evidence into per-student pools: gained
// levels keyed by the CLO's skill node, and expected levels for every CLO
// the student has any evidence row for (relevance is presence, independent
// of the gained value, and counted once per CLO).
func studentPools(sub *Subtree) (gained, expected map[int64]assess.Pools) {
	closByID := make(map[int64]repository.Clo, len(sub.Clos))
	for _, c := range sub.Clos {
		closByID[c.ID] = c
	}

	gained = make(map[int64]assess.Pools)
	expected = make(map[int64]assess.Pools)
	seenCLO := make(map[[2]int64]bool)

	for _, row := range sub.Evidence {
		clo, ok := closByID[row.CloID]
		if !ok || clo.SkillID == nil {
			continue
		}
		node := *clo.SkillID

		if gained[row.StudentID] == nil {
			gained[row.StudentID] = make(assess.Pools)
		}
		gained[row.StudentID][node] = append(gained[row.StudentID][node], row.GainedLevel)

		mask := [2]int64{row.StudentID, clo.ID}
		if seenCLO[mask] {
			continue
		}
		seenCLO[mask] = true
		if expected[row.StudentID] == nil {
			expected[row.StudentID] = make(assess.Pools)
		}
		expected[row.StudentID][node] = append(expected[row.StudentID][node], clo.ExpectLevel)
	}
	return gained, expected
}

func sortedStudentIDs(pools map[int64]assess.Pools) []int64 {
	ids := make([]int64, 0, len(pools))
	for id := range pools {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
