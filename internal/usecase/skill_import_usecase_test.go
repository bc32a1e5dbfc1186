package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"skill-track/internal/repository"
)

type mockCourseRepo struct {
	byID map[int64]repository.Course
}

func (m mockCourseRepo) FindByID(_ context.Context, id int64) (repository.Course, error) {
	c, ok := m.byID[id]
	if !ok {
		return repository.Course{}, repository.ErrCourseNotFound
	}
	return c, nil
}

type mockStudentRepo struct {
	byCode map[string]repository.Student
	nextID int64
}

func (m *mockStudentRepo) FindByCodes(_ context.Context, codes []string) ([]repository.Student, error) {
	out := make([]repository.Student, 0, len(codes))
	for _, code := range codes {
		if s, ok := m.byCode[code]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStudentRepo) CreateIfAbsent(_ context.Context, students []repository.Student) error {
	if m.byCode == nil {
		m.byCode = make(map[string]repository.Student)
	}
	for _, s := range students {
		if _, ok := m.byCode[s.Code]; ok {
			continue
		}
		m.nextID++
		s.ID = m.nextID
		m.byCode[s.Code] = s
	}
	return nil
}

// memCollectionRepo applies SaveBatch to its own state so repeated imports
// observe earlier writes.
type memCollectionRepo struct {
	mockCollectionRepo
	nextID int64
}

func (m *memCollectionRepo) SaveBatch(ctx context.Context, creates []repository.SkillCollection, updates []repository.SkillCollectionUpdate) error {
	if err := m.mockCollectionRepo.SaveBatch(ctx, creates, updates); err != nil {
		return err
	}
	for _, c := range creates {
		m.nextID++
		c.ID = m.nextID
		m.rows = append(m.rows, c)
	}
	for _, up := range updates {
		for i := range m.rows {
			if m.rows[i].ID == up.ID {
				m.rows[i].GainedLevel = up.GainedLevel
				m.rows[i].Passed = up.Passed
			}
		}
	}
	return nil
}

type stubAssessmentUsecase struct {
	result         RecomputeResult
	recomputeCalls int
}

func (s *stubAssessmentUsecase) RecomputeForSkill(context.Context, int64) (RecomputeResult, error) {
	return s.result, nil
}

func (s *stubAssessmentUsecase) RecomputeSubtree(context.Context, *Subtree) (RecomputeResult, error) {
	s.recomputeCalls++
	return s.result, nil
}

func (s *stubAssessmentUsecase) ListForSkill(context.Context, int64) (int64, []repository.SkillAssessment, error) {
	return 0, nil, nil
}

func (s *stubAssessmentUsecase) SummarizeForSkill(context.Context, int64, []int64) (CategorySummary, error) {
	return CategorySummary{}, nil
}

func newImportFixture(coll *memCollectionRepo) (*SkillImport, *stubAssessmentUsecase) {
	clo := repository.Clo{ID: 10, SubjectID: 1, SkillID: ptrInt64(7), Name: "clo", ExpectLevel: 3}
	sub := singleNodeSubtree(nil)
	assessStub := &stubAssessmentUsecase{result: RecomputeResult{RootSkillID: 7}}

	uc := NewSkillImportUsecase(
		mockCourseRepo{byID: map[int64]repository.Course{1: {ID: 1, SubjectID: 1, CurriculumID: 1, Name: "course"}}},
		mockCloRepo{byID: map[int64]repository.Clo{10: clo, 11: {ID: 11, SubjectID: 1, Name: "detached"}}},
		&mockStudentRepo{},
		coll,
		stubTreeUsecase{sub: sub},
		assessStub,
		nil,
	)
	return uc, assessStub
}

func TestImport_UnknownCourse(t *testing.T) {
	uc, _ := newImportFixture(&memCollectionRepo{})
	if _, err := uc.ImportSkillCollections(context.Background(), 99, 10, nil); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestImport_UnknownClo(t *testing.T) {
	uc, _ := newImportFixture(&memCollectionRepo{})
	if _, err := uc.ImportSkillCollections(context.Background(), 1, 99, nil); !errors.Is(err, ErrCloNotFound) {
		t.Fatalf("expected ErrCloNotFound, got %v", err)
	}
}

func TestImport_CloWithoutSkill(t *testing.T) {
	uc, _ := newImportFixture(&memCollectionRepo{})
	if _, err := uc.ImportSkillCollections(context.Background(), 1, 11, nil); !errors.Is(err, ErrCloHasNoSkill) {
		t.Fatalf("expected ErrCloHasNoSkill, got %v", err)
	}
}

func TestImport_CreatesAndNormalizes(t *testing.T) {
	coll := &memCollectionRepo{}
	uc, assessStub := newImportFixture(coll)

	rows := []ImportRow{
		{StudentCode: " s-1 ", GainedLevel: 4.7},
		{StudentCode: "s-2", GainedLevel: -2},
		{StudentCode: "   ", GainedLevel: 3},
	}
	res, err := uc.ImportSkillCollections(context.Background(), 1, 10, rows)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if res.CollectionsCreated != 2 || res.CollectionsUpdated != 0 || res.RowsSkipped != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.RootSkillID != 7 {
		t.Fatalf("expected root 7, got %d", res.RootSkillID)
	}
	if assessStub.recomputeCalls != 1 {
		t.Fatalf("expected one recompute, got %d", assessStub.recomputeCalls)
	}

	byLevel := make(map[int]bool)
	for _, c := range coll.savedCreates {
		byLevel[c.GainedLevel] = c.Passed
	}
	// 4.7 floors to 4 and passes against expect 3; -2 clamps to 0 and fails.
	if passed, ok := byLevel[4]; !ok || !passed {
		t.Fatalf("expected passing level 4, got %+v", coll.savedCreates)
	}
	if passed, ok := byLevel[0]; !ok || passed {
		t.Fatalf("expected failing level 0, got %+v", coll.savedCreates)
	}
}

func TestImport_ClampsOversizedLevels(t *testing.T) {
	coll := &memCollectionRepo{}
	uc, _ := newImportFixture(coll)

	rows := []ImportRow{
		{StudentCode: "s-1", GainedLevel: 1e30},
		{StudentCode: "s-2", GainedLevel: math.Inf(1)},
	}
	res, err := uc.ImportSkillCollections(context.Background(), 1, 10, rows)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.CollectionsCreated != 2 {
		t.Fatalf("expected two creates, got %+v", res)
	}
	// A score beyond int range must saturate, never wrap negative.
	for _, c := range coll.savedCreates {
		if c.GainedLevel != math.MaxInt32 {
			t.Fatalf("expected clamp to %d, got %+v", math.MaxInt32, c)
		}
		if !c.Passed {
			t.Fatalf("clamped level must still pass expect 3: %+v", c)
		}
	}
}

func TestImport_DuplicateCodeKeepsLast(t *testing.T) {
	coll := &memCollectionRepo{}
	uc, _ := newImportFixture(coll)

	rows := []ImportRow{
		{StudentCode: "s-1", GainedLevel: 2},
		{StudentCode: "s-1", GainedLevel: 5},
	}
	res, err := uc.ImportSkillCollections(context.Background(), 1, 10, rows)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.CollectionsCreated != 1 {
		t.Fatalf("expected one create, got %+v", res)
	}
	if coll.savedCreates[0].GainedLevel != 5 {
		t.Fatalf("last value must win, got %+v", coll.savedCreates[0])
	}
}

func TestImport_SecondRunWritesNothing(t *testing.T) {
	coll := &memCollectionRepo{}
	uc, _ := newImportFixture(coll)

	rows := []ImportRow{
		{StudentCode: "s-1", GainedLevel: 4},
		{StudentCode: "s-2", GainedLevel: 2},
	}
	if _, err := uc.ImportSkillCollections(context.Background(), 1, 10, rows); err != nil {
		t.Fatalf("first run: %v", err)
	}

	res, err := uc.ImportSkillCollections(context.Background(), 1, 10, rows)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if res.CollectionsCreated != 0 || res.CollectionsUpdated != 0 {
		t.Fatalf("identical rerun must write nothing, got %+v", res)
	}
}

func TestImport_UpdatesOnlyChangedRows(t *testing.T) {
	coll := &memCollectionRepo{}
	uc, _ := newImportFixture(coll)

	first := []ImportRow{
		{StudentCode: "s-1", GainedLevel: 4},
		{StudentCode: "s-2", GainedLevel: 2},
	}
	if _, err := uc.ImportSkillCollections(context.Background(), 1, 10, first); err != nil {
		t.Fatalf("first run: %v", err)
	}
	coll.savedCreates = nil
	coll.savedUpdates = nil

	second := []ImportRow{
		{StudentCode: "s-1", GainedLevel: 4},
		{StudentCode: "s-2", GainedLevel: 3},
	}
	res, err := uc.ImportSkillCollections(context.Background(), 1, 10, second)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if res.CollectionsCreated != 0 || res.CollectionsUpdated != 1 {
		t.Fatalf("expected a single update, got %+v", res)
	}
	up := coll.savedUpdates[0]
	if up.GainedLevel != 3 || !up.Passed {
		t.Fatalf("update wrong: %+v", up)
	}
}
