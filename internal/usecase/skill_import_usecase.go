package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"skill-track/internal/repository"
)

// ImportRow is one incoming score line: the student code as printed on the
// score sheet and the raw gained level.
type ImportRow struct {
	StudentCode string
	GainedLevel float64
}

type ImportResult struct {
	RootSkillID        int64
	CollectionsCreated int
	CollectionsUpdated int
	AssessmentsCreated int
	AssessmentsUpdated int
	RowsSkipped        int
}

type SkillImportUsecase interface {
	// ImportSkillCollections reconciles the incoming rows with the stored
	// skill_collections for (course, CLO), then recomputes the root
	// assessments across every student with evidence in the skill subtree.
	//
	// Concurrent imports on the same root are not serialized against each
	// other; interleaved runs may compute from a stale read (accepted gap).
	ImportSkillCollections(ctx context.Context, courseID, cloID int64, rows []ImportRow) (ImportResult, error)
}

type SkillImport struct {
	courses     repository.CourseRepository
	clos        repository.CloRepository
	students    repository.StudentRepository
	collections repository.SkillCollectionRepository
	tree        SkillTreeUsecase
	assessments AssessmentUsecase
	logger      *log.Logger
}

func NewSkillImportUsecase(
	courses repository.CourseRepository,
	clos repository.CloRepository,
	students repository.StudentRepository,
	collections repository.SkillCollectionRepository,
	tree SkillTreeUsecase,
	assessments AssessmentUsecase,
	logger *log.Logger,
) *SkillImport {
	if logger == nil {
		logger = log.Default()
	}
	return &SkillImport{
		courses:     courses,
		clos:        clos,
		students:    students,
		collections: collections,
		tree:        tree,
		assessments: assessments,
		logger:      logger,
	}
}

func (u *SkillImport) ImportSkillCollections(ctx context.Context, courseID, cloID int64, rows []ImportRow) (ImportResult, error) {
	if courseID <= 0 || cloID <= 0 {
		return ImportResult{}, ErrInvalidInput
	}

	course, err := u.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return ImportResult{}, ErrCourseNotFound
		}
		return ImportResult{}, ErrInternal
	}

	clo, err := u.clos.FindByID(ctx, cloID)
	if err != nil {
		if errors.Is(err, repository.ErrCloNotFound) {
			return ImportResult{}, ErrCloNotFound
		}
		return ImportResult{}, ErrInternal
	}
	if clo.SkillID == nil {
		return ImportResult{}, ErrCloHasNoSkill
	}

	result := ImportResult{}

	// Per-row issues are dropped with a warning, never fatal: one bad score
	// line must not block the rest of the sheet.
	cleaned := make([]ImportRow, 0, len(rows))
	byCode := make(map[string]int)
	for _, row := range rows {
		code := strings.TrimSpace(row.StudentCode)
		if code == "" {
			u.logger.Printf("SkillImport | row skipped | reason=empty_student_code course=%d clo=%d", courseID, cloID)
			result.RowsSkipped++
			continue
		}
		if i, dup := byCode[code]; dup {
			u.logger.Printf("SkillImport | duplicate student code, keeping last | code=%s course=%d clo=%d", code, courseID, cloID)
			cleaned[i] = ImportRow{StudentCode: code, GainedLevel: row.GainedLevel}
			continue
		}
		byCode[code] = len(cleaned)
		cleaned = append(cleaned, ImportRow{StudentCode: code, GainedLevel: row.GainedLevel})
	}

	studentsByCode, err := u.ensureStudents(ctx, course, cleaned)
	if err != nil {
		return ImportResult{}, err
	}

	existing, err := u.collections.FindByCourseAndClo(ctx, courseID, cloID)
	if err != nil {
		return ImportResult{}, ErrInternal
	}
	existingByStudent := make(map[int64]repository.SkillCollection, len(existing))
	for _, sc := range existing {
		existingByStudent[sc.StudentID] = sc
	}

	creates := make([]repository.SkillCollection, 0)
	updates := make([]repository.SkillCollectionUpdate, 0)
	for _, row := range cleaned {
		student, ok := studentsByCode[row.StudentCode]
		if !ok {
			u.logger.Printf("SkillImport | row skipped | reason=unresolved_student code=%s course=%d clo=%d", row.StudentCode, courseID, cloID)
			result.RowsSkipped++
			continue
		}

		level := normalizeLevel(row.GainedLevel)
		passed := level >= clo.ExpectLevel

		prev, has := existingByStudent[student.ID]
		if !has {
			creates = append(creates, repository.SkillCollection{
				StudentID:   student.ID,
				CourseID:    courseID,
				CloID:       cloID,
				GainedLevel: level,
				Passed:      passed,
			})
			continue
		}
		if prev.GainedLevel == level {
			continue
		}
		updates = append(updates, repository.SkillCollectionUpdate{ID: prev.ID, GainedLevel: level, Passed: passed})
	}

	if err := u.collections.SaveBatch(ctx, creates, updates); err != nil {
		return ImportResult{}, ErrInternal
	}
	result.CollectionsCreated = len(creates)
	result.CollectionsUpdated = len(updates)

	// Recompute across every student with evidence anywhere in the subtree,
	// not just the rows written above: other courses feeding the same tree
	// shift aggregates too.
	sub, err := u.tree.LoadSubtree(ctx, *clo.SkillID, nil)
	if err != nil {
		return ImportResult{}, err
	}
	rc, err := u.assessments.RecomputeSubtree(ctx, sub)
	if err != nil {
		return ImportResult{}, err
	}

	result.RootSkillID = rc.RootSkillID
	result.AssessmentsCreated = rc.AssessmentsCreated
	result.AssessmentsUpdated = rc.AssessmentsUpdated

	u.logger.Printf(
		"SkillImport | done | course=%d clo=%d root=%d collections_created=%d collections_updated=%d assessments_created=%d assessments_updated=%d skipped=%d",
		courseID, cloID, result.RootSkillID,
		result.CollectionsCreated, result.CollectionsUpdated,
		result.AssessmentsCreated, result.AssessmentsUpdated, result.RowsSkipped,
	)

	return result, nil
}

func (u *SkillImport) ensureStudents(ctx context.Context, course repository.Course, rows []ImportRow) (map[string]repository.Student, error) {
	codes := make([]string, 0, len(rows))
	toCreate := make([]repository.Student, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, row.StudentCode)
		toCreate = append(toCreate, repository.Student{Code: row.StudentCode, CurriculumID: course.CurriculumID})
	}

	if err := u.students.CreateIfAbsent(ctx, toCreate); err != nil {
		return nil, ErrInternal
	}

	found, err := u.students.FindByCodes(ctx, codes)
	if err != nil {
		return nil, ErrInternal
	}

	byCode := make(map[string]repository.Student, len(found))
	for _, s := range found {
		byCode[s.Code] = s
	}
	return byCode, nil
}

// normalizeLevel floors the raw score and clamps it to [0, MaxInt32]; the
// evidence layer stores non-negative INT columns only. The upper clamp
// keeps a finite but absurd JSON number (or +Inf) from overflowing the
// float-to-int conversion into a negative value.
func normalizeLevel(raw float64) int {
	if math.IsNaN(raw) || raw < 0 {
		return 0
	}
	if raw > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(raw))
}
