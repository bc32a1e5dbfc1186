package usecase

import (
	"context"
	"errors"
	"log"

	"skill-track/internal/domain/assess"
	"skill-track/internal/repository"
)

// Subtree is one loaded skill subtree: the structural part (tree, nodes,
// CLOs) plus the skill_collection evidence rows for the candidate students.
// The structure is shared across every student in a pass; evidence is always
// loaded fresh.
type Subtree struct {
	Tree     *assess.Tree
	Skills   map[int64]repository.Skill
	Clos     []repository.Clo
	Evidence []repository.SkillCollection
}

// treeStructure is the cacheable part of a Subtree.
type treeStructure struct {
	Tree   *assess.Tree
	Skills []repository.Skill
	Clos   []repository.Clo
}

type SkillTreeUsecase interface {
	// LoadSubtree resolves the root above skillID, expands the full subtree
	// and loads its CLOs and evidence. An empty studentIDs loads evidence
	// for every student present in the subtree.
	LoadSubtree(ctx context.Context, skillID int64, studentIDs []int64) (*Subtree, error)
	// Invalidate drops the cached structure for the root above skillID.
	Invalidate(ctx context.Context, skillID int64)
}

type SkillTree struct {
	skills      repository.SkillRepository
	clos        repository.CloRepository
	collections repository.SkillCollectionRepository
	cache       TreeCache
	logger      *log.Logger
}

func NewSkillTreeUsecase(
	skills repository.SkillRepository,
	clos repository.CloRepository,
	collections repository.SkillCollectionRepository,
	cache TreeCache,
	logger *log.Logger,
) *SkillTree {
	if logger == nil {
		logger = log.Default()
	}
	return &SkillTree{skills: skills, clos: clos, collections: collections, cache: cache, logger: logger}
}

func (u *SkillTree) LoadSubtree(ctx context.Context, skillID int64, studentIDs []int64) (*Subtree, error) {
	rootID, err := u.resolveRoot(ctx, skillID)
	if err != nil {
		return nil, err
	}

	structure, err := u.loadStructure(ctx, rootID)
	if err != nil {
		return nil, err
	}

	cloIDs := make([]int64, 0, len(structure.Clos))
	for _, c := range structure.Clos {
		cloIDs = append(cloIDs, c.ID)
	}

	evidence, err := u.collections.FindByCloIDs(ctx, cloIDs)
	if err != nil {
		return nil, ErrInternal
	}
	if len(studentIDs) > 0 {
		wanted := make(map[int64]bool, len(studentIDs))
		for _, id := range studentIDs {
			wanted[id] = true
		}
		filtered := evidence[:0]
		for _, row := range evidence {
			if wanted[row.StudentID] {
				filtered = append(filtered, row)
			}
		}
		evidence = filtered
	}

	skillsByID := make(map[int64]repository.Skill, len(structure.Skills))
	for _, s := range structure.Skills {
		skillsByID[s.ID] = s
	}

	return &Subtree{
		Tree:     structure.Tree,
		Skills:   skillsByID,
		Clos:     structure.Clos,
		Evidence: evidence,
	}, nil
}

func (u *SkillTree) Invalidate(ctx context.Context, skillID int64) {
	if u.cache == nil {
		return
	}
	rootID, err := u.resolveRoot(ctx, skillID)
	if err != nil {
		return
	}
	if err := u.cache.Delete(ctx, treeCacheKey(rootID)); err != nil {
		u.logger.Printf("SkillTree | cache invalidate failed | root=%d error=%v", rootID, err)
	}
}

// resolveRoot walks parent pointers upward until a root. The seen guard
// turns a corrupted cyclic parent chain into an error instead of a hang.
func (u *SkillTree) resolveRoot(ctx context.Context, skillID int64) (int64, error) {
	seen := make(map[int64]bool)
	cur, err := u.skills.FindByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return 0, ErrSkillNotFound
		}
		return 0, ErrInternal
	}

	for cur.ParentID != nil {
		if seen[cur.ID] {
			return 0, ErrInternal
		}
		seen[cur.ID] = true

		parent, err := u.skills.FindByID(ctx, *cur.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrSkillNotFound) {
				return 0, ErrSkillNotFound
			}
			return 0, ErrInternal
		}
		cur = parent
	}
	return cur.ID, nil
}

func (u *SkillTree) loadStructure(ctx context.Context, rootID int64) (*treeStructure, error) {
	key := treeCacheKey(rootID)
	if u.cache != nil {
		var cached treeStructure
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit && cached.Tree != nil {
			return &cached, nil
		}
	}

	structure, err := u.expand(ctx, rootID)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, structure, treeCacheTTL); err != nil {
			u.logger.Printf("SkillTree | cache store failed | root=%d error=%v", rootID, err)
		}
	}
	return structure, nil
}

// expand performs the breadth-first subtree walk from the root: every
// frontier's children are fetched in one query, each node is visited at
// most once.
func (u *SkillTree) expand(ctx context.Context, rootID int64) (*treeStructure, error) {
	root, err := u.skills.FindByID(ctx, rootID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, ErrInternal
	}

	seen := map[int64]bool{root.ID: true}
	allSkills := []repository.Skill{root}
	children := make(map[int64][]int64)

	frontier := []int64{root.ID}
	for len(frontier) > 0 {
		batch, err := u.skills.FindByParentIDs(ctx, frontier)
		if err != nil {
			return nil, ErrInternal
		}

		next := make([]int64, 0, len(batch))
		for _, s := range batch {
			if seen[s.ID] {
				continue
			}
			seen[s.ID] = true
			allSkills = append(allSkills, s)
			if s.ParentID != nil {
				children[*s.ParentID] = append(children[*s.ParentID], s.ID)
			}
			next = append(next, s.ID)
		}
		frontier = next
	}

	nodes := make([]int64, 0, len(allSkills))
	leaves := make([]int64, 0)
	for _, s := range allSkills {
		nodes = append(nodes, s.ID)
		if len(children[s.ID]) == 0 {
			leaves = append(leaves, s.ID)
		}
	}

	clos, err := u.clos.FindBySkillIDs(ctx, nodes)
	if err != nil {
		return nil, ErrInternal
	}

	return &treeStructure{
		Tree: &assess.Tree{
			RootID:   root.ID,
			Nodes:    nodes,
			Children: children,
			Leaves:   leaves,
		},
		Skills: allSkills,
		Clos:   clos,
	}, nil
}
