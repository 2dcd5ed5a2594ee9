package application

import (
	"fmt"
	"slices"
	"strings"

	"termfolio/internal/domain"
	"termfolio/internal/domain/entities"
	"termfolio/internal/ports/output"
)

// ProjectService answers every query over the project table.
// Results are fresh copies; the table itself is never handed out.
type ProjectService struct {
	projectRepo output.ProjectRepository
}

func NewProjectService(projectRepo output.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

func (s *ProjectService) All() []entities.Project {
	return s.filter(func(entities.Project) bool { return true })
}

func (s *ProjectService) Featured() []entities.Project {
	return s.filter(func(p entities.Project) bool { return p.Featured })
}

// ByCategory matches projects having a tech tag that contains category,
// ignoring case. An empty category matches every project with any tag.
func (s *ProjectService) ByCategory(category string) []entities.Project {
	needle := strings.ToLower(category)
	return s.filter(func(p entities.Project) bool {
		return slices.ContainsFunc(p.Tech, func(tech string) bool {
			return strings.Contains(strings.ToLower(tech), needle)
		})
	})
}

// ByTitle returns the first project whose Spanish or English title is exactly title.
func (s *ProjectService) ByTitle(title string) (entities.Project, error) {
	for _, p := range s.projectRepo.All() {
		if p.Title.ES == title || p.Title.EN == title {
			return p.Clone(), nil
		}
	}
	return entities.Project{}, fmt.Errorf("%w: %q", domain.ErrProjectNotFound, title)
}

func (s *ProjectService) WithImages() []entities.Project {
	return s.filter(entities.Project.HasImages)
}

func (s *ProjectService) WithExplanation() []entities.Project {
	return s.filter(entities.Project.HasExplanation)
}

// Ordered returns featured projects first, each group keeping source order.
func (s *ProjectService) Ordered() []entities.Project {
	out := s.All()
	slices.SortStableFunc(out, func(a, b entities.Project) int {
		switch {
		case a.Featured == b.Featured:
			return 0
		case a.Featured:
			return -1
		default:
			return 1
		}
	})
	return out
}

func (s *ProjectService) filter(keep func(entities.Project) bool) []entities.Project {
	all := s.projectRepo.All()
	out := make([]entities.Project, 0, len(all))
	for _, p := range all {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
