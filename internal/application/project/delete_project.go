package project

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// DeleteProject removes a project on behalf of its owner.
type DeleteProject struct {
	projects ports.ProjectRepository
}

// NewDeleteProject builds the use case.
func NewDeleteProject(projects ports.ProjectRepository) *DeleteProject {
	return &DeleteProject{projects: projects}
}

// Execute deletes the project if actor owns it.
func (uc *DeleteProject) Execute(ctx context.Context, actor domain.Identity, id domain.ProjectID) error {
	p, err := loadProject(ctx, uc.projects, id)
	if err != nil {
		return err
	}
	if err := p.AuthorizeDelete(actor); err != nil {
		return err
	}
	return uc.projects.Delete(ctx, id)
}
