package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/persistence/db"
)

// ProjectRepository stores projects with their milestones in a child table.
// A repository bound to a transaction (see WithMentorLock) has tx set and
// runs every write inside it.
type ProjectRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
	tx   pgx.Tx
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{q: db.New(pool), pool: pool}
}

// runInTx runs fn in a transaction, or in the bound one if present.
func (r *ProjectRepository) runInTx(ctx context.Context, fn func(*db.Queries) error) error {
	if r.tx != nil {
		return fn(r.q)
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	if err := fn(db.New(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	return r.runInTx(ctx, func(q *db.Queries) error {
		if err := q.InsertProject(ctx, domainProjectToDB(p)); err != nil {
			return err
		}
		return insertMilestones(ctx, q, p)
	})
}

func (r *ProjectRepository) GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	row, err := r.q.GetProject(ctx, id.UUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	ps, err := r.withMilestones(ctx, []db.Project{row})
	if err != nil {
		return nil, err
	}
	return ps[0], nil
}

// Save rewrites the project row and replaces its milestones.
func (r *ProjectRepository) Save(ctx context.Context, p *domain.Project) error {
	return r.runInTx(ctx, func(q *db.Queries) error {
		n, err := q.UpdateProject(ctx, domainProjectToDB(p))
		if err != nil {
			return err
		}
		if n == 0 {
			return domerrors.ErrProjectNotFound
		}
		if err := q.DeleteMilestones(ctx, p.ID.UUID); err != nil {
			return err
		}
		return insertMilestones(ctx, q, p)
	})
}

func (r *ProjectRepository) Delete(ctx context.Context, id domain.ProjectID) error {
	return r.q.DeleteProject(ctx, id.UUID)
}

func (r *ProjectRepository) ListByStudent(ctx context.Context, studentID domain.UserID) ([]*domain.Project, error) {
	rows, err := r.q.ListProjectsByStudent(ctx, studentID.UUID)
	if err != nil {
		return nil, err
	}
	return r.withMilestones(ctx, rows)
}

func (r *ProjectRepository) ListByMentor(ctx context.Context, mentorID domain.UserID, statuses ...domain.ProjectStatus) ([]*domain.Project, error) {
	rows, err := r.q.ListProjectsByMentor(ctx, mentorID.UUID, statusStrings(statuses))
	if err != nil {
		return nil, err
	}
	return r.withMilestones(ctx, rows)
}

func (r *ProjectRepository) CountByMentor(ctx context.Context, mentorID domain.UserID, statuses ...domain.ProjectStatus) (int, error) {
	n, err := r.q.CountProjectsByMentor(ctx, mentorID.UUID, statusStrings(statuses))
	return int(n), err
}

// WithMentorLock opens a transaction, takes the mentor's advisory lock and
// hands fn a repository bound to that transaction. The lock is released on
// commit or rollback.
func (r *ProjectRepository) WithMentorLock(ctx context.Context, mentorID domain.UserID, fn func(ctx context.Context, repo ports.ProjectRepository) error) error {
	if r.tx != nil {
		if err := r.q.LockMentor(ctx, mentorID.UUID); err != nil {
			return err
		}
		return fn(ctx, r)
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	bound := &ProjectRepository{q: db.New(tx), pool: r.pool, tx: tx}
	if err := bound.q.LockMentor(ctx, mentorID.UUID); err != nil {
		return err
	}
	if err := fn(ctx, bound); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ProjectRepository) withMilestones(ctx context.Context, rows []db.Project) ([]*domain.Project, error) {
	out := make([]*domain.Project, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, len(rows))
	byID := make(map[uuid.UUID]*domain.Project, len(rows))
	for i, row := range rows {
		p := dbProjectToDomain(row)
		ids[i] = row.ID
		byID[row.ID] = p
		out = append(out, p)
	}
	ms, err := r.q.ListMilestones(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		if p := byID[m.ProjectID]; p != nil {
			p.Milestones = append(p.Milestones, dbMilestoneToDomain(m))
		}
	}
	return out, nil
}

func insertMilestones(ctx context.Context, q *db.Queries, p *domain.Project) error {
	for i, m := range p.Milestones {
		if err := q.InsertMilestone(ctx, db.Milestone{
			ID:          m.ID.UUID,
			ProjectID:   p.ID.UUID,
			Position:    int32(i),
			Title:       m.Title,
			Description: m.Description,
			DueDate:     m.DueDate,
			Status:      string(m.Status),
			Submission:  m.Submission,
			Feedback:    m.Feedback,
			UpdatedAt:   m.UpdatedAt,
		}); err != nil {
			return err
		}
	}
	return nil
}

func statusStrings(statuses []domain.ProjectStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func domainProjectToDB(p *domain.Project) db.Project {
	row := db.Project{
		ID:             p.ID.UUID,
		StudentID:      p.StudentID.UUID,
		Title:          p.Title,
		Idea:           p.Idea,
		GuidanceNeeded: p.GuidanceNeeded,
		Keywords:       p.Keywords,
		Status:         string(p.Status),
		Progress:       int32(p.Progress),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if row.Keywords == nil {
		row.Keywords = []string{}
	}
	if p.MentorID != nil {
		m := p.MentorID.UUID
		row.MentorID = &m
	}
	return row
}

func dbProjectToDomain(row db.Project) *domain.Project {
	p := &domain.Project{
		ID:             domain.NewProjectID(row.ID),
		StudentID:      domain.NewUserID(row.StudentID),
		Title:          row.Title,
		Idea:           row.Idea,
		GuidanceNeeded: row.GuidanceNeeded,
		Keywords:       row.Keywords,
		Status:         domain.ProjectStatus(row.Status),
		Progress:       int(row.Progress),
		Milestones:     []domain.Milestone{},
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.MentorID != nil {
		m := domain.NewUserID(*row.MentorID)
		p.MentorID = &m
	}
	return p
}

func dbMilestoneToDomain(m db.Milestone) domain.Milestone {
	return domain.Milestone{
		ID:          domain.NewMilestoneID(m.ID),
		Title:       m.Title,
		Description: m.Description,
		DueDate:     m.DueDate,
		Status:      domain.MilestoneStatus(m.Status),
		Submission:  m.Submission,
		Feedback:    m.Feedback,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Ensure ProjectRepository implements ports.ProjectRepository.
var _ ports.ProjectRepository = (*ProjectRepository)(nil)
