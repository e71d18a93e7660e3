package db

import (
	"context"

	"github.com/google/uuid"
)

const projectColumns = `id, student_id, mentor_id, title, idea, guidance_needed, keywords, status, progress, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (Project, error) {
	var i Project
	err := row.Scan(
		&i.ID, &i.StudentID, &i.MentorID, &i.Title, &i.Idea, &i.GuidanceNeeded,
		&i.Keywords, &i.Status, &i.Progress, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

func (q *Queries) listProjects(ctx context.Context, sql string, args ...any) ([]Project, error) {
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Project
	for rows.Next() {
		i, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const insertProject = `INSERT INTO projects (` + projectColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (q *Queries) InsertProject(ctx context.Context, p Project) error {
	_, err := q.db.Exec(ctx, insertProject,
		p.ID, p.StudentID, p.MentorID, p.Title, p.Idea, p.GuidanceNeeded,
		p.Keywords, p.Status, p.Progress, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

const updateProject = `UPDATE projects SET mentor_id = $2, title = $3, idea = $4, guidance_needed = $5,
	keywords = $6, status = $7, progress = $8, updated_at = $9
WHERE id = $1`

func (q *Queries) UpdateProject(ctx context.Context, p Project) (int64, error) {
	tag, err := q.db.Exec(ctx, updateProject,
		p.ID, p.MentorID, p.Title, p.Idea, p.GuidanceNeeded, p.Keywords, p.Status, p.Progress, p.UpdatedAt,
	)
	return tag.RowsAffected(), err
}

const getProject = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

func (q *Queries) GetProject(ctx context.Context, id uuid.UUID) (Project, error) {
	return scanProject(q.db.QueryRow(ctx, getProject, id))
}

const deleteProject = `DELETE FROM projects WHERE id = $1`

func (q *Queries) DeleteProject(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteProject, id)
	return err
}

const listProjectsByStudent = `SELECT ` + projectColumns + ` FROM projects WHERE student_id = $1 ORDER BY updated_at DESC`

func (q *Queries) ListProjectsByStudent(ctx context.Context, studentID uuid.UUID) ([]Project, error) {
	return q.listProjects(ctx, listProjectsByStudent, studentID)
}

// An empty statuses array matches every status.
const listProjectsByMentor = `SELECT ` + projectColumns + ` FROM projects
WHERE mentor_id = $1 AND (cardinality($2::text[]) = 0 OR status = ANY($2::text[]))
ORDER BY updated_at DESC`

func (q *Queries) ListProjectsByMentor(ctx context.Context, mentorID uuid.UUID, statuses []string) ([]Project, error) {
	return q.listProjects(ctx, listProjectsByMentor, mentorID, statuses)
}

const countProjectsByMentor = `SELECT count(*) FROM projects
WHERE mentor_id = $1 AND (cardinality($2::text[]) = 0 OR status = ANY($2::text[]))`

func (q *Queries) CountProjectsByMentor(ctx context.Context, mentorID uuid.UUID, statuses []string) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, countProjectsByMentor, mentorID, statuses).Scan(&n)
	return n, err
}

const lockMentor = `SELECT pg_advisory_xact_lock(hashtext($1))`

// LockMentor takes a transaction-scoped advisory lock keyed by mentor id.
func (q *Queries) LockMentor(ctx context.Context, mentorID uuid.UUID) error {
	_, err := q.db.Exec(ctx, lockMentor, "mentor:"+mentorID.String())
	return err
}

const milestoneColumns = `id, project_id, position, title, description, due_date, status, submission, feedback, updated_at`

const listMilestones = `SELECT ` + milestoneColumns + ` FROM milestones WHERE project_id = ANY($1::uuid[]) ORDER BY project_id, position`

// ListMilestones loads the milestones of every given project in one round trip.
func (q *Queries) ListMilestones(ctx context.Context, projectIDs []uuid.UUID) ([]Milestone, error) {
	rows, err := q.db.Query(ctx, listMilestones, projectIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Milestone
	for rows.Next() {
		var i Milestone
		if err := rows.Scan(
			&i.ID, &i.ProjectID, &i.Position, &i.Title, &i.Description, &i.DueDate,
			&i.Status, &i.Submission, &i.Feedback, &i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const deleteMilestones = `DELETE FROM milestones WHERE project_id = $1`

func (q *Queries) DeleteMilestones(ctx context.Context, projectID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteMilestones, projectID)
	return err
}

const insertMilestone = `INSERT INTO milestones (` + milestoneColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) InsertMilestone(ctx context.Context, m Milestone) error {
	_, err := q.db.Exec(ctx, insertMilestone,
		m.ID, m.ProjectID, m.Position, m.Title, m.Description, m.DueDate,
		m.Status, m.Submission, m.Feedback, m.UpdatedAt,
	)
	return err
}
