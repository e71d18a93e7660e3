package db

import (
	"context"

	"github.com/google/uuid"
)

const userColumns = `id, email, password_hash, role, name, usn, domain, specialization, year,
	expertise, summary, short_description, projects_done, max_students, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.ID, &i.Email, &i.PasswordHash, &i.Role, &i.Name, &i.Usn, &i.Domain, &i.Specialization, &i.Year,
		&i.Expertise, &i.Summary, &i.ShortDescription, &i.ProjectsDone, &i.MaxStudents, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

const createUser = `INSERT INTO users (` + userColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

func (q *Queries) CreateUser(ctx context.Context, u User) error {
	_, err := q.db.Exec(ctx, createUser,
		u.ID, u.Email, u.PasswordHash, u.Role, u.Name, u.Usn, u.Domain, u.Specialization, u.Year,
		u.Expertise, u.Summary, u.ShortDescription, u.ProjectsDone, u.MaxStudents, u.CreatedAt, u.UpdatedAt,
	)
	return err
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByEmail, email))
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByID, id))
}

const listMentors = `SELECT ` + userColumns + ` FROM users WHERE role = 'mentor' ORDER BY name`

func (q *Queries) ListMentors(ctx context.Context) ([]User, error) {
	rows, err := q.db.Query(ctx, listMentors)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		i, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
