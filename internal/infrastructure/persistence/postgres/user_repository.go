package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/persistence/db"
)

const uniqueViolation = "23505"

type UserRepository struct {
	q *db.Queries
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{q: db.New(pool)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.q.CreateUser(ctx, domainUserToDB(user))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domerrors.ErrUserExists
	}
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbUserToDomain(u), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	u, err := r.q.GetUserByID(ctx, id.UUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbUserToDomain(u), nil
}

func (r *UserRepository) ListMentors(ctx context.Context) ([]domain.MentorProfile, error) {
	rows, err := r.q.ListMentors(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MentorProfile, 0, len(rows))
	for _, row := range rows {
		if m, ok := dbUserToDomain(row).Mentor(); ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func domainUserToDB(u *domain.User) db.User {
	row := db.User{
		ID:           u.ID.UUID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Expertise:    []string{},
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if s, ok := u.Student(); ok {
		row.Name = s.Name
		row.Usn = s.USN
		row.Domain = s.Domain
		row.Specialization = s.Specialization
		row.Year = int32(s.Year)
	}
	if m, ok := u.Mentor(); ok {
		row.Name = m.Name
		if m.Expertise != nil {
			row.Expertise = m.Expertise
		}
		row.Summary = m.Summary
		row.ShortDescription = m.ShortDescription
		row.ProjectsDone = m.ProjectsDone
		row.MaxStudents = int32(m.MaxStudents)
	}
	return row
}

func dbUserToDomain(u db.User) *domain.User {
	id := domain.NewUserID(u.ID)
	var user *domain.User
	if domain.Role(u.Role) == domain.RoleMentor {
		user = domain.NewMentor(id, u.Email, domain.MentorProfile{
			Name:             u.Name,
			Expertise:        u.Expertise,
			Summary:          u.Summary,
			ShortDescription: u.ShortDescription,
			ProjectsDone:     u.ProjectsDone,
			MaxStudents:      int(u.MaxStudents),
		})
	} else {
		user = domain.NewStudent(id, u.Email, domain.StudentProfile{
			Name:           u.Name,
			USN:            u.Usn,
			Domain:         u.Domain,
			Specialization: u.Specialization,
			Year:           int(u.Year),
		})
	}
	user.PasswordHash = u.PasswordHash
	user.CreatedAt = u.CreatedAt
	user.UpdatedAt = u.UpdatedAt
	return user
}

// Ensure UserRepository implements ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)
