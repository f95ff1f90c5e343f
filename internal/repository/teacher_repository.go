package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/teacher-account-service/internal/domain"
)

// ErrEmailTaken signals a violation of the teachers.email unique index.
// Uniqueness is enforced by the database, not by a pre-check query, so
// concurrent registrations with the same email cannot both succeed.
var ErrEmailTaken = errors.New("email already taken")

const uniqueViolationCode = "23505"

// TeacherRepository defines persistence access for teacher accounts.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *domain.Teacher) error
	GetByEmail(ctx context.Context, email string) (*domain.Teacher, error)
	GetByID(ctx context.Context, id string) (*domain.Teacher, error)
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (int64, error)
}

type teacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository returns a Postgres-backed implementation.
func NewTeacherRepository(pool *pgxpool.Pool) TeacherRepository {
	return &teacherRepository{pool: pool}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *domain.Teacher) error {
	const query = `
        INSERT INTO teachers (name, last_name, email, password_hash,
            teaching_stage, school_type, school_location, gender,
            experience_years, community)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		teacher.Name,
		teacher.LastName,
		teacher.Email,
		teacher.PasswordHash,
		teacher.TeachingStage,
		teacher.SchoolType,
		teacher.SchoolLocation,
		teacher.Gender,
		teacher.ExperienceYears,
		teacher.Community,
	).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *teacherRepository) GetByEmail(ctx context.Context, email string) (*domain.Teacher, error) {
	const query = `
        SELECT id, name, last_name, email, password_hash,
               teaching_stage, school_type, school_location, gender,
               experience_years, community, created_at, updated_at
        FROM teachers WHERE email=$1`

	return r.scanTeacher(r.pool.QueryRow(ctx, query, email))
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (*domain.Teacher, error) {
	const query = `
        SELECT id, name, last_name, email, password_hash,
               teaching_stage, school_type, school_location, gender,
               experience_years, community, created_at, updated_at
        FROM teachers WHERE id=$1`

	return r.scanTeacher(r.pool.QueryRow(ctx, query, id))
}

func (r *teacherRepository) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	const query = `
        SELECT name, last_name, email, teaching_stage, school_type,
               school_location, gender, experience_years, community
        FROM teachers WHERE id=$1`

	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.Name,
		&profile.LastName,
		&profile.Email,
		&profile.TeachingStage,
		&profile.SchoolType,
		&profile.SchoolLocation,
		&profile.Gender,
		&profile.ExperienceYears,
		&profile.Community,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *teacherRepository) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (int64, error) {
	const query = `
        UPDATE teachers SET
            name = COALESCE($1, name),
            last_name = COALESCE($2, last_name),
            email = COALESCE($3, email),
            teaching_stage = COALESCE($4, teaching_stage),
            school_type = COALESCE($5, school_type),
            school_location = COALESCE($6, school_location),
            gender = COALESCE($7, gender),
            experience_years = COALESCE($8, experience_years),
            community = COALESCE($9, community),
            updated_at = NOW()
        WHERE id=$10`

	cmd, err := r.pool.Exec(ctx, query,
		update.Name,
		update.LastName,
		update.Email,
		update.TeachingStage,
		update.SchoolType,
		update.SchoolLocation,
		update.Gender,
		update.ExperienceYears,
		update.Community,
		id,
	)
	if isUniqueViolation(err) {
		return 0, ErrEmailTaken
	}
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *teacherRepository) scanTeacher(row rowScanner) (*domain.Teacher, error) {
	var teacher domain.Teacher
	if err := row.Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.LastName,
		&teacher.Email,
		&teacher.PasswordHash,
		&teacher.TeachingStage,
		&teacher.SchoolType,
		&teacher.SchoolLocation,
		&teacher.Gender,
		&teacher.ExperienceYears,
		&teacher.Community,
		&teacher.CreatedAt,
		&teacher.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &teacher, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
