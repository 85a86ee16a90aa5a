package postgres

import (
	"context"
	"errors"

	"skillmapper/internal/database"
	"skillmapper/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, designation, bio, avatar_url,
	github_username, linkedin_username, twitter_link, goal, time_commitment, skills,
	current_streak, is_profile_completed, is_profile_edited, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO users (id, username, email, password_hash, skills)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Skills,
	)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	affected, err := r.db.Exec(
		ctx,
		`UPDATE users SET
			designation = $2, bio = $3, avatar_url = $4, github_username = $5,
			linkedin_username = $6, twitter_link = $7, goal = $8, time_commitment = $9,
			skills = $10, current_streak = $11, is_profile_completed = $12,
			is_profile_edited = $13, updated_at = now()
		 WHERE id = $1`,
		u.ID, u.Designation, u.Bio, u.AvatarURL, u.GithubUsername,
		u.LinkedinUsername, u.TwitterLink, u.Goal, u.TimeCommitment,
		u.Skills, u.CurrentStreak, u.IsProfileCompleted, u.IsProfileEdited,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Designation, &u.Bio,
		&u.AvatarURL, &u.GithubUsername, &u.LinkedinUsername, &u.TwitterLink,
		&u.Goal, &u.TimeCommitment, &u.Skills, &u.CurrentStreak,
		&u.IsProfileCompleted, &u.IsProfileEdited, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
