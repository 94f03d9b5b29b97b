package profile

import (
	"context"
	"database/sql"
	"errors"
	c "reachout/internal/core/domain/common"
	"reachout/internal/core/domain/profile"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const SLUG_CONSTRAINT_NAME = "profile_slug_idx"

const profileColumns = `
	id, username, slug, email, form_title, intro_message, submit_label,
	thankyou_message, destination_email, privacy_url, form_primary_color,
	form_bg_color, submission_count, monthly_submission_count,
	monthly_reset_at, is_live, created_at, updated_at
`

type PgxProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) *PgxProfileRepository {
	if pool == nil {
		panic("Argument pool must not be nil.")
	}
	return &PgxProfileRepository{pool: pool}
}

func (r *PgxProfileRepository) Create(ctx context.Context, input profile.CreateInput) (p profile.Profile, err error) {
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO profile (
			username, slug, email, form_title, intro_message, submit_label,
			thankyou_message, destination_email, privacy_url,
			form_primary_color, form_bg_color, monthly_reset_at, is_live,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING `+profileColumns,
		input.Username,
		string(input.Slug),
		string(input.Email),
		input.FormTitle,
		encodeOptionalString(input.IntroMessage),
		input.SubmitLabel,
		input.ThankyouMessage,
		string(input.DestinationEmail),
		encodeOptionalString(input.PrivacyURL),
		input.FormPrimaryColor,
		input.FormBgColor,
		input.MonthlyResetAt,
		input.IsLive,
		input.CreatedAt,
	)
	p, err = scanProfile(row)

	var errSlugUniqueConstraint *pgconn.PgError
	if errors.As(err, &errSlugUniqueConstraint) {
		if errSlugUniqueConstraint.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
			errSlugUniqueConstraint.ConstraintName == SLUG_CONSTRAINT_NAME {
			return p, &profile.SlugAlreadyExistsError{Slug: input.Slug}
		}
	}
	return p, err
}

func (r *PgxProfileRepository) GetBySlug(ctx context.Context, slug c.Slug) (p profile.Profile, err error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT `+profileColumns+` FROM profile WHERE slug = $1`,
		string(slug),
	)
	p, err = scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, profile.ErrProfileDoesNotExist
	}
	return p, err
}

func (r *PgxProfileRepository) IncrementMonthlySubmissionCount(ctx context.Context, id profile.ID) error {
	_, err := r.pool.Exec(
		ctx,
		`UPDATE profile
		SET monthly_submission_count = monthly_submission_count + 1,
			submission_count = submission_count + 1,
			updated_at = NOW()
		WHERE id = $1`,
		int64(id),
	)
	return err
}

func (r *PgxProfileRepository) GetMonthlySubmissionCount(ctx context.Context, id profile.ID) (uint32, error) {
	var count uint32
	err := r.pool.QueryRow(
		ctx,
		`SELECT monthly_submission_count FROM profile WHERE id = $1`,
		int64(id),
	).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, profile.ErrProfileDoesNotExist
	}
	return count, err
}

func (r *PgxProfileRepository) ResetDueMonthlyCounts(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(
		ctx,
		`UPDATE profile
		SET monthly_submission_count = 0,
			monthly_reset_at = $2,
			updated_at = NOW()
		WHERE monthly_reset_at <= $1`,
		now,
		profile.NextMonthlyReset(now),
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanProfile(row pgx.Row) (p profile.Profile, err error) {
	var (
		id           int64
		introMessage sql.NullString
		privacyURL   sql.NullString
	)
	err = row.Scan(
		&id,
		&p.Username,
		&p.Slug,
		&p.Email,
		&p.FormTitle,
		&introMessage,
		&p.SubmitLabel,
		&p.ThankyouMessage,
		&p.DestinationEmail,
		&privacyURL,
		&p.FormPrimaryColor,
		&p.FormBgColor,
		&p.SubmissionCount,
		&p.MonthlySubmissionCount,
		&p.MonthlyResetAt,
		&p.IsLive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return p, err
	}
	p.ID = profile.ID(id)
	p.IntroMessage = decodeOptionalString(introMessage)
	p.PrivacyURL = decodeOptionalString(privacyURL)
	return p, nil
}

func encodeOptionalString(v c.Optional[string]) sql.NullString {
	return sql.NullString{String: v.Value, Valid: v.IsPresent}
}

func decodeOptionalString(v sql.NullString) c.Optional[string] {
	return c.NewOptional(v.String, v.Valid)
}
