package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joseph-ayodele/cv-profiler/internal/common"
	"github.com/joseph-ayodele/cv-profiler/internal/entity"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var profileColumns = []string{
	"id", "user_id",
	"name", "email", "phone", "location", "linkedin", "github",
	"summary", "education", "experience", "skills", "languages", "certifications",
	"created_at", "updated_at",
}

// ProfileRepository persists canonical profiles keyed by user id.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entity.StoredProfile, error)
	Upsert(ctx context.Context, userID string, p entity.Profile) (*entity.StoredProfile, error)
}

type profileRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewProfileRepository(pool *pgxpool.Pool, logger *slog.Logger) ProfileRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &profileRepository{pool: pool, logger: logger}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID string) (*entity.StoredProfile, error) {
	query, args, err := psql.
		Select(profileColumns...).
		From("cv_profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, common.E(common.KindProfileStore, "build select", err)
	}

	sp, err := scanStoredProfile(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.Ef(common.KindNotFound, "no profile for user %s", userID)
		}
		r.logger.Error("failed to load profile", "user_id", userID, "error", err)
		return nil, common.E(common.KindProfileStore, "load profile", err)
	}
	return sp, nil
}

// Upsert inserts or fully overwrites the profile row for userID in a single
// atomic statement. On conflict every field is replaced — a field blanked in
// the new extraction intentionally clears the old value — updated_at advances
// and created_at is untouched. The persisted row is returned.
func (r *profileRepository) Upsert(ctx context.Context, userID string, p entity.Profile) (*entity.StoredProfile, error) {
	query, args, err := buildUpsert(userID, p)
	if err != nil {
		return nil, common.E(common.KindProfileStore, "build upsert", err)
	}

	sp, err := scanStoredProfile(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		r.logger.Error("failed to upsert profile", "user_id", userID, "error", err)
		return nil, common.E(common.KindProfileStore, "upsert profile", err)
	}
	r.logger.Info("profile reconciled",
		"user_id", userID,
		"profile_id", sp.ID,
		"created_at", sp.CreatedAt,
		"updated_at", sp.UpdatedAt,
	)
	return sp, nil
}

func buildUpsert(userID string, p entity.Profile) (string, []any, error) {
	education, err := json.Marshal(p.Education)
	if err != nil {
		return "", nil, fmt.Errorf("marshal education: %w", err)
	}
	experience, err := json.Marshal(p.Experience)
	if err != nil {
		return "", nil, fmt.Errorf("marshal experience: %w", err)
	}
	skills, err := json.Marshal(p.Skills)
	if err != nil {
		return "", nil, fmt.Errorf("marshal skills: %w", err)
	}
	languages, err := json.Marshal(p.Languages)
	if err != nil {
		return "", nil, fmt.Errorf("marshal languages: %w", err)
	}
	certifications, err := json.Marshal(p.Certifications)
	if err != nil {
		return "", nil, fmt.Errorf("marshal certifications: %w", err)
	}

	return psql.
		Insert("cv_profiles").
		Columns(
			"user_id",
			"name", "email", "phone", "location", "linkedin", "github",
			"summary", "education", "experience", "skills", "languages", "certifications",
		).
		Values(
			userID,
			p.PersonalInfo.Name, p.PersonalInfo.Email, p.PersonalInfo.Phone,
			p.PersonalInfo.Location, p.PersonalInfo.LinkedIn, p.PersonalInfo.GitHub,
			p.Summary, education, experience, skills, languages, certifications,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			linkedin = EXCLUDED.linkedin,
			github = EXCLUDED.github,
			summary = EXCLUDED.summary,
			education = EXCLUDED.education,
			experience = EXCLUDED.experience,
			skills = EXCLUDED.skills,
			languages = EXCLUDED.languages,
			certifications = EXCLUDED.certifications,
			updated_at = now()
		RETURNING ` + joinColumns(profileColumns)).
		ToSql()
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

func scanStoredProfile(row pgx.Row) (*entity.StoredProfile, error) {
	sp := &entity.StoredProfile{Profile: entity.NewProfile()}
	var education, experience, skills, languages, certifications []byte

	err := row.Scan(
		&sp.ID, &sp.UserID,
		&sp.Profile.PersonalInfo.Name, &sp.Profile.PersonalInfo.Email,
		&sp.Profile.PersonalInfo.Phone, &sp.Profile.PersonalInfo.Location,
		&sp.Profile.PersonalInfo.LinkedIn, &sp.Profile.PersonalInfo.GitHub,
		&sp.Profile.Summary,
		&education, &experience, &skills, &languages, &certifications,
		&sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(education, &sp.Profile.Education); err != nil {
		return nil, fmt.Errorf("unmarshal education: %w", err)
	}
	if err := json.Unmarshal(experience, &sp.Profile.Experience); err != nil {
		return nil, fmt.Errorf("unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(skills, &sp.Profile.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(languages, &sp.Profile.Languages); err != nil {
		return nil, fmt.Errorf("unmarshal languages: %w", err)
	}
	if err := json.Unmarshal(certifications, &sp.Profile.Certifications); err != nil {
		return nil, fmt.Errorf("unmarshal certifications: %w", err)
	}
	return sp, nil
}
