package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/internal/domain/workexperience"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type postgresWorkExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresWorkExperienceRepo(db *pgxpool.Pool, logger logger.Logger) workexperience.Repository {
	return &postgresWorkExperienceRepo{db: db, logger: logger}
}

const workExperienceColumns = `id, profile_id, title, employment_type, domains, company_name,
	company_logo, currently_working, location_id, location_type, start_date_month, start_date_year,
	end_date_month, end_date_year, description_general, description_detailed, description_less,
	work_done, company_score, time_spent_multiplier, work_done_multiplier, tools_used,
	created_at, updated_at`

func scanWorkExperience(row pgx.Row) (*workexperience.WorkExperience, error) {
	w := &workexperience.WorkExperience{}
	var domains []string
	var tools []string
	err := row.Scan(
		&w.ID, &w.ProfileID, &w.Title, &w.EmploymentType, &domains, &w.CompanyName,
		&w.CompanyLogo, &w.CurrentlyWorking, &w.LocationID, &w.LocationType,
		&w.StartDateMonth, &w.StartDateYear, &w.EndDateMonth, &w.EndDateYear,
		&w.DescriptionGeneral, &w.DescriptionDetailed, &w.DescriptionLess,
		&w.WorkDone, &w.CompanyScore, &w.TimeSpentMultiplier, &w.WorkDoneMultiplier,
		&tools, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("work experience", "")
		}
		return nil, apperror.NewInternal("failed to scan work experience row", err)
	}
	w.Domains = vocab.DomainsFromStrings(domains)
	w.ToolsUsed = vocab.ToolsFromStrings(tools)
	return w, nil
}

func (r *postgresWorkExperienceRepo) Create(ctx context.Context, w *workexperience.WorkExperience) error {
	query := `
		INSERT INTO work_experience (` + workExperienceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`
	_, err := r.db.Exec(ctx, query,
		w.ID, w.ProfileID, w.Title, w.EmploymentType, vocab.DomainsToStrings(w.Domains), w.CompanyName,
		w.CompanyLogo, w.CurrentlyWorking, w.LocationID, w.LocationType,
		w.StartDateMonth, w.StartDateYear, w.EndDateMonth, w.EndDateYear,
		w.DescriptionGeneral, w.DescriptionDetailed, w.DescriptionLess,
		w.WorkDone, w.CompanyScore, w.TimeSpentMultiplier, w.WorkDoneMultiplier,
		vocab.ToolsToStrings(w.ToolsUsed), w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save work experience", err)
	}
	return nil
}

func (r *postgresWorkExperienceRepo) FindByID(ctx context.Context, id uuid.UUID) (*workexperience.WorkExperience, error) {
	row := r.db.QueryRow(ctx, `SELECT `+workExperienceColumns+` FROM work_experience WHERE id = $1`, id)
	return scanWorkExperience(row)
}

func (r *postgresWorkExperienceRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*workexperience.WorkExperience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+workExperienceColumns+` FROM work_experience
		 WHERE profile_id = $1 ORDER BY start_date_year DESC, start_date_month DESC LIMIT $2 OFFSET $3`,
		profileID, limit, offset,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work experience entries", err)
	}
	defer rows.Close()

	entries := make([]*workexperience.WorkExperience, 0)
	for rows.Next() {
		w, err := scanWorkExperience(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work experience rows", err)
	}
	return entries, nil
}

func (r *postgresWorkExperienceRepo) Update(ctx context.Context, w *workexperience.WorkExperience) error {
	query := `
		UPDATE work_experience SET
			title = $2, employment_type = $3, domains = $4, company_name = $5, company_logo = $6,
			currently_working = $7, location_id = $8, location_type = $9,
			start_date_month = $10, start_date_year = $11, end_date_month = $12, end_date_year = $13,
			description_general = $14, description_detailed = $15, description_less = $16,
			work_done = $17, company_score = $18, time_spent_multiplier = $19,
			work_done_multiplier = $20, tools_used = $21, updated_at = $22
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		w.ID, w.Title, w.EmploymentType, vocab.DomainsToStrings(w.Domains), w.CompanyName, w.CompanyLogo,
		w.CurrentlyWorking, w.LocationID, w.LocationType,
		w.StartDateMonth, w.StartDateYear, w.EndDateMonth, w.EndDateYear,
		w.DescriptionGeneral, w.DescriptionDetailed, w.DescriptionLess,
		w.WorkDone, w.CompanyScore, w.TimeSpentMultiplier,
		w.WorkDoneMultiplier, vocab.ToolsToStrings(w.ToolsUsed), w.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update work experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work experience", w.ID.String())
	}
	return nil
}

func (r *postgresWorkExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM work_experience WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete work experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work experience", id.String())
	}
	return nil
}
