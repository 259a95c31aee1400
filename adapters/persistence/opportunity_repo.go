package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/domain/opportunity"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type postgresOrganizationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresOrganizationRepo(db *pgxpool.Pool, logger logger.Logger) opportunity.OrganizationRepository {
	return &postgresOrganizationRepo{db: db, logger: logger}
}

const organizationColumns = `id, name, image, repo_link, created_at, updated_at`

func scanOrganization(row pgx.Row) (*opportunity.Organization, error) {
	o := &opportunity.Organization{}
	err := row.Scan(&o.ID, &o.Name, &o.Image, &o.RepoLink, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("organization", "")
		}
		return nil, apperror.NewInternal("failed to scan organization row", err)
	}
	return o, nil
}

func (r *postgresOrganizationRepo) Create(ctx context.Context, o *opportunity.Organization) error {
	query := `
		INSERT INTO organizations (` + organizationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, o.ID, o.Name, o.Image, o.RepoLink, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save organization", err)
	}
	return nil
}

func (r *postgresOrganizationRepo) FindByID(ctx context.Context, id uuid.UUID) (*opportunity.Organization, error) {
	row := r.db.QueryRow(ctx, `SELECT `+organizationColumns+` FROM organizations WHERE id = $1`, id)
	return scanOrganization(row)
}

func (r *postgresOrganizationRepo) List(ctx context.Context, limit, offset int) ([]*opportunity.Organization, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+organizationColumns+` FROM organizations ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query organizations", err)
	}
	defer rows.Close()

	orgs := make([]*opportunity.Organization, 0)
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating organization rows", err)
	}
	return orgs, nil
}

func (r *postgresOrganizationRepo) Update(ctx context.Context, o *opportunity.Organization) error {
	query := `UPDATE organizations SET name = $2, image = $3, repo_link = $4, updated_at = $5 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, o.ID, o.Name, o.Image, o.RepoLink, o.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to update organization", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("organization", o.ID.String())
	}
	return nil
}

func (r *postgresOrganizationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete organization", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("organization", id.String())
	}
	return nil
}

type postgresJobRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresJobRepo(db *pgxpool.Pool, logger logger.Logger) opportunity.JobRepository {
	return &postgresJobRepo{db: db, logger: logger}
}

var psqlJob = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const jobColumns = `id, title, department, company_name, company_logo, hero_image, location,
	location_type, employment_type, experience_level, experience_yoe, posted_date,
	salary_annual_min, salary_annual_max, salary_currency, description, featured, highlight,
	category, perks, organization_id, created_at, updated_at`

var jobSortColumns = map[string]bool{
	"created_at":        true,
	"updated_at":        true,
	"posted_date":       true,
	"title":             true,
	"company_name":      true,
	"salary_annual_min": true,
	"salary_annual_max": true,
}

func scanJob(row pgx.Row) (*opportunity.Job, error) {
	j := &opportunity.Job{}
	err := row.Scan(
		&j.ID, &j.Title, &j.Department, &j.CompanyName, &j.CompanyLogo, &j.HeroImage,
		&j.Location, &j.LocationType, &j.EmploymentType, &j.ExperienceLevel, &j.ExperienceYOE,
		&j.PostedDate, &j.SalaryAnnualMin, &j.SalaryAnnualMax, &j.SalaryCurrency,
		&j.Description, &j.Featured, &j.Highlight, &j.Category, &j.Perks,
		&j.OrganizationID, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("job", "")
		}
		return nil, apperror.NewInternal("failed to scan job row", err)
	}
	return j, nil
}

func (r *postgresJobRepo) Create(ctx context.Context, j *opportunity.Job) error {
	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`
	_, err := r.db.Exec(ctx, query,
		j.ID, j.Title, j.Department, j.CompanyName, j.CompanyLogo, j.HeroImage,
		j.Location, j.LocationType, j.EmploymentType, j.ExperienceLevel, j.ExperienceYOE,
		j.PostedDate, j.SalaryAnnualMin, j.SalaryAnnualMax, j.SalaryCurrency,
		j.Description, j.Featured, j.Highlight, j.Category, j.Perks,
		j.OrganizationID, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save job", err)
	}
	return nil
}

func (r *postgresJobRepo) FindByID(ctx context.Context, id uuid.UUID) (*opportunity.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *postgresJobRepo) List(ctx context.Context, filter opportunity.JobListFilter) ([]*opportunity.Job, error) {
	builder := psqlJob.Select(jobColumns).
		From("jobs").
		OrderBy(orderClause(jobSortColumns, filter.SortBy, filter.Order)).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Title != nil {
		builder = builder.Where(sq.ILike{"title": "%" + *filter.Title + "%"})
	}
	if filter.CompanyName != nil {
		builder = builder.Where(sq.ILike{"company_name": "%" + *filter.CompanyName + "%"})
	}
	if filter.EmploymentType != nil {
		builder = builder.Where(sq.Eq{"employment_type": *filter.EmploymentType})
	}
	if filter.LocationType != nil {
		builder = builder.Where(sq.Eq{"location_type": *filter.LocationType})
	}
	if filter.MinSalary != nil {
		builder = builder.Where(sq.GtOrEq{"salary_annual_min": *filter.MinSalary})
	}
	if filter.MaxSalary != nil {
		builder = builder.Where(sq.LtOrEq{"salary_annual_max": *filter.MaxSalary})
	}
	if filter.Featured != nil {
		builder = builder.Where(sq.Eq{"featured": *filter.Featured})
	}
	if filter.OrganizationID != nil {
		builder = builder.Where(sq.Eq{"organization_id": *filter.OrganizationID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build job list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query jobs", err)
	}
	defer rows.Close()

	jobs := make([]*opportunity.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating job rows", err)
	}
	return jobs, nil
}

func (r *postgresJobRepo) Update(ctx context.Context, j *opportunity.Job) error {
	query := `
		UPDATE jobs SET
			title = $2, department = $3, company_name = $4, company_logo = $5, hero_image = $6,
			location = $7, location_type = $8, employment_type = $9, experience_level = $10,
			experience_yoe = $11, posted_date = $12, salary_annual_min = $13,
			salary_annual_max = $14, salary_currency = $15, description = $16, featured = $17,
			highlight = $18, category = $19, perks = $20, organization_id = $21, updated_at = $22
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		j.ID, j.Title, j.Department, j.CompanyName, j.CompanyLogo, j.HeroImage,
		j.Location, j.LocationType, j.EmploymentType, j.ExperienceLevel,
		j.ExperienceYOE, j.PostedDate, j.SalaryAnnualMin,
		j.SalaryAnnualMax, j.SalaryCurrency, j.Description, j.Featured,
		j.Highlight, j.Category, j.Perks, j.OrganizationID, j.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update job", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("job", j.ID.String())
	}
	return nil
}

func (r *postgresJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete job", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("job", id.String())
	}
	return nil
}
