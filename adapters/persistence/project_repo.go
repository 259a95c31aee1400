package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/domain/project"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

const projectColumns = `id, profile_id, name, organization, owner, private, github_stars,
	github_about, github_open_issues, github_forks, description, domain, topics, tools,
	readme, license, landing_page, landing_page_link, docs_page, docs_page_link,
	own_domain_name, domain_name, total_lines_contributed, improper_uploads,
	complexity_rating, testing_framework_present, testing_framework,
	project_organization_logo, created_at, updated_at`

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	var tools []string
	err := row.Scan(
		&p.ID, &p.ProfileID, &p.Name, &p.Organization, &p.Owner, &p.Private, &p.GithubStars,
		&p.GithubAbout, &p.GithubOpenIssues, &p.GithubForks, &p.Description, &p.Domain,
		&p.Topics, &tools, &p.Readme, &p.License, &p.LandingPage, &p.LandingPageLink,
		&p.DocsPage, &p.DocsPageLink, &p.OwnDomainName, &p.DomainName,
		&p.TotalLinesContributed, &p.ImproperUploads, &p.ComplexityRating,
		&p.TestingFrameworkPresent, &p.TestingFramework, &p.ProjectOrganizationLogo,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	p.Tools = vocab.ToolsFromStrings(tools)
	return p, nil
}

func (r *postgresProjectRepo) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.ProfileID, p.Name, p.Organization, p.Owner, p.Private, p.GithubStars,
		p.GithubAbout, p.GithubOpenIssues, p.GithubForks, p.Description, p.Domain,
		p.Topics, vocab.ToolsToStrings(p.Tools), p.Readme, p.License, p.LandingPage,
		p.LandingPageLink, p.DocsPage, p.DocsPageLink, p.OwnDomainName, p.DomainName,
		p.TotalLinesContributed, p.ImproperUploads, p.ComplexityRating,
		p.TestingFrameworkPresent, p.TestingFramework, p.ProjectOrganizationLogo,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

func (r *postgresProjectRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*project.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE profile_id = $1 ORDER BY github_stars DESC, created_at DESC LIMIT $2 OFFSET $3`,
		profileID, limit, offset,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	defer rows.Close()

	entries := make([]*project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return entries, nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			name = $2, organization = $3, owner = $4, private = $5, github_stars = $6,
			github_about = $7, github_open_issues = $8, github_forks = $9, description = $10,
			domain = $11, topics = $12, tools = $13, readme = $14, license = $15,
			landing_page = $16, landing_page_link = $17, docs_page = $18, docs_page_link = $19,
			own_domain_name = $20, domain_name = $21, total_lines_contributed = $22,
			improper_uploads = $23, complexity_rating = $24, testing_framework_present = $25,
			testing_framework = $26, project_organization_logo = $27, updated_at = $28
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Organization, p.Owner, p.Private, p.GithubStars,
		p.GithubAbout, p.GithubOpenIssues, p.GithubForks, p.Description,
		p.Domain, p.Topics, vocab.ToolsToStrings(p.Tools), p.Readme, p.License,
		p.LandingPage, p.LandingPageLink, p.DocsPage, p.DocsPageLink,
		p.OwnDomainName, p.DomainName, p.TotalLinesContributed,
		p.ImproperUploads, p.ComplexityRating, p.TestingFrameworkPresent,
		p.TestingFramework, p.ProjectOrganizationLogo, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}
