package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/domain/certification"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type postgresCertificationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCertificationRepo(db *pgxpool.Pool, logger logger.Logger) certification.Repository {
	return &postgresCertificationRepo{db: db, logger: logger}
}

const certificationColumns = `id, profile_id, name, type, issuing_organization, issue_date,
	expiry_date, credential_id, credential_url, tools, issuing_organization_logo, created_at, updated_at`

func scanCertification(row pgx.Row) (*certification.Certification, error) {
	c := &certification.Certification{}
	var tools []string
	err := row.Scan(
		&c.ID, &c.ProfileID, &c.Name, &c.Type, &c.IssuingOrganization, &c.IssueDate,
		&c.ExpiryDate, &c.CredentialID, &c.CredentialURL, &tools, &c.IssuingOrganizationLogo,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("certification", "")
		}
		return nil, apperror.NewInternal("failed to scan certification row", err)
	}
	c.Tools = vocab.ToolsFromStrings(tools)
	return c, nil
}

func (r *postgresCertificationRepo) Create(ctx context.Context, c *certification.Certification) error {
	query := `
		INSERT INTO certifications (` + certificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.ProfileID, c.Name, c.Type, c.IssuingOrganization, c.IssueDate,
		c.ExpiryDate, c.CredentialID, c.CredentialURL, vocab.ToolsToStrings(c.Tools),
		c.IssuingOrganizationLogo, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save certification", err)
	}
	return nil
}

func (r *postgresCertificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	row := r.db.QueryRow(ctx, `SELECT `+certificationColumns+` FROM certifications WHERE id = $1`, id)
	return scanCertification(row)
}

func (r *postgresCertificationRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*certification.Certification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+certificationColumns+` FROM certifications WHERE profile_id = $1 ORDER BY issue_date DESC LIMIT $2 OFFSET $3`,
		profileID, limit, offset,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query certifications", err)
	}
	defer rows.Close()

	entries := make([]*certification.Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certification rows", err)
	}
	return entries, nil
}

func (r *postgresCertificationRepo) Update(ctx context.Context, c *certification.Certification) error {
	query := `
		UPDATE certifications SET
			name = $2, type = $3, issuing_organization = $4, issue_date = $5, expiry_date = $6,
			credential_id = $7, credential_url = $8, tools = $9, issuing_organization_logo = $10,
			updated_at = $11
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Type, c.IssuingOrganization, c.IssueDate, c.ExpiryDate,
		c.CredentialID, c.CredentialURL, vocab.ToolsToStrings(c.Tools),
		c.IssuingOrganizationLogo, c.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("certification", c.ID.String())
	}
	return nil
}

func (r *postgresCertificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("certification", id.String())
	}
	return nil
}
