package repository

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/gen/ent"
	"github.com/nordstaff/consultant-matcher/gen/ent/organization"
	"github.com/nordstaff/consultant-matcher/internal/entity"
	"github.com/nordstaff/consultant-matcher/internal/utils"
)

type OrganizationRepository interface {
	// FindByKey returns every organization of the given kind whose canonical
	// name or recorded alias set matches the normalized key, oldest first.
	// More than one row means a pre-existing alias collision.
	FindByKey(ctx context.Context, kind entity.OrgKind, key string) ([]*entity.Organization, error)
	// GetOrCreate inserts a canonical row, or returns the existing one when a
	// concurrent ingest won the unique-index race on (kind, normalized_name).
	GetOrCreate(ctx context.Context, kind entity.OrgKind, normalizedName string, aliases []string) (*entity.Organization, error)
	AppendAlias(ctx context.Context, id uuid.UUID, alias string) error
	FlagForReview(ctx context.Context, id uuid.UUID) error
	ListFlagged(ctx context.Context) ([]*entity.Organization, error)
}

type organizationRepository struct {
	client *ent.Client
	logger *zap.Logger
}

func NewOrganizationRepository(client *ent.Client, logger *zap.Logger) OrganizationRepository {
	return &organizationRepository{client: client, logger: logger}
}

func (r *organizationRepository) FindByKey(ctx context.Context, kind entity.OrgKind, key string) ([]*entity.Organization, error) {
	recs, err := r.client.Organization.Query().
		Where(
			organization.KindEQ(organization.Kind(kind)),
			organization.Or(
				organization.NormalizedName(key),
				func(s *sql.Selector) {
					s.Where(sqljson.ValueContains(organization.FieldAliases, key))
				},
			),
		).
		Order(ent.Asc(organization.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to look up organization", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	out := make([]*entity.Organization, len(recs))
	for i, rec := range recs {
		out[i] = utils.ToOrganization(rec)
	}
	return out, nil
}

func (r *organizationRepository) GetOrCreate(ctx context.Context, kind entity.OrgKind, normalizedName string, aliases []string) (*entity.Organization, error) {
	id, err := r.client.Organization.Create().
		SetKind(organization.Kind(kind)).
		SetNormalizedName(normalizedName).
		SetAliases(aliases).
		OnConflictColumns(organization.FieldKind, organization.FieldNormalizedName).
		Ignore().
		ID(ctx)
	if err != nil {
		r.logger.Error("failed to get or create organization",
			zap.String("kind", string(kind)),
			zap.String("normalized_name", normalizedName),
			zap.Error(err))
		return nil, err
	}
	rec, err := r.client.Organization.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToOrganization(rec), nil
}

func (r *organizationRepository) AppendAlias(ctx context.Context, id uuid.UUID, alias string) error {
	rec, err := r.client.Organization.Get(ctx, id)
	if err != nil {
		return err
	}
	for _, a := range rec.Aliases {
		if a == alias {
			return nil // already recorded
		}
	}
	err = r.client.Organization.UpdateOneID(id).
		SetAliases(append(rec.Aliases, alias)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to append alias", zap.String("id", id.String()), zap.String("alias", alias), zap.Error(err))
	}
	return err
}

func (r *organizationRepository) FlagForReview(ctx context.Context, id uuid.UUID) error {
	return r.client.Organization.UpdateOneID(id).SetNeedsReview(true).Exec(ctx)
}

func (r *organizationRepository) ListFlagged(ctx context.Context) ([]*entity.Organization, error) {
	recs, err := r.client.Organization.Query().
		Where(organization.NeedsReview(true)).
		Order(ent.Asc(organization.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Organization, len(recs))
	for i, rec := range recs {
		out[i] = utils.ToOrganization(rec)
	}
	return out, nil
}
