package canonical

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/entity"
	"github.com/nordstaff/consultant-matcher/internal/repository"
)

// Resolver maps raw organization names and skill/role terms to canonical
// identities. It is the only writer of the alias tables.
type Resolver struct {
	orgs   repository.OrganizationRepository
	terms  repository.TermAliasRepository
	logger *zap.Logger
}

func NewResolver(orgs repository.OrganizationRepository, terms repository.TermAliasRepository, logger *zap.Logger) *Resolver {
	return &Resolver{orgs: orgs, terms: terms, logger: logger}
}

// ResolveOrganization returns the canonical organization for a raw name,
// creating one if no canonical name or alias matches. Resolving the same raw
// string twice always yields the same identity.
//
// If the key matches aliases on two canonical rows (pre-existing data
// inconsistency), the first ever recorded row wins and is flagged for manual
// review; merging is an out-of-band administrative operation.
func (r *Resolver) ResolveOrganization(ctx context.Context, kind entity.OrgKind, rawName string) (*entity.Organization, error) {
	raw := strings.TrimSpace(rawName)
	key := NormalizeOrgName(raw)
	if key == "" {
		return nil, nil // degrade to uncategorized
	}

	hits, err := r.orgs.FindByKey(ctx, kind, key)
	if err != nil {
		return nil, err
	}

	switch len(hits) {
	case 0:
		org, err := r.orgs.GetOrCreate(ctx, kind, key, []string{raw})
		if err != nil {
			return nil, err
		}
		// A concurrent ingest may have created the row with a different raw
		// spelling; recording ours is idempotent either way.
		if err := r.orgs.AppendAlias(ctx, org.ID, raw); err != nil {
			r.logger.Warn("failed to record alias on new organization",
				zap.String("org_id", org.ID.String()), zap.Error(err))
		}
		return org, nil
	case 1:
		// fall through
	default:
		r.logger.Warn("alias collision across canonical organizations; keeping first recorded",
			zap.String("key", key),
			zap.Int("collisions", len(hits)))
		if err := r.orgs.FlagForReview(ctx, hits[0].ID); err != nil {
			r.logger.Warn("failed to flag organization for review",
				zap.String("org_id", hits[0].ID.String()), zap.Error(err))
		}
	}

	org := hits[0]
	if !containsFold(org.Aliases, raw) {
		if err := r.orgs.AppendAlias(ctx, org.ID, raw); err != nil {
			r.logger.Warn("failed to append alias",
				zap.String("org_id", org.ID.String()), zap.Error(err))
		}
	}
	return org, nil
}

// ResolveSkill maps a raw skill spelling to its canonical term. Unknown terms
// are accepted as their own canonical form, so unseen vocabulary never blocks
// ingestion.
func (r *Resolver) ResolveSkill(ctx context.Context, raw string) string {
	return r.resolveTerm(ctx, entity.TermKindSkill, raw)
}

// ResolveRole maps a raw role title to its canonical term.
func (r *Resolver) ResolveRole(ctx context.Context, raw string) string {
	return r.resolveTerm(ctx, entity.TermKindRole, raw)
}

func (r *Resolver) resolveTerm(ctx context.Context, kind entity.TermKind, raw string) string {
	norm := NormalizeTerm(raw)
	if norm == "" {
		return ""
	}
	canonical, err := r.terms.Lookup(ctx, kind, norm)
	if err != nil {
		// Lookup failure degrades to the normalized spelling; a bad alias
		// table must not block a Job/Candidate write.
		r.logger.Warn("term alias lookup failed", zap.String("term", norm), zap.Error(err))
		return norm
	}
	if canonical == "" {
		return norm
	}
	return canonical
}

// CanonicalizeSkills resolves and deduplicates a raw skill list, preserving
// first-seen order.
func (r *Resolver) CanonicalizeSkills(ctx context.Context, raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		c := r.ResolveSkill(ctx, s)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
