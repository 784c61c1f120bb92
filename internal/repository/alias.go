package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/gen/ent"
	"github.com/nordstaff/consultant-matcher/gen/ent/termalias"
	"github.com/nordstaff/consultant-matcher/internal/entity"
)

type TermAliasRepository interface {
	// Lookup returns the canonical term for a raw spelling, or ("", nil) when
	// the vocabulary has never seen it.
	Lookup(ctx context.Context, kind entity.TermKind, alias string) (string, error)
	// Add records a raw spelling for a canonical term. Idempotent.
	Add(ctx context.Context, kind entity.TermKind, canonical, alias string) error
	// Vocabulary returns all canonical terms of one kind.
	Vocabulary(ctx context.Context, kind entity.TermKind) ([]string, error)
	All(ctx context.Context, kind entity.TermKind) ([]*entity.TermAlias, error)
}

type termAliasRepository struct {
	client *ent.Client
	logger *zap.Logger
}

func NewTermAliasRepository(client *ent.Client, logger *zap.Logger) TermAliasRepository {
	return &termAliasRepository{client: client, logger: logger}
}

func (r *termAliasRepository) Lookup(ctx context.Context, kind entity.TermKind, alias string) (string, error) {
	rec, err := r.client.TermAlias.Query().
		Where(
			termalias.KindEQ(termalias.Kind(kind)),
			termalias.Alias(alias),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return rec.Canonical, nil
}

func (r *termAliasRepository) Add(ctx context.Context, kind entity.TermKind, canonical, alias string) error {
	err := r.client.TermAlias.Create().
		SetKind(termalias.Kind(kind)).
		SetCanonical(canonical).
		SetAlias(alias).
		OnConflictColumns(termalias.FieldKind, termalias.FieldAlias).
		Ignore().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to add term alias",
			zap.String("kind", string(kind)),
			zap.String("canonical", canonical),
			zap.String("alias", alias),
			zap.Error(err))
	}
	return err
}

func (r *termAliasRepository) Vocabulary(ctx context.Context, kind entity.TermKind) ([]string, error) {
	return r.client.TermAlias.Query().
		Where(termalias.KindEQ(termalias.Kind(kind))).
		Unique(true).
		Select(termalias.FieldCanonical).
		Strings(ctx)
}

func (r *termAliasRepository) All(ctx context.Context, kind entity.TermKind) ([]*entity.TermAlias, error) {
	recs, err := r.client.TermAlias.Query().
		Where(termalias.KindEQ(termalias.Kind(kind))).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.TermAlias, len(recs))
	for i, rec := range recs {
		out[i] = &entity.TermAlias{
			Kind:      entity.TermKind(rec.Kind),
			Canonical: rec.Canonical,
			Alias:     rec.Alias,
		}
	}
	return out, nil
}
