package canonical

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

// AliasSeed maps one canonical term to the raw spellings that should resolve
// to it.
type AliasSeed struct {
	Canonical string   `mapstructure:"canonical"`
	Aliases   []string `mapstructure:"aliases"`
}

// LoadAliasSeeds reads a term vocabulary file.
//
// File layout:
//
//	skills:
//	  - canonical: kubernetes
//	    aliases: [k8s, kube]
//	roles:
//	  - canonical: backend developer
//	    aliases: [backend engineer, back-end developer]
func LoadAliasSeeds(path string) (map[entity.TermKind][]AliasSeed, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read alias seeds: %w", err)
	}

	var file struct {
		Skills []AliasSeed `mapstructure:"skills"`
		Roles  []AliasSeed `mapstructure:"roles"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode alias seeds: %w", err)
	}

	out := map[entity.TermKind][]AliasSeed{
		entity.TermKindSkill: file.Skills,
		entity.TermKindRole:  file.Roles,
	}
	for kind, seeds := range out {
		for _, s := range seeds {
			if NormalizeTerm(s.Canonical) == "" {
				return nil, fmt.Errorf("%s seed with empty canonical term", kind)
			}
		}
	}
	return out, nil
}

// SeedAliases writes the seed vocabulary into the alias tables. Spellings are
// normalized the same way lookups are, the canonical term is recorded as an
// alias of itself, and re-seeding the same file is idempotent. Returns the
// number of alias rows written.
func (r *Resolver) SeedAliases(ctx context.Context, seeds map[entity.TermKind][]AliasSeed) (int, error) {
	var written int
	for kind, list := range seeds {
		for _, seed := range list {
			canonical := NormalizeTerm(seed.Canonical)
			spellings := append([]string{seed.Canonical}, seed.Aliases...)
			for _, raw := range spellings {
				alias := NormalizeTerm(raw)
				if alias == "" {
					continue
				}
				if err := r.terms.Add(ctx, kind, canonical, alias); err != nil {
					return written, fmt.Errorf("seed %s alias %q: %w", kind, alias, err)
				}
				written++
			}
			r.logger.Debug("seeded term",
				zap.String("kind", string(kind)),
				zap.String("canonical", canonical),
				zap.Int("spellings", len(spellings)))
		}
	}
	return written, nil
}
