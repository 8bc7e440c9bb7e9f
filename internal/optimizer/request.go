package optimizer

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/BlendBot_Go/internal/domain"
)

// ProductInput is the product section of a search request.
type ProductInput struct {
	Name          string `json:"name" validate:"required"`
	InitialEffect string `json:"initialEffect" validate:"required"`
}

// SubstanceInput is one catalog entry in a search request. Cost is cents.
type SubstanceInput struct {
	Name          string `json:"name" validate:"required"`
	Cost          int    `json:"cost" validate:"min=0"`
	DefaultEffect string `json:"defaultEffect" validate:"required"`
}

// RuleInput is one effect-mutation rule in a search request.
type RuleInput struct {
	Kind        string   `json:"kind" validate:"required,oneof=replace add"`
	Condition   []string `json:"condition"`
	Exclusion   []string `json:"exclusion,omitempty"`
	Target      string   `json:"target" validate:"required"`
	Replacement string   `json:"replacement,omitempty"`
}

// Request is the full search request shared by all three call sites.
// Effect multipliers arrive as decimals (0.54) and are converted to
// x100-scaled integers at this boundary.
type Request struct {
	Product           ProductInput           `json:"product" validate:"required"`
	Substances        []SubstanceInput       `json:"substances" validate:"required,min=1,dive"`
	EffectMultipliers map[string]float64     `json:"effectMultipliers" validate:"required"`
	SubstanceRules    map[string][]RuleInput `json:"substanceRules,omitempty" validate:"omitempty,dive,dive"`
	MaxDepth          int                    `json:"maxDepth" validate:"required,min=1"`
	Algorithm         string                 `json:"algorithm" validate:"omitempty,oneof=breadth-first depth-first"`
	EnableCaching     *bool                  `json:"enableCaching,omitempty"`
	ReportProgress    bool                   `json:"reportProgress,omitempty"`
}

var validate = validator.New()

// Validate performs structural and semantic validation. It fails fast,
// before any search work, and every failure wraps a domain sentinel.
func (r *Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRequest, err.Error())
	}

	if r.MaxDepth > domain.MaxMixDepth {
		return fmt.Errorf("%w: requested %d, limit %d", domain.ErrDepthExceeded, r.MaxDepth, domain.MaxMixDepth)
	}

	names := make(map[string]struct{}, len(r.Substances))
	for _, s := range r.Substances {
		if _, dup := names[s.Name]; dup {
			return fmt.Errorf("%w: duplicate substance %q", domain.ErrInvalidRequest, s.Name)
		}
		names[s.Name] = struct{}{}
	}

	for substanceName, rules := range r.SubstanceRules {
		if _, ok := names[substanceName]; !ok {
			return fmt.Errorf("%w: rules reference %q", domain.ErrUnknownSubstance, substanceName)
		}
		for i, rule := range rules {
			if rule.Kind == string(domain.RuleReplace) && rule.Replacement == "" {
				return fmt.Errorf("%w: %s rule %d is a replace without a replacement", domain.ErrInvalidRequest, substanceName, i)
			}
		}
	}

	return nil
}

// Algorithm resolves the requested strategy, defaulting to depth-first.
func (r *Request) algorithm() domain.Algorithm {
	if r.Algorithm == string(domain.AlgorithmBreadthFirst) {
		return domain.AlgorithmBreadthFirst
	}
	return domain.AlgorithmDepthFirst
}

// enableCaching resolves the caching toggle, defaulting to on.
func (r *Request) enableCaching() bool {
	if r.EnableCaching != nil {
		return *r.EnableCaching
	}
	return true
}

// compile converts the validated request into the engine's domain model:
// rules attached to their substances in catalog order, multipliers rounded
// to x100 integers.
func (r *Request) compile() (*domain.Product, []domain.Substance, map[string]int) {
	product := &domain.Product{
		Name:          r.Product.Name,
		InitialEffect: r.Product.InitialEffect,
	}

	substances := make([]domain.Substance, len(r.Substances))
	for i, s := range r.Substances {
		substances[i] = domain.Substance{
			Name:          s.Name,
			CostCents:     s.Cost,
			DefaultEffect: s.DefaultEffect,
		}
		for _, in := range r.SubstanceRules[s.Name] {
			substances[i].Rules = append(substances[i].Rules, domain.SubstanceRule{
				Kind:        domain.RuleKind(in.Kind),
				Condition:   in.Condition,
				Exclusion:   in.Exclusion,
				Target:      in.Target,
				Replacement: in.Replacement,
			})
		}
	}

	multipliers := make(map[string]int, len(r.EffectMultipliers))
	for name, m := range r.EffectMultipliers {
		multipliers[name] = int(math.Round(m * 100))
	}

	return product, substances, multipliers
}
