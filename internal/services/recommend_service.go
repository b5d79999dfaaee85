package services

import (
	"sort"
	"strings"

	"gearmatch/internal/domain"
	"gearmatch/internal/forms"
	"gearmatch/internal/repos"
)

// Scoring constants. Every candidate starts neutral; each comparable field
// shifts the score by a fixed weight, and the result is clamped to [0,100].
const (
	baselineScore  = 50
	matchWeight    = 15
	mismatchWeight = 15
)

// RecommendService matches intake-form answers against the catalog and
// returns the top-scoring products. It is a stateless computation over a
// snapshot of the store and is safe to call concurrently with mutations.
type RecommendService struct {
	Prods *repos.ProductRepo
	Limit int // max results; <=0 falls back to 10
}

func NewRecommendService(prods *repos.ProductRepo, limit int) *RecommendService {
	return &RecommendService{Prods: prods, Limit: limit}
}

// rule pairs a form field with its comparator. compare returns +1 for a
// match, -1 for a contradiction and 0 when the values are not comparable.
type rule struct {
	field   string
	compare func(want, have string) int
}

// Recommend scores every candidate product for the request and returns the
// ranked result. A nil shopID means the anonymous, all-shops surface; a
// non-nil one restricts candidates to that shop (admin preview).
//
// All attribute fields are optional: an empty map is valid and every
// candidate comes back at the baseline score.
func (s *RecommendService) Recommend(shopID *int64, sport, category string, attrs map[string]string) ([]domain.Recommendation, error) {
	sport = strings.TrimSpace(sport)
	category = strings.TrimSpace(category)
	if sport == "" {
		return []domain.Recommendation{}, domain.Invalid("sport", "required")
	}
	if category != "" && !forms.KnownCategory(sport, category) {
		return []domain.Recommendation{}, domain.Invalid("category", "unknown for sport "+sport)
	}

	fields := forms.FieldsFor(sport, category)
	if category == "" {
		fields = forms.SportFields(sport)
	}
	if err := validateAttrs(fields, attrs); err != nil {
		return []domain.Recommendation{}, err
	}
	rules := buildRules(fields)

	candidates, err := s.Prods.ListByCategory(shopID, sport)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Recommendation, 0, len(candidates))
	for _, p := range candidates {
		// Products that declare a subcategory must match the requested one;
		// products without one stay eligible for the whole sport.
		if category != "" && p.Subcategory != "" && !strings.EqualFold(p.Subcategory, category) {
			continue
		}
		out = append(out, domain.Recommendation{Product: p, Score: score(p, rules, attrs)})
	}

	// Descending score; ties broken by lower product id so identical
	// requests over an unchanged catalog always produce identical output.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})

	limit := s.Limit
	if limit <= 0 {
		limit = 10
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// validateAttrs enforces the form schema: unknown field names and select
// values outside the descriptor's options are rejected rather than trusted.
func validateAttrs(fields []forms.Field, attrs map[string]string) error {
	byName := make(map[string]forms.Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	for k, v := range attrs {
		f, ok := byName[k]
		if !ok {
			return domain.Invalid(k, "not a form field for this sport/category")
		}
		if f.Kind == forms.KindSelect && optionIndex(f.Options, v) < 0 {
			return domain.Invalid(k, "not one of the allowed options")
		}
	}
	return nil
}

// buildRules derives the matching policy from the form schema: select
// fields compare by option ordinal, text fields by case-insensitive
// equality. The policy is data, not per-category branching.
func buildRules(fields []forms.Field) []rule {
	rules := make([]rule, 0, len(fields))
	for _, f := range fields {
		if f.Kind == forms.KindSelect {
			rules = append(rules, rule{field: f.Name, compare: ordinalCompare(f.Options)})
		} else {
			rules = append(rules, rule{field: f.Name, compare: textCompare})
		}
	}
	return rules
}

func score(p domain.Product, rules []rule, attrs map[string]string) int {
	sc := baselineScore
	for _, r := range rules {
		want, ok := attrs[r.field]
		if !ok || strings.TrimSpace(want) == "" {
			continue // omitted fields are neutral
		}
		have, ok := p.Attrs[r.field]
		if !ok || strings.TrimSpace(have) == "" {
			continue // product carries no comparable data
		}
		switch r.compare(want, have) {
		case 1:
			sc += matchWeight
		case -1:
			sc -= mismatchWeight
		}
	}
	if sc < 0 {
		sc = 0
	}
	if sc > 100 {
		sc = 100
	}
	return sc
}

// ordinalCompare grades by position on the option scale: same option is a
// match, adjacent options are neutral, anything further apart contradicts.
// Values off the scale (stale product tags) stay neutral.
func ordinalCompare(options []string) func(want, have string) int {
	return func(want, have string) int {
		wi := optionIndex(options, want)
		hi := optionIndex(options, have)
		if wi < 0 || hi < 0 {
			return 0
		}
		d := wi - hi
		if d < 0 {
			d = -d
		}
		switch {
		case d == 0:
			return 1
		case d == 1:
			return 0
		default:
			return -1
		}
	}
}

func textCompare(want, have string) int {
	if strings.EqualFold(strings.TrimSpace(want), strings.TrimSpace(have)) {
		return 1
	}
	return 0
}

func optionIndex(options []string, v string) int {
	v = strings.TrimSpace(v)
	for i, o := range options {
		if strings.EqualFold(o, v) {
			return i
		}
	}
	return -1
}
