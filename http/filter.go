package http

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/spellcards"
	"github.com/fwojciec/spellcards/goquery"
)

// Ensure FilterResolver implements spellcards.FilterResolver at compile time.
var _ spellcards.FilterResolver = (*FilterResolver)(nil)

// filterSources are the rulebooks included in every listing query.
var filterSources = []string{"base", "xgte", "tcoe", "ftod"}

// FilterResolver resolves spell filters by submitting the site's spell
// search form.
type FilterResolver struct {
	*settings
}

// NewFilterResolver creates a new FilterResolver.
func NewFilterResolver(opts ...Option) *FilterResolver {
	return &FilterResolver{settings: newSettings(opts)}
}

// ResolveFilter posts the filter form and returns the French identifiers
// of the listed spells in listing order.
func (r *FilterResolver) ResolveFilter(ctx context.Context, filter spellcards.SpellFilter) ([]spellcards.Identifier, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	body := FilterForm(filter).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.filterURL, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	html, err := r.do(req)
	if err != nil {
		return nil, err
	}
	return goquery.ParseListing(html)
}

// FilterForm returns the form fields of the listing query for filter.
func FilterForm(filter spellcards.SpellFilter) url.Values {
	form := url.Values{}
	form.Set("Filtre1[]", spellcards.ClassCode(filter.Class))
	form.Set("nivMin", strconv.Itoa(filter.MinLevel))
	form.Set("nivMax", strconv.Itoa(filter.MaxLevel))
	for _, source := range filterSources {
		form.Add("source[]", source)
	}
	form.Set("opt_tcoe", "S")
	for _, col := range []string{"colE", "colI", "colC", "colR"} {
		form.Set(col, "on")
	}
	form.Set("filtrer", "FILTRER")
	return form
}
