package untappd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/kbukum/untappd/api"
	apperrors "github.com/kbukum/untappd/errors"
	"github.com/kbukum/untappd/validation"
)

const (
	pathBrewerySearch = "/v3/brewery_search"
	pathBeerSearch    = "/v3/beer_search"

	paramQuery  = "q"
	paramSort   = "sort"
	paramOffset = "offset"
	paramLimit  = "limit"

	// MaxLimit is the largest page the search endpoints return.
	MaxLimit = 50
)

// SearchService exposes the search endpoints.
type SearchService struct {
	*api.Service
}

// NewSearchService creates a search service against BaseURL. Later options
// may override the base URL.
func NewSearchService(opts ...api.ServiceOption) *SearchService {
	opts = append([]api.ServiceOption{api.WithBaseURL(BaseURL)}, opts...)
	return &SearchService{Service: api.NewService(opts...)}
}

// Breweries starts a brewery search for query.
func (s *SearchService) Breweries(query string) *BreweriesBuilder {
	b := api.NewBuilder(s.Service, pathBrewerySearch,
		api.WithValidation[BreweryResponse](validateSearch),
		api.WithPostFire[BreweryResponse](checkConsistent),
	)
	b.Parameter(paramQuery, query)
	return &BreweriesBuilder{b: b}
}

// Beers starts a beer search for query.
func (s *SearchService) Beers(query string) *BeersBuilder {
	b := api.NewBuilder(s.Service, pathBeerSearch,
		api.WithValidation[BeerResponse](validateSearch),
		api.WithPostFire[BeerResponse](checkConsistent),
	)
	b.Parameter(paramQuery, query)
	return &BeersBuilder{b: b}
}

// BreweriesBuilder is a single-use brewery search request.
type BreweriesBuilder struct {
	b *api.Builder[BreweryResponse]
}

// Query replaces the search term.
func (r *BreweriesBuilder) Query(q string) *BreweriesBuilder {
	r.b.Parameter(paramQuery, q)
	return r
}

// Offset skips the first n results.
func (r *BreweriesBuilder) Offset(n int) *BreweriesBuilder {
	r.b.ParameterInt(paramOffset, n)
	return r
}

// Limit caps the number of results, at most MaxLimit. Zero leaves the API
// default.
func (r *BreweriesBuilder) Limit(n int) *BreweriesBuilder {
	r.b.ParameterInt(paramLimit, n)
	return r
}

// URL returns the request URL as it would be sent now.
func (r *BreweriesBuilder) URL() string { return r.b.URL() }

// Fire performs the search.
func (r *BreweriesBuilder) Fire(ctx context.Context) (BreweryResponse, error) {
	return r.b.Fire(ctx)
}

// Print writes the request to w without sending it.
func (r *BreweriesBuilder) Print(w io.Writer) error { return r.b.Print(w) }

// BeersBuilder is a single-use beer search request.
type BeersBuilder struct {
	b *api.Builder[BeerResponse]
}

// Query replaces the search term.
func (r *BeersBuilder) Query(q string) *BeersBuilder {
	r.b.Parameter(paramQuery, q)
	return r
}

// Sort orders the results. SortDefault removes the parameter.
func (r *BeersBuilder) Sort(o SortOrder) *BeersBuilder {
	r.b.ParameterEnum(paramSort, o)
	return r
}

// Offset skips the first n results.
func (r *BeersBuilder) Offset(n int) *BeersBuilder {
	r.b.ParameterInt(paramOffset, n)
	return r
}

// Limit caps the number of results, at most MaxLimit. Zero leaves the API
// default.
func (r *BeersBuilder) Limit(n int) *BeersBuilder {
	r.b.ParameterInt(paramLimit, n)
	return r
}

// URL returns the request URL as it would be sent now.
func (r *BeersBuilder) URL() string { return r.b.URL() }

// Fire performs the search.
func (r *BeersBuilder) Fire(ctx context.Context) (BeerResponse, error) {
	return r.b.Fire(ctx)
}

// Print writes the request to w without sending it.
func (r *BeersBuilder) Print(w io.Writer) error { return r.b.Print(w) }

// validateSearch checks the parameters shared by the search endpoints.
func validateSearch[T any](b *api.Builder[T]) error {
	v := validation.New()
	q, _ := b.ParameterValue(paramQuery)
	v.Required(paramQuery, q)
	if n, ok := intParameter(v, b, paramOffset); ok {
		v.Min(paramOffset, n, 0)
	}
	if n, ok := intParameter(v, b, paramLimit); ok {
		v.Min(paramLimit, n, 1).Max(paramLimit, n, MaxLimit)
	}
	if order, ok := b.ParameterValue(paramSort); ok {
		v.OneOf(paramSort, order, []string{string(SortCount), string(SortName)})
	}
	return v.Err()
}

func intParameter[T any](v *validation.Validator, b *api.Builder[T], name string) (int, bool) {
	raw, ok := b.ParameterValue(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	v.Custom(err == nil, name, "must be a number")
	return n, err == nil
}

func checkConsistent[E any](_ context.Context, r api.Response[E]) (api.Response[E], error) {
	if !r.Consistent() {
		return r, apperrors.ContentFormat(
			fmt.Sprintf("returned_results is %d but %d results were sent", r.ReturnedResults, len(r.Results)), nil)
	}
	return r, nil
}
