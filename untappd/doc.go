// Package untappd is the Untappd API family built on package api.
//
// A Manager carries the credentials and timeouts shared by every service it
// creates:
//
//	m := untappd.NewManager().WithAPIKey(key)
//	search, err := m.SearchService()
//	if err != nil {
//		return err
//	}
//	resp, err := search.Breweries("stone").Fire(ctx)
//
// Each builder is single-use. Fire returns an *api.Error on every failure.
package untappd
