package api

// Response is the envelope returned by collection endpoints.
type Response[E any] struct {
	HTTPCode        int `json:"http_code"`
	ReturnedResults int `json:"returned_results"`
	Results         []E `json:"results"`
}

// Consistent reports whether ReturnedResults matches the number of results.
func (r Response[E]) Consistent() bool {
	return r.ReturnedResults == len(r.Results)
}

// ErrorResponse is the payload the API sends along with a failure status.
type ErrorResponse struct {
	HTTPCode int    `json:"http_code"`
	Message  string `json:"error"`
}
