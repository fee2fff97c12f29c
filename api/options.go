package api

import "context"

// Method is the HTTP method a builder dispatches with.
type Method int

const (
	// Get issues a GET without a body.
	Get Method = iota
	// Post issues a POST carrying the JSON body.
	Post
)

// String returns the upper-case HTTP method name.
func (m Method) String() string {
	switch m {
	case Post:
		return "POST"
	default:
		return "GET"
	}
}

// Hook runs against a builder before dispatch. Returning an error aborts the
// call.
type Hook[T any] func(b *Builder[T]) error

// PostHook receives the decoded result and may replace or reject it.
type PostHook[T any] func(ctx context.Context, result T) (T, error)

// Option configures a Builder at construction.
type Option[T any] func(b *Builder[T])

// WithMethod selects the HTTP method. The default is Get.
func WithMethod[T any](m Method) Option[T] {
	return func(b *Builder[T]) { b.method = m }
}

// WithPreFire runs fn first on Fire and Print, typically to inject
// last-moment parameters.
func WithPreFire[T any](fn Hook[T]) Option[T] {
	return func(b *Builder[T]) { b.preFire = fn }
}

// WithValidation runs fn after the pre-fire hook to reject invalid parameter
// combinations.
func WithValidation[T any](fn Hook[T]) Option[T] {
	return func(b *Builder[T]) { b.validate = fn }
}

// WithPostFire runs fn on the decoded result before Fire returns it.
func WithPostFire[T any](fn PostHook[T]) Option[T] {
	return func(b *Builder[T]) { b.postFire = fn }
}
