package api

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/untappd/logger"
	"github.com/kbukum/untappd/observability"
)

const paramAPIKey = "key"

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Builder describes a single call returning T. Setters mutate the builder
// and return it for chaining. A builder belongs to one goroutine and can be
// fired once.
type Builder[T any] struct {
	service  *Service
	template string
	method   Method
	apiKey   string
	params   *orderedValues
	fields   *orderedValues
	body     map[string]any

	preFire  Hook[T]
	validate Hook[T]
	postFire PostHook[T]

	fired bool
}

// NewBuilder creates a builder bound to svc for the URL template, a path
// relative to the service base URL that may contain {name} placeholders.
// The service's API key is captured as the key parameter.
func NewBuilder[T any](svc *Service, template string, opts ...Option[T]) *Builder[T] {
	b := &Builder[T]{
		service:  svc,
		template: template,
		method:   Get,
		apiKey:   svc.APIKey(),
		params:   newOrderedValues(),
		fields:   newOrderedValues(),
		body:     make(map[string]any),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Service returns the service the builder is bound to.
func (b *Builder[T]) Service() *Service { return b.service }

// Method returns the HTTP method.
func (b *Builder[T]) Method() Method { return b.method }

// Template returns the URL template.
func (b *Builder[T]) Template() string { return b.template }

// Parameter sets a query parameter. An empty value removes it.
func (b *Builder[T]) Parameter(name, value string) *Builder[T] {
	b.params.set(name, value)
	return b
}

// ParameterTime sets a query parameter to t in unix seconds. The zero time
// removes it.
func (b *Builder[T]) ParameterTime(name string, t time.Time) *Builder[T] {
	if t.IsZero() {
		b.params.remove(name)
		return b
	}
	return b.Parameter(name, UnixSeconds(t))
}

// ParameterInt sets a query parameter to a decimal integer. Zero removes it.
func (b *Builder[T]) ParameterInt(name string, v int) *Builder[T] {
	if v == 0 {
		b.params.remove(name)
		return b
	}
	return b.Parameter(name, strconv.Itoa(v))
}

// ParameterEnum sets a query parameter to e's wire value, or removes it when
// e has none.
func (b *Builder[T]) ParameterEnum(name string, e Enumeration) *Builder[T] {
	v, _ := enumValue(e)
	return b.Parameter(name, v)
}

// ParameterValue returns a query parameter.
func (b *Builder[T]) ParameterValue(name string) (string, bool) {
	return b.params.get(name)
}

// Field sets a path field substituted into {name}. An empty value removes it.
func (b *Builder[T]) Field(name, value string) *Builder[T] {
	b.fields.set(name, value)
	return b
}

// FieldTime sets a path field to t in unix seconds. The zero time removes it.
func (b *Builder[T]) FieldTime(name string, t time.Time) *Builder[T] {
	if t.IsZero() {
		b.fields.remove(name)
		return b
	}
	return b.Field(name, UnixSeconds(t))
}

// FieldInt sets a path field to a decimal integer. Zero removes it.
func (b *Builder[T]) FieldInt(name string, v int) *Builder[T] {
	if v == 0 {
		b.fields.remove(name)
		return b
	}
	return b.Field(name, strconv.Itoa(v))
}

// FieldEnum sets a path field to e's wire value, or removes it when e has
// none.
func (b *Builder[T]) FieldEnum(name string, e Enumeration) *Builder[T] {
	v, _ := enumValue(e)
	return b.Field(name, v)
}

// FieldValue returns a path field.
func (b *Builder[T]) FieldValue(name string) (string, bool) {
	return b.fields.get(name)
}

// SetBody sets a POST body property to any JSON-encodable value.
func (b *Builder[T]) SetBody(name string, value any) *Builder[T] {
	b.body[name] = value
	return b
}

// SetBodyRaw sets a POST body property to pre-encoded JSON.
func (b *Builder[T]) SetBodyRaw(name string, raw []byte) *Builder[T] {
	b.body[name] = rawJSON(raw)
	return b
}

// SetBodyEnum sets a POST body property to e's wire value. Nothing is written
// when e has none.
func (b *Builder[T]) SetBodyEnum(name string, e Enumeration) *Builder[T] {
	if v, ok := enumValue(e); ok {
		b.body[name] = v
	}
	return b
}

// BodyValue returns a POST body property.
func (b *Builder[T]) BodyValue(name string) (any, bool) {
	v, ok := b.body[name]
	return v, ok
}

// HasBody reports whether a POST body property is set.
func (b *Builder[T]) HasBody(name string) bool {
	_, ok := b.body[name]
	return ok
}

// URL renders the request URL: base URL plus the template with path fields
// substituted, trailing slashes stripped, then the key and query parameters
// in insertion order.
func (b *Builder[T]) URL() string {
	path := placeholderPattern.ReplaceAllStringFunc(b.template, func(m string) string {
		v, _ := b.fields.get(m[1 : len(m)-1])
		return url.PathEscape(v)
	})

	var sb strings.Builder
	sb.WriteString(NormalizeURL(b.service.BaseURL() + path))
	sb.WriteString("?" + paramAPIKey + "=")
	sb.WriteString(url.QueryEscape(b.apiKey))
	b.params.each(func(name, value string) {
		sb.WriteString("&")
		sb.WriteString(url.QueryEscape(name))
		sb.WriteString("=")
		sb.WriteString(url.QueryEscape(value))
	})
	return sb.String()
}

// NormalizeURL strips every trailing slash; the API answers 404 otherwise.
func NormalizeURL(u string) string {
	return strings.TrimRight(u, "/")
}

// Fire runs the pre-fire and validation hooks, dispatches the call, decodes
// the response into T and runs the post-fire hook. Every failure is returned
// as an *Error.
func (b *Builder[T]) Fire(ctx context.Context) (T, error) {
	var zero T
	if b.fired {
		return zero, b.wrap(ErrBuilderUsed, nil)
	}
	b.fired = true

	cc := observability.NewCallContext(b.template, b.method.String(), "", b.service.metrics)
	ctx, span := cc.StartSpan(ctx, observability.SpanFire)

	result, err := b.fire(ctx)
	kind := errorKind(err)
	cc.End(ctx, span, kind, err)
	if err != nil {
		if kind != "transport" {
			b.service.log.Debug("api call rejected", logger.ErrorFields(b.template, err))
		}
		return zero, err
	}
	return result, nil
}

func (b *Builder[T]) fire(ctx context.Context) (T, error) {
	var result T
	if err := b.prepare(); err != nil {
		return result, b.wrap(err, nil)
	}

	rawURL := b.URL()
	var (
		element Element
		body    []byte
		err     error
	)
	switch b.method {
	case Post:
		body, err = b.service.codec.Marshal(b.body)
		if err != nil {
			return result, b.wrap(err, nil)
		}
		element, err = b.service.Post(ctx, rawURL, string(body))
	default:
		element, err = b.service.Get(ctx, rawURL)
	}
	if err != nil {
		return result, b.wrap(err, body)
	}

	if err := b.service.Decode(element, &result); err != nil {
		return result, b.wrap(err, body)
	}

	if b.postFire != nil {
		result, err = b.postFire(ctx, result)
		if err != nil {
			return result, b.wrap(err, body)
		}
	}
	return result, nil
}

// prepare runs the pre-fire and validation hooks.
func (b *Builder[T]) prepare() error {
	if b.preFire != nil {
		if err := b.preFire(b); err != nil {
			return err
		}
	}
	if b.validate != nil {
		if err := b.validate(b); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder[T]) wrap(err error, body []byte) *Error {
	if body == nil && b.method == Post {
		body, _ = b.service.codec.Marshal(b.body)
	}
	return &Error{
		URL:      b.URL(),
		Body:     body,
		Response: b.service.parseErrorResponse(err),
		Err:      err,
	}
}

// rawJSON embeds pre-encoded JSON in the body without re-encoding.
type rawJSON []byte

func (r rawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}
