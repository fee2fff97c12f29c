package api

import (
	"fmt"
	"io"
	"sort"

	"github.com/samber/lo"
)

// Print runs the pre-fire and validation hooks and writes the request that
// Fire would send: the method and URL, each outgoing header sorted by name
// and, for POST, a blank line and the indented JSON body. It never touches
// the network, so only hook failures are returned.
func (b *Builder[T]) Print(w io.Writer) error {
	if err := b.prepare(); err != nil {
		return b.wrap(err, nil)
	}

	headers := b.service.Headers()
	if b.method == Post {
		headers[headerContentType] = contentTypeJSON
	}
	names := lo.Keys(headers)
	sort.Strings(names)

	if _, err := fmt.Fprintf(w, "%s %s\n", b.method, b.URL()); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, headers[name]); err != nil {
			return err
		}
	}

	if b.method != Post {
		return nil
	}
	body, err := b.service.codec.MarshalIndent(b.body)
	if err != nil {
		return b.wrap(err, nil)
	}
	_, err = fmt.Fprintf(w, "\n%s\n", body)
	return err
}
