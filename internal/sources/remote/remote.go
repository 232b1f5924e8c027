// Package remote adapts the API list and by-id endpoints into typed
// fetches for each entity kind. Sources never retry and never cache.
package remote

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/rmbrowse/internal/transport"
	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/logging"
)

// Option configures a source.
type Option func(*base)

// WithLogger sets the source logger.
func WithLogger(l zerolog.Logger) Option {
	return func(b *base) {
		b.logger = logging.Component(l, "remote")
	}
}

type base struct {
	getter transport.Getter
	logger zerolog.Logger
}

func newBase(g transport.Getter, opts []Option) base {
	b := base{getter: g, logger: logging.Nop}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// fetchPage fetches one page of a list endpoint.
func fetchPage[T any](ctx context.Context, b base, path, resource string, query url.Values) (entities.Page[T], error) {
	var page entities.Page[T]

	resp, err := b.getter.Get(ctx, path, query)
	if err != nil {
		return page, err
	}
	if err := transport.Decode(resp, resource+" page", &page); err != nil {
		b.logger.Debug().Err(err).Str("url", resp.URL).Msg("page fetch failed")
		return entities.Page[T]{}, err
	}
	return page, nil
}

// fetchByIDs fetches the entities with the given ids. The API answers a
// single id with a bare object and several with an array; both come back
// as a slice.
func fetchByIDs[T any](ctx context.Context, b base, path, resource string, ids []int) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}

	resp, err := b.getter.Get(ctx, path+"/"+joinIDs(ids), nil)
	if err != nil {
		return nil, err
	}

	if transport.IsArray(resp.Body) {
		var items []T
		if err := transport.Decode(resp, resource+" list", &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var item T
	if err := transport.Decode(resp, resource, &item); err != nil {
		return nil, err
	}
	return []T{item}, nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
