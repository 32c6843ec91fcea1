package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"model-resolver/internal/introspect"
	"model-resolver/internal/schema"
)

// Session resolves a batch of root types into one registry.
type Session struct {
	resolver *Resolver
	registry *schema.Registry

	log *slog.Logger
}

// NewSession creates a Session writing into reg. A nil reg starts a new
// registry.
func NewSession(resolver *Resolver, reg *schema.Registry) *Session {
	if reg == nil {
		reg = schema.NewRegistry()
	}

	return &Session{
		resolver: resolver,
		registry: reg,
		log:      slog.Default().With("system", "session"),
	}
}

// Registry returns the session registry.
func (s *Session) Registry() *schema.Registry {
	return s.registry
}

// ResolveAll resolves every root and returns the resulting models in
// root order; an entry is nil where the root was a key/value container.
// Roots are fanned out over Config.Concurrency goroutines. The registry
// contents do not depend on the order in which roots are visited.
func (s *Session) ResolveAll(ctx context.Context, roots []introspect.TypeRef) ([]*schema.Model, error) {
	out := make([]*schema.Model, len(roots))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.resolver.config.Concurrency)

	for i, root := range roots {
		if root == nil {
			continue
		}

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("resolving %s: %w", root.CanonicalName(), err)
			}

			s.log.Debug("resolving root", "name", root.CanonicalName())
			out[i] = s.resolver.Resolve(root, s.registry)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// a root claimed by another goroutine comes back as a bare shell
	for i, m := range out {
		if m == nil || m.Properties.Len() > 0 {
			continue
		}

		if stored := s.registry.Model(m.Name); stored != nil {
			out[i] = stored
		}
	}

	s.log.Info("resolution finished", "roots", len(roots), "schemas", s.registry.Len())

	return out, nil
}
