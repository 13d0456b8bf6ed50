package autoresolve

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Resolver runs convention-based scans: each candidate type is classified and
// every candidate becomes one entry per lifetime marker it carries.
//
// A Resolver holds no mutable state after New returns, so one instance can run
// any number of scans concurrently.
type Resolver struct {
	markers    MarkerSet
	classifier *Classifier
	builder    *Builder
	logger     *slog.Logger
}

// New creates a Resolver with the default marker configuration.
// Options can be provided to configure the resolver.
//
// Example:
//
//	resolver := autoresolve.New()
//	// or with options:
//	resolver := autoresolve.New(autoresolve.WithLogger(logger))
func New(options ...Option) *Resolver {
	r := &Resolver{
		markers: DefaultMarkers(),
		logger:  slog.Default(),
	}

	for _, opt := range options {
		if err := opt(r); err != nil {
			panic(fmt.Sprintf("failed to apply option: %v", err))
		}
	}

	r.classifier = NewClassifier(r.markers)
	r.builder = NewBuilder(r.markers)
	return r
}

// Classifier returns the classifier used by this resolver.
func (r *Resolver) Classifier() *Classifier {
	return r.classifier
}

// Builder returns the builder used by this resolver.
func (r *Resolver) Builder() *Builder {
	return r.builder
}

// Resolve scans src and returns its registration entries in scan order.
// Scanning the same input twice yields identical entries.
//
// Returns an error, and no entries, if:
//   - src is nil (*InvalidInputError)
//   - src fails to produce its types (*DiscoveryError)
//   - a matched marker has no lifetime (*ContractViolationError)
func (r *Resolver) Resolve(src Source) ([]Entry, error) {
	if src == nil {
		return nil, &InvalidInputError{Argument: "source"}
	}

	types, err := scan(src)
	if err != nil {
		r.logger.Warn("Scan aborted", slog.String("error", err.Error()))
		return nil, &DiscoveryError{Cause: err}
	}

	entries := make([]Entry, 0, len(types))
	for _, info := range types {
		if !info.IsConcrete() {
			continue
		}
		matched := r.classifier.Classify(info)
		if len(matched) == 0 {
			continue
		}

		built, err := r.builder.Build(info, matched)
		if err != nil {
			r.logger.Warn("Scan aborted",
				slog.String("type", info.String()),
				slog.String("error", err.Error()))
			return nil, err
		}
		for _, e := range built {
			r.logger.Debug("Resolved service",
				slog.String("service", e.ServiceType.String()),
				slog.String("implementation", e.ImplementationType.String()),
				slog.String("lifetime", e.Lifetime.String()))
		}
		entries = append(entries, built...)
	}

	r.logger.Debug("Scan complete",
		slog.Int("types", len(types)),
		slog.Int("entries", len(entries)))
	return entries, nil
}

// ResolveEach scans disjoint sources in parallel and returns their entries
// indexed like sources. The first failure cancels the remaining scans and is returned.
func (r *Resolver) ResolveEach(ctx context.Context, sources ...Source) ([][]Entry, error) {
	results := make([][]Entry, len(sources))
	g, ctx := errgroup.WithContext(ctx)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries, err := r.Resolve(src)
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			results[i] = entries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// AutoResolve scans src and hands every entry to reg in scan order.
// The whole scan completes before the first entry is handed off, so a failed
// scan registers nothing. A rejected entry stops the hand-off with a *RegistrationError.
//
// Example:
//
//	reg := registry.New()
//	if err := resolver.AutoResolve(autoresolve.RegistryRegistrar(reg), src); err != nil {
//	    log.Fatal(err)
//	}
func (r *Resolver) AutoResolve(reg Registrar, src Source) error {
	if reg == nil {
		return &InvalidInputError{Argument: "registrar"}
	}

	entries, err := r.Resolve(src)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if err := reg.Register(e); err != nil {
			return &RegistrationError{Entry: e, Cause: err}
		}
	}

	r.logger.Debug("Registered services", slog.Int("entries", len(entries)))
	return nil
}
