// Package app implements the install coordinator: batch expansion, the
// per-target install/update/uninstall flows, and failure isolation across
// targets.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/zerr"

	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/parsnip/internal/core/ports"
	"go.trai.ch/parsnip/internal/engine/pipeline"
	"go.trai.ch/parsnip/internal/engine/revision"
)

// Options control one batch request.
type Options struct {
	// Force reinstalls already installed targets without prompting.
	Force bool

	// Sync executes pipelines one after another instead of concurrently.
	Sync bool

	// ExcludeIgnored filters out targets on the registry's ignore list.
	ExcludeIgnored bool

	// Generate forces the grammar generation step for every target.
	Generate bool
}

// App drives one pipeline per target and keeps failures local to the target
// that produced them.
type App struct {
	loader    ports.RegistryLoader
	resolver  *revision.Resolver
	builder   *pipeline.Builder
	runner    *pipeline.Runner
	markers   ports.MarkerStore
	workspace ports.Workspace
	prompter  ports.Prompter
	tracker   *domain.Tracker
	logger    ports.Logger
}

// New creates an App.
func New(
	loader ports.RegistryLoader,
	resolver *revision.Resolver,
	builder *pipeline.Builder,
	runner *pipeline.Runner,
	markers ports.MarkerStore,
	workspace ports.Workspace,
	prompter ports.Prompter,
	tracker *domain.Tracker,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		resolver:  resolver,
		builder:   builder,
		runner:    runner,
		markers:   markers,
		workspace: workspace,
		prompter:  prompter,
		tracker:   tracker,
		logger:    logger,
	}
}

// Install expands the batch request and runs one pipeline per remaining
// target. Already installed targets are confirmed interactively unless
// forced. A failure to build or run one target's pipeline never stops the
// others; the joined failures are returned at the end.
func (a *App) Install(ctx context.Context, requested []string, opts Options) error {
	if len(requested) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	reg, err := a.loader.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load registry")
	}
	specs, err := reg.Expand(requested, opts.ExcludeIgnored)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		a.logger.Info("nothing to install")
		return nil
	}

	// Counters from a previous batch must not leak into this one. Reset is
	// guarded: it is a no-op while any pipeline is in flight.
	a.tracker.Reset()

	var (
		errs []error
		jobs []pipeline.Job
	)
	for _, spec := range specs {
		name := spec.Name.String()

		if _, installed := a.markers.Revision(name); installed && !opts.Force {
			yes, err := a.prompter.Confirm(fmt.Sprintf("Parser %s is already installed. Reinstall?", name))
			if err != nil {
				errs = append(errs, zerr.With(zerr.Wrap(err, "prompt failed"), "target", name))
				continue
			}
			if !yes {
				a.logger.Info("skipping " + name)
				continue
			}
		}

		rev, _ := a.resolver.Resolve(&spec)
		pl, err := a.builder.Build(ctx, &spec, pipeline.BuildOptions{
			ForceGenerate: opts.Generate,
			Revision:      rev,
		})
		if err != nil {
			a.logger.Error(err)
			errs = append(errs, err)
			continue
		}
		jobs = append(jobs, pipeline.Job{Target: name, Pipeline: pl})
	}

	failures := a.runner.RunAll(ctx, jobs, opts.Sync)
	for _, job := range jobs {
		if err, failed := failures[job.Target]; failed {
			errs = append(errs, err)
		}
	}

	a.logger.Info("install finished: " + a.tracker.Status())
	return errors.Join(errs...)
}

// Update reinstalls targets whose installed marker differs from the
// resolved revision. With no explicit targets the batch is limited to the
// installed targets that actually need work.
func (a *App) Update(ctx context.Context, requested []string, opts Options) error {
	opts.Force = true
	if len(requested) > 0 {
		return a.Install(ctx, requested, opts)
	}

	reg, err := a.loader.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load registry")
	}
	installed, err := a.markers.Installed()
	if err != nil {
		return err
	}

	var outdated []string
	for _, name := range installed {
		spec, err := reg.Spec(name)
		if err != nil {
			// Installed but no longer declared; leave it alone.
			continue
		}
		if a.resolver.NeedsUpdate(&spec) {
			outdated = append(outdated, name)
		}
	}
	if len(outdated) == 0 {
		a.logger.Info("all parsers are up to date")
		return nil
	}
	return a.Install(ctx, outdated, opts)
}

// Uninstall removes the artifact, the query association and the installed
// marker for each target. Unrecognized targets are reported and skipped;
// the rest of the batch continues.
func (a *App) Uninstall(ctx context.Context, requested []string) error {
	if len(requested) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	names, err := a.expandUninstall(requested)
	if err != nil {
		return err
	}

	var errs []error
	for _, name := range names {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if _, ok := a.markers.Revision(name); !ok {
			a.logger.Warn("parser " + name + " is not installed")
			errs = append(errs, zerr.With(domain.ErrNotInstalled, "target", name))
			continue
		}

		if err := a.workspace.RemoveArtifact(name); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := a.workspace.UnlinkQueries(name); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := a.markers.Remove(name); err != nil {
			errs = append(errs, err)
			continue
		}
		a.logger.Info("uninstalled " + name)
	}
	return errors.Join(errs...)
}

// expandUninstall resolves batch tokens for the uninstall flow. The "all"
// token means every installed target; tier aliases expand through the
// registry; anything else is taken as a concrete name, recognized or not.
func (a *App) expandUninstall(requested []string) ([]string, error) {
	reg, err := a.loader.Load()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load registry")
	}

	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, tok := range requested {
		switch {
		case tok == domain.AllTargets:
			installed, err := a.markers.Installed()
			if err != nil {
				return nil, err
			}
			for _, name := range installed {
				add(name)
			}
		default:
			if specs, err := reg.Expand([]string{tok}, false); err == nil {
				for _, spec := range specs {
					add(spec.Name.String())
				}
			} else {
				add(tok)
			}
		}
	}
	return names, nil
}
