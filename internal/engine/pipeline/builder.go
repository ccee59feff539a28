// Package pipeline turns a declarative install spec into an ordered step
// sequence and executes it, tracking aggregate progress across pipelines.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/parsnip/internal/core/ports"
	"go.trai.ch/zerr"
)

// ArtifactName is the file the compile step produces in the working directory.
const ArtifactName = "parser.so"

// BuildOptions tune pipeline construction for one batch.
type BuildOptions struct {
	// ForceGenerate runs the grammar generator even when the spec does not
	// request it.
	ForceGenerate bool

	// Revision is the revision resolved for this target at batch start.
	// Empty means unpinned.
	Revision string
}

// Builder produces the ordered step list for one target. Build is
// deterministic given identical inputs and performs all prerequisite tool
// checks up front: a missing tool fails the build before any subprocess is
// spawned, and no pipeline is produced.
type Builder struct {
	toolchain ports.Toolchain
	workspace ports.Workspace
	markers   ports.MarkerStore
}

// NewBuilder creates a Builder over the given toolchain and workspace.
func NewBuilder(toolchain ports.Toolchain, workspace ports.Workspace, markers ports.MarkerStore) *Builder {
	return &Builder{
		toolchain: toolchain,
		workspace: workspace,
		markers:   markers,
	}
}

// Build constructs the pipeline for one target.
//
// Remote sources get a leading cache cleanup and fetch steps, and a trailing
// cleanup mirroring the leading one. Local sources skip both and use the
// local path directly. Generation, when requested, requires the generator
// tool and optionally a package-manager bootstrap first. The compile step
// uses the resolved compiler; artifact installation, marker write and query
// linking run as in-process actions at the tail.
func (b *Builder) Build(ctx context.Context, spec *domain.TargetSpec, opts BuildOptions) (domain.Pipeline, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	name := spec.Name.String()
	workdir := spec.Source
	if !spec.IsLocal() {
		workdir = b.workspace.SourceDir(name)
	}
	if spec.Location != "" {
		workdir = filepath.Join(workdir, spec.Location)
	}

	var steps domain.Pipeline

	if !spec.IsLocal() {
		steps = append(steps, b.cleanupStep(name))
		fetch, err := b.fetchSteps(spec)
		if err != nil {
			return nil, err
		}
		steps = append(steps, fetch...)
	}

	if spec.Generate || opts.ForceGenerate {
		gen, err := b.generateSteps(ctx, spec, workdir)
		if err != nil {
			return nil, err
		}
		steps = append(steps, gen...)
	}

	compile, err := b.compileStep(spec, workdir)
	if err != nil {
		return nil, err
	}
	steps = append(steps, compile)

	steps = append(steps,
		&domain.ActionStep{
			Name: "install " + name + " artifact",
			Do: func() error {
				return b.workspace.InstallArtifact(filepath.Join(workdir, ArtifactName), name)
			},
		},
		&domain.ActionStep{
			Name: "record " + name + " revision",
			Do: func() error {
				return b.markers.Write(name, opts.Revision)
			},
		},
		&domain.ActionStep{
			Name: "link " + name + " queries",
			Do: func() error {
				return b.workspace.LinkQueries(workdir, name)
			},
		},
	)

	if !spec.IsLocal() {
		steps = append(steps, b.cleanupStep(name))
	}

	return steps, nil
}

// cleanupStep removes a stale cached source copy. Best effort on both ends
// of a remote pipeline.
func (b *Builder) cleanupStep(name string) domain.Step {
	return &domain.ActionStep{
		Name: "clean " + name + " source cache",
		Do: func() error {
			return b.workspace.CleanSource(name)
		},
	}
}

// fetchSteps produces the git steps that leave the source at the cache
// directory. A pinned revision needs history, so the clone is shallow only
// for unpinned targets.
func (b *Builder) fetchSteps(spec *domain.TargetSpec) ([]domain.Step, error) {
	name := spec.Name.String()
	git, err := b.toolchain.LookPath("git")
	if err != nil {
		return nil, zerr.With(zerr.With(domain.ErrToolMissing, "tool", "git"), "target", name)
	}

	dest := b.workspace.SourceDir(name)
	args := []string{"clone", "--quiet"}
	if spec.Revision == "" {
		args = append(args, "--depth", "1")
	}
	args = append(args, spec.Source, dest)

	steps := []domain.Step{
		&domain.ShellStep{
			Command: git,
			Args:    args,
			Info:    "downloading " + name + " grammar",
			ErrHint: "failed to download " + spec.Source,
		},
	}
	if spec.Revision != "" {
		steps = append(steps, &domain.ShellStep{
			Command: git,
			Args:    []string{"-C", dest, "checkout", "--quiet", spec.Revision},
			Info:    "checking out " + spec.Revision,
			ErrHint: "failed to check out revision " + spec.Revision,
		})
	}
	return steps, nil
}

// generateSteps produces the optional bootstrap step and the generation
// step. The ABI version is resolved once per process by the toolchain.
func (b *Builder) generateSteps(ctx context.Context, spec *domain.TargetSpec, workdir string) ([]domain.Step, error) {
	name := spec.Name.String()
	generator, err := b.toolchain.LookPath("tree-sitter")
	if err != nil {
		return nil, zerr.With(zerr.With(domain.ErrToolMissing, "tool", "tree-sitter"), "target", name)
	}

	var steps []domain.Step
	if spec.Bootstrap {
		npm, err := b.toolchain.LookPath("npm")
		if err != nil {
			return nil, zerr.With(zerr.With(domain.ErrToolMissing, "tool", "npm"), "target", name)
		}
		steps = append(steps, &domain.ShellStep{
			Command: npm,
			Args:    []string{"install", "--no-audit", "--no-fund"},
			Dir:     workdir,
			Info:    "bootstrapping " + name + " grammar dependencies",
			ErrHint: "npm install failed",
		})
	}

	abi, err := b.toolchain.GeneratorABI(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve generator ABI")
	}
	steps = append(steps, &domain.ShellStep{
		Command: generator,
		Args:    []string{"generate", fmt.Sprintf("--abi=%d", abi)},
		Dir:     workdir,
		Info:    "generating " + name + " parser sources",
		ErrHint: "grammar generation failed",
	})
	return steps, nil
}

// compileStep resolves a compiler and produces the compile invocation.
func (b *Builder) compileStep(spec *domain.TargetSpec, workdir string) (domain.Step, error) {
	name := spec.Name.String()
	compiler, err := b.toolchain.Compiler()
	if err != nil {
		return nil, zerr.With(zerr.With(domain.ErrToolMissing, "tool", "compiler"), "target", name)
	}

	args := []string{"-o", ArtifactName, "-I", "src", "-shared", "-Os", "-fPIC"}
	args = append(args, spec.SourceFiles()...)

	return &domain.ShellStep{
		Command: compiler,
		Args:    args,
		Dir:     workdir,
		Info:    "compiling " + name + " parser",
		ErrHint: "parser compilation failed",
	}, nil
}
