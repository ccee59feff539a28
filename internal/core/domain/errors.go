package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingField is returned when a target spec lacks a required field.
	ErrMissingField = zerr.New("install spec is missing a required field")

	// ErrTargetAlreadyExists is returned when registering a duplicate target name.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrUnknownTarget is returned when a request names a target the registry does not know.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrToolMissing is returned when a required external executable cannot be located.
	ErrToolMissing = zerr.New("required tool not found")

	// ErrStepFailed is returned when a pipeline step exits non-zero or an action raises.
	ErrStepFailed = zerr.New("pipeline step failed")

	// ErrNotInstalled is returned when uninstall is requested for a target
	// that is not tracked as installed.
	ErrNotInstalled = zerr.New("target is not installed")

	// ErrInstallAborted is returned when the user declines the reinstall prompt.
	ErrInstallAborted = zerr.New("install aborted by user")

	// ErrNoTargetsSpecified is returned when a batch request resolves to nothing.
	ErrNoTargetsSpecified = zerr.New("no targets specified")
)
