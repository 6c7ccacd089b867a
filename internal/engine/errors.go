package engine

import "errors"

var (
	// ErrUnknownProject indicates a project name did not resolve.
	ErrUnknownProject = errors.New("unknown project")

	// ErrUnknownCommand indicates a token that is neither a command verb
	// nor an existing project name.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrCannotDeleteDefault indicates an attempt to delete the protected
	// default project.
	ErrCannotDeleteDefault = errors.New("cannot delete the default project")

	// ErrInvalidArguments indicates a command was invoked with an
	// unsupported argument combination.
	ErrInvalidArguments = errors.New("invalid arguments")
)
