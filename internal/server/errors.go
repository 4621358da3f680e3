package server

import "errors"

var (
	// ErrUnknownTool means the request named a tool this server does not
	// serve.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidArguments means a required argument is missing or has
	// the wrong type. Raised before the evaluator runs.
	ErrInvalidArguments = errors.New("invalid arguments")
)
