package tui

import "errors"

// ErrMissingExtractionService is returned when the extraction service is not provided.
var ErrMissingExtractionService = errors.New("tui: extraction service is required")

// ErrMissingSubmissionService is returned when the submission service is not provided.
var ErrMissingSubmissionService = errors.New("tui: submission service is required")

// ErrMissingSession is returned when the session store is not provided.
var ErrMissingSession = errors.New("tui: session store is required")
