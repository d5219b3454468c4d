package main

import "errors"

// Sentinel errors for command operations
var (
	ErrInputFileNotExist   = errors.New("input file does not exist")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrOutputFileCreation  = errors.New("failed to create output file")
	ErrSpanOutOfRange      = errors.New("span is out of range")
	ErrInvalidPattern      = errors.New("invalid match pattern")
	ErrNoSuchGroup         = errors.New("capture group does not exist")
)
