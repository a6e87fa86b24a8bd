package domain

import "errors"

var (
	ErrEmptyDream  = errors.New("dream text is empty")
	ErrInvalidDate = errors.New("invalid dream date")
	ErrUnknownLens = errors.New("unknown lens")
	ErrUpstreamLLM = errors.New("upstream LLM failure")
)
