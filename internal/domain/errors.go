package domain

import "errors"

var (
	ErrStrategyUnavailable    = errors.New("network unavailable")
	ErrMalformedResponse      = errors.New("malformed collaborator response")
	ErrRecordBelowMinimal     = errors.New("record below minimal")
	ErrAllStrategiesExhausted = errors.New("all extraction strategies exhausted")
	ErrUnsupportedContentType = errors.New("unsupported image content type")
	ErrEmptyImage             = errors.New("empty image")
	ErrFileTooLarge           = errors.New("image exceeds maximum size")
)
