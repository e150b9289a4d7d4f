package model

import "errors"

var (
	ErrRateFetch           = errors.New("failed to fetch exchange rates")
	ErrMissingRate         = errors.New("exchange rate not available")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrConvertDisabled     = errors.New("conversion is disabled until rates are loaded")
	ErrAlreadyMounted      = errors.New("widget already mounted")
	ErrSessionNotFound     = errors.New("widget session not found")
)
