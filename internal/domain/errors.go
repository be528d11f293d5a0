package domain

import "errors"

var (
	ErrInvalidAPIKey         = errors.New("the provided API key is not valid")
	ErrUpstream              = errors.New("generation service request failed")
	ErrInvalidModelOutput    = errors.New("model output is not valid JSON")
	ErrUnsupportedAttachment = errors.New("unsupported attachment type")
)
