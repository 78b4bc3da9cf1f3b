package util

import "errors"

var (
	ErrResourceNotFound   = errors.New("resource not found")
	ErrContentNotFound    = errors.New("content not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSetting     = errors.New("invalid setting value")
	ErrUnsupportedUpload  = errors.New("unsupported upload file type")
)
