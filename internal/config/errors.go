package config

import "errors"

// Error variables for config loading.
var (
	ErrFileNotFound   = errors.New("config file not found")
	ErrFileRead       = errors.New("cannot read config file")
	ErrInvalid        = errors.New("invalid config file")
	ErrPathEmpty      = errors.New("path cannot be empty")
	ErrLanguagesEmpty = errors.New("languages cannot be empty")
	ErrLanguageBlank  = errors.New("language name cannot be blank")
	ErrLogLevel       = errors.New("invalid log level")
)
