package domain

import "errors"

// Domain errors.
var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidContent     = errors.New("invalid content")
	ErrUnknownLocale      = errors.New("unknown locale")
	ErrMissingTranslation = errors.New("missing translation")
	ErrSiteURLMissing     = errors.New("site configuration missing")
)

// Code returns the stable code of a domain error, or "" when err does not wrap one.
// Adapters use the code to pick a user-facing message and a status.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrProjectNotFound):
		return "project_not_found"
	case errors.Is(err, ErrInvalidContent):
		return "invalid_content"
	case errors.Is(err, ErrUnknownLocale):
		return "unknown_locale"
	case errors.Is(err, ErrMissingTranslation):
		return "missing_translation"
	case errors.Is(err, ErrSiteURLMissing):
		return "site_url_missing"
	default:
		return ""
	}
}
