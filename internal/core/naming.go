package core

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ValidatePageName rejects names that cannot be a direct child folder of the
// site root. Any existing folder that passes is a page, whatever characters
// its name uses.
func ValidatePageName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidPageName)
	}
	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q cannot start with a dot", ErrInvalidPageName, name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q cannot contain path separators or NUL", ErrInvalidPageName, name)
	}
	return nil
}

// ValidateNewPageName is stricter: names created by new-page must also be a
// single URL path segment that needs no escaping.
func ValidateNewPageName(name string) error {
	if err := ValidatePageName(name); err != nil {
		return err
	}
	if strings.ContainsAny(name, "?#%*:\"'<>") {
		return fmt.Errorf("%w: %q contains reserved characters", ErrInvalidPageName, name)
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return fmt.Errorf("%w: %q contains whitespace or control characters", ErrInvalidPageName, name)
		}
	}
	return nil
}

func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
