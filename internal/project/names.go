package project

import (
	"net/url"
	"strings"

	bwerrors "branchwire.dev/branchwire/internal/errors"
)

// EncodeName converts an item name into a directory-safe form.
// Path separators and other reserved characters are percent-encoded,
// and a leading dot is encoded so "." and ".." never reach the filesystem.
func EncodeName(name string) string {
	encoded := url.PathEscape(name)
	if strings.HasPrefix(encoded, ".") {
		encoded = "%2E" + encoded[1:]
	}
	return encoded
}

// DecodeName reverses EncodeName. Malformed escapes are reported as a
// NameDecodeError rather than falling back to the raw name.
func DecodeName(raw string) (string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", bwerrors.NewNameDecodeError(raw, err)
	}
	return decoded, nil
}

// validateTopLevelName checks names of items held directly by the registry
func validateTopLevelName(name string) error {
	if err := validateBranchName(name); err != nil {
		return err
	}
	if strings.Contains(name, "/") {
		return bwerrors.NewInvalidNameError(name, "must not contain '/'")
	}
	return nil
}

func validateBranchName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return bwerrors.NewInvalidNameError(name, "must not be blank")
	case strings.TrimSpace(name) != name:
		return bwerrors.NewInvalidNameError(name, "must not start or end with whitespace")
	case strings.Contains(name, ","):
		return bwerrors.NewInvalidNameError(name, "must not contain ','")
	}
	return nil
}
