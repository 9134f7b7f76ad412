package errs

import (
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is also matches marks applied with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func IsPermanent(err error) bool {
	return cr.Is(err, ErrPermanent)
}

// Diagnostic renders err as a single line for persistence, truncated to maxLen runes.
func Diagnostic(err error, maxLen int) string {
	if err == nil {
		return ""
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if maxLen > 0 {
		runes := []rune(msg)
		if len(runes) > maxLen {
			msg = string(runes[:maxLen])
		}
	}
	return msg
}
