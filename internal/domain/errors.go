package domain

import (
	"errors"
	"fmt"
)

// Input-shape errors. Specific kinds wrap ErrInvalidInput so callers can
// match the whole family with errors.Is.
var (
	// ErrInvalidInput is returned when a payload is missing required fields
	// or is structurally malformed.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidEmail is returned when an email address lacks an "@".
	ErrInvalidEmail = fmt.Errorf("%w: invalid email", ErrInvalidInput)

	// ErrInvalidID is returned when an entity ID is missing or not a
	// positive integer.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrInvalidInput)

	// ErrInvalidContent is returned when post content is blank after trimming.
	ErrInvalidContent = fmt.Errorf("%w: blank content", ErrInvalidInput)

	// ErrInvalidCategory is returned when a post category is blank after trimming.
	ErrInvalidCategory = fmt.Errorf("%w: blank category", ErrInvalidInput)

	// ErrInvalidDescription is returned when a photo description is blank
	// after trimming.
	ErrInvalidDescription = fmt.Errorf("%w: blank description", ErrInvalidInput)

	// ErrInvalidDate is returned when a date field is missing or cannot be
	// normalized to a date value.
	ErrInvalidDate = fmt.Errorf("%w: invalid date", ErrInvalidInput)

	// ErrInvalidDateFormat is returned by gallery range queries when a bound
	// fails to parse. Kept distinct from ErrInvalidDate because the gallery
	// reports the condition under its own kind.
	ErrInvalidDateFormat = fmt.Errorf("%w: invalid date format", ErrInvalidInput)

	// ErrInvalidCommentData is returned when a comment payload is missing
	// any of id, content, author id, or creation date.
	ErrInvalidCommentData = fmt.Errorf("%w: invalid comment data", ErrInvalidInput)

	// ErrInvalidTarget is returned when comment targeting parameters are
	// missing or the target id is not positive.
	ErrInvalidTarget = fmt.Errorf("%w: invalid comment target", ErrInvalidInput)

	// ErrUnsupportedType is returned when a photo's MIME type is not the
	// single supported one.
	ErrUnsupportedType = errors.New("unsupported image type")
)
