package task

import (
	"strconv"
	"strings"
)

const (
	fieldSep   = "|"
	fieldCount = 7
	noneToken  = "None"
)

// Encode serializes t as id|title|description|priority|status|category|created_at.
// Absent optional fields are written as None. Fields are not escaped: a value
// containing "|" or a line break produces a line Decode cannot read back.
// ValidateField rejects such values up front.
func (t *Task) Encode() string {
	fields := []string{
		strconv.FormatUint(uint64(t.ID), 10),
		t.Title,
		optionalField(t.Description),
		t.Priority.String(),
		t.Status.String(),
		optionalField(t.Category),
		t.CreatedAt,
	}
	return strings.Join(fields, fieldSep)
}

// Decode parses a line written by Encode.
func Decode(line string) (*Task, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != fieldCount {
		return nil, SerializationErrorf("expected %d fields, got %d", fieldCount, len(parts))
	}

	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return nil, ParseErrorf("invalid ID %q", parts[0])
	}
	if err := validateTitle(parts[1]); err != nil {
		return nil, err
	}
	priority, err := ParsePriority(parts[3])
	if err != nil {
		return nil, err
	}
	status, err := ParseStatus(parts[4])
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:          uint32(id),
		Title:       parts[1],
		Description: parseOptional(parts[2]),
		Priority:    priority,
		Status:      status,
		Category:    parseOptional(parts[5]),
		CreatedAt:   parts[6],
	}, nil
}

func optionalField(s *string) string {
	if s == nil {
		return noneToken
	}
	return *s
}

func parseOptional(s string) *string {
	if s == noneToken {
		return nil
	}
	return &s
}

// ValidateField reports whether value can be stored in a line-format field.
// The format has no escaping, so the separator and line breaks are refused.
func ValidateField(name, value string) error {
	if strings.ContainsAny(value, fieldSep+"\r\n") {
		return ValidationErrorf("%s cannot contain '|' or line breaks", name)
	}
	return nil
}
