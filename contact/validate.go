package contact

import "regexp"

// ValidationKind classifies a local validation failure.
type ValidationKind int

const (
	EmptyField ValidationKind = iota
	InvalidEmail
)

func (k ValidationKind) String() string {
	switch k {
	case EmptyField:
		return "empty_field"
	case InvalidEmail:
		return "invalid_email"
	default:
		return "unknown"
	}
}

// ValidationError is returned before any network call when the form is not
// fit to send. Its message is the user-facing notification text.
type ValidationError struct {
	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case EmptyField:
		return "Please fill in all fields before submitting."
	case InvalidEmail:
		return "Please enter a valid email address."
	default:
		return "Invalid form."
	}
}

// local@domain.tld, no whitespace, exactly one @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks that every field is non-empty after trimming and that the
// e-mail, as typed, looks like local@domain.tld. Surrounding whitespace in
// the e-mail is therefore rejected.
func Validate(f Fields) error {
	t := f.Trimmed()
	if t.Name == "" || t.Email == "" || t.Message == "" {
		return &ValidationError{Kind: EmptyField}
	}
	if !emailPattern.MatchString(f.Email) {
		return &ValidationError{Kind: InvalidEmail}
	}
	return nil
}
