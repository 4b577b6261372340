package form

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinMobileNumberLength is the shortest accepted mobile number, in characters.
const MinMobileNumberLength = 10

// Whitespace here follows the browser definition (ASCII whitespace plus
// vertical tab, Unicode space separators and BOM), not just RE2's \s.
const ws = `\s\x0B\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var emailRe = regexp.MustCompile(`^[^` + ws + `@]+@[^` + ws + `@]+\.[^` + ws + `@]+$`)

// Messages shown for per-field validation.
const (
	MsgUserNameRequired        = "User name is required."
	MsgEmailRequired           = "Email is required."
	MsgEmailInvalid            = "Invalid email format."
	MsgPasswordRequired        = "Password is required."
	MsgConfirmPasswordRequired = "Confirm password is required."
	MsgPasswordsDoNotMatch     = "Passwords do not match."
	MsgMobileNumberRequired    = "Mobile number is required."
	MsgMobileNumberTooShort    = "Mobile number must be at least 10 digits."
)

// FieldErrors maps a field to its message; "" means no error.
type FieldErrors map[Field]string

// Get returns the message for f, "" when absent.
func (e FieldErrors) Get(f Field) string {
	return e[f]
}

// HasErrors reports whether any message is non-empty.
func (e FieldErrors) HasErrors() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// EmptyErrors returns a FieldErrors with every signup field cleared.
func EmptyErrors() FieldErrors {
	out := make(FieldErrors, len(Fields))
	for _, f := range Fields {
		out[f] = ""
	}
	return out
}

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidateField checks a single field of d, as done on every keystroke.
func ValidateField(f Field, d Draft) string {
	switch f {
	case UserName:
		if d.UserName == "" {
			return MsgUserNameRequired
		}
	case Email:
		if d.Email == "" {
			return MsgEmailRequired
		}
		if !ValidEmail(d.Email) {
			return MsgEmailInvalid
		}
	case Password:
		if d.Password == "" {
			return MsgPasswordRequired
		}
	case ConfirmPassword:
		if d.ConfirmPassword == "" {
			return MsgConfirmPasswordRequired
		}
		if d.ConfirmPassword != d.Password {
			return MsgPasswordsDoNotMatch
		}
	case MobileNumber:
		if d.MobileNumber == "" {
			return MsgMobileNumberRequired
		}
		if utf8.RuneCountInString(d.MobileNumber) < MinMobileNumberLength {
			return MsgMobileNumberTooShort
		}
	}
	return ""
}

// ValidateForm runs the submit-time check. It starts from prior, marks every
// empty field as required and re-checks that the passwords match. Messages
// already in prior for non-empty fields are kept, but only emptiness and the
// password match decide validity.
func ValidateForm(d Draft, prior FieldErrors) (FieldErrors, bool) {
	errs := prior.Clone()
	valid := true

	for _, f := range Fields {
		if d.Get(f) == "" {
			errs[f] = RequiredMessage(f)
			valid = false
		}
	}

	if d.Password != d.ConfirmPassword {
		errs[ConfirmPassword] = MsgPasswordsDoNotMatch
		valid = false
	}

	return errs, valid
}

// RequiredMessage builds "<field> is required." with the field name humanized.
func RequiredMessage(f Field) string {
	return Humanize(string(f)) + " is required."
}

// Humanize inserts a space before each capital letter and lower-cases
// the result: "confirmPassword" becomes "confirm password".
func Humanize(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// Login messages.
const (
	MsgLoginEmailRequired    = "Email is required."
	MsgLoginPasswordRequired = "Password is required."
)

// ValidateLogin is the presence check done before any storage access.
func ValidateLogin(email, password string) (FieldErrors, bool) {
	errs := FieldErrors{Email: "", Password: ""}
	if email == "" {
		errs[Email] = MsgLoginEmailRequired
	}
	if password == "" {
		errs[Password] = MsgLoginPasswordRequired
	}
	return errs, !errs.HasErrors()
}
