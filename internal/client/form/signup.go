package form

import "sync"

// Signup is the signup screen's state: the shared draft store plus the
// inline errors shown next to each field.
type Signup struct {
	store *Store

	mu   sync.Mutex
	errs FieldErrors
}

func NewSignup(store *Store) *Signup {
	return &Signup{store: store, errs: EmptyErrors()}
}

// Mount resets the draft and all errors, as when the screen is opened.
func (s *Signup) Mount() {
	s.store.Clear()
	s.mu.Lock()
	s.errs = EmptyErrors()
	s.mu.Unlock()
}

// Change stores value into f and re-validates that field only.
// It returns the field's new error message.
func (s *Signup) Change(f Field, value string) (string, error) {
	d, err := s.store.Set(f, value)
	if err != nil {
		return "", err
	}
	msg := ValidateField(f, d)

	s.mu.Lock()
	s.errs[f] = msg
	s.mu.Unlock()
	return msg, nil
}

// Validate runs the submit-time check and keeps the resulting errors.
func (s *Signup) Validate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	errs, ok := ValidateForm(s.store.Snapshot(), s.errs)
	s.errs = errs
	return ok
}

func (s *Signup) Draft() Draft {
	return s.store.Snapshot()
}

func (s *Signup) Errors() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs.Clone()
}

// SetErrors replaces the shown errors, e.g. with the result of a submit.
func (s *Signup) SetErrors(errs FieldErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = errs.Clone()
}
