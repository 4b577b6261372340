// Package form holds the signup form draft, its store, and the validation
// rules applied to it while the user types and on submit.
package form

import (
	"errors"
	"fmt"
	"sync"
)

// Field names a signup form field. Values match the stored JSON keys.
type Field string

const (
	UserName        Field = "userName"
	Email           Field = "email"
	Password        Field = "password"
	ConfirmPassword Field = "confirmPassword"
	MobileNumber    Field = "mobileNumber"
)

// Fields lists the signup fields in display order.
var Fields = []Field{UserName, Email, Password, ConfirmPassword, MobileNumber}

var ErrUnknownField = errors.New("unknown form field")

// ParseField maps a field name to a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Draft is the uncommitted signup input.
type Draft struct {
	UserName        string
	Email           string
	Password        string
	ConfirmPassword string
	MobileNumber    string
}

func (d Draft) Get(f Field) string {
	switch f {
	case UserName:
		return d.UserName
	case Email:
		return d.Email
	case Password:
		return d.Password
	case ConfirmPassword:
		return d.ConfirmPassword
	case MobileNumber:
		return d.MobileNumber
	default:
		return ""
	}
}

// With returns a copy of d with f set to value. Unknown fields leave d unchanged.
func (d Draft) With(f Field, value string) Draft {
	switch f {
	case UserName:
		d.UserName = value
	case Email:
		d.Email = value
	case Password:
		d.Password = value
	case ConfirmPassword:
		d.ConfirmPassword = value
	case MobileNumber:
		d.MobileNumber = value
	}
	return d
}

// Patch is a partial update; nil fields are left alone.
type Patch struct {
	UserName        *string
	Email           *string
	Password        *string
	ConfirmPassword *string
	MobileNumber    *string
}

// Apply merges p into d field by field.
func (d Draft) Apply(p Patch) Draft {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.UserName, p.UserName)
	set(&d.Email, p.Email)
	set(&d.Password, p.Password)
	set(&d.ConfirmPassword, p.ConfirmPassword)
	set(&d.MobileNumber, p.MobileNumber)
	return d
}

// Store owns the signup draft.
type Store struct {
	mu    sync.RWMutex
	draft Draft
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Snapshot() Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// Set updates one field and returns the resulting draft.
func (s *Store) Set(f Field, value string) (Draft, error) {
	if _, err := ParseField(string(f)); err != nil {
		return s.Snapshot(), err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.draft.With(f, value)
	return s.draft, nil
}

// Apply shallow-merges p into the draft and returns the result.
func (s *Store) Apply(p Patch) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.draft.Apply(p)
	return s.draft
}

// Clear empties every field.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = Draft{}
}
