// Package models defines the client-side data models: the persisted user
// record, the session's user profile, and catalog items.
package models

import (
	"encoding/json"
	"fmt"
)

// UserRecord is the single persisted entity, written at signup.
// JSON keys match the format stored by earlier versions of the app.
type UserRecord struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	UserName     string `json:"userName"`
	MobileNumber string `json:"mobileNumber"`
}

// UserProfile is what the session knows about the user. It never carries
// the password.
type UserProfile struct {
	Email        string `json:"email"`
	UserName     string `json:"userName"`
	MobileNumber string `json:"mobileNumber"`
}

// IsZero reports whether no field is set.
func (p UserProfile) IsZero() bool {
	return p == UserProfile{}
}

// Profile drops the password.
func (r UserRecord) Profile() UserProfile {
	return UserProfile{Email: r.Email, UserName: r.UserName, MobileNumber: r.MobileNumber}
}

// Encode serializes the record for the persistence adapter.
func (r UserRecord) Encode() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode user record: %w", err)
	}
	return string(b), nil
}

// DecodeUserRecord parses a stored record. Unknown keys are ignored,
// missing keys stay empty.
func DecodeUserRecord(s string) (UserRecord, error) {
	var r UserRecord
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return UserRecord{}, fmt.Errorf("decode user record: %w", err)
	}
	return r, nil
}
