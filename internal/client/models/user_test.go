package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRecord_EncodeUsesStoredKeys(t *testing.T) {
	r := UserRecord{Email: "a@b.com", Password: "p1", UserName: "alice", MobileNumber: "1234567890"}

	s, err := r.Encode()
	require.NoError(t, err)

	var raw map[string]string
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	assert.Equal(t, map[string]string{
		"email":        "a@b.com",
		"password":     "p1",
		"userName":     "alice",
		"mobileNumber": "1234567890",
	}, raw)
}

func TestDecodeUserRecord(t *testing.T) {
	r, err := DecodeUserRecord(`{"email":"a@b.com","password":"p1","userName":"alice","mobileNumber":"1234567890","extra":1}`)
	require.NoError(t, err)
	assert.Equal(t, UserRecord{Email: "a@b.com", Password: "p1", UserName: "alice", MobileNumber: "1234567890"}, r)

	_, err = DecodeUserRecord(`{not json`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode user record")
}

func TestUserRecord_ProfileDropsPassword(t *testing.T) {
	r := UserRecord{Email: "a@b.com", Password: "p1", UserName: "alice", MobileNumber: "1234567890"}
	assert.Equal(t, UserProfile{Email: "a@b.com", UserName: "alice", MobileNumber: "1234567890"}, r.Profile())
	assert.False(t, r.Profile().IsZero())
	assert.True(t, UserProfile{}.IsZero())
}

func TestCategory_Key(t *testing.T) {
	assert.Equal(t, "smartphones", Category{Slug: "smartphones", Name: "Smartphones"}.Key())
	assert.Equal(t, "laptops", Category{Name: "laptops"}.Key())
	assert.Equal(t, "Smartphones", Category{Slug: "smartphones", Name: "Smartphones"}.String())
	assert.Equal(t, "smartphones", Category{Slug: "smartphones"}.String())
}
