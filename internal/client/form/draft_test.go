package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestStore_SetPreservesOtherFields(t *testing.T) {
	s := NewStore()

	_, err := s.Set(UserName, "alice")
	require.NoError(t, err)
	d, err := s.Set(Email, "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, Draft{UserName: "alice", Email: "a@b.com"}, d)
	assert.Equal(t, d, s.Snapshot())
}

func TestStore_SetUnknownField(t *testing.T) {
	s := NewStore()
	_, err := s.Set(Field("nickname"), "x")
	require.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, Draft{}, s.Snapshot())
}

func TestStore_ApplyPatch(t *testing.T) {
	s := NewStore()
	s.Apply(Patch{UserName: strp("alice"), Password: strp("p1")})
	d := s.Apply(Patch{Password: strp("p2"), MobileNumber: strp("1234567890")})

	assert.Equal(t, Draft{UserName: "alice", Password: "p2", MobileNumber: "1234567890"}, d)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := NewStore()
	s.Apply(Patch{UserName: strp("alice"), Email: strp("a@b.com")})

	s.Clear()
	once := s.Snapshot()
	s.Clear()
	twice := s.Snapshot()

	assert.Equal(t, Draft{}, once)
	assert.Equal(t, once, twice)
}

func TestDraft_GetWith(t *testing.T) {
	var d Draft
	for _, f := range Fields {
		d = d.With(f, string(f)+"-v")
	}
	for _, f := range Fields {
		assert.Equal(t, string(f)+"-v", d.Get(f))
	}
	assert.Equal(t, d, d.With(Field("bogus"), "x"))
	assert.Empty(t, d.Get(Field("bogus")))
}

func TestParseField(t *testing.T) {
	f, err := ParseField("confirmPassword")
	require.NoError(t, err)
	assert.Equal(t, ConfirmPassword, f)

	_, err = ParseField("ConfirmPassword")
	require.ErrorIs(t, err, ErrUnknownField)
}
