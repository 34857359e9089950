package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsername(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"plain", "alice", "alice", nil},
		{"trimmed", "  bob \t", "bob", nil},
		{"empty", "", "", ErrUsernameEmpty},
		{"blank", "   ", "", ErrUsernameEmpty},
		{"max runes", strings.Repeat("я", MaxUsernameLen), strings.Repeat("я", MaxUsernameLen), nil},
		{"too long", strings.Repeat("a", MaxUsernameLen+1), "", ErrUsernameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewUsername(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRoomName(t *testing.T) {
	got, err := NewRoomName("  lobby ")
	require.NoError(t, err)
	assert.Equal(t, "lobby", got)

	_, err = NewRoomName(" ")
	assert.ErrorIs(t, err, ErrRoomNameEmpty)

	_, err = NewRoomName(strings.Repeat("x", MaxRoomNameLen+1))
	assert.ErrorIs(t, err, ErrRoomNameTooLong)
}

func TestParseKind(t *testing.T) {
	for raw, want := range map[string]Kind{
		"":         KindText,
		"text":     KindText,
		"IMAGE":    KindImage,
		"emoticon": KindEmoticon,
		"emoji":    KindEmoticon,
	} {
		got, err := ParseKind(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseKind("video")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestValidateContent(t *testing.T) {
	assert.NoError(t, ValidateContent("hi", KindText))
	assert.NoError(t, ValidateContent("data:image/png;base64,AAAA", KindImage))
	assert.NoError(t, ValidateContent("https://example.com/smile.gif", KindEmoticon))

	assert.ErrorIs(t, ValidateContent("  ", KindText), ErrEmptyContent)
	assert.ErrorIs(t, ValidateContent("https://example.com/a.png", KindImage), ErrInvalidImage)
	assert.ErrorIs(t, ValidateContent(strings.Repeat("a", MaxContentLen+1), KindText), ErrContentTooLarge)
}

func TestRoomCloneDoesNotShareUsers(t *testing.T) {
	r := Room{ID: "r1", Users: []string{"alice"}}
	c := r.Clone()
	c.Users[0] = "mallory"
	c.Users = append(c.Users, "bob")

	assert.Equal(t, []string{"alice"}, r.Users)
	assert.True(t, r.HasUser("alice"))
	assert.False(t, r.HasUser("bob"))
}
