package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUserRule_ReplacesExisting(t *testing.T) {
	s := NewStore()

	_, err := s.SetUserRule(42, "kid", "22:00-23:00", 100, "+0000")
	require.NoError(t, err)

	r, err := s.SetUserRule(42, "kid", "20:00-21:00", 200, "+0530")
	require.NoError(t, err)
	assert.Equal(t, int64(200), r.ChannelID)

	rules := s.UserRules()
	require.Len(t, rules, 1)
	assert.Equal(t, "20:00-21:00", rules[0].Window.String())
}

func TestSetUserRule_MalformedWindowLeavesPriorState(t *testing.T) {
	s := NewStore()

	_, err := s.SetUserRule(42, "kid", "22:00-23:00", 100, "+0000")
	require.NoError(t, err)

	_, err = s.SetUserRule(42, "kid", "9:00-17:00", 200, "+0000")
	require.Error(t, err)

	r, ok := s.UserRule(42)
	require.True(t, ok)
	assert.Equal(t, "22:00-23:00", r.Window.String())
	assert.Equal(t, int64(100), r.ChannelID)
}

func TestRemoveUserRule_ChannelFilter(t *testing.T) {
	s := NewStore()
	_, err := s.SetUserRule(42, "kid", "22:00-23:00", 100, "+0000")
	require.NoError(t, err)

	err = s.RemoveUserRule(42, 999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, ok := s.UserRule(42)
	assert.True(t, ok, "mismatched delete must not mutate")

	err = s.RemoveUserRule(42, 100)
	require.NoError(t, err)
	_, ok = s.UserRule(42)
	assert.False(t, ok)

	err = s.RemoveUserRule(42, 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSuperRule_IndependentOfUserRule(t *testing.T) {
	s := NewStore()
	_, err := s.SetUserRule(42, "kid", "22:00-23:00", 100, "+0000")
	require.NoError(t, err)
	_, err = s.SetSuperRule(42, "kid", "01:00-06:00", "+0000")
	require.NoError(t, err)

	require.NoError(t, s.RemoveSuperRule(42))
	assert.ErrorIs(t, s.RemoveSuperRule(42), ErrNotFound)

	_, ok := s.UserRule(42)
	assert.True(t, ok, "removing the super rule must not touch the user rule")
}

func TestSetChannels_MismatchIsAtomic(t *testing.T) {
	s := NewStore()
	_, err := s.SetChannels([]int64{1, 2}, []string{"general", "games"})
	require.NoError(t, err)

	_, err = s.SetChannels([]int64{3}, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrChannelMismatch)

	chs := s.Channels()
	require.Len(t, chs, 2)
	assert.Equal(t, "general", chs[0].Alias)
}

func TestSetChannels_ReplacesWholeList(t *testing.T) {
	s := NewStore()
	_, err := s.SetChannels([]int64{1, 2}, []string{"general", "games"})
	require.NoError(t, err)

	_, err = s.SetChannels([]int64{3}, []string{"study"})
	require.NoError(t, err)

	chs := s.Channels()
	require.Len(t, chs, 1)
	assert.Equal(t, int64(3), chs[0].ID)
}

func TestAddModerator_Idempotent(t *testing.T) {
	s := NewStore()
	assert.False(t, s.IsModerator(7))
	s.AddModerator(7)
	s.AddModerator(7)
	assert.True(t, s.IsModerator(7))
}

func TestLogChannel(t *testing.T) {
	s := NewStore()
	assert.Zero(t, s.LogChannel(), "logging disabled by default")
	s.SetLogChannel(555)
	assert.Equal(t, int64(555), s.LogChannel())
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewStore()
	_, err := s.SetUserRule(42, "kid", "22:00-23:00", 100, "+0000")
	require.NoError(t, err)
	_, err = s.SetChannels([]int64{1}, []string{"general"})
	require.NoError(t, err)

	rules := s.UserRules()
	rules[0].ChannelID = 999
	chs := s.Channels()
	chs[0].Alias = "mutated"

	r, _ := s.UserRule(42)
	assert.Equal(t, int64(100), r.ChannelID)
	assert.Equal(t, "general", s.Channels()[0].Alias)
}
