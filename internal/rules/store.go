// Package rules holds the in-memory rule state. Nothing here is persisted:
// rules live for the lifetime of the process, by design.
package rules

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ybtheflash/Parenting/internal/domain"
)

var (
	// ErrNotFound signals a removal that matched no stored rule. Non-fatal.
	ErrNotFound = errors.New("not found")
	// ErrChannelMismatch signals setchannels input whose id and alias lists
	// differ in length.
	ErrChannelMismatch = errors.New("the number of channel IDs and aliases must match")
)

// Store serializes writers behind a single lock; reads return copies, so
// the engine only ever observes fully-applied state.
type Store struct {
	mu         sync.RWMutex
	userRules  map[int64]domain.UserRule
	superRules map[int64]domain.SuperRule
	channels   []domain.Channel
	moderators map[int64]struct{}
	logChannel int64
}

func NewStore() *Store {
	return &Store{
		userRules:  make(map[int64]domain.UserRule),
		superRules: make(map[int64]domain.SuperRule),
		moderators: make(map[int64]struct{}),
	}
}

// SetUserRule validates the window text and stores a channel-scoped rule,
// replacing any previous rule for the user. On validation failure the
// prior rule is left untouched.
func (s *Store) SetUserRule(userID int64, alias, window string, channelID int64, tz string) (domain.UserRule, error) {
	w, err := domain.ParseWindow(window)
	if err != nil {
		return domain.UserRule{}, err
	}
	r := domain.UserRule{UserID: userID, Alias: alias, Window: w, ChannelID: channelID, TZ: tz}
	s.mu.Lock()
	s.userRules[userID] = r
	s.mu.Unlock()
	return r, nil
}

// RemoveUserRule deletes the user's rule only when the stored channel
// matches, so a delete aimed at the wrong channel cannot clobber a rule.
func (s *Store) RemoveUserRule(userID, channelID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.userRules[userID]
	if !ok || r.ChannelID != channelID {
		return fmt.Errorf("user %d in channel %d: %w", userID, channelID, ErrNotFound)
	}
	delete(s.userRules, userID)
	return nil
}

// SetSuperRule stores a channel-agnostic rule, independent of any
// channel-scoped rule the same user may hold.
func (s *Store) SetSuperRule(userID int64, alias, window, tz string) (domain.SuperRule, error) {
	w, err := domain.ParseWindow(window)
	if err != nil {
		return domain.SuperRule{}, err
	}
	r := domain.SuperRule{UserID: userID, Alias: alias, Window: w, TZ: tz}
	s.mu.Lock()
	s.superRules[userID] = r
	s.mu.Unlock()
	return r, nil
}

func (s *Store) RemoveSuperRule(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.superRules[userID]; !ok {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	delete(s.superRules, userID)
	return nil
}

// SetChannels replaces the whole monitored-channel list. The old list is
// discarded, never merged. A length mismatch leaves it untouched.
func (s *Store) SetChannels(ids []int64, aliases []string) ([]domain.Channel, error) {
	if len(ids) != len(aliases) {
		return nil, ErrChannelMismatch
	}
	channels := make([]domain.Channel, len(ids))
	for i, id := range ids {
		channels[i] = domain.Channel{ID: id, Alias: aliases[i]}
	}
	s.mu.Lock()
	s.channels = channels
	s.mu.Unlock()
	return append([]domain.Channel(nil), channels...), nil
}

// AddModerator is an idempotent set-insert.
func (s *Store) AddModerator(userID int64) {
	s.mu.Lock()
	s.moderators[userID] = struct{}{}
	s.mu.Unlock()
}

func (s *Store) IsModerator(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.moderators[userID]
	return ok
}

// SetLogChannel configures the audit-log destination; zero disables logging.
func (s *Store) SetLogChannel(channelID int64) {
	s.mu.Lock()
	s.logChannel = channelID
	s.mu.Unlock()
}

func (s *Store) LogChannel() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logChannel
}

func (s *Store) UserRule(userID int64) (domain.UserRule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.userRules[userID]
	return r, ok
}

func (s *Store) SuperRule(userID int64) (domain.SuperRule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.superRules[userID]
	return r, ok
}

// UserRules returns a point-in-time snapshot, ordered by user ID.
func (s *Store) UserRules() []domain.UserRule {
	s.mu.RLock()
	res := make([]domain.UserRule, 0, len(s.userRules))
	for _, r := range s.userRules {
		res = append(res, r)
	}
	s.mu.RUnlock()
	sort.Slice(res, func(i, j int) bool { return res[i].UserID < res[j].UserID })
	return res
}

// SuperRules returns a point-in-time snapshot, ordered by user ID.
func (s *Store) SuperRules() []domain.SuperRule {
	s.mu.RLock()
	res := make([]domain.SuperRule, 0, len(s.superRules))
	for _, r := range s.superRules {
		res = append(res, r)
	}
	s.mu.RUnlock()
	sort.Slice(res, func(i, j int) bool { return res[i].UserID < res[j].UserID })
	return res
}

// Channels returns a copy of the monitored-channel list in insertion order.
func (s *Store) Channels() []domain.Channel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Channel(nil), s.channels...)
}
