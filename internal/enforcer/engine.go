// Package enforcer evaluates disconnection rules and applies them through
// the chat platform: forced removals inside a rule's window, advance
// warnings shortly before it.
package enforcer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ybtheflash/Parenting/internal/domain"
	"github.com/ybtheflash/Parenting/internal/rules"
)

// Warning leads, in minutes, checked on every sweep. The tiers are
// non-exclusive: near the window start their shifted ranges overlap and a
// user receives both notices in the same cycle.
const (
	longLead  = 15
	shortLead = 5
)

// Platform is the slice of the chat platform the engine needs: membership
// lookup, forced removal, and best-effort messaging.
type Platform interface {
	// ResolveMembership reports which channel the user currently occupies,
	// if any, across all monitored channels.
	ResolveMembership(ctx context.Context, userID int64) (channelID int64, present bool, err error)
	RemoveFromChannel(ctx context.Context, userID, channelID int64) error
	SendDirectMessage(ctx context.Context, userID int64, text string) error
	PostToChannel(ctx context.Context, channelID int64, text string) error
}

// Engine runs the two enforcement triggers: reactive checks on membership
// changes and a periodic sweep over every stored rule. Each evaluation is
// stateless given the store and the clock.
type Engine struct {
	store    *rules.Store
	platform Platform
	clock    *domain.Clock
	log      *zap.Logger
	interval time.Duration
}

func New(store *rules.Store, platform Platform, clock *domain.Clock, log *zap.Logger, interval time.Duration) *Engine {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Engine{
		store:    store,
		platform: platform,
		clock:    clock,
		log:      log,
		interval: interval,
	}
}

// Run drives the proactive sweep until ctx is canceled. Ticks run inline,
// so a slow sweep delays the next tick instead of overlapping it.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.log.Info("enforcement sweep stopping")
			return
		case <-ticker.C:
			e.Sweep(ctx)
		}
	}
}

// OnMembershipChanged is the reactive trigger, called when a user enters a
// channel. The channel-scoped and global rules are both checked every
// time; they are not mutually exclusive.
func (e *Engine) OnMembershipChanged(ctx context.Context, userID, channelID int64) {
	if r, ok := e.store.UserRule(userID); ok {
		now := e.clock.In(r.TZ)
		if channelID == r.ChannelID && r.Window.Contains(now) {
			e.remove(ctx, r.UserID, channelID,
				fmt.Sprintf("Disconnected %s (%d) from channel %d.", r.Alias, r.UserID, channelID))
		}
	}
	if r, ok := e.store.SuperRule(userID); ok {
		now := e.clock.In(r.TZ)
		if r.Window.Contains(now) {
			e.remove(ctx, r.UserID, channelID,
				fmt.Sprintf("Super disconnected %s (%d) from any channel.", r.Alias, r.UserID))
		}
	}
}

// Sweep evaluates every rule once. A failure on one rule is logged and the
// iteration moves on; no rule can abort the sweep for the others.
func (e *Engine) Sweep(ctx context.Context) {
	for _, r := range e.store.UserRules() {
		e.sweepUserRule(ctx, r)
	}
	for _, r := range e.store.SuperRules() {
		e.sweepSuperRule(ctx, r)
	}
}

func (e *Engine) sweepUserRule(ctx context.Context, r domain.UserRule) {
	now := e.clock.In(r.TZ)
	channelID, present, err := e.platform.ResolveMembership(ctx, r.UserID)
	if err != nil {
		e.log.Warn("membership lookup failed",
			zap.Int64("user", r.UserID), zap.Error(err))
		present = false
	}
	if present && channelID == r.ChannelID && r.Window.Contains(now) {
		e.remove(ctx, r.UserID, channelID,
			fmt.Sprintf("Disconnected %s (%d) from channel %d.", r.Alias, r.UserID, r.ChannelID))
		return
	}
	// Warnings reach users over direct messages, so channel occupancy is
	// not required for them.
	e.warn(ctx, r.UserID, r.Window, now)
}

func (e *Engine) sweepSuperRule(ctx context.Context, r domain.SuperRule) {
	now := e.clock.In(r.TZ)
	channelID, present, err := e.platform.ResolveMembership(ctx, r.UserID)
	if err != nil {
		e.log.Warn("membership lookup failed",
			zap.Int64("user", r.UserID), zap.Error(err))
		present = false
	}
	if present && r.Window.Contains(now) {
		e.remove(ctx, r.UserID, channelID,
			fmt.Sprintf("Super disconnected %s (%d) from any channel.", r.Alias, r.UserID))
		return
	}
	e.warn(ctx, r.UserID, r.Window, now)
}

func (e *Engine) warn(ctx context.Context, userID int64, w domain.Window, now time.Time) {
	for _, lead := range [...]int{longLead, shortLead} {
		if !w.Near(now, lead) {
			continue
		}
		text := fmt.Sprintf("You will be disconnected in %d minutes.", lead)
		if err := e.platform.SendDirectMessage(ctx, userID, text); err != nil {
			e.log.Warn("warning delivery failed",
				zap.Int64("user", userID), zap.Int("lead_minutes", lead), zap.Error(err))
		}
	}
}

func (e *Engine) remove(ctx context.Context, userID, channelID int64, auditLine string) {
	if err := e.platform.RemoveFromChannel(ctx, userID, channelID); err != nil {
		e.log.Warn("removal failed",
			zap.Int64("user", userID), zap.Int64("channel", channelID), zap.Error(err))
		return
	}
	e.log.Info("removed user from channel",
		zap.Int64("user", userID), zap.Int64("channel", channelID))
	e.audit(ctx, auditLine)
}

// audit posts to the configured log channel, if any. Best effort.
func (e *Engine) audit(ctx context.Context, text string) {
	logChannel := e.store.LogChannel()
	if logChannel == 0 {
		return
	}
	if err := e.platform.PostToChannel(ctx, logChannel, text); err != nil {
		e.log.Warn("audit post failed", zap.Int64("channel", logChannel), zap.Error(err))
	}
}
