package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ybtheflash/Parenting/internal/rules"
)

// Platform adapts the Bot API to the engine's collaborator contract.
// "Channels" are the monitored group chats from the store; the bot must be
// an administrator in each of them for removal to work.
type Platform struct {
	bot   *tgbotapi.BotAPI
	store *rules.Store
	log   *zap.Logger
}

func NewPlatform(bot *tgbotapi.BotAPI, store *rules.Store, log *zap.Logger) *Platform {
	return &Platform{bot: bot, store: store, log: log}
}

// ResolveMembership probes the monitored channels for the user and returns
// the first one they occupy. A probe failure on one channel does not stop
// the others; the last error is reported only when the user is found nowhere.
func (p *Platform) ResolveMembership(ctx context.Context, userID int64) (int64, bool, error) {
	var lastErr error
	for _, ch := range p.store.Channels() {
		member, err := p.bot.GetChatMember(tgbotapi.GetChatMemberConfig{
			ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: ch.ID, UserID: userID},
		})
		if err != nil {
			lastErr = fmt.Errorf("channel %d: %w", ch.ID, err)
			continue
		}
		if occupies(member) {
			return ch.ID, true, nil
		}
	}
	return 0, false, lastErr
}

func occupies(m tgbotapi.ChatMember) bool {
	switch m.Status {
	case "creator", "administrator", "member":
		return true
	case "restricted":
		return m.IsMember
	}
	return false
}

// RemoveFromChannel kicks the user: a ban followed by an immediate unban,
// so they can rejoin once their window has passed.
func (p *Platform) RemoveFromChannel(ctx context.Context, userID, channelID int64) error {
	ban := tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: channelID, UserID: userID},
	}
	if _, err := p.bot.Request(ban); err != nil {
		return fmt.Errorf("kick user %d from channel %d: %w", userID, channelID, err)
	}
	unban := tgbotapi.UnbanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: channelID, UserID: userID},
		OnlyIfBanned:     true,
	}
	if _, err := p.bot.Request(unban); err != nil {
		return fmt.Errorf("unban user %d in channel %d: %w", userID, channelID, err)
	}
	return nil
}

func (p *Platform) SendDirectMessage(ctx context.Context, userID int64, text string) error {
	if _, err := p.bot.Send(tgbotapi.NewMessage(userID, text)); err != nil {
		return fmt.Errorf("dm user %d: %w", userID, err)
	}
	return nil
}

func (p *Platform) PostToChannel(ctx context.Context, channelID int64, text string) error {
	if _, err := p.bot.Send(tgbotapi.NewMessage(channelID, text)); err != nil {
		return fmt.Errorf("post to channel %d: %w", channelID, err)
	}
	return nil
}
