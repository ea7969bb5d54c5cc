package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ybtheflash/Parenting/internal/domain"
	"github.com/ybtheflash/Parenting/internal/enforcer"
	"github.com/ybtheflash/Parenting/internal/rules"
)

// Router wires updates to the rule-management commands and feeds channel
// joins into the enforcement engine's reactive trigger.
type Router struct {
	bot       *tgbotapi.BotAPI
	log       *zap.Logger
	store     *rules.Store
	engine    *enforcer.Engine
	clock     *domain.Clock
	defaultTZ string
}

func NewRouter(bot *tgbotapi.BotAPI, log *zap.Logger, store *rules.Store, engine *enforcer.Engine, clock *domain.Clock, defaultTZ string) *Router {
	return &Router{
		bot:       bot,
		log:       log,
		store:     store,
		engine:    engine,
		clock:     clock,
		defaultTZ: defaultTZ,
	}
}

// HandleUpdate routes a single update.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	// chat_member updates fire when someone joins or moves between the
	// monitored groups; that is the reactive enforcement trigger.
	if cm := upd.ChatMember; cm != nil {
		if occupies(cm.NewChatMember) {
			r.engine.OnMembershipChanged(ctx, cm.NewChatMember.User.ID, cm.Chat.ID)
		}
		return
	}

	if upd.Message == nil {
		return
	}
	msg := upd.Message

	// Older group configurations deliver joins as service messages instead
	// of chat_member updates.
	if len(msg.NewChatMembers) > 0 {
		for _, u := range msg.NewChatMembers {
			r.engine.OnMembershipChanged(ctx, u.ID, msg.Chat.ID)
		}
		return
	}

	if !msg.IsCommand() || msg.From == nil {
		return
	}

	cmd := msg.Command()
	if !r.store.IsModerator(msg.From.ID) && cmd != "addmod" && cmd != "help" {
		r.reply(msg.Chat.ID, deniedText)
		return
	}

	switch cmd {
	case "setuser":
		r.handleSetUser(msg)
	case "removeuser":
		r.handleRemoveUser(msg)
	case "setchannels":
		r.handleSetChannels(msg)
	case "userlist":
		r.handleUserList(msg)
	case "addedchannels":
		r.handleAddedChannels(msg)
	case "setlogchannel":
		r.handleSetLogChannel(msg)
	case "superdc":
		r.handleSuperDC(msg)
	case "removesuperdc":
		r.handleRemoveSuperDC(msg)
	case "addmod":
		r.handleAddMod(msg)
	case "help":
		r.reply(msg.Chat.ID, helpText)
	default:
		// Unknown command — ignore silently
	}
}

func (r *Router) reply(chatID int64, text string) {
	if _, err := r.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		r.log.Warn("reply failed", zap.Int64("chat", chatID), zap.Error(err))
	}
}
