package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ybtheflash/Parenting/internal/rules"
)

// /setuser <userid> <alias> <HH:MM-HH:MM> <channelid> [timezone]
func (r *Router) handleSetUser(msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 4 {
		r.reply(msg.Chat.ID, "Usage: /setuser userid alias HH:MM-HH:MM channelid [timezone]")
		return
	}
	userID, err := parseID(args[0])
	if err != nil {
		r.reply(msg.Chat.ID, "Invalid user ID.")
		return
	}
	channelID, err := parseID(args[3])
	if err != nil {
		r.reply(msg.Chat.ID, "Invalid channel ID.")
		return
	}
	tz := r.defaultTZ
	if len(args) > 4 {
		tz = args[4]
	}

	rule, err := r.store.SetUserRule(userID, args[1], args[2], channelID, tz)
	if err != nil {
		r.reply(msg.Chat.ID, "Invalid time range format. Use HH:MM-HH:MM.")
		return
	}
	r.reply(msg.Chat.ID, fmt.Sprintf(
		"User %s set with not allowed time %s in channel %d with timezone %s. Current user time: %s",
		rule.Alias, rule.Window, rule.ChannelID, rule.TZ, r.clock.In(rule.TZ).Format("15:04"),
	))
}

// /removeuser <userid> <channelid>
func (r *Router) handleRemoveUser(msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 2 {
		r.reply(msg.Chat.ID, "Usage: /removeuser userid channelid")
		return
	}
	userID, err1 := parseID(args[0])
	channelID, err2 := parseID(args[1])
	if err1 != nil || err2 != nil {
		r.reply(msg.Chat.ID, "Invalid user or channel ID.")
		return
	}

	if err := r.store.RemoveUserRule(userID, channelID); err != nil {
		r.reply(msg.Chat.ID, fmt.Sprintf("User %d not found in channel %d.", userID, channelID))
		return
	}
	r.reply(msg.Chat.ID, fmt.Sprintf("User %d removed from channel %d.", userID, channelID))
}

// /setchannels <id1,id2,...> <alias1,alias2,...>
func (r *Router) handleSetChannels(msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 2 {
		r.reply(msg.Chat.ID, "Usage: /setchannels channelids aliases")
		return
	}
	ids, err := parseIDList(args[0])
	if err != nil {
		r.reply(msg.Chat.ID, "Invalid channel ID list.")
		return
	}
	aliases := splitTrimmed(args[1])

	channels, err := r.store.SetChannels(ids, aliases)
	if err != nil {
		if errors.Is(err, rules.ErrChannelMismatch) {
			r.reply(msg.Chat.ID, "The number of channel IDs and aliases must match.")
			return
		}
		r.reply(msg.Chat.ID, "Could not set channels: "+err.Error())
		return
	}
	parts := make([]string, len(channels))
	for i, c := range channels {
		parts[i] = fmt.Sprintf("%s (%d)", c.Alias, c.ID)
	}
	r.reply(msg.Chat.ID, "Target channels set to: "+strings.Join(parts, ", "))
}

// /userlist
func (r *Router) handleUserList(msg *tgbotapi.Message) {
	r.reply(msg.Chat.ID, formatUserList(r.store.UserRules(), r.store.SuperRules()))
}

// /addedchannels
func (r *Router) handleAddedChannels(msg *tgbotapi.Message) {
	r.reply(msg.Chat.ID, formatChannelList(r.store.Channels()))
}

// /setlogchannel <channelid>
func (r *Router) handleSetLogChannel(msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 1 {
		r.reply(msg.Chat.ID, "Usage: /setlogchannel channelid")
		return
	}
	channelID, err := parseID(args[0])
	if err != nil {
		r.reply(msg.Chat.ID, "Invalid channel ID.")
		return
	}
	r.store.SetLogChannel(channelID)
	r.reply(msg.Chat.ID, fmt.Sprintf("Log channel set to: %d", channelID))
}

// /superdc <userid> <alias> <HH:MM-HH:MM> [timezone]
func (r *Router) handleSuperDC(msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 3 {
		r.reply(msg.Chat.ID, "Usage: /superdc userid alias HH:MM-HH:MM [timezone]")
		return
	}
	userID, err := parseID(args[0])
	if err != nil {
		r.reply(msg.Chat.ID, "Invalid user ID.")
		return
	}
	tz := r.defaultTZ
	if len(args) > 3 {
		tz = args[3]
	}

	rule, err := r.store.SetSuperRule(userID, args[1], args[2], tz)
	if err != nil {
		r.reply(msg.Chat.ID, "Invalid time range format. Use HH:MM-HH:MM.")
		return
	}
	r.reply(msg.Chat.ID, fmt.Sprintf(
		"User %s set to be disconnected during %s with timezone %s. Current user time: %s",
		rule.Alias, rule.Window, rule.TZ, r.clock.In(rule.TZ).Format("15:04"),
	))
}

// /removesuperdc <userid>
func (r *Router) handleRemoveSuperDC(msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 1 {
		r.reply(msg.Chat.ID, "Usage: /removesuperdc userid")
		return
	}
	userID, err := parseID(args[0])
	if err != nil {
		r.reply(msg.Chat.ID, "Invalid user ID.")
		return
	}

	if err := r.store.RemoveSuperRule(userID); err != nil {
		r.reply(msg.Chat.ID, fmt.Sprintf("User %d not found in super disconnection settings.", userID))
		return
	}
	r.reply(msg.Chat.ID, fmt.Sprintf("User %d removed from super disconnection settings.", userID))
}

// /addmod <userid>
func (r *Router) handleAddMod(msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 1 {
		r.reply(msg.Chat.ID, "Usage: /addmod userid")
		return
	}
	userID, err := parseID(args[0])
	if err != nil {
		r.reply(msg.Chat.ID, "Invalid user ID.")
		return
	}
	r.store.AddModerator(userID)
	r.reply(msg.Chat.ID, fmt.Sprintf("User %d added as a bot moderator.", userID))
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func parseIDList(s string) ([]int64, error) {
	parts := splitTrimmed(s)
	ids := make([]int64, len(parts))
	for i, p := range parts {
		id, err := parseID(p)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
