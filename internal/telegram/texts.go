package telegram

import (
	"fmt"
	"strings"

	"github.com/ybtheflash/Parenting/internal/domain"
)

const (
	deniedText = "You do not have permission to use this command."

	helpText = "Bot Commands:\n" +
		"/setuser userid alias notallowedtime channelid [timezone] - Set user disconnection settings.\n" +
		"/removeuser userid channelid - Remove user from disconnection settings.\n" +
		"/setchannels channelids aliases - Set channels to monitor with aliases.\n" +
		"/userlist - List all users with settings.\n" +
		"/addedchannels - List all monitored channels.\n" +
		"/setlogchannel channelid - Set the logging channel.\n" +
		"/superdc userid alias timerange [timezone] - Disconnect user from any channel during a time range.\n" +
		"/removesuperdc userid - Remove user from super disconnection settings.\n" +
		"/addmod userid - Add a user as a bot moderator.\n" +
		"/help - Display this help message."
)

func formatUserList(userRules []domain.UserRule, superRules []domain.SuperRule) string {
	lines := make([]string, 0, len(userRules)+len(superRules))
	for _, r := range userRules {
		lines = append(lines, fmt.Sprintf("%s (%d): %s in channel %d (Timezone: %s)",
			r.Alias, r.UserID, r.Window, r.ChannelID, r.TZ))
	}
	for _, r := range superRules {
		lines = append(lines, fmt.Sprintf("%s (%d): Super DC during %s (Timezone: %s)",
			r.Alias, r.UserID, r.Window, r.TZ))
	}
	if len(lines) == 0 {
		return "User List:\nNo users set."
	}
	return "User List:\n" + strings.Join(lines, "\n")
}

func formatChannelList(channels []domain.Channel) string {
	if len(channels) == 0 {
		return "Monitored Channels:\nNo channels set."
	}
	lines := make([]string, len(channels))
	for i, c := range channels {
		lines[i] = fmt.Sprintf("%s (%d)", c.Alias, c.ID)
	}
	return "Monitored Channels:\n" + strings.Join(lines, "\n")
}
