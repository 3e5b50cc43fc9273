package discord

import (
	"errors"

	"github.com/felosidev/avatar-bot/internal/command/core"

	"github.com/bwmarrin/discordgo"
)

// sessionStats reads statistics from the session's state cache.
type sessionStats struct {
	s *discordgo.Session
}

func (st sessionStats) Snapshot() (core.Stats, error) {
	if st.s == nil || st.s.State == nil {
		return core.Stats{}, errors.New("session is not ready")
	}

	state := st.s.State
	state.RLock()
	defer state.RUnlock()

	if state.User == nil {
		return core.Stats{}, errors.New("session is not ready")
	}

	// Negative while a heartbeat is waiting for its ack.
	latency := st.s.HeartbeatLatency()
	if latency < 0 {
		latency = 0
	}

	out := core.Stats{
		GuildMembers: make([]int, 0, len(state.Guilds)),
		Channels:     len(state.PrivateChannels),
		Latency:      latency,
		BotName:      state.User.Username,
		BotAvatarURL: state.User.AvatarURL(""),
	}
	for _, g := range state.Guilds {
		out.GuildMembers = append(out.GuildMembers, g.MemberCount)
		out.Channels += len(g.Channels)
	}
	if created, err := discordgo.SnowflakeTimestamp(state.User.ID); err == nil {
		out.BotCreatedAt = created
	}
	return out, nil
}
