// Package discord adapts a Discord gateway session to the bot's dispatcher.
// It is deliberately logic-free: all command branching lives in internal/bot.
package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"stockbot/internal/bot"
)

// onlineMessage is broadcast to each guild's announce channel once the
// session is ready.
const onlineMessage = "Stock Bot is online and ready to go!"

// Gateway wraps a Discord session and feeds inbound messages through the
// dispatcher.
type Gateway struct {
	session         *discordgo.Session
	dispatcher      *bot.Dispatcher
	log             zerolog.Logger
	announceChannel string
	timeout         time.Duration
}

// New builds a Discord gateway for the given bot token. timeout bounds the
// handling of each inbound command.
func New(token string, dispatcher *bot.Dispatcher, log zerolog.Logger, announceChannel string, timeout time.Duration) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	g := &Gateway{
		session:         session,
		dispatcher:      dispatcher,
		log:             log,
		announceChannel: announceChannel,
		timeout:         timeout,
	}

	session.Identify.Intents = discordgo.IntentGuilds | discordgo.IntentGuildMessages | discordgo.IntentMessageContent
	session.AddHandler(g.onReady)
	session.AddHandler(g.onMessageCreate)

	// Route the library's internal logging through our logger.
	discordgo.Logger = func(msgL, caller int, format string, a ...interface{}) {
		event := log.Debug()
		switch msgL {
		case discordgo.LogError:
			event = log.Error()
		case discordgo.LogWarning:
			event = log.Warn()
		case discordgo.LogInformational:
			event = log.Info()
		}
		event.Msg(fmt.Sprintf(format, a...))
	}

	return g, nil
}

// Open connects to the Discord gateway and starts receiving events.
func (g *Gateway) Open() error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("opening session: %w", err)
	}
	return nil
}

// Close releases the gateway connection.
func (g *Gateway) Close() error {
	return g.session.Close()
}

func (g *Gateway) onReady(s *discordgo.Session, r *discordgo.Ready) {
	g.log.Info().Str("user", s.State.User.Username).Int("guilds", len(r.Guilds)).Msg("gateway ready")

	for _, guild := range r.Guilds {
		channels, err := s.GuildChannels(guild.ID)
		if err != nil {
			g.log.Warn().Err(err).Str("guild", guild.ID).Msg("listing channels failed")
			continue
		}
		for _, channel := range channels {
			if channel.Type != discordgo.ChannelTypeGuildText || channel.Name != g.announceChannel {
				continue
			}
			if _, err := s.ChannelMessageSend(channel.ID, onlineMessage); err != nil {
				g.log.Warn().Err(err).Str("channel", channel.ID).Msg("online announcement failed")
			}
			break
		}
	}
}

// onMessageCreate runs once per inbound message, on its own goroutine. The
// dispatcher owns all branching; the reply send is fire-and-forget.
func (g *Gateway) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
	defer cancel()

	reply, ok := g.dispatcher.HandleMessage(ctx, bot.Message{
		Content:     m.Content,
		AuthorIsBot: m.Author.Bot,
		ChannelID:   m.ChannelID,
	})
	if !ok {
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		g.log.Error().Err(err).Str("channel", m.ChannelID).Msg("sending reply failed")
	}
}
