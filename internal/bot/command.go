package bot

import "strings"

// CommandKind identifies a recognized chat command.
type CommandKind string

const (
	KindPriceLookup  CommandKind = "stockprice"
	KindNewsLookup   CommandKind = "news"
	KindHelp         CommandKind = "help"
	KindUnrecognized CommandKind = "unrecognized"
)

const (
	pricePrefix = "!stockprice "
	newsPrefix  = "!news "
	helpPrefix  = "!help"
)

// Command is one classified inbound message. Symbol is only set for the two
// lookup kinds: the raw user text after the prefix, uppercased, nothing else.
// Symbols are opaque here; whether one is valid is the provider's call.
type Command struct {
	Kind   CommandKind
	Symbol string
}

// Classify inspects a trimmed message body and returns the command it
// represents. Messages authored by bots are never acted on, regardless of
// content. Prefix matching is case-sensitive and exact.
func Classify(content string, authorIsBot bool) Command {
	if authorIsBot {
		return Command{Kind: KindUnrecognized}
	}
	switch {
	case strings.HasPrefix(content, pricePrefix):
		return Command{Kind: KindPriceLookup, Symbol: strings.ToUpper(strings.TrimPrefix(content, pricePrefix))}
	case strings.HasPrefix(content, newsPrefix):
		return Command{Kind: KindNewsLookup, Symbol: strings.ToUpper(strings.TrimPrefix(content, newsPrefix))}
	case strings.HasPrefix(content, helpPrefix):
		return Command{Kind: KindHelp}
	}
	return Command{Kind: KindUnrecognized}
}
