package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"stockbot/internal/finnhub"
)

// newsWindow is the trailing period covered by a news lookup.
const newsWindow = 7 * 24 * time.Hour

const helpText = "**Stock Bot Commands:**\n" +
	"`!stockprice SYMBOL` - Get current stock price\n" +
	"`!news SYMBOL` - Get latest news headline\n" +
	"`!help` - Show this help menu"

// QuoteFetcher retrieves the real-time quote for a symbol.
//
//go:generate mockgen -package=bot_test -destination=mock_fetchers_test.go -source=dispatcher.go QuoteFetcher,NewsFetcher
type QuoteFetcher interface {
	Quote(ctx context.Context, symbol string) (finnhub.Quote, error)
}

// NewsFetcher retrieves company news for a symbol within a date range.
type NewsFetcher interface {
	CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]finnhub.Article, error)
}

// Message is one inbound chat message as the gateway delivers it.
type Message struct {
	Content     string
	AuthorIsBot bool
	ChannelID   string
}

// Dispatcher routes classified commands to the data clients and renders the
// reply text. It holds no per-message state; concurrent messages are fine.
type Dispatcher struct {
	quotes QuoteFetcher
	news   NewsFetcher
	log    zerolog.Logger
	now    func() time.Time
}

// DispatcherOption is a configuration option for the dispatcher.
type DispatcherOption func(*Dispatcher)

// WithClock overrides the dispatcher's time source.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) {
		d.now = now
	}
}

func NewDispatcher(quotes QuoteFetcher, news NewsFetcher, log zerolog.Logger, options ...DispatcherOption) *Dispatcher {
	var dispatcher = &Dispatcher{
		quotes: quotes,
		news:   news,
		log:    log,
		now:    time.Now,
	}
	for _, option := range options {
		option(dispatcher)
	}
	return dispatcher
}

// HandleMessage classifies msg and returns the reply to send back to its
// channel. ok is false only for unrecognized messages; every recognized
// command yields exactly one reply. Client failures never escape: they are
// logged and collapsed into the generic error reply, so one bad lookup cannot
// take the gateway session down.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg Message) (reply string, ok bool) {
	cmd := Classify(strings.TrimSpace(msg.Content), msg.AuthorIsBot)
	log := d.log.With().Str("channel", msg.ChannelID).Logger()
	switch cmd.Kind {
	case KindPriceLookup:
		return d.priceReply(ctx, log, cmd.Symbol), true
	case KindNewsLookup:
		return d.newsReply(ctx, log, cmd.Symbol), true
	case KindHelp:
		return helpText, true
	case KindUnrecognized:
		return "", false
	}
	return "", false
}

func (d *Dispatcher) priceReply(ctx context.Context, log zerolog.Logger, symbol string) string {
	quote, err := d.quotes.Quote(ctx, symbol)
	if err != nil {
		log.Error().Err(err).Str("command", "stockprice").Str("symbol", symbol).Msg("quote lookup failed")
		return fetchErrorReply(symbol)
	}
	// Finnhub reports a current price of exactly 0 for symbols it does not
	// know; that is a not-found, never a real price.
	if quote.Current.IsZero() {
		return fmt.Sprintf("Couldn't find stock with symbol %s", symbol)
	}
	return fmt.Sprintf("**%s** Current Price: **%s** (Prev Close: $%s)",
		symbol, quote.Current.StringFixed(2), quote.PreviousClose.StringFixed(2))
}

func (d *Dispatcher) newsReply(ctx context.Context, log zerolog.Logger, symbol string) string {
	to := d.now().UTC()
	from := to.Add(-newsWindow)
	articles, err := d.news.CompanyNews(ctx, symbol, from, to)
	if err != nil {
		log.Error().Err(err).Str("command", "news").Str("symbol", symbol).Msg("news lookup failed")
		return fetchErrorReply(symbol)
	}
	if len(articles) == 0 {
		return fmt.Sprintf("Couldn't find news for %s", symbol)
	}
	top := articles[0]
	return fmt.Sprintf("**%s News**\n**%s**\n%s", symbol, top.Headline, top.URL)
}

func fetchErrorReply(symbol string) string {
	return fmt.Sprintf("Error fetching data for `%s`", symbol)
}
