package finnhub

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// Quote is the real-time quote for a symbol. Prices are decimals to keep
// monetary formatting exact.
type Quote struct {
	// Current is the current price. Finnhub reports 0 for unknown symbols.
	Current decimal.Decimal `json:"c"`
	// PreviousClose is the previous close price.
	PreviousClose decimal.Decimal `json:"pc"`
}

// Quote retrieves the real-time quote for symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (Quote, error) {
	query := url.Values{}
	query.Add("symbol", symbol)

	var quote Quote
	if err := c.get(ctx, "/api/v1/quote", query, &quote); err != nil {
		return Quote{}, fmt.Errorf("fetching quote for %s: %w", symbol, err)
	}
	return quote, nil
}
