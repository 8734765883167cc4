package finnhub

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// newsDateLayout is the date format the company-news endpoint expects.
const newsDateLayout = "2006-01-02"

// Article is a single company news article.
type Article struct {
	Headline string `json:"headline"`
	URL      string `json:"url"`
}

// CompanyNews retrieves news articles for symbol between from and to,
// inclusive, in the order the API returns them. An empty result is not an
// error.
func (c *Client) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]Article, error) {
	query := url.Values{}
	query.Add("symbol", symbol)
	query.Add("from", from.UTC().Format(newsDateLayout))
	query.Add("to", to.UTC().Format(newsDateLayout))

	var articles []Article
	if err := c.get(ctx, "/api/v1/company-news", query, &articles); err != nil {
		return nil, fmt.Errorf("fetching news for %s: %w", symbol, err)
	}
	return articles, nil
}
