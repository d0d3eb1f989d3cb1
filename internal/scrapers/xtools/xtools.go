// Package xtools scrapes recent pageview counts of english wikipedia articles
// from the xtools article info pages.
package xtools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mathviews/internal/components/assert"
	"mathviews/internal/components/telemetry"
	"mathviews/pkg/htmlutil"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	report_client_get_hits_on_name = "client.get-hits-on-name"
)

const BaseUrl = "https://xtools.wmflabs.org/articleinfo/en.wikipedia.org/"

// the pageviews link on an article info page points to the last 60 days of pageviews
const hitLinkMarker = "latest-60"

var ErrNoHitLink = errors.New("no pageviews link")

type Fetcher interface {
	Get(ctx context.Context, link string) ([]byte, bool)
}

type Client struct {
	fetcher Fetcher
	baseUrl string
	tel     telemetry.API
}

func NewClient(fetcher Fetcher, tel telemetry.API) Client {
	return NewClientWithUrl(fetcher, BaseUrl, tel)
}

// NewClientWithUrl is NewClient with the article name appended to `baseUrl`
// instead of BaseUrl.
func NewClientWithUrl(fetcher Fetcher, baseUrl string, tel telemetry.API) Client {
	assert.NotNil("fetcher", fetcher)
	assert.NotNil("telemetry", tel)
	assert.NotEmptyStr("base url", baseUrl)

	return Client{
		fetcher: fetcher,
		baseUrl: baseUrl,
		tel:     telemetry.NewScopedAPI("xtools", tel),
	}
}

// ArticleUrl returns the article info page for `name`, `name` is escaped as a
// single path segment.
func (c Client) ArticleUrl(name string) string {
	return c.baseUrl + url.PathEscape(name)
}

// ParseHitText parses the visible text of a pageviews link, ex. "12,345".
func ParseHitText(text string) (int, error) {
	text = strings.ReplaceAll(text, ",", "")
	text = strings.TrimSpace(text)
	return strconv.Atoi(text)
}

// FindHitText returns the text of the first link in `markup` pointing to the
// last 60 days of pageviews.
func FindHitText(ctx context.Context, markup []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	for _, a := range htmlutil.GetAnchors(ctx, doc.Find("a")) {
		if strings.Contains(a.Href, hitLinkMarker) {
			return a.Name, nil
		}
	}
	return "", ErrNoHitLink
}

// ParseHits extracts the pageview count from an article info page.
func ParseHits(ctx context.Context, markup []byte) (int, error) {
	text, err := FindHitText(ctx, markup)
	if err != nil {
		return 0, err
	}
	hits, err := ParseHitText(text)
	if err != nil {
		return 0, fmt.Errorf("could not parse %q as an int: %w", text, err)
	}
	return hits, nil
}

// GetHitsOnName returns the number of pageviews the wikipedia article of
// `name` got in the last 60 days. Any failure is reported and results in
// false being returned.
func (c Client) GetHitsOnName(ctx context.Context, name string) (int, bool) {
	body, ok := c.fetcher.Get(ctx, c.ArticleUrl(name))
	if ok {
		hits, err := ParseHits(ctx, body)
		if err == nil {
			return hits, true
		}
		if !errors.Is(err, ErrNoHitLink) {
			c.tel.ReportWarning(report_client_get_hits_on_name, err, name)
		}
	}

	c.tel.ReportWarning(report_client_get_hits_on_name, "no pageviews found", name)
	return 0, false
}
