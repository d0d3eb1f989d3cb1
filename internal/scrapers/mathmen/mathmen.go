// Package mathmen scrapes the list of mathematicians the ranking is built from.
package mathmen

import (
	"bytes"
	"context"
	"fmt"
	"mathviews/internal/components/assert"
	"mathviews/internal/components/telemetry"
	"mathviews/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
)

const (
	report_client_get_names = "client.get-names"
	report_extract_names    = "extract-names"
	report_similar_names    = "similar-names"
)

// SourceUrl is the page listing the mathematicians.
const SourceUrl = "http://www.fabpedigree.com/james/mathmen.htm"

// names at least this similar (jaro-winkler) are reported as likely duplicates
const similarNameThreshold = 0.97

// RetrievalError is returned when the list page could not be fetched at all.
type RetrievalError struct {
	Url string
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("there was an error retrieving contents at %s", e.Url)
}

type Fetcher interface {
	Get(ctx context.Context, link string) ([]byte, bool)
}

type Client struct {
	fetcher Fetcher
	url     string
	tel     telemetry.API
}

func NewClient(fetcher Fetcher, tel telemetry.API) Client {
	return NewClientWithUrl(fetcher, SourceUrl, tel)
}

// NewClientWithUrl is NewClient reading the list from `url` instead of SourceUrl.
func NewClientWithUrl(fetcher Fetcher, url string, tel telemetry.API) Client {
	assert.NotNil("fetcher", fetcher)
	assert.NotNil("telemetry", tel)
	assert.NotEmptyStr("url", url)

	return Client{
		fetcher: fetcher,
		url:     url,
		tel:     telemetry.NewScopedAPI("mathmen", tel),
	}
}

// GetNames downloads the list page and returns the distinct names on it,
// in the order they first appear.
func (c Client) GetNames(ctx context.Context) ([]string, error) {
	body, ok := c.fetcher.Get(ctx, c.url)
	if !ok {
		err := &RetrievalError{Url: c.url}
		c.tel.ReportBroken(report_client_get_names, err)
		return nil, err
	}

	names := c.extractNames(body)
	c.reportSimilarNames(names)
	c.tel.ReportDebug("extracted names", len(names))

	return names, nil
}

func (c Client) extractNames(markup []byte) []string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		c.tel.ReportBroken(
			report_extract_names,
			fmt.Errorf("parse html: %w", err),
		)
		return nil
	}
	return namesFromDocument(doc)
}

// ExtractNames returns every distinct, non-empty line of text found inside
// <li> elements of `markup`, in the order they first appear.
func ExtractNames(markup []byte) []string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil
	}
	return namesFromDocument(doc)
}

func namesFromDocument(doc *goquery.Document) []string {
	seen := map[string]struct{}{}
	names := []string{}
	for _, li := range doc.Find("li").Nodes {
		for _, name := range htmlutil.SplitLines(li) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// reportSimilarNames warns about distinct names that are almost the same,
// they usually mean the source page spells someone two different ways.
func (c Client) reportSimilarNames(names []string) {
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			similarity := matchr.JaroWinkler(names[i], names[j], false)
			if similarity < similarNameThreshold {
				continue
			}
			c.tel.ReportWarning(
				report_similar_names,
				names[i],
				names[j],
				similarity,
			)
		}
	}
}
