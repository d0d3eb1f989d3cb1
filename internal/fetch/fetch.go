// Package fetch performs the single GET requests everything else is built on.
// It never returns an error, a failed or unusable response is reported and
// turned into an empty result.
package fetch

import (
	"context"
	"fmt"
	"mathviews/internal/components/assert"
	"mathviews/internal/components/telemetry"
	"net/http"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	report_client_get = "client.get"
)

var tracer = otel.Tracer("mathviews.internal.fetch")

type Options struct {
	// Timeout is the overall timeout of a request, zero keeps the client's default.
	Timeout time.Duration
	// UserAgent is sent with every request when it is non-empty.
	UserAgent string
	// CloudflareBypass wraps the transport so requests look like they come from a browser.
	CloudflareBypass bool
}

type Client struct {
	http *resty.Client
	tel  telemetry.API
}

func NewClient(opts Options, tel telemetry.API) Client {
	assert.NotNil("telemetry", tel)

	tel = telemetry.NewScopedAPI("fetch", tel)

	httpClient := resty.New()
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		httpClient.SetHeader("user-agent", opts.UserAgent)
	}
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}

	telemetry.InstrumentResty(httpClient, tel)

	return Client{
		http: httpClient,
		tel:  tel,
	}
}

// IsGoodResponse reports whether a response looks like an html document.
func IsGoodResponse(status int, header http.Header) bool {
	contentType := header.Get("Content-Type")
	return status == http.StatusOK &&
		contentType != "" &&
		strings.Contains(strings.ToLower(contentType), "html")
}

// Get fetches `link` and returns its body if the response is an html
// document. The response body is always fully read and closed before Get
// returns.
func (c Client) Get(ctx context.Context, link string) ([]byte, bool) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		c.tel.ReportBroken(
			report_client_get,
			fmt.Errorf("there was an error during requests to %s: %w", link, err),
		)
		return nil, false
	}

	if !IsGoodResponse(res.StatusCode(), res.Header()) {
		span.SetStatus(codes.Error, "not an html response")
		c.tel.ReportDebug(
			"unusable response",
			link,
			res.Status(),
			res.Header().Get("Content-Type"),
		)
		return nil, false
	}

	return res.Body(), true
}
