package mathmen

import (
	"context"
	"errors"
	"mathviews/internal/components/telemetry"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	pages     map[string]string
	requested []string
}

func (f *fakeFetcher) Get(_ context.Context, link string) ([]byte, bool) {
	f.requested = append(f.requested, link)
	page, ok := f.pages[link]
	if !ok {
		return nil, false
	}
	return []byte(page), true
}

func TestExtractNames(t *testing.T) {
	testCases := []struct {
		name     string
		markup   string
		expected []string
	}{
		{
			name:     "whitespace",
			markup:   "<ul><li>  Euclid  \n\nGauss\n</li></ul>",
			expected: []string{"Euclid", "Gauss"},
		},
		{
			name: "dedup",
			markup: `<ol>
				<li>Euclid</li>
				<li>Gauss</li>
				<li>Euclid</li>
				<li>Euclid
				Gauss</li>
			</ol>`,
			expected: []string{"Euclid", "Gauss"},
		},
		{
			name:     "case sensitive",
			markup:   "<li>euler</li><li>Euler</li>",
			expected: []string{"euler", "Euler"},
		},
		{
			name:     "nested",
			markup:   "<ul><li>Newton<ul><li>Leibniz</li></ul></li></ul>",
			expected: []string{"NewtonLeibniz", "Leibniz"},
		},
		{
			name:     "no list items",
			markup:   "<p>Archimedes</p>",
			expected: []string{},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			got := ExtractNames([]byte(test.markup))
			if diff := cmp.Diff(test.expected, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("ExtractNames mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetNames(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		SourceUrl: `<li>Isaac Newton
			Carl Friedrich Gauss</li>
			<li>Isaac Newton</li>`,
	}}
	client := NewClient(fetcher, &telemetry.Recorder{})

	names, err := client.GetNames(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Isaac Newton", "Carl Friedrich Gauss"}, names)
	require.Equal(t, []string{SourceUrl}, fetcher.requested)
}

func TestGetNamesRetrievalError(t *testing.T) {
	tel := &telemetry.Recorder{}
	client := NewClientWithUrl(&fakeFetcher{}, "http://example.invalid/list", tel)

	names, err := client.GetNames(context.Background())
	require.Nil(t, names)

	var retrievalErr *RetrievalError
	require.True(t, errors.As(err, &retrievalErr))
	require.Equal(t, "http://example.invalid/list", retrievalErr.Url)
	require.Contains(t, err.Error(), "http://example.invalid/list")
	require.Len(t, tel.Reports(telemetry.KindBroken), 1)
}

func TestGetNamesReportsSimilarNames(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		SourceUrl: "<li>Pierre-Simon Laplace</li><li>Pierre-Simon LaPlace</li><li>Euclid</li>",
	}}
	tel := &telemetry.Recorder{}
	client := NewClient(fetcher, tel)

	names, err := client.GetNames(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 3)

	warnings := tel.Reports(telemetry.KindWarning)
	require.Len(t, warnings, 1)
	require.Equal(t, "mathmen: similar-names", warnings[0].Id)
	require.Equal(t, "Pierre-Simon Laplace", warnings[0].Params[0])
	require.Equal(t, "Pierre-Simon LaPlace", warnings[0].Params[1])
}
