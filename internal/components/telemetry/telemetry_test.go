package telemetry

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	rec := &Recorder{}
	tel := NewScopedAPI("outer", NewScopedAPI("inner", rec))

	tel.ReportBroken("client.get", errors.New("boom"))
	tel.ReportWarning("client.get-names", "Euclid")
	tel.ReportDebug("extracted names", 3)
	tel.ReportCount("service.no-result", 2)

	broken := rec.Reports(KindBroken)
	require.Len(t, broken, 1)
	require.Equal(t, "inner: outer: client.get", broken[0].Id)

	require.True(t, rec.Contains(KindWarning, "Euclid"))
	require.True(t, rec.Contains(KindBroken, "boom"))
	require.False(t, rec.Contains(KindWarning, "boom"))

	counts := rec.Reports(KindCount)
	require.Len(t, counts, 1)
	require.Equal(t, int64(2), counts[0].Count)
}

func TestSlogAPI(t *testing.T) {
	var out bytes.Buffer
	tel := SlogAPI{Logger: slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))}

	tel.ReportWarning("xtools: client.get-hits-on-name", "no pageviews found", "Euclid")
	tel.ReportDebug("hidden")

	logged := out.String()
	require.Contains(t, logged, "level=WARN")
	require.Contains(t, logged, `id="xtools: client.get-hits-on-name"`)
	require.Contains(t, logged, `params.0="no pageviews found"`)
	require.Contains(t, logged, "params.1=Euclid")
	require.NotContains(t, logged, "hidden")
}
