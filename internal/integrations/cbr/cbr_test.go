package cbr

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/home-affordability/internal/config"
)

const keyRateResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope">
  <soap:Body>
    <KeyRateResponse xmlns="http://web.cbr.ru/">
      <KeyRateResult>
        <diffgr:diffgram xmlns:msdata="urn:schemas-microsoft-com:xml-msdata" xmlns:diffgr="urn:schemas-microsoft-com:xml-diffgram-v1">
          <KeyRate xmlns="">
            <KR diffgr:id="KR1" msdata:rowOrder="0">
              <DT>2026-10-17T00:00:00+03:00</DT>
              <Rate>16.50</Rate>
            </KR>
            <KR diffgr:id="KR2" msdata:rowOrder="1">
              <DT>2026-10-16T00:00:00+03:00</DT>
              <Rate>17.00</Rate>
            </KR>
          </KeyRate>
        </diffgr:diffgram>
      </KeyRateResult>
    </KeyRateResponse>
  </soap:Body>
</soap:Envelope>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *CBRClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client := NewCBRClient(&config.Config{CBRURL: server.URL, CBRMargin: 5}, logger)
	client.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	return client
}

func TestGetKeyRate(t *testing.T) {
	var gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "http://web.cbr.ru/KeyRate", r.Header.Get("SOAPAction"))
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(keyRateResponse))
	})

	rate, err := client.GetKeyRate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 16.5, rate.BaseRate)
	assert.Equal(t, 5.0, rate.Margin)
	assert.Equal(t, 21.5, rate.Rate)
	assert.Equal(t, 2026, rate.FetchedAt.Year())
	assert.Contains(t, gotBody, "<fromDate>2026-09-19</fromDate>")
	assert.Contains(t, gotBody, "<ToDate>2026-10-19</ToDate>")
	assert.Contains(t, gotBody, `<KeyRate xmlns="http://web.cbr.ru/">`)
}

func TestLatestKeyRate_MissingRows(t *testing.T) {
	_, err := latestKeyRate([]byte(`<Envelope><diffgram><KeyRate/></diffgram></Envelope>`))
	assert.ErrorIs(t, err, ErrNoKeyRate)

	_, err = latestKeyRate([]byte(`<Envelope><diffgram><KeyRate><KR/></KeyRate></diffgram></Envelope>`))
	assert.ErrorIs(t, err, ErrNoKeyRate)
}

func TestGetKeyRate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"server error", http.StatusBadGateway, "", "cbr returned status 502"},
		{"not xml", http.StatusOK, "<<<", "failed to decode key rate response"},
		{"no rates", http.StatusOK, `<Envelope><diffgram><KeyRate/></diffgram></Envelope>`, "no key rate in response"},
		{"no rate element", http.StatusOK, `<Envelope><diffgram><KeyRate><KR><DT>x</DT></KR></KeyRate></diffgram></Envelope>`, "KR row without Rate"},
		{"bad rate", http.StatusOK, `<Envelope><diffgram><KeyRate><KR><Rate>n/a</Rate></KR></KeyRate></diffgram></Envelope>`, `invalid key rate "n/a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetKeyRate(context.Background())
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGetKeyRate_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(keyRateResponse))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetKeyRate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
