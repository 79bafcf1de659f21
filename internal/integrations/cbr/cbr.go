package cbr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Dan9191/home-affordability/internal/config"
	"github.com/Dan9191/home-affordability/internal/models"
	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// CBRClient fetches the Central Bank of Russia key rate over SOAP
type CBRClient struct {
	url    string
	margin float64
	client *http.Client
	log    *logrus.Logger
	now    func() time.Time
}

func NewCBRClient(cfg *config.Config, log *logrus.Logger) *CBRClient {
	return &CBRClient{
		url:    cfg.CBRURL,
		margin: cfg.CBRMargin,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

const (
	soapNamespace = "http://www.w3.org/2003/05/soap-envelope"
	cbrNamespace  = "http://web.cbr.ru/"
	keyRateAction = cbrNamespace + "KeyRate"
	dateLayout    = "2006-01-02"
	lookbackDays  = 30
)

// ErrNoKeyRate means the response carried no usable KR row.
var ErrNoKeyRate = errors.New("no key rate in response")

func (c *CBRClient) keyRateEnvelope() ([]byte, error) {
	to := c.now()
	from := to.AddDate(0, 0, -lookbackDays)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	envelope := doc.CreateElement("soap12:Envelope")
	envelope.CreateAttr("xmlns:soap12", soapNamespace)
	call := envelope.CreateElement("soap12:Body").CreateElement("KeyRate")
	call.CreateAttr("xmlns", cbrNamespace)
	call.CreateElement("fromDate").SetText(from.Format(dateLayout))
	call.CreateElement("ToDate").SetText(to.Format(dateLayout))
	return doc.WriteToBytes()
}

func (c *CBRClient) post(ctx context.Context, envelope []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(envelope))
	if err != nil {
		return nil, fmt.Errorf("failed to build key rate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", keyRateAction)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("key rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cbr returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read key rate response: %w", err)
	}
	c.log.WithField("bytes", len(body)).Debug("Key rate response received")
	return body, nil
}

// latestKeyRate reads the first KR row; rows come newest first.
func latestKeyRate(body []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return 0, fmt.Errorf("failed to decode key rate response: %w", err)
	}

	row := doc.FindElement("//diffgram/KeyRate/KR")
	if row == nil {
		return 0, ErrNoKeyRate
	}
	field := row.SelectElement("Rate")
	if field == nil {
		return 0, fmt.Errorf("%w: KR row without Rate", ErrNoKeyRate)
	}

	text := strings.TrimSpace(field.Text())
	rate, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key rate %q: %w", text, err)
	}
	return rate, nil
}

// GetKeyRate retrieves the current key rate and adds the bank margin
func (c *CBRClient) GetKeyRate(ctx context.Context) (models.KeyRate, error) {
	envelope, err := c.keyRateEnvelope()
	if err != nil {
		return models.KeyRate{}, fmt.Errorf("failed to encode key rate request: %w", err)
	}

	body, err := c.post(ctx, envelope)
	if err != nil {
		return models.KeyRate{}, err
	}

	base, err := latestKeyRate(body)
	if err != nil {
		return models.KeyRate{}, err
	}

	rate := models.KeyRate{
		Rate:      base + c.margin,
		BaseRate:  base,
		Margin:    c.margin,
		FetchedAt: c.now(),
	}
	c.log.WithFields(logrus.Fields{
		"base_rate": base,
		"margin":    c.margin,
	}).Info("Key rate refreshed")
	return rate, nil
}
