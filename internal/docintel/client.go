package docintel

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	modelID = "prebuilt-read"

	keyHeader      = "Ocp-Apim-Subscription-Key"
	pdfContentType = "application/pdf"

	defaultPollInterval    = 2 * time.Second
	defaultMaxPollAttempts = 30

	// Submissions get their own transport timeout so a hung POST cannot
	// block an analysis forever.
	defaultHTTPTimeout = 30 * time.Second
)

// Client is the extraction gateway to the document-understanding service.
// It holds no per-call state: one Client may serve concurrent analyses.
type Client struct {
	endpoint string
	key      string
	logger   *zap.Logger

	HTTPClient      *http.Client
	PollInterval    time.Duration
	MaxPollAttempts int
	// DisableStructured skips the typed JSON submission tier and goes
	// straight to the raw binary tiers.
	DisableStructured bool
}

// New creates a gateway for the given service endpoint and subscription key.
func New(endpoint, key string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		endpoint: strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		key:      strings.TrimSpace(key),
		logger:   logger,
		HTTPClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		PollInterval:    defaultPollInterval,
		MaxPollAttempts: defaultMaxPollAttempts,
	}
}

func (c *Client) validateCredentials() error {
	if c.endpoint == "" {
		return &CredentialError{Reason: "endpoint is not configured (set DI_ENDPOINT)"}
	}
	if c.key == "" {
		return &CredentialError{Reason: "key is not configured (set DI_KEY_FILE)"}
	}
	return nil
}
