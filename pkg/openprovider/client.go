package openprovider

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/lagowski/go-openprovider/pkg/apierror"
	"github.com/lagowski/go-openprovider/pkg/envelope"
	"github.com/lagowski/go-openprovider/pkg/model"
	"github.com/lagowski/go-openprovider/pkg/transport"
)

// PreRequestHook observes an outgoing call: the payload subtree and the
// serialized envelope about to be sent. The envelope bytes are already
// built when the hook runs, so mutation cannot affect the request.
type PreRequestHook func(payload *etree.Element, envelope []byte)

// PostRequestHook observes a completed exchange: the HTTP response (body
// already read and closed) and the parsed response tree.
type PostRequestHook func(resp *http.Response, tree *etree.Document)

// Client is a connection to the OpenProvider API. It holds immutable
// credentials and transport configuration; one Send is one HTTP round
// trip with no retries.
type Client struct {
	creds     envelope.Credentials
	transport *transport.Transport
	logger    *slog.Logger
	preHook   PreRequestHook
	postHook  PostRequestHook

	// Per-resource services.
	Domains     *DomainsService
	Customers   *CustomersService
	SSL         *SSLService
	Nameservers *NameserversService
	Extensions  *ExtensionsService
	Resellers   *ResellersService
}

// settings collects option values before validation.
type settings struct {
	password      string
	hash          string
	url           string
	userAgent     string
	timeout       time.Duration
	tlsSkipVerify bool
	httpClient    *http.Client
	logger        *slog.Logger
	preHook       PreRequestHook
	postHook      PostRequestHook
}

// Option configures a Client.
type Option func(*settings)

// WithPassword authenticates with a plaintext password.
func WithPassword(password string) Option {
	return func(s *settings) {
		s.password = password
	}
}

// WithPasswordHash authenticates with the MD5 hash of the password.
func WithPasswordHash(hash string) Option {
	return func(s *settings) {
		s.hash = hash
	}
}

// WithURL points the client at a non-production endpoint, such as the
// cte test environment.
func WithURL(url string) Option {
	return func(s *settings) {
		s.url = url
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(s *settings) {
		s.userAgent = userAgent
	}
}

// WithTimeout bounds each HTTP exchange.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithTLSSkipVerify disables TLS certificate verification. Test
// endpoints only.
func WithTLSSkipVerify() Option {
	return func(s *settings) {
		s.tlsSkipVerify = true
	}
}

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.httpClient = client
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithPreRequestHook registers the pre-request observation hook.
func WithPreRequestHook(hook PreRequestHook) Option {
	return func(s *settings) {
		s.preHook = hook
	}
}

// WithPostRequestHook registers the post-request observation hook.
func WithPostRequestHook(hook PostRequestHook) Option {
	return func(s *settings) {
		s.postHook = hook
	}
}

// New creates a client for the given username. Exactly one of
// WithPassword or WithPasswordHash must be supplied; anything else fails
// with an error wrapping apierror.ErrConfiguration.
func New(username string, opts ...Option) (*Client, error) {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	creds := envelope.Credentials{
		Username: username,
		Password: s.password,
		Hash:     s.hash,
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		creds: creds,
		transport: transport.New(&transport.Config{
			URL:           s.url,
			UserAgent:     s.userAgent,
			Timeout:       s.timeout,
			TLSSkipVerify: s.tlsSkipVerify,
			HTTPClient:    s.httpClient,
		}),
		logger:   logger,
		preHook:  s.preHook,
		postHook: s.postHook,
	}

	c.Domains = &DomainsService{client: c}
	c.Customers = &CustomersService{client: c}
	c.SSL = &SSLService{client: c}
	c.Nameservers = &NameserversService{client: c}
	c.Extensions = &ExtensionsService{client: c}
	c.Resellers = &ResellersService{client: c}

	return c, nil
}

// URL returns the endpoint this client talks to.
func (c *Client) URL() string {
	return c.transport.URL()
}

// Send wraps the payload in the credentialed envelope, performs the HTTP
// exchange and dispatches on the reply code. A zero code returns the
// wrapped response; any other code returns an *apierror.Error carrying
// the code, description and data.
func (c *Client) Send(ctx context.Context, payload *etree.Element) (*model.Response, error) {
	requestID := uuid.New().String()
	start := time.Now()

	// 1. Build the canonical envelope from the held credentials
	data, err := envelope.BuildBytes(c.creds, payload)
	if err != nil {
		return nil, err
	}
	action := payload.Tag // Build rejects a nil payload

	// 2. Pre-request hook (observation only)
	if c.preHook != nil {
		c.preHook(payload, data)
	}

	// 3. One POST; the transport folds every failure into ErrServiceUnavailable
	resp, body, err := c.transport.Post(ctx, data)
	if err != nil {
		c.logger.Debug("api request failed",
			"request_id", requestID,
			"action", action,
			"error", err,
		)
		return nil, err
	}

	// 4. Parse the response document
	tree, err := envelope.ParseResponse(body)
	if err != nil {
		return nil, err
	}

	// 5. Post-request hook (observation only)
	if c.postHook != nil {
		c.postHook(resp, tree)
	}

	// 6. Dispatch on the reply code
	reply, err := envelope.Reply(tree)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("api request complete",
		"request_id", requestID,
		"action", action,
		"code", reply.Code,
		"elapsed", time.Since(start),
	)

	if reply.Code != 0 {
		return nil, apierror.New(reply.Code, reply.Desc, reply.DataText())
	}

	return model.NewResponse(tree)
}
