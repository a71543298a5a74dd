package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/soulgarden/yobit-pairs/conf"
	"github.com/soulgarden/yobit-pairs/dictionary"
)

// Client issues GET requests against the public API base URL.
// One http.Client is reused for every call, with no timeout and no retries.
type Client struct {
	baseURL   string
	userAgent string
	httpCli   *http.Client
	logger    *zerolog.Logger
}

func New(cfg *conf.App, logger *zerolog.Logger) (*Client, error) {
	return NewWithHTTPClient(cfg, &http.Client{}, logger)
}

func NewWithHTTPClient(cfg *conf.App, httpCli *http.Client, logger *zerolog.Logger) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		logger.Err(err).Str("base_url", cfg.BaseURL).Msg("parse base url")

		return nil, fmt.Errorf("%w: %s", dictionary.ErrClientInit, err.Error())
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		logger.Error().Str("base_url", cfg.BaseURL).Msg("base url must be absolute http(s)")

		return nil, fmt.Errorf("%w: bad base url %q", dictionary.ErrClientInit, cfg.BaseURL)
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		httpCli:   httpCli,
		logger:    logger,
	}, nil
}

// Get fetches baseURL + "/" + path and returns the raw body.
// Every failure, including a non-2xx status, wraps dictionary.ErrTransport.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.logger.Err(err).Str("url", target).Msg("build request")

		return nil, errors.Wrap(transportErr(err), "build request")
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().Str("url", target).Msg("send request")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		c.logger.Err(err).Str("url", target).Msg("send request")

		return nil, errors.Wrapf(transportErr(err), "get %s", target)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Err(err).Str("url", target).Msg("read body")

		return nil, errors.Wrapf(transportErr(err), "read %s", target)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", target).
			Bytes("body", body).
			Msg("unexpected status")

		return nil, errors.Wrapf(dictionary.ErrTransport, "get %s: status %d", target, resp.StatusCode)
	}

	c.logger.Debug().Str("url", target).Int("size", len(body)).Msg("got response")

	return body, nil
}

func transportErr(err error) error {
	return fmt.Errorf("%w: %s", dictionary.ErrTransport, err.Error())
}
