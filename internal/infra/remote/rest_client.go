// Package remote implements the HTTP clients for the dependent
// customer/creature/training subdomain services.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"adoptions/config"
	domainerrors "adoptions/internal/domain/errors"

	"github.com/pkg/errors"
)

// restClient carries the shared request plumbing of every dependent-service
// client: JSON encoding, the bounded per-call timeout and the error
// translation contract.
type restClient struct {
	serviceName string
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
}

func newRESTClient(serviceName string, cfg config.ServiceClientConfig, logger *slog.Logger) *restClient {
	return &restClient{
		serviceName: serviceName,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.ClientTimeout(),
		},
		logger: logger,
	}
}

func (c *restClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.do(req, out)
}

func (c *restClient) putJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *restClient) do(req *http.Request, out any) error {
	c.logger.Debug("calling dependent service",
		slog.String("service", c.serviceName),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.NewRemoteCallError(c.serviceName, 0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerrors.NewRemoteCallError(c.serviceName, resp.StatusCode, "", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.translateError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s service response", c.serviceName)
	}

	return nil
}

// translateError maps the dependency's error responses onto this service's
// failure taxonomy. 404 and 422 become NotFound and InvalidInput failures
// carrying the remote error message; every other status is surfaced verbatim
// with its body preserved.
func (c *restClient) translateError(status int, body []byte) error {
	switch status {
	case http.StatusNotFound:
		return domainerrors.RemoteNotFound(errorMessage(body))
	case http.StatusUnprocessableEntity:
		return domainerrors.RemoteInvalidInput(errorMessage(body))
	default:
		c.logger.Warn("unexpected dependent service error",
			slog.String("service", c.serviceName),
			slog.Int("status", status),
			slog.String("body", string(body)),
		)

		return domainerrors.NewRemoteCallError(c.serviceName, status, string(body), nil)
	}
}

// errorMessage extracts the message from the dependency's error body. When
// the body does not parse, the parse failure text is used as the message.
func errorMessage(body []byte) string {
	var info domainerrors.HTTPErrorInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return err.Error()
	}

	return info.Message
}
