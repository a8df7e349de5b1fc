package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client is the low-level transport against the burger API. It only
// moves JSON envelopes back and forth; interpreting the success flag
// inside an envelope is the repositories' job.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

func New(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// DoJSON performs a request against the burger API and decodes the
// response body into out. authToken, when non-empty, is sent as the
// Authorization header. A non-2xx status with a decodable envelope is
// not an error here: the failure message inside the envelope belongs to
// the operation's own error slot.
func (c *Client) DoJSON(ctx context.Context, method, path, authToken string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read response of %s %s", method, path)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			if resp.StatusCode >= http.StatusBadRequest {
				c.log.WithFields(logrus.Fields{
					"method": method,
					"path":   path,
					"status": resp.StatusCode,
				}).Warn("burger api returned a non-json failure")
				return errors.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
			}
			return errors.Wrapf(err, "decode response of %s %s", method, path)
		}
	}

	return nil
}
