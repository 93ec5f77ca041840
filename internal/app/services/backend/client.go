package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Client performs calls against the remote booking API and unwraps its envelope.
type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewClient(baseUrl string, timeout time.Duration) *Client {
	return &Client{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Call describes one request to the booking API.
type Call struct {
	Method         string
	Path           string
	Token          string
	IdempotencyKey string
	Body           interface{}
	Resource       string
}

// Do sends call and decodes the envelope's data into out when out is not nil. It returns the
// envelope message. Rejections keep the API's message as the client-facing message.
func (c *Client) Do(ctx context.Context, call Call, out interface{}) (string, error) {
	envelope, err := c.DoEnvelope(ctx, call, out)
	if err != nil {
		return "", err
	}
	return envelope.Message, nil
}

// DoEnvelope is Do for callers that need fields outside data, such as the login token.
func (c *Client) DoEnvelope(ctx context.Context, call Call, out interface{}) (*responses.BackendEnvelope, error) {
	var body io.Reader
	if call.Body != nil {
		requestJSON, err := json.Marshal(call.Body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, c.BaseUrl+call.Path, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if call.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+call.Token)
	}
	if call.IdempotencyKey != "" {
		req.Header.Set(constvars.HeaderIdempotencyKey, call.IdempotencyKey)
	}
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok && requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrBackendUnreachable(err, call.Resource)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrBackendUnreachable(err, call.Resource)
	}

	envelope := new(responses.BackendEnvelope)
	decodeErr := json.Unmarshal(bodyBytes, envelope)

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		message := http.StatusText(resp.StatusCode)
		if decodeErr == nil && envelope.Message != "" {
			message = envelope.Message
		}
		return nil, exceptions.ErrBackendRejected(
			fmt.Errorf("status %d: %s", resp.StatusCode, message),
			rejectionStatus(resp.StatusCode),
			message,
			call.Resource,
		)
	}

	if decodeErr != nil {
		return nil, exceptions.ErrBackendDecodeResponse(decodeErr, call.Resource)
	}

	if !envelope.OK() {
		message := envelope.Message
		if message == "" {
			message = constvars.ErrClientCannotProcessRequest
		}
		return nil, exceptions.ErrBackendRejected(errors.New(message), constvars.StatusBadRequest, message, call.Resource)
	}

	if out != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		err = json.Unmarshal(envelope.Data, out)
		if err != nil {
			return nil, exceptions.ErrBackendDecodeResponse(err, call.Resource)
		}
	}

	return envelope, nil
}

func rejectionStatus(statusCode int) int {
	switch {
	case statusCode == constvars.StatusUnauthorized,
		statusCode == constvars.StatusForbidden,
		statusCode == constvars.StatusNotFound,
		statusCode == constvars.StatusConflict,
		statusCode == constvars.StatusTooManyRequests:
		return statusCode
	case statusCode >= 400 && statusCode < 500:
		return constvars.StatusBadRequest
	case statusCode == constvars.StatusBadGateway,
		statusCode == constvars.StatusServiceUnavailable,
		statusCode == constvars.StatusGatewayTimeout:
		return constvars.StatusBadGateway
	default:
		return constvars.StatusInternalServerError
	}
}

type timeoutError interface {
	Timeout() bool
}

func isTimeout(err error) bool {
	var te timeoutError
	return errors.As(err, &te) && te.Timeout()
}
