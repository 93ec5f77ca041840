package responses

import "github.com/goccy/go-json"

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// BackendEnvelope is the shape of every reply from the remote booking API. Some endpoints
// report the outcome in status, others in success.
type BackendEnvelope struct {
	Status  bool            `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token,omitempty"`
	Data    json.RawMessage `json:"data"`
}

func (e *BackendEnvelope) OK() bool {
	return e.Status || e.Success
}
