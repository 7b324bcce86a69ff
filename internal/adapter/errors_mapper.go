package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp)

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case code == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServerError, message)
	default:
		return fmt.Errorf("http %d: %s", code, message)
	}
}

// responseMessage extracts {"message": ...} from the body, falling back to
// the raw body and then to the status text.
func responseMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var msg models.MessageResponse
	if err := json.Unmarshal([]byte(body), &msg); err == nil && msg.Message != "" {
		return msg.Message
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
