package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/openai/openai-go/v3"
)

// ErrEmptyResponse ответ пришёл, но в нём нет ни одного варианта/картинки.
var ErrEmptyResponse = errors.New("openai: empty response")

// ConfigurationError не задан обязательный ключ доступа.
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"%s environment variable not set. Please set it with: export %s='your_api_key_here' (or add %s=... to a .env file)",
		e.Variable, e.Variable, e.Variable,
	)
}

// FailureKind вид ошибки обращения к API.
type FailureKind string

const (
	FailureConfig    FailureKind = "config"
	FailureAuth      FailureKind = "auth"
	FailureQuota     FailureKind = "quota"
	FailureNetwork   FailureKind = "network"
	FailureMalformed FailureKind = "malformed"
	FailureVendor    FailureKind = "vendor"
	FailureUnknown   FailureKind = "unknown"
)

// Classify определяет вид ошибки, которую вернул Provider или SDK.
func Classify(err error) FailureKind {
	if err == nil {
		return ""
	}

	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return FailureConfig
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return FailureAuth
		case http.StatusTooManyRequests:
			return FailureQuota
		default:
			return FailureVendor
		}
	}

	if errors.Is(err, ErrEmptyResponse) {
		return FailureMalformed
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return FailureMalformed
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return FailureNetwork
	}
	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return FailureNetwork
	}

	return FailureUnknown
}
