package http

import (
	"encoding/json"
	"log"
	"mime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sahyadritrails/trails-api/internal/util"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
	maxLoggedString    = 256
)

// registerLogging emits one JSON line per request with sanitized body
// summaries. Passwords, tokens, and binary payloads never reach the log.
func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			admin := "anonymous"
			if claims, ok := CurrentClaims(c); ok && claims != nil {
				admin = claims.Email
			}

			payload := struct {
				Time      string `json:"time"`
				Admin     string `json:"admin"`
				LatencyMS int64  `json:"latency_ms"`
				Request   struct {
					Method string `json:"method"`
					URI    string `json:"uri"`
					Body   any    `json:"body,omitempty"`
				} `json:"request"`
				Response struct {
					Status int    `json:"status"`
					Body   any    `json:"body,omitempty"`
					Error  string `json:"error,omitempty"`
				} `json:"response"`
			}{
				Time:      v.StartTime.Format(time.RFC3339),
				Admin:     admin,
				LatencyMS: v.Latency.Milliseconds(),
			}

			payload.Request.Method = v.Method
			payload.Request.URI = v.URI
			payload.Request.Body = c.Get(requestBodyLogKey)
			payload.Response.Status = v.Status
			payload.Response.Body = c.Get(responseBodyLogKey)
			if v.Error != nil {
				payload.Response.Error = v.Error.Error()
			}

			buf, err := json.Marshal(payload)
			if err != nil {
				return err
			}
			log.Println(string(buf))
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		if summary := summarizeBody(reqBody, c.Request().Header.Get(echo.HeaderContentType)); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
		if summary := summarizeBody(resBody, c.Response().Header().Get(echo.HeaderContentType)); summary != nil {
			c.Set(responseBodyLogKey, summary)
		}
	}))
}

func summarizeBody(body []byte, contentType string) any {
	if len(body) == 0 {
		return nil
	}

	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}

	switch {
	case strings.HasPrefix(mediaType, "multipart/"):
		return util.Envelope{"type": "multipart", "bytes": len(body)}
	case mediaType == echo.MIMEApplicationJSON || strings.HasSuffix(mediaType, "+json") || mediaType == "":
		var value any
		if err := json.Unmarshal(body, &value); err != nil {
			return truncatedPreview(body)
		}
		return redactValue(value, "")
	default:
		return truncatedPreview(body)
	}
}

var redactedKeys = []string{"password", "token", "authorization", "secret", "id_token"}

// redactValue walks a decoded JSON value masking credential-shaped keys
// and clamping long strings so log lines stay bounded.
func redactValue(value any, keyHint string) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = redactValue(item, key)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = redactValue(item, keyHint)
		}
		return out
	case string:
		lower := strings.ToLower(keyHint)
		for _, sensitive := range redactedKeys {
			if strings.Contains(lower, sensitive) {
				return "[REDACTED]"
			}
		}
		return clampString(v)
	default:
		return v
	}
}

func truncatedPreview(body []byte) any {
	if !utf8.Valid(body) {
		return util.Envelope{"type": "binary", "bytes": len(body)}
	}
	return clampString(string(body))
}

func clampString(value string) string {
	if len(value) <= maxLoggedString {
		return value
	}
	return value[:maxLoggedString] + "…(truncated)"
}
