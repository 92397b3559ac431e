package helpdesk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	appErrors "helpdesk/internal/errors"
)

// errorBody covers the shapes the backend uses for failures:
// {"detail": "..."}, {"detail": [{"msg": "..."}]} and {"message": "..."}.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

// parseDetail extracts the human-readable message from an error response body.
func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if len(eb.Detail) > 0 {
		var s string
		if err := json.Unmarshal(eb.Detail, &s); err == nil {
			return strings.TrimSpace(s)
		}
		var issues []validationIssue
		if err := json.Unmarshal(eb.Detail, &issues); err == nil {
			for _, issue := range issues {
				if msg := strings.TrimSpace(issue.Msg); msg != "" {
					return msg
				}
			}
		}
	}
	return strings.TrimSpace(eb.Message)
}

// classifyStatus turns a non-2xx response into a structured error.
func classifyStatus(op string, status int, body []byte) error {
	code := appErrors.CodeRejected
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		code = appErrors.CodeUnauthorized
	case status == http.StatusNotFound:
		code = appErrors.CodeNotFound
	case status >= 500:
		code = appErrors.CodeServer
	}
	detail := parseDetail(body)
	msg := fmt.Sprintf("%s: %d %s", op, status, http.StatusText(status))
	if detail != "" {
		msg += ": " + detail
	}
	return appErrors.Error{Code: code, Message: msg, Detail: detail, Status: status}
}

func transportError(op string, err error) error {
	return appErrors.New(appErrors.CodeTransport, fmt.Sprintf("%s: %v", op, err), err)
}

func decodeError(op string, err error) error {
	return appErrors.New(appErrors.CodeDecode, fmt.Sprintf("%s: decode response: %v", op, err), err)
}

func notAuthenticated(op string, err error) error {
	if appErrors.IsCode(err, appErrors.CodeNotAuthenticated) {
		return err
	}
	return appErrors.New(appErrors.CodeNotAuthenticated, fmt.Sprintf("%s: not logged in", op), err)
}

func invalidRequest(reason string) error {
	return appErrors.New(appErrors.CodeInvalidTicket, reason, nil)
}
