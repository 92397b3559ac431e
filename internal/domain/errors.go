package domain

import (
	"fmt"

	appErrors "helpdesk/internal/errors"
)

func invalidStatusError(status string) error {
	return appErrors.New(appErrors.CodeInvalidStatus, fmt.Sprintf("invalid status: %s", status), nil)
}

func invalidPriorityError(priority string) error {
	return appErrors.New(appErrors.CodeInvalidPriority, fmt.Sprintf("invalid priority: %s", priority), nil)
}

func invalidTypeError(ticketType string) error {
	return appErrors.New(appErrors.CodeInvalidType, fmt.Sprintf("invalid ticket type: %s", ticketType), nil)
}

func invalidTicketError(reason string, err error) error {
	return appErrors.New(appErrors.CodeInvalidTicket, reason, err)
}
