package notifications

import (
	"fmt"
	"strings"

	"campus-portal-go/internal/domain/audience"
)

var messagePrefixes = map[SourceType]string{
	SourceAnnouncement: "New announcement",
	SourceEvent:        "New event",
	SourceClub:         "New club",
	SourcePlacement:    "New placement drive",
}

// Message renders the notification text for b. Scoped audiences get their
// label appended so recipients see the scope without opening the parent.
func Message(b Broadcast) string {
	prefix, ok := messagePrefixes[b.SourceType]
	if !ok {
		prefix = "New update"
	}

	message := fmt.Sprintf("%s: %s", prefix, strings.TrimSpace(b.Title))
	if b.Audience != audience.All {
		if label := b.Audience.Label(); label != "" {
			message += " (" + label + ")"
		}
	}
	return message
}

// TypeFor maps the broadcast severity to a notification type.
func TypeFor(b Broadcast) Type {
	switch b.Severity {
	case SeverityUrgent:
		return TypeUrgent
	case SeverityPlacement:
		return TypePlacement
	default:
		return TypeInfo
	}
}
