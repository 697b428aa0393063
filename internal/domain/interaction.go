package domain

import (
	"strings"
	"time"
)

// InteractionAction is the kind of action a user took against a post.
type InteractionAction string

const (
	ActionView    InteractionAction = "view"
	ActionLike    InteractionAction = "like"
	ActionComment InteractionAction = "comment"
	ActionShare   InteractionAction = "share"
	ActionOther   InteractionAction = "other"
)

// ParseInteractionAction normalises a raw action string. Unrecognised actions
// are kept verbatim so they are recorded as sent, and weigh as ActionOther.
func ParseInteractionAction(s string) InteractionAction {
	return InteractionAction(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether a is one of the named actions.
func (a InteractionAction) Known() bool {
	switch a {
	case ActionView, ActionLike, ActionComment, ActionShare, ActionOther:
		return true
	default:
		return false
	}
}

// Weight is the amount added to the category and tag scores of a user for
// one interaction of this kind.
func (a InteractionAction) Weight() float64 {
	switch a {
	case ActionView:
		return 1.0
	case ActionLike:
		return 3.0
	case ActionComment:
		return 2.0
	case ActionShare:
		return 4.0
	default:
		return 0.5
	}
}

// InteractionEvent is a single recorded user action against a post.
type InteractionEvent struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	PostID    int64             `json:"post_id"`
	Action    InteractionAction `json:"action"`
	Category  string            `json:"category,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}
