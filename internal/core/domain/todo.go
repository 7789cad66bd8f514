package domain

import "strings"

// MaxTitleLen is the upper bound on a todo title, in characters.
const MaxTitleLen = 200

// Todo is the owned resource the authorization layer protects. UserID is the
// authorization anchor: it is set at creation and never changes.
type Todo struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsComplete  bool   `json:"is_complete"`
	Timestamps
}

// OwnedBy reports whether userID is the todo's owner.
func (t *Todo) OwnedBy(userID string) bool {
	return t.UserID == userID
}

// ValidateTitle enforces the 1 to 200 character title rule. Whitespace-only
// titles count as empty.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return Validationf("title must not be empty")
	}
	if len([]rune(title)) > MaxTitleLen {
		return Validationf("title must be at most %d characters", MaxTitleLen)
	}
	return nil
}
