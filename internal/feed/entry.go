package feed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout renders the local wall-clock time of an entry.
const TimestampLayout = "3:04:05 PM"

// Entry is one line of the operations log. Entries are values and never
// change after creation.
type Entry struct {
	ID        uuid.UUID
	Timestamp string
	Message   string
	Category  Category
	At        time.Time
}

// NewEntry stamps msg with the local time of at.
func NewEntry(msg string, at time.Time) Entry {
	return Entry{
		ID:        uuid.New(),
		Timestamp: at.Local().Format(TimestampLayout),
		Message:   msg,
		Category:  Classify(msg),
		At:        at,
	}
}

// String renders the entry as it appears in the log widget.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Timestamp, e.Message)
}
