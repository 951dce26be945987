package booking

import (
	"context"
	"fmt"
	"time"
)

// RowAppender appends one row to a worksheet. Satisfied by *sheets.Client;
// tests substitute fakes.
type RowAppender interface {
	Append(ctx context.Context, sheetID, worksheet string, row []interface{}) error
}

// Logger appends booking requests to the append-only booking-log worksheet
// for manual follow-up. Logging is best-effort: the caller records failures
// but never fails the booking over them.
type Logger struct {
	appender  RowAppender
	sheetID   string
	worksheet string
}

func NewLogger(appender RowAppender, sheetID, worksheet string) *Logger {
	return &Logger{
		appender:  appender,
		sheetID:   sheetID,
		worksheet: worksheet,
	}
}

// Log appends one row for a booking request.
func (l *Logger) Log(ctx context.Context, b EventBooking, reference string) error {
	if l.appender == nil || l.sheetID == "" {
		return fmt.Errorf("booking log not configured")
	}

	row := []interface{}{
		reference,
		time.Now().Format("01/02/2006 15:04:05"),
		displayName(b),
		b.Description,
		formatUSDate(b.Date),
		b.StartTime,
		b.EndTime,
		b.Attendees,
		b.Organizer,
		b.ContactEmail,
		b.PhoneNumber,
		"Pendiente",
	}
	return l.appender.Append(ctx, l.sheetID, l.worksheet, row)
}
