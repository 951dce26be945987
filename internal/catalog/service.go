package catalog

import (
	"context"
	"errors"
	"log"
)

// ErrEventNotFound is returned by GetEventByID when no event matches.
var ErrEventNotFound = errors.New("event not found")

// RowSource reads a worksheet as header-keyed rows. Satisfied by
// *sheets.Client; tests substitute fakes.
type RowSource interface {
	Records(ctx context.Context, sheetID, worksheet string) ([]map[string]string, error)
}

// Source tags whether a read was served from the live sheet or from the
// compiled-in fallback. The HTTP response hides the tag; tests assert on it.
type Source int

const (
	SourceLive Source = iota
	SourceFallback
)

func (s Source) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "live"
}

// Service fetches menu and event data from the configured worksheets,
// normalizing each row and substituting the fallback content on any failure.
// Read endpoints backed by this service never surface an infrastructure
// error.
type Service struct {
	src             RowSource
	sheetID         string
	menuWorksheet   string
	eventsWorksheet string
}

// NewService creates a catalog service. src may be nil, in which case every
// read serves the fallback content.
func NewService(src RowSource, sheetID, menuWorksheet, eventsWorksheet string) *Service {
	return &Service{
		src:             src,
		sheetID:         sheetID,
		menuWorksheet:   menuWorksheet,
		eventsWorksheet: eventsWorksheet,
	}
}

// GetMenu returns the grouped menu.
func (s *Service) GetMenu(ctx context.Context) *Menu {
	menu, _ := s.menuWithSource(ctx)
	return menu
}

// GetEvents returns the ordered event list.
func (s *Service) GetEvents(ctx context.Context) []Event {
	events, _ := s.eventsWithSource(ctx)
	return events
}

// GetEventByID returns the event with the given id, or ErrEventNotFound.
func (s *Service) GetEventByID(ctx context.Context, id string) (Event, error) {
	for _, event := range s.GetEvents(ctx) {
		if event.ID == id {
			return event, nil
		}
	}
	return Event{}, ErrEventNotFound
}

func (s *Service) menuWithSource(ctx context.Context) (*Menu, Source) {
	if s.src == nil {
		return FallbackMenu(), SourceFallback
	}

	rows, err := s.src.Records(ctx, s.sheetID, s.menuWorksheet)
	if err != nil {
		log.Printf("menu fetch failed, serving fallback: %v", err)
		return FallbackMenu(), SourceFallback
	}

	menu := GroupMenu(rows)
	if menu.Len() == 0 {
		log.Printf("menu worksheet %q yielded no usable rows, serving fallback", s.menuWorksheet)
		return FallbackMenu(), SourceFallback
	}

	log.Printf("fetched %d menu items from worksheet %q", menu.Len(), s.menuWorksheet)
	return menu, SourceLive
}

func (s *Service) eventsWithSource(ctx context.Context) ([]Event, Source) {
	if s.src == nil {
		return FallbackEvents(), SourceFallback
	}

	rows, err := s.src.Records(ctx, s.sheetID, s.eventsWorksheet)
	if err != nil {
		log.Printf("events fetch failed, serving fallback: %v", err)
		return FallbackEvents(), SourceFallback
	}

	events := make([]Event, 0, len(rows))
	for i, row := range rows {
		event, err := NormalizeEventRow(row, i+1)
		if err != nil {
			log.Printf("skipping event row %d: %v", i+1, err)
			continue
		}
		events = append(events, event)
	}
	if len(events) == 0 {
		log.Printf("events worksheet %q yielded no usable rows, serving fallback", s.eventsWorksheet)
		return FallbackEvents(), SourceFallback
	}

	log.Printf("fetched %d events from worksheet %q", len(events), s.eventsWorksheet)
	return events, SourceLive
}
