package catalog

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// ErrMalformedRow marks a single row that cannot produce a record. Callers
// skip the row; it never fails the whole fetch.
var ErrMalformedRow = errors.New("malformed row")

// DefaultCategory is the category assigned to menu rows with a blank
// category cell.
const DefaultCategory = "Uncategorized"

// Worksheet column headers, matching the live spreadsheet.
const (
	colCategory   = "category_key"
	colItemID     = "item_id"
	colItemName   = "item_name"
	colItemDesc   = "item_description"
	colItemPrice  = "item_price"
	colItemImage  = "item_image"
	colItemTags   = "item_tags"
	colItemHist   = "item_historical"
	colEventID    = "id"
	colEventTitle = "title"
	colEventDate  = "date"
	colEventTime  = "time"
	colEventLoc   = "location"
	colEventDesc  = "description"
	colEventImage = "image"
	colEventCat   = "category"
	colEventCap   = "capacity"
	colEventPrice = "price"
)

// driveDirectURL is the direct-content form Drive share links get rewritten
// to. Must stay in sync with the image proxy's upstream URL.
const driveDirectURL = "https://drive.google.com/uc?export=view&id="

// dateLayouts are the human-entered formats the sheet has been seen to
// contain. The canonical layout comes first so re-normalizing is a no-op.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"2006/01/02",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// NormalizeMenuRow turns one header-keyed sheet row into a MenuItem plus its
// category key. Blank names make the row malformed; every other blank field
// gets a typed default so one sloppy cell never discards the dataset.
func NormalizeMenuRow(row map[string]string, pos int) (MenuItem, string, error) {
	name := strings.TrimSpace(row[colItemName])
	if name == "" {
		return MenuItem{}, "", fmt.Errorf("%w: menu row %d has no name", ErrMalformedRow, pos)
	}

	category := strings.TrimSpace(row[colCategory])
	if category == "" {
		category = DefaultCategory
	}

	id := strings.TrimSpace(row[colItemID])
	if id == "" {
		id = fmt.Sprintf("m%d", pos)
	}

	item := MenuItem{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(row[colItemDesc]),
		Price:       strings.TrimSpace(row[colItemPrice]),
		Image:       ConvertDriveLink(strings.TrimSpace(row[colItemImage])),
		Tags:        splitTags(row[colItemTags]),
		Historical:  strings.TrimSpace(row[colItemHist]),
	}
	return item, category, nil
}

// NormalizeEventRow turns one header-keyed sheet row into an Event. Blank
// titles make the row malformed; a blank id is generated from the row
// position.
func NormalizeEventRow(row map[string]string, pos int) (Event, error) {
	title := strings.TrimSpace(row[colEventTitle])
	if title == "" {
		return Event{}, fmt.Errorf("%w: event row %d has no title", ErrMalformedRow, pos)
	}

	id := strings.TrimSpace(row[colEventID])
	if id == "" {
		id = fmt.Sprintf("e%d", pos)
	}

	return Event{
		ID:          id,
		Title:       title,
		Date:        NormalizeDate(strings.TrimSpace(row[colEventDate])),
		Time:        strings.TrimSpace(row[colEventTime]),
		Location:    strings.TrimSpace(row[colEventLoc]),
		Description: strings.TrimSpace(row[colEventDesc]),
		Image:       ConvertDriveLink(strings.TrimSpace(row[colEventImage])),
		Category:    strings.TrimSpace(row[colEventCat]),
		Capacity:    strings.TrimSpace(row[colEventCap]),
		Price:       strings.TrimSpace(row[colEventPrice]),
	}, nil
}

// GroupMenu folds normalized items into a Menu, preserving first-seen
// category order. The display title is the category cell as entered; the
// grouping key is its lowercase form.
func GroupMenu(rows []map[string]string) *Menu {
	menu := NewMenu()
	for i, row := range rows {
		item, category, err := NormalizeMenuRow(row, i+1)
		if err != nil {
			log.Printf("skipping menu row %d: %v", i+1, err)
			continue
		}
		menu.Add(strings.ToLower(category), category, item)
	}
	return menu
}

// ConvertDriveLink rewrites a Google Drive share link to its direct-content
// form. Values without a recognizable file id pass through unchanged, and
// only drive.google.com URLs are touched at all.
func ConvertDriveLink(url string) string {
	if url == "" || !strings.Contains(url, "drive.google.com") {
		return url
	}

	var fileID string
	if _, after, found := strings.Cut(url, "/file/d/"); found {
		fileID, _, _ = strings.Cut(after, "/")
	} else if _, after, found := strings.Cut(url, "id="); found {
		fileID, _, _ = strings.Cut(after, "&")
	}
	if fileID == "" {
		return url
	}
	return driveDirectURL + fileID
}

// NormalizeDate converts the accepted human-entered date formats to the
// canonical YYYY-MM-DD form. Canonical input is a fixed point. Unparseable
// input passes through unchanged; the row stays usable and the condition is
// only logged.
func NormalizeDate(s string) string {
	if s == "" {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	log.Printf("unrecognized event date %q, passing through", s)
	return s
}

func splitTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
