package sheets

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Google Sheets API for header-keyed worksheet reads and
// row appends. A nil *Client is valid and means the integration is not
// configured; callers are expected to degrade (fallback data, skipped log
// rows) rather than fail.
type Client struct {
	service *sheets.Service
}

// NewClient builds a client from raw service-account credentials JSON.
// An empty credentials string yields a nil client.
func NewClient(ctx context.Context, credentialsJSON string) (*Client, error) {
	if strings.TrimSpace(credentialsJSON) == "" {
		return nil, nil
	}

	config, err := google.JWTConfigFromJSON([]byte(credentialsJSON), sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}

	return &Client{service: srv}, nil
}

// Records reads a whole worksheet and returns one map per data row, keyed by
// the header row. Cells missing from short rows come back as empty strings,
// so column presence checks stay uniform for the normalizers.
func (c *Client) Records(ctx context.Context, sheetID, worksheet string) ([]map[string]string, error) {
	if c == nil {
		return nil, fmt.Errorf("sheets client not configured")
	}

	resp, err := c.service.Spreadsheets.Values.Get(sheetID, worksheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", worksheet, err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}

	headers := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprint(cell))
	}

	records := make([]map[string]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = fmt.Sprint(row[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// Append adds one row to the end of a worksheet.
func (c *Client) Append(ctx context.Context, sheetID, worksheet string, row []interface{}) error {
	if c == nil {
		return fmt.Errorf("sheets client not configured")
	}

	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{row},
	}
	_, err := c.service.Spreadsheets.Values.Append(sheetID, worksheet, valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("appending to worksheet %q: %w", worksheet, err)
	}
	return nil
}
