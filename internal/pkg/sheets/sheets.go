// Package sheets reads spreadsheet rows from the Google Sheets API using a
// service account. The importer consumes rows as ordered string slices and
// never touches the API types directly.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// RowSource fetches the rows of one spreadsheet range
type RowSource interface {
	Rows(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

type sheetsSource struct {
	service *sheetsapi.Service
}

// NewRowSource builds a Sheets client from a service account credentials
// file with read-only scope
func NewRowSource(ctx context.Context, credentialsFile string) (RowSource, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheets credentials: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, sheetsapi.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheets credentials: %w", err)
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &sheetsSource{service: service}, nil
}

// Rows implements RowSource
func (s *sheetsSource) Rows(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := s.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet values: %w", err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ErrNotConfigured is returned by the disabled source when no credentials
// file was provided
var ErrNotConfigured = errors.New("sheets credentials not configured")

type disabledSource struct{}

// Disabled returns a RowSource whose fetches always fail. It keeps the
// importer wiring intact in deployments without spreadsheet access.
func Disabled() RowSource {
	return disabledSource{}
}

func (disabledSource) Rows(context.Context, string, string) ([][]string, error) {
	return nil, ErrNotConfigured
}
