package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ytget/habit-tracker/internal/model"
)

// DefaultSheetName is the tab the table lives in when none is configured.
const DefaultSheetName = "Sheet1"

// Sheets stores the table in a Google Sheets tab.
//
// Save clears the tab before writing. The two calls are not atomic: if the
// write fails after the clear succeeded the remote tab is left empty, so only
// save a table that was loaded (or deliberately created) first.
type Sheets struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	logger        *slog.Logger
}

// SheetsOption customises a Sheets store.
type SheetsOption func(*Sheets)

// WithSheetName selects the tab to read and write.
func WithSheetName(name string) SheetsOption {
	return func(s *Sheets) {
		if name != "" {
			s.sheetName = name
		}
	}
}

// WithLogger sets the logger used for sync records.
func WithLogger(l *slog.Logger) SheetsOption {
	return func(s *Sheets) {
		if l != nil {
			s.logger = l
		}
	}
}

// ConnectSheets authorizes a service-account credential for the spreadsheet
// and probes it once. Malformed JSON and rejected authorization return
// ErrAuth; there is no retry.
func ConnectSheets(ctx context.Context, credentials []byte, spreadsheetID string, opts ...SheetsOption) (*Sheets, error) {
	if !json.Valid(credentials) {
		return nil, fmt.Errorf("%w: credential is not valid JSON", ErrAuth)
	}
	creds, err := google.CredentialsFromJSON(ctx, credentials, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuth, err)
	}
	return OpenSheets(ctx, spreadsheetID, []option.ClientOption{option.WithCredentials(creds)}, opts...)
}

// OpenSheets builds a store from explicit client options and probes the
// spreadsheet.
func OpenSheets(ctx context.Context, spreadsheetID string, clientOpts []option.ClientOption, opts ...SheetsOption) (*Sheets, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("%w: no spreadsheet configured", ErrAuth)
	}
	svc, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuth, err)
	}

	s := &Sheets{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     DefaultSheetName,
		logger:        slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}

	if _, err := svc.Spreadsheets.Get(spreadsheetID).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		if isAuthFailure(err) {
			return nil, fmt.Errorf("%w: %w", ErrAuth, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	s.logger.Info("spreadsheet connected", "spreadsheet", spreadsheetID, "sheet", s.sheetName)
	return s, nil
}

// SpreadsheetID returns the remote resource identifier.
func (s *Sheets) SpreadsheetID() string {
	return s.spreadsheetID
}

// Load reads every row of the tab.
func (s *Sheets) Load(ctx context.Context) (model.Table, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetName).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = cellString(v)
		}
		rows = append(rows, row)
	}

	t, err := model.Parse(rows)
	if err != nil {
		return model.Table{}, err
	}
	s.logger.Info("spreadsheet loaded", "spreadsheet", s.spreadsheetID, "rows", len(rows))
	return t, nil
}

// Save clears the tab and writes the header and all 30 rows.
func (s *Sheets) Save(ctx context.Context, t model.Table) error {
	if _, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, s.sheetName, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("%w: clear: %w", ErrDestinationUnavailable, err)
	}

	rows := model.Serialize(t)
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(row))
		for j, v := range row {
			values[i][j] = v
		}
	}

	if _, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, s.sheetName, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		s.logger.Error("spreadsheet write failed after clear", "spreadsheet", s.spreadsheetID, "error", err)
		return fmt.Errorf("%w: write: %w", ErrDestinationUnavailable, err)
	}
	s.logger.Info("spreadsheet saved", "spreadsheet", s.spreadsheetID, "rows", len(rows))
	return nil
}

// cellString renders a cell returned by the API in the tabular token form.
func cellString(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case bool:
		return model.FormatFlag(c)
	default:
		return fmt.Sprint(c)
	}
}

func isAuthFailure(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	switch gerr.Code {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	}
	return false
}
