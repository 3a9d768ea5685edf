// Package sheets is a thin wrapper over the Google Sheets values API.
package sheets

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	valueInputRaw = "RAW"
	insertRows    = "INSERT_ROWS"
)

var (
	ErrCredentialsRequired = errors.New("sheets: credentials path or JSON is required")
	ErrNoService           = errors.New("sheets: service is nil")
	ErrSpreadsheetRequired = errors.New("sheets: spreadsheet id is required")
)

type Client struct {
	service *sheets.Service
}

type Config struct {
	CredentialsPath string
	CredentialsJSON []byte

	// Options are appended after the credential option, e.g. option.WithEndpoint in tests
	Options []option.ClientOption
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	switch {
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	case len(cfg.Options) == 0:
		return nil, ErrCredentialsRequired
	}
	opts = append(opts, cfg.Options...)

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	return &Client{service: service}, nil
}

// AppendValues inserts rows after the last non-empty row of rng
func (c *Client) AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error {
	if err := c.check(spreadsheetID); err != nil {
		return err
	}

	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append %s: %w", rng, err)
	}
	return nil
}

// UpdateValues overwrites cells starting at rng
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error {
	if err := c.check(spreadsheetID); err != nil {
		return err
	}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: update %s: %w", rng, err)
	}
	return nil
}

func (c *Client) ClearValues(ctx context.Context, spreadsheetID, rng string) error {
	if err := c.check(spreadsheetID); err != nil {
		return err
	}

	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: clear %s: %w", rng, err)
	}
	return nil
}

func (c *Client) check(spreadsheetID string) error {
	if c == nil || c.service == nil {
		return ErrNoService
	}
	if spreadsheetID == "" {
		return ErrSpreadsheetRequired
	}
	return nil
}
