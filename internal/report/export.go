package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/spec-kit/feedback-insights/internal/domain"
)

// csvColumns is the fixed export column order.
var csvColumns = []string{
	"id", "title", "project", "epic", "epic_id", "feature_area", "customer",
	"wave", "source_type", "source_detail", "source_label", "priority",
	"quote", "status", "created_at", "updated_at", "url",
}

// WriteCSV exports customer-attributed tickets as one row per ticket.
func WriteCSV(path string, tickets []domain.Ticket) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck

	writer := csv.NewWriter(file)
	if err := writer.Write(csvColumns); err != nil {
		return err
	}
	for _, ticket := range tickets {
		if !ticket.HasCustomerFeedback() {
			continue
		}
		if err := writer.Write(csvRow(ticket)); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}

func csvRow(ticket domain.Ticket) []string {
	return []string{
		ticket.ID,
		ticket.Title,
		ticket.Project,
		ticket.Epic,
		ticket.EpicID,
		ticket.FeatureArea,
		ticket.Customer,
		ticket.Wave,
		ticket.SourceType,
		ticket.SourceDetail,
		string(ticket.SourceLabel),
		ticket.Priority,
		ticket.Quote,
		ticket.Status,
		formatTime(ticket.CreatedAt),
		formatTime(ticket.UpdatedAt),
		ticket.URL,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// WriteStatistics persists the statistics document.
func WriteStatistics(path string, stats Statistics) error {
	return writeJSON(path, stats)
}

// WriteSnapshot persists the dashboard snapshot document.
func WriteSnapshot(path string, snapshot Snapshot) error {
	return writeJSON(path, snapshot)
}

func writeJSON(path string, doc any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(payload, '\n'), 0o644)
}
