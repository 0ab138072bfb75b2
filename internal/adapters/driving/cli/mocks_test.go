package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"testing"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
	"github.com/kidssmart-labs/edufind-cli/internal/core/ports/driving"
)

// --- Mock implementations ---

// mockFinder implements driving.FinderService for testing.
type mockFinder struct {
	outcome   *domain.SearchOutcome
	findErr   error
	rows      []domain.StoredRow
	savedErr  error
	exportErr error

	lastTopic   string
	lastFilters domain.SearchFilters
	lastMax     int
}

func (m *mockFinder) Find(_ context.Context, topic string, filters domain.SearchFilters, maxResults int, progress driving.ProgressFunc) (*domain.SearchOutcome, error) {
	m.lastTopic = topic
	m.lastFilters = filters
	m.lastMax = maxResults
	if m.findErr != nil {
		return nil, m.findErr
	}
	if progress != nil {
		for i := 0; i < m.outcome.HitsFound; i++ {
			progress(i+1, m.outcome.HitsFound)
		}
	}
	return m.outcome, nil
}

func (m *mockFinder) Saved(_ context.Context, limit int) ([]domain.StoredRow, error) {
	if m.savedErr != nil {
		return nil, m.savedErr
	}
	if limit > 0 && len(m.rows) > limit {
		return m.rows[:limit], nil
	}
	return m.rows, nil
}

func (m *mockFinder) Export(_ context.Context, w io.Writer) error {
	if m.exportErr != nil {
		return m.exportErr
	}
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"ID", "Query", "Title", "Link", "Content"})
	for _, row := range m.rows {
		_ = cw.Write([]string{strconv.FormatInt(row.ID, 10), row.Query, row.Title, row.Link, row.Content})
	}
	cw.Flush()
	return cw.Error()
}

// mockConfig implements driven.ConfigStore for testing.
type mockConfig struct {
	data map[string]any
}

func newMockConfig() *mockConfig {
	return &mockConfig{data: map[string]any{"serpapi.api_key": "test-key"}}
}

func (m *mockConfig) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfig) GetString(key string) string {
	if s, ok := m.data[key].(string); ok {
		return s
	}
	return ""
}

func (m *mockConfig) GetInt(key string) int {
	if n, ok := m.data[key].(int); ok {
		return n
	}
	return 0
}

func (m *mockConfig) GetBool(key string) bool {
	if b, ok := m.data[key].(bool); ok {
		return b
	}
	return false
}

func (m *mockConfig) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *mockConfig) Save() error { return nil }
func (m *mockConfig) Load() error { return nil }
func (m *mockConfig) Path() string {
	return "/tmp/edufind-test/config.toml"
}

// --- Test helpers ---

// setupTestServices injects mock services and restores the previous
// wiring on cleanup.
func setupTestServices(t *testing.T, finder driving.FinderService) {
	t.Helper()
	oldFinder, oldConfig, oldStore := finderService, configStore, resultStore
	finderService = finder
	configStore = newMockConfig()
	resultStore = nil
	t.Cleanup(func() {
		finderService, configStore, resultStore = oldFinder, oldConfig, oldStore
	})
}

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
