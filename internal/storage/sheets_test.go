package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/ytget/habit-tracker/internal/model"
)

const testSpreadsheetID = "sheet-123"

// fakeSheets is a minimal in-memory stand-in for the Sheets REST API.
type fakeSheets struct {
	mu          sync.Mutex
	values      [][]interface{}
	probeStatus int
	failWrite   bool
	clears      int
}

func (f *fakeSheets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	path := r.URL.Path
	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/spreadsheets/"+testSpreadsheetID):
		if f.probeStatus != 0 {
			writeAPIError(w, f.probeStatus)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"spreadsheetId": testSpreadsheetID})
	case r.Method == http.MethodPost && strings.HasSuffix(path, ":clear"):
		f.clears++
		f.values = nil
		json.NewEncoder(w).Encode(map[string]string{"spreadsheetId": testSpreadsheetID})
	case r.Method == http.MethodPut && strings.Contains(path, "/values/"):
		if f.failWrite {
			writeAPIError(w, http.StatusInternalServerError)
			return
		}
		var body struct {
			Values [][]interface{} `json:"values"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeAPIError(w, http.StatusBadRequest)
			return
		}
		f.values = body.Values
		json.NewEncoder(w).Encode(map[string]interface{}{"spreadsheetId": testSpreadsheetID, "updatedRows": len(body.Values)})
	case r.Method == http.MethodGet && strings.Contains(path, "/values/"):
		json.NewEncoder(w).Encode(map[string]interface{}{
			"range":          "Sheet1!A1:L31",
			"majorDimension": "ROWS",
			"values":         f.values,
		})
	default:
		writeAPIError(w, http.StatusNotFound)
	}
}

func writeAPIError(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{"code": code, "message": http.StatusText(code)},
	})
}

func openFakeSheets(t *testing.T, fake *fakeSheets) (*Sheets, error) {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return OpenSheets(context.Background(), testSpreadsheetID, []option.ClientOption{
		option.WithEndpoint(srv.URL + "/"),
		option.WithoutAuthentication(),
	})
}

func TestSheets_SaveLoad(t *testing.T) {
	fake := &fakeSheets{}
	store, err := openFakeSheets(t, fake)
	require.NoError(t, err)
	assert.Equal(t, testSpreadsheetID, store.SpreadsheetID())

	table := sampleTable(t)
	require.NoError(t, store.Save(context.Background(), table))
	assert.Equal(t, 1, fake.clears)
	require.Len(t, fake.values, model.ChallengeDays+1)
	assert.Equal(t, "Day", fake.values[0][0])

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestSheets_LoadBooleanCells(t *testing.T) {
	fake := &fakeSheets{}
	store, err := openFakeSheets(t, fake)
	require.NoError(t, err)

	rows := model.Serialize(model.Create(testStart))
	fake.values = make([][]interface{}, len(rows))
	for i, row := range rows {
		fake.values[i] = make([]interface{}, len(row))
		for j, v := range row {
			fake.values[i][j] = v
		}
	}
	fake.values[3][2] = true
	fake.values[3][3] = "True"

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Days[2].Flag(model.Facebook))
	assert.True(t, got.Days[2].Flag(model.Instagram))
	assert.Equal(t, 2, got.Days[2].Posts())
}

func TestSheets_LoadMalformedHeader(t *testing.T) {
	fake := &fakeSheets{values: [][]interface{}{{"Date", "Facebook"}, {"2026-10-01", "TRUE"}}}
	store, err := openFakeSheets(t, fake)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, model.ErrFormat)
}

func TestSheets_WriteFailureLeavesRemoteCleared(t *testing.T) {
	fake := &fakeSheets{}
	store, err := openFakeSheets(t, fake)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), sampleTable(t)))

	fake.failWrite = true
	err = store.Save(context.Background(), sampleTable(t))
	assert.ErrorIs(t, err, ErrDestinationUnavailable)
	assert.Empty(t, fake.values)
}

func TestSheets_ProbeRejected(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound} {
		_, err := openFakeSheets(t, &fakeSheets{probeStatus: code})
		assert.ErrorIs(t, err, ErrAuth, "status %d", code)
	}

	_, err := openFakeSheets(t, &fakeSheets{probeStatus: http.StatusServiceUnavailable})
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestConnectSheets_MalformedCredential(t *testing.T) {
	_, err := ConnectSheets(context.Background(), []byte("{not json"), testSpreadsheetID)
	assert.ErrorIs(t, err, ErrAuth)

	_, err = ConnectSheets(context.Background(), []byte(`{"type":"mystery"}`), testSpreadsheetID)
	assert.ErrorIs(t, err, ErrAuth)
}

func TestOpenSheets_NoSpreadsheet(t *testing.T) {
	_, err := OpenSheets(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrAuth)
}
