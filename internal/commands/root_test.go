package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestRoot_RejectsUnknownOutput(t *testing.T) {
	err := execute("--output", "xml", "schema", "init")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestMigrateDown_RequiresConfirmation(t *testing.T) {
	err := execute("migrate", "down")
	assert.ErrorIs(t, err, errDownNotConfirmed)
}

func TestTransactionPost_RequiresFlags(t *testing.T) {
	err := execute("transaction", "post", "--amount", "10")
	assert.ErrorContains(t, err, "required flag")
}

func TestAccountRegister_RejectsDirection(t *testing.T) {
	err := execute("account", "register", "Assets.Bank", "--increase-on", "sideways")
	assert.Error(t, err)
}

func TestRoot_HasCommandTree(t *testing.T) {
	root := NewRootCommand()
	for _, path := range [][]string{
		{"migrate", "up"},
		{"migrate", "down"},
		{"schema", "init"},
		{"account", "register"},
		{"account", "descendants"},
		{"transaction", "post"},
		{"tx", "list"},
		{"transaction", "delete"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestPostFlags_Create(t *testing.T) {
	dir := t.TempDir()
	receipt := filepath.Join(dir, "receipt.txt")
	require.NoError(t, os.WriteFile(receipt, []byte("paid"), 0o600))

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f := &postFlags{
		amount:      "12.34",
		currency:    "USD",
		description: "lunch",
		debit:       "Food",
		credit:      "Cash",
		tags:        []string{"meal"},
		attachments: []string{receipt},
	}

	create, err := f.create(now)
	require.NoError(t, err)
	assert.Equal(t, "12.34", create.Amount.String())
	assert.Equal(t, now, create.Date)
	require.NotNil(t, create.Description)
	assert.Equal(t, "lunch", *create.Description)
	require.Len(t, create.Attachments, 1)
	assert.Equal(t, "receipt.txt", create.Attachments[0].Name)
	assert.True(t, bytes.Equal([]byte("paid"), create.Attachments[0].Data))

	f.date = "2024-02-29"
	create, err = f.create(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), create.Date)
}

func TestPostFlags_CreateErrors(t *testing.T) {
	now := time.Now()

	_, err := (&postFlags{amount: "ten"}).create(now)
	assert.ErrorContains(t, err, "--amount")

	_, err = (&postFlags{amount: "1", date: "yesterday"}).create(now)
	assert.ErrorContains(t, err, "--date")

	_, err = (&postFlags{amount: "1", attachments: []string{filepath.Join(t.TempDir(), "missing")}}).create(now)
	assert.ErrorContains(t, err, "reading attachment")
}

func TestListFlags_DateRange(t *testing.T) {
	_, _, ok, err := (&listFlags{}).dateRange()
	assert.NoError(t, err)
	assert.False(t, ok)

	start, end, ok, err := (&listFlags{start: "2024-01-01", end: "2024-01-31T23:59:59Z"}).dateRange()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), end)

	_, _, _, err = (&listFlags{start: "2024-01-01"}).dateRange()
	assert.Error(t, err)

	_, _, _, err = (&listFlags{start: "2024-02-01", end: "2024-01-01"}).dateRange()
	assert.ErrorContains(t, err, "before")
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"0", "-3", "abc"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}
