package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/pkg/auth"
)

func run(t *testing.T, args ...string) (string, error) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootRegistersCommands(t *testing.T) {
	root := NewRootCmd()
	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "sweep", "check", "expire-at", "hash-key"}, names)
	assert.NotNil(t, root.PersistentFlags().Lookup("sweep-at"))
}

func TestHashKeyCommand(t *testing.T) {
	out, err := run(t, "hash-key", "operator-secret")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.True(t, auth.KeyHasher{}.CompareKey(hash, "operator-secret"))
}

func TestArgumentValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Check without member", args: []string{"check"}},
		{name: "Check with bad member", args: []string{"check", "abc"}},
		{name: "Expire-at with bad event", args: []string{"expire-at", "0", "2025-01-01"}},
		{name: "Expire-at with bad time", args: []string{"expire-at", "5", "tomorrow"}},
		{name: "Invalid flag value", args: []string{"sweep", "--sweep-at", "noon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseTime("2025-01-01T12:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC), got)
}

func TestReportConsistency(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedOut string
	}{
		{name: "Consistent", err: nil, expectedOut: "member 7: consistent\n"},
		{name: "Not FIFO", err: fmt.Errorf("%w: group 1", domain.ErrNotFifoOrder), expectedOut: "member 7: points were not consumed in first-in-first-out order: group 1\n"},
		{name: "Store failure", err: errors.New("timeout"), expectedOut: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			var out bytes.Buffer
			cmd.SetOut(&out)

			err := reportConsistency(cmd, 7, tt.err)

			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.expectedOut, out.String())
		})
	}
}
