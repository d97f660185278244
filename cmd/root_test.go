package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuriiter/bikeshare/pkg/config"
)

const tripsCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1,2017-01-02 08:00:00,2017-01-02 08:10:00,600,Canal St,Clark St,Subscriber
2,2017-01-03 09:00:00,2017-01-03 09:20:00,1200,Clark St,Canal St,Customer
`

// newTestRootCmd isolates the environment and wires scripted stdin.
func newTestRootCmd(t *testing.T, input string, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	t.Setenv(config.EnvDataDir, "")
	t.Setenv(config.EnvBaseURL, "")

	var out bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	return rootCmd, &out
}

func writeData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte(tripsCSV), 0o600))
	return dir
}

func TestRoot_InteractiveSession(t *testing.T) {
	dir := writeData(t)
	rootCmd, out := newTestRootCmd(t, "chicago\nnone\nyes\nno\n", "--data-dir", dir, "--color", "never")
	require.NoError(t, rootCmd.Execute())

	got := out.String()
	assert.Contains(t, got, "Most common month: January\n")
	assert.Contains(t, got, "Total travel time: 0 days 00:30:00\n")
	assert.Contains(t, got, "Mean travel time for a trip: 0 days 00:15:00\n")
	assert.Contains(t, got, "Trips counted: 2\n")
	assert.Contains(t, got, "No gender data to share.\n")
	assert.Contains(t, got, "Canal St")
	assert.Contains(t, got, "Would you like to restart?")
}

func TestRoot_PageSizeFromConfigFile(t *testing.T) {
	dir := writeData(t)
	cfgPath := filepath.Join(t.TempDir(), "bikeshare.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("page_size: 1\ndata_dir: "+dir+"\n"), 0o600))

	rootCmd, out := newTestRootCmd(t, "chicago\nnone\nyes\nno\nno\n", "--config", cfgPath)
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Would you like to see 1 more rows of the raw data? yes/no")
}

func TestRoot_InvalidFlags(t *testing.T) {
	rootCmd, _ := newTestRootCmd(t, "", "--page-size", "0")
	err := rootCmd.Execute()
	require.EqualError(t, err, "invalid config: page size must be at least 1, got 0")

	rootCmd, _ = newTestRootCmd(t, "", "--color", "rainbow")
	require.Error(t, rootCmd.Execute())

	rootCmd, _ = newTestRootCmd(t, "", "unexpected")
	require.Error(t, rootCmd.Execute())
}

func TestRoot_MissingDataFile(t *testing.T) {
	rootCmd, _ := newTestRootCmd(t, "washington\nnone\n", "--data-dir", t.TempDir())
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCitiesCmd(t *testing.T) {
	rootCmd, out := newTestRootCmd(t, "", "cities", "--data-dir", "/data")
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t,
		"chicago        /data/chicago.csv\n"+
			"new york city  /data/new_york_city.csv\n"+
			"washington     /data/washington.csv\n",
		out.String())

	rootCmd, out = newTestRootCmd(t, "", "cities", "--base-url", "https://example.com/bikeshare/")
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "https://example.com/bikeshare/chicago.csv")
}

func TestCitiesCmd_AbsolutePathFromConfig(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "chi.csv")
	cfgPath := filepath.Join(t.TempDir(), "bikeshare.yaml")
	cfgYAML := "data_dir: /data\ncities:\n  chicago: " + abs + "\n  washington: washington.csv\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o600))

	rootCmd, out := newTestRootCmd(t, "", "cities", "--config", cfgPath)
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "chicago     "+abs+"\n")
	assert.Contains(t, out.String(), "washington  /data/washington.csv\n")
	assert.NotContains(t, out.String(), "/data"+abs)
}

func TestVersionCmd(t *testing.T) {
	rootCmd, out := newTestRootCmd(t, "", "version")
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "bikeshare version dev (commit: none)\n", out.String())
}
