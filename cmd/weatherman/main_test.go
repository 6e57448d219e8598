package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/termkit/internal/weather"
)

const header = "PKT,Max TemperatureC,Min TemperatureC,Max Humidity,Mean Humidity\n"

func weatherDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"Murree_weather_2004_Jun.txt": header + "2004-6-1,30,20,80,60\n2004-6-2,35,-2,90,50\n",
		"Murree_weather_2004_Aug.txt": header + "2004-8-1,28,18,95,70\n",
		"Murree_weather_2005_Jun.txt": header + "2005-6-1,,,,\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestYearlyMonthlyGraphInOrder(t *testing.T) {
	dir := weatherDir(t)
	out, _, err := execute(t, dir, "-c", "2004/6", "-e", "2004", "-a", "2004/06", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "\n"+
		"Printing report for: 2004\n"+
		"Highest: 35C on Jun 2\n"+
		"Lowest : -2C on Jun 2\n"+
		"Humidity: 95% on Aug 1\n"+
		"\n"+
		"Printing report for: 2004/06\n"+
		"Highest Average: 32C\n"+
		"Lowest Average: 9C\n"+
		"Average Mean Humidity: 55%\n"+
		"Printing report for: 2004/06\n"+
		"01 "+strings.Repeat("+", 50)+" 20C 30C\n"+
		"02 --"+strings.Repeat("+", 35)+" -2C 35C\n", out)
}

func TestMissingPeriod(t *testing.T) {
	out, _, err := execute(t, weatherDir(t), "-e", "1999", "-a", "2004/07")
	require.NoError(t, err)
	assert.Contains(t, out, "The files for the specified year: 1999 are not present.")
	assert.Contains(t, out, "The files for the specified month: 2004/07 are not present.")
}

func TestEmptyAggregationLogsWarning(t *testing.T) {
	out, errOut, err := execute(t, weatherDir(t), "-a", "2005/6")
	require.NoError(t, err)
	assert.Contains(t, out, "The files for the specified month: 2005/06 are not present.")
	assert.Contains(t, errOut, "no readings to aggregate")
}

func TestInvalidArgumentsFailBeforeReports(t *testing.T) {
	dir := weatherDir(t)
	out, _, err := execute(t, dir, "-e", "2004", "-a", "2004/13")
	require.ErrorIs(t, err, weather.ErrInvalidArgument)
	assert.NotContains(t, out, "Printing report")

	_, _, err = execute(t, filepath.Join(dir, "missing"), "-e", "2004")
	require.ErrorIs(t, err, weather.ErrInvalidArgument)
}

func TestBadColorFlag(t *testing.T) {
	_, _, err := execute(t, weatherDir(t), "-e", "2004", "--color", "sometimes")
	require.Error(t, err)
}
