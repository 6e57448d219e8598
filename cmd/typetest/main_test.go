package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/termkit/internal/config"
	"github.com/verte-zerg/termkit/internal/model"
	"github.com/verte-zerg/termkit/internal/quiz"
	"github.com/verte-zerg/termkit/internal/tui"
	"github.com/verte-zerg/termkit/internal/wordapi"
)

// stubQuiz types text with the given backspaces and submits after elapsed.
func stubQuiz(t *testing.T, text string, backspaces int, elapsed time.Duration) {
	t.Helper()
	prev := runQuiz
	t.Cleanup(func() { runQuiz = prev })
	runQuiz = func(_ context.Context, _ model.WordRecord, _ tui.Options) (*quiz.Session, error) {
		clock := clockwork.NewFakeClock()
		s := quiz.NewSession(clock)
		for i := 0; i < backspaces; i++ {
			s.DeleteLast()
		}
		s.Append([]rune(text)...)
		clock.Advance(elapsed)
		s.Submit()
		return s, nil
	}
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvAPIHost, "")
	t.Setenv(config.EnvWordURL, "")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestQuizWithRemoteWord(t *testing.T) {
	isolateEnv(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("x-rapidapi-key"))
		_, _ = w.Write([]byte(`[{"word":"hello","definition":"a greeting","pronunciation":"heh-loh"}]`))
	}))
	defer srv.Close()
	t.Setenv(config.EnvWordURL, srv.URL)
	t.Setenv(config.EnvAPIKey, "secret")
	stubQuiz(t, "hello", 1, 2*time.Second)

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Time Taken by user: 2.00s")
	assert.Contains(t, out, "Accuracy Score 80.00")
	assert.Contains(t, out, "Time Score     44.44")
	assert.Contains(t, out, "Total Score    62.22")
	assert.Contains(t, out, "Definition: a greeting")
	assert.Contains(t, out, "Pronunciation: heh-loh")
}

func TestQuizAPIError(t *testing.T) {
	isolateEnv(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()
	t.Setenv(config.EnvWordURL, srv.URL)
	t.Setenv(config.EnvAPIKey, "secret")
	called := false
	prev := runQuiz
	t.Cleanup(func() { runQuiz = prev })
	runQuiz = func(context.Context, model.WordRecord, tui.Options) (*quiz.Session, error) {
		called = true
		return nil, nil
	}

	out, err := execute(t)
	require.ErrorIs(t, err, wordapi.ErrRemoteFetchFailed)
	assert.Contains(t, out, "API Request Error: ")
	assert.False(t, called)
}

func TestQuizMissingAPIKey(t *testing.T) {
	isolateEnv(t)
	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quiz.api-key")
}

func TestQuizLocalWordList(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Skip\nkiwi\nco-op\n"), 0o600))
	stubQuiz(t, "kiwi", 0, 500*time.Millisecond)

	out, err := execute(t, "--wordlist", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Accuracy Score 100.00")
	assert.Contains(t, out, "Definition: n/a")
	assert.Contains(t, out, "Pronunciation: n/a")
}

func TestQuizCancelled(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("kiwi\n"), 0o600))
	prev := runQuiz
	t.Cleanup(func() { runQuiz = prev })
	runQuiz = func(context.Context, model.WordRecord, tui.Options) (*quiz.Session, error) {
		return nil, tui.ErrCancelled
	}

	out, err := execute(t, "--wordlist", path)
	require.ErrorIs(t, err, tui.ErrCancelled)
	assert.NotContains(t, out, "Total Score")
}
