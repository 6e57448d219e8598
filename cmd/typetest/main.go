// Package main provides the CLI entrypoint for typetest.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/termkit/internal/config"
	"github.com/verte-zerg/termkit/internal/generator"
	"github.com/verte-zerg/termkit/internal/logging"
	"github.com/verte-zerg/termkit/internal/model"
	"github.com/verte-zerg/termkit/internal/quiz"
	"github.com/verte-zerg/termkit/internal/tui"
	"github.com/verte-zerg/termkit/internal/wordapi"
	"github.com/verte-zerg/termkit/internal/wordlist"
)

const wordListLang = "en"

var (
	wordListPath string
	timeout      time.Duration
	logLevel     string
	configPath   string
	envPath      string
)

// wordSource yields the word for one quiz round.
type wordSource interface {
	FetchRandomWord(ctx context.Context) (model.WordRecord, error)
}

// quizRunner captures one typing attempt.
type quizRunner func(ctx context.Context, word model.WordRecord, opts tui.Options) (*quiz.Session, error)

var runQuiz quizRunner = tui.Run

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typetest",
		Short:         "Retype a random word and get scored",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runQuizCmd,
	}

	rootCmd.Flags().StringVar(&wordListPath, "wordlist", "", "pick the word from a local file instead of the API")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "word API request timeout (0 keeps the transport default)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/termkit/config.toml)")
	rootCmd.PersistentFlags().StringVar(&envPath, "env-file", "", "extra .env file to load before the environment is read")

	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return config.Edit(resolveConfigPath())
		},
	}
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	envFiles := []string{config.DefaultEnvPath(), ".env"}
	if envPath != "" {
		envFiles = append([]string{envPath}, envFiles...)
	}
	if err := config.LoadEnv(envFiles...); err != nil {
		return fmt.Errorf("failed to load env: %w", err)
	}
	fileCfg, err := config.LoadConfig(resolveConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	level, format := config.ResolveLog(fileCfg)
	if logLevel != "" {
		level = logLevel
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return err
	}

	cfg, err := config.ResolveQuiz(fileCfg)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("wordlist") {
		cfg.WordListPath = wordListPath
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = timeout
	}
	if err := config.ValidateQuiz(cfg); err != nil {
		return err
	}

	src, err := newWordSource(cfg, logger)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	word, err := src.FetchRandomWord(ctx)
	if errors.Is(err, wordapi.ErrRemoteFetchFailed) {
		if _, werr := fmt.Fprintf(out, "API Request Error: %v\n", err); werr != nil {
			return werr
		}
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to pick word: %w", err)
	}
	logger.Debug("starting quiz", "letters", len([]rune(word.Spelling)))

	session, err := runQuiz(ctx, word, tui.Options{Input: cmd.InOrStdin(), Output: out})
	if err != nil {
		return err
	}
	return printResult(out, word, session, cfg.Calibration())
}

func newWordSource(cfg model.QuizConfig, logger *slog.Logger) (wordSource, error) {
	if cfg.WordListPath == "" {
		return wordapi.NewClient(cfg.URL, cfg.APIKey, cfg.Host, cfg.Timeout, logger), nil
	}
	words, err := wordlist.LoadWords(cfg.WordListPath, wordlist.FilterForLang(wordListLang))
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	logger.Debug("loaded word list", "path", cfg.WordListPath, "words", len(words))
	return generator.NewLocalSource(words, generator.New()), nil
}

func printResult(w io.Writer, word model.WordRecord, session *quiz.Session, cal model.Calibration) error {
	return quiz.RenderResult(w, quiz.Evaluate(word, session, cal))
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}
