package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"conjugator/internal/dataset"
	"conjugator/internal/domain"
	"conjugator/internal/drill"
	"conjugator/internal/preferences"
	"conjugator/internal/quiz"
	"conjugator/internal/repository/sqlite"
	"conjugator/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// localUserID owns the preference rows of the terminal drill
const localUserID int64 = 1

var rootCmd = &cobra.Command{
	Use:          "drill",
	Short:        "Practice Japanese verb conjugations in the terminal",
	Long:         "Drill shows one verb and a conjugation at a time. Type the answer, or press Enter to reveal it in reveal mode. Type :q to quit.",
	SilenceUsage: true,
	RunE:         runDrill,
}

func init() {
	addFlags(rootCmd)
}

func addFlags(cmd *cobra.Command) {
	cmd.Flags().String("db", "", "Path to SQLite preferences file (default is under the user config dir)")
	cmd.Flags().String("dataset", "", "Path to a JSON verb dataset (default is the bundled one)")
	cmd.Flags().String("script", "", "Writing system: kanji, hiragana or romaji")
	cmd.Flags().StringSlice("categories", nil, "Conjugations to practice, comma separated; switches to specific practice")
	cmd.Flags().StringSlice("words", nil, "Words to practice by kanji, comma separated; empty for all words")
	cmd.Flags().Bool("all", false, "Practice every conjugation")
	cmd.Flags().Bool("reveal", false, "Reveal answers instead of typing them")
	cmd.Flags().Bool("type", false, "Type answers")
	cmd.Flags().Int("rounds", 0, "Number of cards, 0 for no limit")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.MarkFlagsMutuallyExclusive("categories", "all")
	cmd.MarkFlagsMutuallyExclusive("reveal", "type")
}

func runDrill(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	db, err := sqlite.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer db.Close()

	logger.Debug("Preferences opened", zap.String("path", dbPath))

	datasetPath, _ := cmd.Flags().GetString("dataset")
	words, err := dataset.Load(datasetPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	store := preferences.NewRepoStore(sqlite.NewPreferenceRepo(db), localUserID, logger)
	if err := applyFlags(cmd, store, words); err != nil {
		return err
	}

	engine := quiz.NewEngine(words, quiz.NewRandomChooser())
	quizService := service.NewQuizService(engine, func(int64) preferences.Store { return store }, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rounds, _ := cmd.Flags().GetInt("rounds")
	stats, err := drill.New(quizService, localUserID, logger).Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), rounds)
	fmt.Fprintln(cmd.OutOrStdout(), drill.Summary(stats))
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// applyFlags writes explicitly set flags over the stored preferences
func applyFlags(cmd *cobra.Command, store preferences.Store, words []domain.WordEntry) error {
	flags := cmd.Flags()
	cfg := preferences.LoadConfig(store)

	if flags.Changed("script") {
		name, _ := flags.GetString("script")
		ws, ok := domain.ParseWritingSystem(strings.ToLower(name))
		if !ok {
			return fmt.Errorf("unknown writing system %q", name)
		}
		cfg.WritingSystem = ws
	}

	if flags.Changed("categories") {
		names, _ := flags.GetStringSlice("categories")
		cats, err := parseCategories(names)
		if err != nil {
			return err
		}
		cfg.Mode = domain.ModeSpecific
		cfg.Categories = cats
	}

	if flags.Changed("words") {
		names, _ := flags.GetStringSlice("words")
		keys := make([]string, 0, len(names))
		for _, name := range names {
			key := strings.TrimSpace(name)
			if _, ok := dataset.Find(words, key); !ok {
				return fmt.Errorf("unknown word %q, expected one of: %s", key, strings.Join(dataset.Keys(words), ", "))
			}
			keys = append(keys, key)
		}
		preferences.SaveSelectedWords(store, keys)
	}

	if all, _ := flags.GetBool("all"); all {
		cfg.Mode = domain.ModeAll
	}
	if reveal, _ := flags.GetBool("reveal"); reveal {
		cfg.AnswerMode = domain.AnswerReveal
	}
	if typed, _ := flags.GetBool("type"); typed {
		cfg.AnswerMode = domain.AnswerType
	}

	preferences.SaveConfig(store, cfg)
	return nil
}

func parseCategories(names []string) ([]domain.Category, error) {
	var cats []domain.Category
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		c, ok := domain.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("unknown conjugation %q, expected one of: %s", name, categoryNames())
		}
		cats = append(cats, c)
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("no conjugations given, expected one of: %s", categoryNames())
	}
	return cats, nil
}

func categoryNames() string {
	names := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// resolveDBPath returns the --db flag when set, else the default path
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return sqlite.DefaultPath()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}
