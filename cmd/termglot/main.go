// Termglot translates a terminology workbook into a chosen set of languages
// and formats each output column with a font its script can actually render.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/termglot/termglot/internal/config"
	"github.com/termglot/termglot/internal/fontget"
	"github.com/termglot/termglot/internal/fonts"
	"github.com/termglot/termglot/internal/langs"
	"github.com/termglot/termglot/internal/service"
	"github.com/termglot/termglot/internal/translate"
	"github.com/termglot/termglot/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "termglot",
	Short: "Translate a terminology workbook into many languages",
	Long: `Termglot reads a source workbook, translates its word and description
columns into the selected languages, and writes a glossary workbook whose
columns are styled with fonts the host can render.

Languages are selected with --langs ("all" or comma-separated ids); without
the flag an interactive menu is shown.`,
	SilenceUsage: true,
	RunE:         runTranslate,
}

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "Download the Noto fonts the glossary languages need",
	RunE:  runFetchFonts,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("fonts-dir", "", "font directory to scan (and download into)")

	rootCmd.Flags().StringP("langs", "l", "", `language selection: "all" or comma-separated ids`)
	rootCmd.Flags().StringP("input", "i", "", "source workbook path")
	rootCmd.Flags().StringP("output", "o", "", "output workbook path")
	rootCmd.Flags().String("cron", "", "cron expression for unattended re-runs")

	rootCmd.AddCommand(fontsCmd)
}

func main() {
	// A local .env is optional; missing is the normal case.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	langsFlag, _ := cmd.Flags().GetString("langs")
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	fontsDir, _ := cmd.Flags().GetString("fonts-dir")
	cronExpr, _ := cmd.Flags().GetString("cron")

	return config.NewFromEnv(
		config.WithLanguages(langsFlag),
		config.WithInputFile(input),
		config.WithOutputFile(output),
		config.WithFontsDir(fontsDir),
		config.WithCronExpr(cronExpr),
	)
}

func runTranslate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	selection := cfg.Translate.Languages
	if selection == "" {
		selection, err = promptSelection(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}
	specs, err := langs.ParseSelection(selection)
	if err != nil {
		return err
	}
	targets := langs.Targets(specs)

	index := fonts.NewIndex()
	if n, err := index.Scan(cfg.Fonts.Dir, true); err != nil {
		log.Warn("Could not scan %s: %v", cfg.Fonts.Dir, err)
	} else {
		log.Info("Indexed %d font files from %s", n, cfg.Fonts.Dir)
	}
	if cfg.Fonts.SystemDir != "" {
		if n, err := index.Scan(cfg.Fonts.SystemDir, false); err != nil {
			log.Warn("Could not scan %s: %v", cfg.Fonts.SystemDir, err)
		} else {
			log.Info("Indexed %d font files from %s", n, cfg.Fonts.SystemDir)
		}
	}
	if index.Len() == 0 {
		log.Warn("No fonts found; run 'termglot fonts' to download them, columns keep the fallback font")
	}

	provider, err := translate.NewGoogleTranslator(translate.GoogleConfig{
		APIURL:  cfg.Translate.APIURL,
		Timeout: cfg.Translate.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	svc := service.New(*cfg, provider, fonts.NewResolver(index, nil))

	if cfg.Schedule.CronExpr != "" {
		c := cron.New()
		runnable := service.NewRunnableGlossaryService(svc, targets, cfg.Schedule.CronExpr, c)
		if err := runnable.Schedule(cmd.Context()); err != nil {
			return fmt.Errorf("failed to schedule runs: %w", err)
		}
		c.Run()
		return nil
	}

	return svc.Run(cmd.Context(), targets)
}

// promptSelection shows the language menu and reads one selection line.
func promptSelection(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "Available languages:")
	for _, spec := range langs.All() {
		fmt.Fprintf(out, "  %2d. %s\n", spec.ID, spec.Name)
	}
	fmt.Fprintf(out, "\nEnter language numbers separated by commas, or 'all': ")

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read language selection: %w", err)
	}
	return line, nil
}

func runFetchFonts(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	count, err := fontget.NewDownloader().FetchAll(cmd.Context(), cfg.Fonts.Dir)
	if err != nil {
		return err
	}
	log.Info("Font directory %s now holds %d font files", cfg.Fonts.Dir, count)
	return nil
}
