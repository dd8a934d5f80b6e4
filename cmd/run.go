package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/ai"
	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/ai/gemini"
	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/logger"
	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/matching"
	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/procurement"
	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/report"
	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/secrets"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptGenerate       = "Generate scope document"
	PromptReportByVendor = "Report by vendors"
	PromptResultsToFile  = "Dump match results to file"
	PromptExit           = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptGenerate, PromptReportByVendor, PromptResultsToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the matching workflow and generate the procurement scope",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("items", "items.csv", "bill of materials CSV")
	runCmd.Flags().String("vendors", "vendors.csv", "vendor master list CSV")
	runCmd.Flags().String("historical", "", "historical procurement CSV for specification recommendations")
	runCmd.Flags().String("project-rules", "", "project rules markdown file")
	runCmd.Flags().String("reference-date", "", "reference date for urgency (YYYY-MM-DD, default today)")
	runCmd.Flags().IntP("workers", "w", 0, "number of items matched in parallel")
	runCmd.Flags().BoolP("auto-approve", "y", false, "generate the scope document without asking")
	runCmd.Flags().StringP("output-dir", "o", "", "directory for exported files (default from config, then current directory)")
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	runID := uuid.NewString()
	logger = loggerWithRunID(logger, runID)

	logger.Info("starting the procurement-scope run", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	policy, err := buildPolicy(config.Policy)
	if err != nil {
		logger.Fatal("building the matching policy", zap.Error(err))
	}

	referenceDate, err := resolveReferenceDate(cmd)
	if err != nil {
		logger.Fatal("parsing reference date", zap.Error(err))
	}

	items, err := procurement.LoadItems(cmd.Flag("items").Value.String())
	if err != nil {
		logger.Fatal("loading items", zap.Error(err))
	}
	logger.Info("loaded items", zap.Int("count", items.Len()))

	vendors, err := procurement.LoadVendors(cmd.Flag("vendors").Value.String())
	if err != nil {
		logger.Fatal("loading vendors", zap.Error(err))
	}
	logger.Info("loaded vendors", zap.Int("count", vendors.Len()))

	if items.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no items to match"))
		return
	}

	engine := matching.NewEngine(policy, referenceDate, logger)
	if workers, err := cmd.Flags().GetInt("workers"); err == nil && workers > 0 {
		engine.SetWorkers(workers)
	}

	results, err := engine.MatchAll(ctx, items, vendors)
	if err != nil {
		logger.Fatal("matching failed", zap.Error(err))
	}

	specs := recommendSpecs(cmd, items, logger)

	rows := report.BuildScopedItems(results, items, vendors, specs)
	report.AssessRisk(rows)
	report.EstimateCosts(rows, nil)

	summary := report.Summarize(runID, results, vendors.Len(), time.Now().UTC())
	logger.Info("workflow summary",
		zap.Int("items", summary.TotalItems),
		zap.Int("matched", summary.Matched),
		zap.Int("no_eligible_vendor", summary.Unmatched),
		zap.Int("skipped", summary.Skipped),
	)

	narrator := prepareNarrator(ctx, config.AI, logger)

	autoApprove, _ := cmd.Flags().GetBool("auto-approve")
	action := PromptGenerate
	for {
		if !autoApprove {
			var err error
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		err := handleAction(ctx, action, &runContext{
			cmd:      cmd,
			config:   config,
			logger:   logger,
			results:  results,
			rows:     rows,
			summary:  summary,
			vendors:  vendors,
			narrator: narrator,
		})
		if errors.Is(err, errExit) {
			return
		}
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if autoApprove {
			return
		}
	}
}

// runContext bundles everything the interactive actions operate on.
type runContext struct {
	cmd      *cobra.Command
	config   *Config
	logger   *zap.Logger
	results  []*matching.MatchResult
	rows     []*report.ScopedItem
	summary  *report.RunSummary
	vendors  *procurement.Vendors
	narrator *gemini.Narrator
}

func handleAction(ctx context.Context, action string, rc *runContext) error {
	switch action {
	case PromptGenerate:
		return generate(ctx, rc)
	case PromptReportByVendor:
		pretty, _ := json.MarshalIndent(report.ByVendor(rc.results, rc.vendors), "", "  ")
		rc.logger.Info(string(pretty), zap.Int("matched count", rc.summary.Matched))
		return nil
	case PromptResultsToFile:
		filename, err := report.DumpResultsToTmpFile(rc.results)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		rc.logger.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		rc.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// generate narrates the justifications, composes the scope document and
// writes every export artifact.
func generate(ctx context.Context, rc *runContext) error {
	narrateJustifications(ctx, rc)

	projectRules, err := loadProjectRules(rc.cmd)
	if err != nil {
		return err
	}

	var composer ai.ScopeComposer
	if rc.narrator != nil {
		composer = rc.narrator
	}

	userPrompt := ""
	if rc.config.Project != nil {
		userPrompt = rc.config.Project.Prompt
	}

	doc, err := report.ComposeScopeDocument(ctx, composer, rc.summary, rc.rows, projectRules, userPrompt)
	if err != nil {
		rc.logger.Warn("scope composition failed; falling back to local rendering", zap.Error(err))
		doc, _ = report.ComposeScopeDocument(ctx, nil, rc.summary, rc.rows, projectRules, userPrompt)
	}

	outputDir := resolveOutputDir(rc.cmd, rc.config)
	baseName := "scope_document"
	if rc.config.Export != nil && rc.config.Export.BaseName != "" {
		baseName = rc.config.Export.BaseName
	}

	now := time.Now().UTC()
	docPath := filepath.Join(outputDir, fmt.Sprintf("%s_%s.md", baseName, now.Format("20060102_150405")))
	if err := os.WriteFile(docPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing scope document: %w", err)
	}

	exports, err := report.Export(outputDir, baseName, rc.rows, now)
	if err != nil {
		return fmt.Errorf("exporting scoped items: %w", err)
	}
	exports["markdown"] = docPath

	for format, path := range exports {
		rc.logger.Info("exported artifact", zap.String("format", format), zap.String("path", path))
	}

	return errExit
}

func narrateJustifications(ctx context.Context, rc *runContext) {
	if rc.narrator == nil {
		return
	}

	byItem := make(map[string]*matching.MatchResult, len(rc.results))
	for _, result := range rc.results {
		byItem[result.ItemName] = result
	}

	for _, row := range rc.rows {
		result := byItem[row.ItemName]
		if result == nil || result.Facts == nil {
			continue
		}

		text, err := rc.narrator.Justify(ctx, result.Facts)
		if err != nil {
			rc.logger.Warn("justification narration failed",
				zap.String("item_id", result.ItemID),
				zap.Error(err),
			)
			continue
		}
		row.Justification = text
	}
}

func buildPolicy(cfg *PolicyConfig) (*matching.Policy, error) {
	if cfg == nil {
		return matching.NewPolicy(matching.Policy{})
	}
	return matching.NewPolicy(matching.Policy{
		UrgencyWindowDays:      cfg.UrgencyWindowDays,
		UrgentLeadTimeCeiling:  cfg.UrgentLeadTimeCeiling,
		LeadTimeThreshold:      cfg.LeadTimeThreshold,
		RedFlagLeadTimeCeiling: cfg.RedFlagLeadTimeCeiling,
		MinRelevance:           cfg.MinRelevance,
		PreferredRegions:       cfg.PreferredRegions,
	})
}

func resolveReferenceDate(cmd *cobra.Command) (time.Time, error) {
	raw := strings.TrimSpace(cmd.Flag("reference-date").Value.String())
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return matching.ParseDeliveryDate(raw)
}

func resolveOutputDir(cmd *cobra.Command, config *Config) string {
	if dir := strings.TrimSpace(cmd.Flag("output-dir").Value.String()); dir != "" {
		return dir
	}
	if config.Export != nil && config.Export.Dir != "" {
		return config.Export.Dir
	}
	return "."
}

func recommendSpecs(cmd *cobra.Command, items *procurement.Items, log *zap.Logger) []*procurement.SpecRecommendation {
	path := strings.TrimSpace(cmd.Flag("historical").Value.String())
	if path == "" {
		return nil
	}

	history, err := procurement.LoadHistory(path)
	if err != nil {
		log.Warn("skipping specification recommendations", zap.Error(err))
		return nil
	}

	specs := history.RecommendSpecs(items)
	log.Info("generated specification recommendations",
		zap.Int("count", len(specs)),
		zap.Int("historical_records", history.Len()),
	)
	return specs
}

func loadProjectRules(cmd *cobra.Command) (string, error) {
	path := strings.TrimSpace(cmd.Flag("project-rules").Value.String())
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading project rules: %w", err)
	}
	return string(data), nil
}

func prepareNarrator(ctx context.Context, config *AIConfig, log *zap.Logger) *gemini.Narrator {
	if config == nil || !config.Enabled {
		return nil
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		log.Warn("skipping narration", zap.String("reason", "unsupported ai provider"), zap.String("provider", config.Provider))
		return nil
	}

	if config.Gemini == nil {
		log.Warn("skipping narration", zap.String("reason", "gemini configuration is required when ai is enabled"))
		return nil
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		log.Warn("skipping narration",
			zap.Error(err),
			zap.String("hint", "set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY"),
		)
		return nil
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model)
	if err != nil {
		log.Warn("skipping narration", zap.Error(err))
		return nil
	}

	narratorLogger := logger.WithAIFields(log, "gemini", generator.Model())

	return gemini.NewNarrator(generator, narratorLogger, config.Gemini.MaxRetries, config.Gemini.MaxLogLength)
}

func loggerWithRunID(log *zap.Logger, runID string) *zap.Logger {
	return logger.WithRunID(log, runID)
}
