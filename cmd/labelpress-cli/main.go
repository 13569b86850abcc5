package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"labelpress/labels"
)

type cliOptions struct {
	configPath string
	templateID string
	outputPath string
	outputDir  string
	inputs     []string
	stdout     bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("labelpress-cli: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("labelpress-cli: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to config.json (default: ./config.json)")
	flag.StringVar(&opts.templateID, "template", "", "Label template id (default from config, one of: "+strings.Join(labels.TemplateIDs(), ", ")+")")
	flag.StringVar(&opts.outputPath, "output", "", "PDF file to write (default uses --output-dir/mailing_labels_*.pdf)")
	flag.StringVar(&opts.outputDir, "output-dir", "", "Directory where PDFs are written when --output is omitted")
	flag.BoolVar(&opts.stdout, "stdout", false, "Print per-run summary to STDOUT")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] FILE...\n\nFILE is a CSV, TSV or XLSX spreadsheet of addresses.\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.templateID = strings.TrimSpace(opts.templateID)
	opts.outputPath = strings.TrimSpace(opts.outputPath)
	opts.outputDir = strings.TrimSpace(opts.outputDir)
	opts.inputs = flag.Args()

	if len(opts.inputs) == 0 {
		flag.Usage()
		return opts, errors.New("missing input file argument")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	cfg, err := labels.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	templateID := cfg.TemplateID
	if opts.templateID != "" {
		templateID = opts.templateID
	}
	t, ok := labels.TemplateByID(templateID)
	if !ok {
		return fmt.Errorf("unknown template %q (known: %s)", templateID, strings.Join(labels.TemplateIDs(), ", "))
	}

	rows, err := labels.ParseRowFiles(opts.inputs)
	if err != nil {
		return fmt.Errorf("read input files: %w", err)
	}
	records, stats := labels.CleanRows(rows, cfg.DefaultRecipient)
	if len(records) == 0 {
		return errors.New("input files did not yield any usable addresses")
	}

	outputPath, err := resolveOutputPath(opts.outputPath, opts.outputDir, cfg.OutputDir, t)
	if err != nil {
		return err
	}
	pages, err := labels.ExportPDFFile(records, t, outputPath)
	if err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	fmt.Printf("wrote %d labels (%d pages) to %s\n", len(records), pages, outputPath)

	if opts.stdout {
		printSummary(stats, records)
	}
	return nil
}

func resolveOutputPath(path, dir, cfgDir string, t labels.Template) (string, error) {
	if path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolve output path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		return absPath, nil
	}
	if dir == "" {
		dir = cfgDir
	}
	if dir == "" {
		dir = "pdf"
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return filepath.Join(absDir, labels.ExportFilename(t, time.Now())), nil
}

func printSummary(stats labels.CleanStats, records []labels.LabelRecord) {
	fmt.Printf("rows read: %d\nrejected: %d\nduplicates: %d\nlabels: %d\n",
		stats.Input, stats.Rejected, stats.Duplicates, stats.Kept)
	limit := len(records)
	if limit > 10 {
		limit = 10
	}
	for _, rec := range records[:limit] {
		fmt.Printf("  %s | %s | %s, %s %s\n", rec.Name, rec.Address1, rec.City, rec.State, rec.Zip)
	}
	if len(records) > limit {
		fmt.Printf("  ... and %d more\n", len(records)-limit)
	}
}
