package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/texflat/texflat/internal/assemble"
	"github.com/texflat/texflat/internal/bib"
	"github.com/texflat/texflat/internal/config"
	"github.com/texflat/texflat/internal/project"
	"github.com/texflat/texflat/internal/tex"
	"github.com/texflat/texflat/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "texflat [path]",
	Short: "Flatten a LaTeX project into a single file",
	Long: `Expands a LaTeX project into one self-contained .tex file.

All \input, \include, \InputIfFileExists and \subfile directives are
inlined recursively, and the BibTeX entries for every cited key are
appended so the result carries its own references.

Pass a .tex file, or a directory to search for the main document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFlatten,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("output", "o", "", `Output file ("-" for stdout)`)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("no-bib", false, "Skip bibliography processing")
	rootCmd.PersistentFlags().Int("max-depth", tex.DefaultMaxDepth, "Maximum include nesting depth")
	rootCmd.PersistentFlags().Bool("pick", false, "Pick the main file interactively when several qualify")

	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func runFlatten(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	// Flag overrides on top of config
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		config.SetVerbose(true)
	}
	if nb, _ := cmd.Flags().GetBool("no-bib"); nb {
		config.SetNoBib(true)
	}
	if p, _ := cmd.Flags().GetBool("pick"); p {
		config.SetPick(true)
	}
	if cmd.Flags().Changed("max-depth") {
		depth, _ := cmd.Flags().GetInt("max-depth")
		config.SetMaxDepth(depth)
	}

	log.SetReportTimestamp(false)
	if config.GetVerbose() {
		log.SetLevel(log.DebugLevel)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("path error: %w", err)
	}

	mainFile := absPath
	if info.IsDir() {
		mainFile, err = project.FindMainFile(absPath)
		if err != nil {
			return err
		}
		if config.GetPick() {
			if candidates := project.FindCandidates(absPath); len(candidates) > 1 {
				mainFile = ui.PickMainFile(candidates, mainFile)
			}
		}
	}

	log.Info("processing main file", "path", mainFile)

	outPath := assemble.OutputPath(mainFile, config.GetOutput())
	if outPath != "-" {
		log.Info("output target", "path", outPath)
	}

	expander := tex.NewExpander()
	expander.MaxDepth = config.GetMaxDepth()
	lines := expander.Expand(mainFile)
	log.Info("expanded document", "lines", len(lines))

	doc := &assemble.Document{Lines: lines}
	summary := ui.Summary{MainFile: mainFile, Output: outPath, Lines: len(lines)}

	if !config.GetNoBib() {
		citations := tex.ExtractCitations(lines)
		log.Info("unique citations", "count", len(citations))
		summary.Citations = len(citations)

		if len(citations) > 0 {
			bibFiles := project.FindBibFiles(filepath.Dir(mainFile))
			log.Info("bibliography files", "count", len(bibFiles))
			summary.BibFiles = len(bibFiles)

			dbs := make([]*bib.Database, 0, len(bibFiles))
			for _, bibFile := range bibFiles {
				db, err := bib.ParseFile(bibFile)
				if err != nil {
					log.Error("error reading bibliography", "path", bibFile, "err", err)
					continue
				}
				dbs = append(dbs, db)
			}

			res := bib.Resolve(citations, dbs)
			doc.BibEntries = res.Entries
			summary.Missing = res.Missing
		}
	}

	if err := assemble.Write(doc, outPath); err != nil {
		return err
	}

	if outPath == "-" {
		summary.Output = "stdout"
	}
	fmt.Fprintln(os.Stderr, summary.Render())
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
