package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Filtering
	suffix          string
	excludePatterns string
	maxSizeBytes    int64
	maxDepth        int
	showHidden      bool
	noIgnore        bool

	// Output
	outputFile      string
	copyToClipboard bool
	pdfOutputFile   string

	// Token counting
	withTokens bool
	tokenModel string

	// Interactive mode
	interactiveMode bool

	dialects *LoadedDialects
)

// version is the application version, set via ldflags.
var version string = "dev" // Default for local builds

var rootCmd = &cobra.Command{
	Use:   "slocat [PATH]",
	Short: "slocat counts source lines of code in a directory tree.",
	Long: `slocat recursively scans a directory (or a Git repository URL), counts
the non-blank, non-comment lines of every file matching the suffix filter,
and prints a table sorted by count with a total row.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// initConfig and dialect loading are called via cobra.OnInitialize

		// Determine the scan root: argument, interactive picker, or prompt.
		var root string
		var err error
		switch {
		case interactiveMode:
			root, err = runInteractiveFinder(showHidden)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Interactive mode error: %v\n", err)
				os.Exit(1)
			}
			if root == "" {
				// User aborted interactive selection
				os.Exit(0)
			}
		case len(args) > 0:
			root = args[0]
		default:
			root, err = promptForRoot(os.Stdin)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		// A Git URL is cloned to a temp dir and scanned there. os.Exit
		// skips defers, so error paths call cleanup explicitly.
		var tempDirToClean string
		cleanup := func() {
			if tempDirToClean != "" {
				_ = os.RemoveAll(tempDirToClean)
			}
		}
		defer cleanup()
		if isGitURL(root) {
			tempDir, cloneErr := cloneGitRepo(root)
			if cloneErr != nil {
				fmt.Fprintf(os.Stderr, "Error cloning git repo %s: %v\n", root, cloneErr)
				os.Exit(1)
			}
			tempDirToClean = tempDir
			root = tempDir
		}

		opts := scanOptions{
			Suffix:       suffix,
			Excludes:     parsePatterns(excludePatterns),
			ShowHidden:   showHidden,
			NoIgnore:     noIgnore,
			MaxDepth:     maxDepth,
			MaxSizeBytes: maxSizeBytes,
			Dialects:     dialects,
		}

		results, err := scanPath(root, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			cleanup()
			os.Exit(1)
		}

		// Optional token column; an init failure disables it, not the run.
		if withTokens {
			counter, err := newTokenCounter(tokenModel)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error initializing tokenizer: %v\n", err)
				fmt.Fprintln(os.Stderr, "Token counting disabled due to error.")
				withTokens = false
			} else {
				countFileTokens(results, counter)
			}
		}

		writer := newTableWriter(viper.GetInt("path_width"), viper.GetInt("count_width"), withTokens)
		table := writer.render(results)

		switch {
		case pdfOutputFile != "":
			if err := generatePDF(table, summarize(results), pdfOutputFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error generating PDF: %v\n", err)
				cleanup()
				os.Exit(1)
			}
		case outputFile != "":
			if err := os.WriteFile(outputFile, []byte(table), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing to file %s: %v\n", outputFile, err)
				cleanup()
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Report saved to %s\n", outputFile)
		case copyToClipboard:
			if err := clipboard.WriteAll(table); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing to clipboard: %v\n", err)
				fmt.Print(table)
			} else {
				fmt.Fprintln(os.Stderr, "Report copied to clipboard.")
			}
		default:
			fmt.Print(table)
		}
	},
}

func init() {
	// Initialize config first, then dialects
	cobra.OnInitialize(initConfig, initDialects)

	// Filtering
	rootCmd.Flags().StringVarP(&suffix, "suffix", "s", ".cs", "File name suffix to match")
	viper.BindPFlag("suffix", rootCmd.Flags().Lookup("suffix"))
	rootCmd.Flags().StringVarP(&excludePatterns, "exclude", "e", "", "Patterns to exclude (comma-separated, e.g. bin,obj)")
	viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
	rootCmd.Flags().Int64Var(&maxSizeBytes, "max-size", 0, "Maximum file size in bytes (0 for no limit)")
	viper.BindPFlag("max_size", rootCmd.Flags().Lookup("max-size"))
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum directory depth to traverse (0 for no limit)")
	viper.BindPFlag("max_depth", rootCmd.Flags().Lookup("max-depth"))
	rootCmd.Flags().BoolVarP(&showHidden, "hidden", "H", false, "Scan hidden files and directories")
	viper.BindPFlag("hidden", rootCmd.Flags().Lookup("hidden"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect the root .gitignore file")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))

	// Output
	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save the report to the specified file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the report to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Save the report as PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))

	// Token counting
	rootCmd.Flags().BoolVar(&withTokens, "tokens", false, "Add a token count column (tiktoken)")
	viper.BindPFlag("tokens", rootCmd.Flags().Lookup("tokens"))
	rootCmd.Flags().StringVar(&tokenModel, "model", "", "Model name for the tokenizer (e.g., gpt-4o)")
	viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))

	// Interactive mode
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick the scan root with a fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	// Viper defaults
	viper.SetDefault("suffix", ".cs")
	viper.SetDefault("max_size", 0)
	viper.SetDefault("max_depth", 0)
	viper.SetDefault("hidden", false)
	viper.SetDefault("no_ignore", false)
	viper.SetDefault("tokens", false)
	viper.SetDefault("interactive", false)
	// Reporter column widths are config-only, not flags.
	viper.SetDefault("path_width", defaultPathWidth)
	viper.SetDefault("count_width", defaultCountWidth)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	// Search config in home/.config/slocat with name "config" (without extension).
	viper.AddConfigPath(filepath.Join(home, ".config", "slocat"))
	viper.AddConfigPath(".") // Also look in current directory
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv() // read in environment variables that match SLOCAT_*
	viper.SetEnvPrefix("SLOCAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}

	// Config/env values win for flags the user did not set explicitly.
	if !rootCmd.Flags().Changed("suffix") {
		suffix = viper.GetString("suffix")
	}
	if !rootCmd.Flags().Changed("exclude") {
		excludePatterns = viper.GetString("exclude")
	}
}

// initDialects loads the comment dialect definitions.
func initDialects() {
	var err error
	dialects, err = loadDialects()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load dialect definitions: %v\n", err)
		fmt.Fprintln(os.Stderr, "Proceeding with built-in dialects only.")
		dialects = builtinDialects()
	}
}

func main() {
	rootCmd.Execute()
}
