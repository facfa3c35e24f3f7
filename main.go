package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mcncl/csonify/internal/config"
	"github.com/mcncl/csonify/internal/converter"
	"github.com/mcncl/csonify/internal/errors"
	"github.com/mcncl/csonify/internal/models"
	"github.com/mcncl/csonify/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Input          string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	URL            string `help:"HTTP(S) URL to fetch JSON from." short:"u"`
	Output         string `help:"Path to output CSON file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent         string `help:"Indentation unit, one copy per nesting level." default:"  "`
	MaxDepth       int    `help:"Maximum nesting depth before compound values are flattened to strings." default:"20"`
	EnumsAsStrings bool   `help:"Render enum values as their symbolic name instead of their ordinal."`
	KeyStyle       string `help:"Rewrite mapping keys: preserve, snake, camel, pascal or kebab." enum:"preserve,snake,camel,pascal,kebab" default:"preserve"`
	LineEnding     string `help:"Line terminator: lf, crlf or platform." enum:"lf,crlf,platform" default:"lf"`
	Config         string `help:"Path to config file. Defaults to the nearest .csonify.yml." short:"c" type:"path"`
	Debug          bool   `help:"Enable debug logging." short:"d"`
	Version        bool   `help:"Show version information." short:"v"`
	Interactive    bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	cliParser := kong.Must(&CLI,
		kong.Name("csonify"),
		kong.Description("A tool to convert JSON to CSON"),
		kong.UsageOnError(),
	)

	// No arguments means interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := cliParser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("csonify version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{Debug: CLI.Debug || cfg.Dev.Debug, Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: csonify --help\n")
		os.Exit(1)
	}
}

// loadConfig resolves the config file (explicit flag or nearest .csonify.yml)
// and merges CLI overrides into it.
func loadConfig() (*config.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Indent, CLI.MaxDepth, CLI.KeyStyle, CLI.LineEnding)
	if err != nil {
		return nil, errors.NewInputError("failed to load config", err)
	}
	cfg.EnumsAsStrings = cfg.EnumsAsStrings || CLI.EnumsAsStrings
	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Read and parse the JSON input
	value, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// 2. Apply key naming rules
	value = converter.RewriteKeys(value, ctx.Config.Naming.KeyStyle, ctx.Config.Naming.KeyMappings)

	// 3. Serialize to CSON
	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "converting with indent=%q max-depth=%d\n", ctx.Config.Indent, ctx.Config.MaxDepth)
	}
	document, err := converter.Convert(value, ctx.Config.EmitterOptions(), resolveLineEnding(ctx.Config.Output.LineEnding))
	if err != nil {
		return err
	}

	// 4. Output the result
	return writeOutput(document)
}

// resolveLineEnding maps the configured policy to a terminator string. The
// platform policy is decided here, never inside the converter.
func resolveLineEnding(policy string) string {
	switch policy {
	case "crlf":
		return "\r\n"
	case "platform":
		if runtime.GOOS == "windows" {
			return "\r\n"
		}
		return "\n"
	default:
		return "\n"
	}
}

// parseInput reads JSON from file, URL or stdin
func parseInput() (models.Value, error) {
	if CLI.Input != "" && CLI.URL != "" {
		return models.Value{}, errors.NewInputError("cannot specify both --input and --url", errors.ErrNoInput)
	}

	if CLI.Input != "" {
		return parser.ParseFile(CLI.Input)
	}

	if CLI.URL != "" {
		return fetchURL(CLI.URL)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return models.Value{}, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return models.Value{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return models.Value{}, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return models.Value{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// fetchURL downloads JSON from an http(s) URL
func fetchURL(url string) (models.Value, error) {
	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("invalid URL scheme in '%s': only http and https are supported", url),
			errors.ErrInvalidFilePath,
		)
	}

	resp, err := http.Get(url)
	if err != nil {
		return models.Value{}, errors.NewInputError(fmt.Sprintf("failed to fetch '%s'", url), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("unexpected status %s fetching '%s'", resp.Status, url),
			errors.ErrNoInput,
		)
	}

	return parser.Parse(resp.Body)
}

// writeOutput writes the CSON document to file or stdout
func writeOutput(document string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(document), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "CSON written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(document)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (models.Value, error) {
	fmt.Fprintln(os.Stderr, "csonify Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.Value{}, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return models.Value{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
