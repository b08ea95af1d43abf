package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/srcdoc"
	"github.com/fwojciec/srcdoc/docgen"
	"github.com/fwojciec/srcdoc/fs"
	"github.com/fwojciec/srcdoc/gemini"
	"github.com/fwojciec/srcdoc/goldmark"
	"github.com/fwojciec/srcdoc/openai"
	srcslog "github.com/fwojciec/srcdoc/slog"
	"github.com/fwojciec/srcdoc/yaml"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/mattn/go-isatty"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up environment variables. Set before calling Run().
	Getenv func(string) string

	// Config is the resolved configuration of the last Run.
	Config *srcdoc.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Color:  isTerminal(stderr),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("srcdoc"),
		kong.Description("Generate documentation pages for SQL, shell and PHP sources"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'srcdoc --help' to see available commands")
	}

	if len(args) == 1 && args[0] == "help" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Kong prints help but does not exit, so never run a command afterwards
	if hasHelpFlag(args) {
		_, _ = parser.Parse(args)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	command := kongCtx.Command()

	cfg, err := m.loadConfig(cli, command)
	if err != nil {
		return err
	}
	m.Config = cfg

	writer := fs.NewWriter(cfg.DocSuffix)
	gen := &docgen.Generator{
		Walker:    fs.NewWalker(),
		Reader:    fs.NewReader(),
		Writer:    writer,
		Overviews: writer,
		Renderer:  goldmark.NewRenderer(),
		Config:    cfg,
	}

	if strings.HasPrefix(command, "generate") {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "Hint: set %s or pass --api-key\n", apiKeyEnv(cfg.Provider))
			return err
		}

		provider, err := newProvider(ctx, cfg)
		if err != nil {
			return err
		}
		gen.Provider = provider
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})).
			With("run", uuid.NewString())
		gen.Walker = srcslog.NewLoggingWalker(gen.Walker, logger)
		gen.Reader = srcslog.NewLoggingReader(gen.Reader, logger)
		if gen.Provider != nil {
			gen.Provider = srcslog.NewLoggingProvider(gen.Provider, logger)
		}
	}

	deps.Generator = gen
	return kongCtx.Run(deps)
}

// loadConfig layers the config file and command flags over the defaults.
// The provider's environment variable fills the api key only when unset.
func (m *Main) loadConfig(cli *CLI, command string) (*srcdoc.Config, error) {
	cfg := srcdoc.NewConfig()

	if cli.Config != "" {
		if err := yaml.LoadConfig(cli.Config, cfg); err != nil {
			return nil, err
		}
	}

	switch {
	case strings.HasPrefix(command, "generate"):
		cli.Generate.Apply(cfg)
	case strings.HasPrefix(command, "list"):
		cli.List.Apply(cfg)
	}

	if cfg.APIKey == "" && m.Getenv != nil {
		cfg.APIKey = m.Getenv(apiKeyEnv(cfg.Provider))
	}

	if cfg.Provider == srcdoc.ProviderGemini && cfg.Model == srcdoc.DefaultModel {
		cfg.Model = srcdoc.DefaultGeminiModel
	}

	return cfg, nil
}

// newProvider creates the text-generation backend selected by cfg.
func newProvider(ctx context.Context, cfg *srcdoc.Config) (srcdoc.Provider, error) {
	switch cfg.Provider {
	case srcdoc.ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewProvider(client, cfg.Model, cfg.Temperature), nil
	default:
		return openai.NewProvider(cfg.APIKey,
			openai.WithEndpoint(cfg.Endpoint),
			openai.WithModel(cfg.Model),
			openai.WithTemperature(cfg.Temperature),
		), nil
	}
}

func apiKeyEnv(provider string) string {
	if provider == srcdoc.ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
