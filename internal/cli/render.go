package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	bootform "github.com/goliatone/go-bootform"
	"github.com/goliatone/go-bootform/pkg/bootstrap"
	"github.com/goliatone/go-bootform/pkg/config"
	"github.com/goliatone/go-bootform/pkg/i18n"
	"github.com/goliatone/go-bootform/pkg/logging"
	"github.com/goliatone/go-bootform/pkg/openapi"
)

const schemaTimeout = 10 * time.Second

type renderFlags struct {
	definition    string
	config        string
	layout        string
	locale        string
	translations  string
	interactive   bool
	output        string
	document      bool
	title         string
	templates     string
	bootstrapCSS  string
	themeManifest string
	themeVariant  string
	allowHTTP     bool
	logLevel      string
	logFormat     string
}

func newRenderCommand(prompter Prompter) *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a form definition to HTML",
		Long: `Render every control of a form definition and wrap them in a <form>
element. With --document the form is embedded in a standalone page that links
the Bootstrap stylesheet.`,
		Example: `  bootform render --definition user.yaml
  bootform render --definition user.yaml --config bootform.yaml --locale es --output user.html
  bootform render --definition user.yaml --interactive --document`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, flags, prompter)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.definition, "definition", "d", "", "Form definition file (YAML or JSON)")
	f.StringVarP(&flags.config, "config", "c", "", "Builder config file (YAML or JSON)")
	f.StringVar(&flags.layout, "layout", "", "Layout override: vertical, horizontal or inline")
	f.StringVar(&flags.locale, "locale", "", "Locale used for labels and button values")
	f.StringVar(&flags.translations, "translations", "", "Directory of *.po translation files")
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "Prompt for static control values missing from the definition")
	f.StringVarP(&flags.output, "output", "o", "", "Output file (stdout if empty)")
	f.BoolVar(&flags.document, "document", false, "Wrap the form in a standalone HTML document")
	f.StringVar(&flags.title, "title", "", "Document title (defaults to the model name)")
	f.StringVar(&flags.templates, "templates", "", "Directory with form.tpl/document.tpl overrides")
	f.StringVar(&flags.bootstrapCSS, "bootstrap-css", "", "Stylesheet URL linked by the document")
	f.StringVar(&flags.themeManifest, "theme", "", "Theme manifest file (YAML)")
	f.StringVar(&flags.themeVariant, "theme-variant", "", "Theme variant to apply")
	f.BoolVar(&flags.allowHTTP, "allow-http", false, "Allow OpenAPI schema documents to be fetched over HTTP")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	f.StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")
	_ = cmd.MarkFlagRequired("definition")
	return cmd
}

func runRender(cmd *cobra.Command, flags *renderFlags, prompter Prompter) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	def, cfg, err := loadInputs(flags)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())

	catalog, err := cfg.LoadTranslations()
	if err != nil {
		return err
	}

	opts := []bootform.RenderOption{
		bootform.WithConfig(cfg),
		bootform.WithLogger(logger),
		bootform.WithTemplateDir(flags.templates),
		bootform.WithBootstrapCSS(flags.bootstrapCSS),
	}
	if flags.allowHTTP {
		opts = append(opts, bootform.WithSchemaLoader(openapi.NewLoader(openapi.WithHTTPFallback(schemaTimeout))))
	}
	var translator i18n.Translator
	if catalog != nil {
		translator = catalog
		opts = append(opts, bootform.WithTranslator(catalog))
	}
	if flags.document {
		opts = append(opts, bootform.WithDocument(flags.title))
	}
	if flags.themeManifest != "" {
		themeCfg, err := loadTheme(flags.themeManifest, flags.themeVariant)
		if err != nil {
			return err
		}
		opts = append(opts, bootform.WithTheme(themeCfg))
	}

	if flags.interactive {
		builder := bootstrap.New(def.Subject(), append(cfg.BuilderOptions(def),
			bootstrap.WithTranslator(translator),
			bootstrap.WithLogger(logger),
		)...)
		if def, err = promptMissing(ctx, prompter, builder, def); err != nil {
			return err
		}
	}

	out, err := bootform.RenderDefinition(ctx, def, opts...)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), flags.output, out, logger)
}

// loadInputs reads the definition and config and applies flag overrides.
func loadInputs(flags *renderFlags) (config.Definition, config.Config, error) {
	data, err := os.ReadFile(flags.definition)
	if err != nil {
		return config.Definition{}, config.Config{}, fmt.Errorf("read definition: %w", err)
	}
	def, err := config.ParseDefinition(data, flags.definition)
	if err != nil {
		return config.Definition{}, config.Config{}, err
	}

	var cfg config.Config
	if flags.config != "" {
		data, err := os.ReadFile(flags.config)
		if err != nil {
			return config.Definition{}, config.Config{}, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = config.ParseConfig(data, flags.config); err != nil {
			return config.Definition{}, config.Config{}, err
		}
		if cfg.Translations != "" && !filepath.IsAbs(cfg.Translations) {
			cfg.Translations = filepath.Join(filepath.Dir(flags.config), cfg.Translations)
		}
	}

	if flags.layout != "" {
		cfg.Layout = flags.layout
		def.Layout = ""
	}
	if flags.locale != "" {
		cfg.Locale = flags.locale
	}
	if flags.translations != "" {
		cfg.Translations = flags.translations
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	return def, cfg, nil
}

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	level := cfg.Log.Level
	if level == "" {
		level = "warn"
	}
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(level),
		Format: logging.ParseFormat(cfg.Log.Format),
		Output: out,
	})
}

// promptMissing asks for every static control value the definition lacks.
// Required fields reject blank answers.
func promptMissing(ctx context.Context, prompter Prompter, builder *bootstrap.Builder, def config.Definition) (config.Definition, error) {
	missing := def.MissingValues()
	if len(missing) == 0 {
		return def, nil
	}
	values := make(map[string]any, len(def.Values)+len(missing))
	for key, value := range def.Values {
		values[key] = value
	}

	subject := builder.Subject()
	for _, field := range missing {
		input := InputConfig{
			Message: builder.LabelText(field),
			Help:    fmt.Sprintf("Value of %s", bootstrap.FieldName(def.Object, field)),
		}
		if subject.Required(field) {
			input.Validator = requiredValue
		}
		answer, err := prompter.Input(ctx, input)
		if err != nil {
			return def, fmt.Errorf("prompt %s: %w", field, err)
		}
		values[field] = answer
	}
	def.Values = values
	return def, nil
}

func requiredValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value is required")
	}
	return nil
}

func writeOutput(stdout io.Writer, path string, out []byte, logger *slog.Logger) error {
	if path == "" {
		_, err := stdout.Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("form written", "path", path, "bytes", len(out))
	return nil
}
