package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	newshub "github.com/goliatone/go-newshub"
	"github.com/goliatone/go-newshub/internal/logging/console"
)

type ctxKey string

const moduleKey ctxKey = "module"

var errModuleMissing = errors.New("cli: module not initialised")

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the cobra root command and wires the module.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "newshub",
		Short:         "NewsHub articles, markdown rendering and locale tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if logLevel != "" {
				v.Set("logging.level", logLevel)
			}
			cfg, err := LoadConfig(v)
			if err != nil {
				return err
			}

			opts := []newshub.Option{}
			if strings.EqualFold(cfg.Logging.Provider, "console") {
				consoleOpts := console.Options{Writer: cmd.ErrOrStderr()}
				if level, ok := console.ParseLevel(cfg.Logging.Level); ok {
					consoleOpts.MinLevel = &level
				}
				opts = append(opts, newshub.WithLoggerProvider(console.NewProvider(consoleOpts)))
			}

			module, err := newshub.New(cfg, opts...)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(contextOrBackground(cmd), moduleKey, module))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	cmd.PersistentFlags().String("lang", "", "locale tag (en, es, ar); defaults to the configured locale")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level")

	cmd.AddCommand(newArticlesCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newInsertCmd())
	cmd.AddCommand(newTranslateCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }
	return cmd
}

func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func getModule(cmd *cobra.Command) (*newshub.Module, error) {
	module, ok := contextOrBackground(cmd).Value(moduleKey).(*newshub.Module)
	if !ok || module == nil {
		return nil, errModuleMissing
	}
	return module, nil
}

// localeFor resolves --lang against the module; unknown tags use the default.
func localeFor(cmd *cobra.Command, module *newshub.Module) newshub.LocaleConfig {
	tag, _ := cmd.Flags().GetString("lang")
	return module.Locale(tag)
}

// readInput returns args joined by spaces, the named file, or stdin.
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
