package cli

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-tplbench/pkg/bench"
	"github.com/goliatone/go-tplbench/pkg/harness"
	"github.com/goliatone/go-tplbench/pkg/renderers/templated"
)

// EnvPrefix namespaces environment overrides, e.g. TPLBENCH_ROWS.
const EnvPrefix = "TPLBENCH"

// Config is the fully merged configuration (flags > env > config file >
// defaults).
type Config struct {
	Rows       int      `mapstructure:"rows"`
	Columns    int      `mapstructure:"columns"`
	Iterations int      `mapstructure:"iterations"`
	Warmup     int      `mapstructure:"warmup"`
	Template   string   `mapstructure:"template"`
	Renderers  []string `mapstructure:"renderers"`
	Format     string   `mapstructure:"format"`
	Verify     bool     `mapstructure:"verify"`
	Debug      bool     `mapstructure:"debug"`
	LogFormat  string   `mapstructure:"log-format"`
	CPUProfile string   `mapstructure:"cpuprofile"`
	MemProfile string   `mapstructure:"memprofile"`
	ConfigPath string   `mapstructure:"-"`
}

// DefaultConfig reproduces the classic benchmark run.
func DefaultConfig() Config {
	return Config{
		Rows:       harness.DefaultRows,
		Columns:    harness.DefaultColumns,
		Iterations: bench.DefaultIterations,
		Warmup:     bench.DefaultWarmup,
		Template:   templated.DefaultTemplate,
		Renderers:  append([]string(nil), harness.DefaultRenderers...),
		Format:     string(bench.FormatText),
		Verify:     true,
		LogFormat:  "text",
	}
}

func registerFlags(flags *pflag.FlagSet) {
	def := DefaultConfig()
	flags.Int("rows", def.Rows, "number of table rows")
	flags.Int("columns", def.Columns, "number of table columns")
	flags.Int("iterations", def.Iterations, "timed render calls per renderer")
	flags.Int("warmup", def.Warmup, "untimed render calls per renderer before timing")
	flags.String("template", def.Template, "bundled template name, template file path, or inline template")
	flags.StringSlice("renderers", def.Renderers, "renderers to benchmark, in order")
	flags.String("format", def.Format, "report format: text|json|yaml")
	flags.Bool("verify", def.Verify, "check renderers agree on a small fixture before timing")
	flags.Bool("debug", def.Debug, "enable debug logging")
	flags.String("log-format", def.LogFormat, "log format: text|json")
	flags.String("cpuprofile", "", "write a CPU profile of the benchmark run to this file")
	flags.String("memprofile", "", "write a heap profile after the benchmark run to this file")
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("rows", def.Rows)
	v.SetDefault("columns", def.Columns)
	v.SetDefault("iterations", def.Iterations)
	v.SetDefault("warmup", def.Warmup)
	v.SetDefault("template", def.Template)
	v.SetDefault("renderers", def.Renderers)
	v.SetDefault("format", def.Format)
	v.SetDefault("verify", def.Verify)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("log-format", def.LogFormat)
	v.SetDefault("cpuprofile", "")
	v.SetDefault("memprofile", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

// harnessOptions translates the configuration into harness options.
func (c Config) harnessOptions() []harness.Option {
	return []harness.Option{
		harness.WithRows(c.Rows),
		harness.WithColumns(c.Columns),
		harness.WithIterations(c.Iterations),
		harness.WithWarmup(c.Warmup),
		harness.WithTemplate(c.Template),
		harness.WithRenderers(c.Renderers...),
		harness.WithVerify(c.Verify),
	}
}
