// Command sqlfmt reads SQL from a file or stdin, parses it under a named
// dialect, and writes canonical, dialect-neutral SQL back to stdout. It
// is a thin CLI shell around the sqlast façade package: all of the real
// work is Parse followed by Format.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/sqlast/sqlast"
	"github.com/sqlast/sqlast/util"
)

var version = "dev"

type options struct {
	Dialect           string `short:"d" long:"dialect" description:"SQL dialect to parse as" value-name:"name" default:"generic"`
	File              string `short:"f" long:"file" description:"Read SQL from a file instead of stdin" value-name:"path" default:"-"`
	Config            string `long:"config" description:"YAML file overriding --dialect for specific inputs" value-name:"path"`
	MaxDepth          int    `long:"max-depth" description:"Maximum nested expression/subquery depth" value-name:"n" default:"512"`
	TrailingSemicolon bool   `long:"trailing-semicolon" description:"Emit a trailing ';' after the final statement"`
	RecordComments    bool   `long:"record-comments" description:"Split leading/trailing comment margins off the input instead of discarding them"`
	DebugAST          bool   `long:"debug-ast" description:"Pretty-print the parsed AST to stderr before formatting"`
	Version           bool   `long:"version" description:"Show version and exit"`
}

// fileConfig is the shape of the --config YAML file: a per-run dialect
// override, kept separate from the flag so a wrapper script can check a
// config file into the repo it formats instead of hardcoding the dialect
// on every invocation.
type fileConfig struct {
	Dialect string `yaml:"dialect"`
}

func main() {
	util.InitSlog()

	opts, args, err := parseOptions(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}

	if opts.Version {
		fmt.Println(version)
		return
	}

	if err := run(opts, args); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError writes err to stderr, in red when stderr is a terminal.
func printError(err error) {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m\n", err.Error())
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
}

func parseOptions(argv []string) (*options, []string, error) {
	var opts options
	p := flags.NewParser(&opts, flags.Default)
	p.Usage = "[options] [sql-file]"
	args, err := p.ParseArgs(argv)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}
	return &opts, args, nil
}

func run(opts *options, args []string) error {
	dialectName := opts.Dialect
	if opts.Config != "" {
		cfg, err := loadFileConfig(opts.Config)
		if err != nil {
			return fmt.Errorf("reading config %s: %w", opts.Config, err)
		}
		if cfg.Dialect != "" {
			dialectName = cfg.Dialect
		}
	}

	d, ok := sqlast.LookupDialect(dialectName)
	if !ok {
		return fmt.Errorf("unknown dialect %q", dialectName)
	}
	slog.Debug("resolved dialect", "name", d.Name())

	path := opts.File
	if len(args) > 0 {
		path = args[0]
	}
	src, err := readInput(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	parseOpts := []sqlast.Option{
		sqlast.WithMaxDepth(opts.MaxDepth),
		sqlast.WithRecordComments(opts.RecordComments),
		sqlast.WithTrailingSemicolon(opts.TrailingSemicolon),
	}

	stmts, err := sqlast.Parse(src, d, parseOpts...)
	if err != nil {
		return err
	}
	slog.Info("parsed input", "statements", len(stmts))

	if opts.DebugAST {
		pp.Println(stmts)
	}

	out := sqlast.FormatAll(stmts, parseOpts...)
	fmt.Println(out)
	return nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readInput(path string) (string, error) {
	if path == "-" || path == "" {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", fmt.Errorf("stdin is not piped, pass --file or pipe SQL in")
		}
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

