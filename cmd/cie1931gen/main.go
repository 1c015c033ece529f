// Command cie1931gen writes CIE 1931 lightness lookup tables as Go source.
//
// It is meant to run from a go:generate directive, either for a single table
//
//	//go:generate go run github.com/on-the-ground/cie1931/cmd/cie1931gen -in 1000 -out 255 -type uint8
//
// or for every table listed in a YAML file
//
//	//go:generate go run github.com/on-the-ground/cie1931/cmd/cie1931gen -config tables.yaml
//
// Invalid parameters make the command exit non-zero, which fails the build.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/on-the-ground/cie1931/internal/gen"
	"github.com/on-the-ground/cie1931/internal/log"

	"go.uber.org/zap"
)

type options struct {
	config    string
	inputMax  uint
	outputMax uint64
	typ       string
	name      string
	pkg       string
	output    string
	dir       string
	workers   int
	check     bool
	logLevel  string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("cie1931gen", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "", "YAML file listing the tables to generate")
	fs.UintVar(&o.inputMax, "in", 0, "upper bound of the linear input domain")
	fs.Uint64Var(&o.outputMax, "out", 0, "upper bound of the perceptual output range")
	fs.StringVar(&o.typ, "type", gen.DefaultType, "element type: uint8, uint16, uint32 or uint64")
	fs.StringVar(&o.name, "name", "", "exported variable name (default Lightness<in>x<out>)")
	fs.StringVar(&o.pkg, "pkg", "", "package of the generated file (default $GOPACKAGE or tables)")
	fs.StringVar(&o.output, "o", "", "output file name (default lower-cased name + .go)")
	fs.StringVar(&o.dir, "dir", ".", "directory the files are written to")
	fs.IntVar(&o.workers, "workers", 0, "tables generated concurrently (default GOMAXPROCS)")
	fs.BoolVar(&o.check, "check", false, "verify the files are up to date instead of writing them")
	fs.StringVar(&o.logLevel, "log-level", string(log.LogInfo), "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.config != "" && (o.inputMax != 0 || o.outputMax != 0) {
		return options{}, fmt.Errorf("-config cannot be combined with -in or -out")
	}
	return o, nil
}

// loadConfig turns the options into a validated generator config.
func loadConfig(o options) (gen.Config, error) {
	var cfg gen.Config
	if o.config != "" {
		var err error
		if cfg, err = gen.LoadConfig(o.config); err != nil {
			return gen.Config{}, err
		}
	} else {
		cfg.Tables = []gen.TableSpec{{
			Name:      o.name,
			InputMax:  o.inputMax,
			OutputMax: o.outputMax,
			Type:      o.typ,
			Output:    o.output,
		}}
	}

	switch {
	case o.pkg != "":
		cfg.Package = o.pkg
	case cfg.Package == "" && os.Getenv("GOPACKAGE") != "":
		cfg.Package = os.Getenv("GOPACKAGE")
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
	}

	cfg = cfg.WithDefaults()
	return cfg, cfg.Validate()
}

func run(ctx context.Context, o options, logger *zap.Logger) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	results, err := gen.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if o.check {
		return gen.Check(o.dir, results, logger)
	}
	return gen.Write(o.dir, results, logger)
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level, err := log.ParseLogLevel(o.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.New(level, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, o, logger)
	stop()
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		log.Sync(logger)
		os.Exit(1)
	}
	log.Sync(logger)
}
