// Copyright (c) 2025 Visvasity LLC

// Newtypegen generates nominal wrapper types ("newtypes") around integers,
// non-zero integers, 128-bit integers, byte and text sequences, UUIDs and
// arbitrary named Go types.
//
// For example, given this request table in newtypes.yaml,
//
//	package: ids
//	serialize: [json]
//	types:
//	  - name: UserID
//	    base: u64
//	    visibility: public
//	  - name: Tag
//	    base: string
//	    capacity: 8
//
// running this command in the package directory
//
//	newtypegen -c newtypes.yaml
//
// will create file newtypes.gen.go containing UserID and tag data types with
// the following interface:
//
//	type UserID struct{ ... }
//
//	func NewUserID(v uint64) UserID
//
//	func (w UserID) Get() uint64
//	func (w UserID) IntoInner() uint64
//	func (w UserID) Equal(o UserID) bool
//	func (w UserID) Compare(o UserID) int
//	func (w UserID) Less(o UserID) bool
//	func (w UserID) Hash() uint64
//	func (w UserID) String() string
//	func (UserID) Capabilities() newtype.Capabilities
//	func (w UserID) MarshalJSON() ([]byte, error)
//	func (w *UserID) UnmarshalJSON(data []byte) error
//
//	type tagCapacity struct{}
//	type tag struct{ ... }
//
//	func newTag(v string) (tag, error)
//
//	func (w tag) Get() bounded.String[tagCapacity]
//	func (w *tag) IntoInner() bounded.String[tagCapacity]
//	func (w tag) Clone() tag
//	...
//
// Requests can also be given on the command line, which is convenient in
// go:generate directives:
//
//	//go:generate go run github.com/visvasity/newtypegen UserID=u64,vis=public,ser=json Tag=string,cap=8
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/visvasity/newtypegen/generator"
	"github.com/visvasity/newtypegen/request"
	"github.com/visvasity/newtypegen/typecheck"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Options holds the command line flags.
type Options struct {
	Config    string
	Dir       string
	Output    string
	Package   string
	Serialize []string
	Mode      string
	Verbose   bool
	DryRun    bool
}

func newRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "newtypegen [flags] [Name=base[,vis=...][,cap=N][,scope=path][,ser=json+yaml]]...",
		Short: "Generate nominal wrapper types",
		Long:  "Newtypegen generates distinct named types that wrap a single base value and carry equality, ordering, hashing, formatting and optional serialization.",

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Config == "" && len(args) == 0 {
				return errors.New("no requests: pass a table with --config or Name=base arguments")
			}
			if !cmd.Flags().Changed("dir") && opts.Config != "" {
				opts.Dir = filepath.Dir(opts.Config)
			}
			log, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			table, err := loadTable(cmd, opts, args)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), log, opts, table)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "YAML request table")
	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", ".", "output package directory")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file name (default "+request.DefaultOutput+")")
	cmd.Flags().StringVarP(&opts.Package, "package", "p", "", "output package name (default is the package in --dir)")
	cmd.Flags().StringSliceVar(&opts.Serialize, "serialize", nil, "default serialization formats (json,text,yaml,sql)")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "capacity mode (mixed|bounded|unbounded)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the generated file instead of writing it")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// loadTable reads the table named by --config, applies the flag overrides
// and appends the command line requests.
func loadTable(cmd *cobra.Command, opts *Options, args []string) (*request.Table, error) {
	table := new(request.Table)
	if opts.Config != "" {
		t, err := request.LoadTable(opts.Config)
		if err != nil {
			return nil, err
		}
		table = t
	}

	if opts.Output != "" {
		table.Output = opts.Output
	}
	if opts.Package != "" {
		table.Package = opts.Package
	}
	if cmd.Flags().Changed("mode") {
		table.Mode = request.Mode(opts.Mode)
	}
	if cmd.Flags().Changed("serialize") {
		table.Serialize = nil
		for _, f := range opts.Serialize {
			table.Serialize = append(table.Serialize, request.Format(f))
		}
	}

	for _, arg := range args {
		r, err := request.ParseShorthand(arg)
		if err != nil {
			return nil, err
		}
		table.Types = append(table.Types, r)
	}
	if table.Output == "" {
		table.Output = request.DefaultOutput
	}
	return table, nil
}

func run(stdout io.Writer, log *zap.Logger, opts *Options, table *request.Table) error {
	decls, err := table.Resolve()
	if err != nil {
		return err
	}
	log.Debug("resolved request table", zap.Int("types", len(decls)), zap.String("dir", opts.Dir))

	checker, err := typecheck.New(opts.Dir, log)
	if err != nil {
		return err
	}
	checked, err := checker.Check(decls, table.Output)
	if err != nil {
		return err
	}

	pkgName := table.Package
	if pkgName == "" {
		pkgName = checker.PkgName()
	}
	if pkgName == "" {
		abs, err := filepath.Abs(opts.Dir)
		if err != nil {
			return errors.Wrap(err, "could not determine the package name")
		}
		pkgName = filepath.Base(abs)
	}

	src, err := generator.Generate(pkgName, checked, generator.WithLogger(log))
	if err != nil {
		return err
	}

	if opts.DryRun {
		_, err := stdout.Write(src)
		return err
	}
	outputName := filepath.Join(opts.Dir, table.Output)
	if err := os.WriteFile(outputName, src, 0644); err != nil {
		return errors.Wrap(err, "writing output")
	}
	log.Info("generated file", zap.String("file", outputName), zap.Int("types", len(checked)))
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(os.Stderr, "newtypegen:", e)
		}
		os.Exit(1)
	}
}
