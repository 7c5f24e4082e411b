package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/pyvoc"
	"github.com/signadot/pyvoc/encode"
	"github.com/signadot/pyvoc/format"
	"github.com/signadot/pyvoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log document loads and writes'"`

	P bool `cli:"name=p aliases=pyvoc desc='do i/o in pyvoc'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat is the format selected by -p, -j or -y, if any.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.P:
		return format.PyvocFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.PyvocFormat, false
}

// parseOpts selects the input format for file: -I, then -p/-j/-y, then
// the file suffix.
func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	fmat := format.FromSuffix(file)
	if f, ok := cfg.flagFormat(); ok {
		fmat = f
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) outFormat() format.Format {
	fmat, _ := cfg.flagFormat()
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colors reports whether output to w is coloured: -color forces it,
// otherwise it follows whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) docOpts() []pyvoc.Option {
	return []pyvoc.Option{pyvoc.WithLogger(theLog)}
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type AddConfig struct {
	*MainConfig
	All bool `cli:"name=a aliases=all desc='create a missing zone and category too'"`
	Add *cli.Command
}

type SetConfig struct {
	*MainConfig
	Set *cli.Command
}

type DeleteConfig struct {
	*MainConfig
	Delete *cli.Command
}

type CreateConfig struct {
	*MainConfig
	Create *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Name string `cli:"name=n aliases=name desc='document name shown in the header'"`
	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Match *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge   bool `cli:"name=merge desc='the patch is an RFC 7386 merge patch'"`
	String  bool `cli:"name=s desc='patch arg as string'"`
	InPlace bool `cli:"name=i desc='rewrite the pyvoc file instead of printing'"`
	Patch   *cli.Command
}
