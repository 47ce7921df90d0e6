// Package exec drives the command line: it loads an automaton definition,
// answers membership queries, runs conversions, exports DOT graphs and
// optionally hands them to external rendering tools. Everything here is a
// collaborator around the fa engines; rendering failures are reported by
// the logger and never escalate into core errors.
package exec

import (
	"flag"
	"fmt"
	"io"
	"os"
	osexec "os/exec"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"

	"automata/def"
)

type Params struct {
	InputFilename     string
	Words             []string
	ToDfa             bool
	ToRegex           bool
	DotOutputFilename string
	Render            bool
	View              bool
	Stdin             io.Reader
	Stdout            io.Writer
}

// ToolConfig names the external programs of the rendering pipeline. They
// are configuration rather than arguments since they depend on the host,
// not on the invocation.
type ToolConfig struct {
	DotBin string `env:"AUTOMATA_DOT_BIN" envDefault:"dot"`
	Viewer string `env:"AUTOMATA_VIEWER" envDefault:"feh"`
}

func ParseParams(name string, args ...string) (*Params, error) {
	f := flag.NewFlagSet(name, flag.ExitOnError)
	p := &Params{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
	f.BoolVar(&p.ToDfa, "todfa", false, `convert the automaton to a dfa by subset construction first`)
	f.BoolVar(&p.ToRegex, "toregex", false, `print an equivalent regular expression`)
	f.StringVar(&p.DotOutputFilename, "dot", "", `write the automaton graph in DOT format to this file`)
	f.BoolVar(&p.Render, "render", false, `run the DOT renderer on the exported graph`)
	f.BoolVar(&p.View, "view", false, `open the rendered graph in the viewer`)

	// Ignore errors; the flag set is configured for ExitOnError.
	_ = f.Parse(args)

	if f.NArg() < 1 {
		return nil, fmt.Errorf("usage: %s [flags] definition.yaml [word ...]", name)
	}
	p.InputFilename = f.Arg(0)
	p.Words = f.Args()[1:]
	return p, nil
}

func Execute(name string, args ...string) error {
	p, err := ParseParams(name, args...)
	if err != nil {
		return fmt.Errorf("parse-params: %w", err)
	}
	return ExecuteWithParams(p)
}

func ExecuteWithParams(p *Params) error {
	a, err := p.loadAutomaton()
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if p.ToDfa {
		a = a.Determinize()
	}

	for _, word := range p.Words {
		ok, err := a.Accepts(word)
		if err != nil {
			return fmt.Errorf("match %q: %w", word, err)
		}
		verdict := "reject"
		if ok {
			verdict = "accept"
		}
		if _, err := fmt.Fprintf(p.Stdout, "%q: %s\n", word, verdict); err != nil {
			return err
		}
	}

	if p.ToRegex {
		if _, err := fmt.Fprintln(p.Stdout, a.ToRegex()); err != nil {
			return err
		}
	}

	if p.DotOutputFilename != "" {
		if err := writeDotFile(p.DotOutputFilename, a); err != nil {
			return err
		}
		p.renderAndView()
	}
	return nil
}

func (p *Params) loadAutomaton() (*def.Automaton, error) {
	if p.InputFilename == "-" {
		return def.Load(p.Stdin)
	}
	return def.LoadFile(p.InputFilename)
}

func writeDotFile(path string, a *def.Automaton) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return a.WriteDot(f, "automaton")
}

// renderAndView invokes the external rendering pipeline. Missing tools and
// non-zero exits are a property of the host, not of the automaton, so they
// are logged and swallowed.
func (p *Params) renderAndView() {
	if !p.Render && !p.View {
		return
	}
	var cfg ToolConfig
	if err := env.Parse(&cfg); err != nil {
		log.WithError(err).Warn("render tool configuration")
		return
	}

	rendered := p.DotOutputFilename + ".png"
	c := osexec.Command(cfg.DotBin, "-Tpng", p.DotOutputFilename, "-o", rendered)
	if err := c.Run(); err != nil {
		log.WithError(err).WithField("cmd", cfg.DotBin).Warn("render failed")
		return
	}
	if p.View {
		// Fire and forget; the viewer outlives the program.
		if err := osexec.Command(cfg.Viewer, rendered).Start(); err != nil {
			log.WithError(err).WithField("cmd", cfg.Viewer).Warn("viewer failed")
		}
	}
}
