package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/linebreak"
	"github.com/tdewolff/linebreak/hlist"
	"github.com/tdewolff/linebreak/hyphen"
	"github.com/tdewolff/linebreak/render"
	"github.com/tdewolff/linebreak/text"
)

type Text struct {
	Width     float64  `short:"w" default:"345" desc:"Line length in points"`
	Size      float64  `short:"s" default:"10" desc:"Font size in points"`
	Indent    float64  `short:"i" default:"0" desc:"Paragraph indentation in points"`
	Emergency float64  `short:"e" default:"0" desc:"Emergency stretch in points"`
	Ragged    bool     `desc:"Ragged right margin"`
	French    bool     `desc:"French spacing, equal spaces between words and sentences"`
	Set       []string `desc:"Set options as name=value, such as tolerance=1000 or leftskip=0pt plus 1fil"`
	Font      string   `short:"f" desc:"Font file, uses Latin Modern Roman by default"`
	Patterns  string   `short:"p" desc:"TeX hyphenation patterns file"`
	Output    string   `short:"o" desc:"Output file, such as PDF, SVG, or PNG, prints the lines when empty"`
	Guides    bool     `desc:"Draw the line lengths in the output file"`
	Verbose   bool     `short:"v" desc:"Verbose"`
	Input     string   `index:"0" desc:"Input text file, paragraphs are separated by empty lines"`
}

type HList struct {
	Size    float64 `short:"s" default:"10" desc:"Font size in points"`
	Font    string  `short:"f" desc:"Font file, uses Latin Modern Roman by default"`
	Output  string  `short:"o" desc:"Output file, such as PDF, SVG, or PNG, prints the lines when empty"`
	Guides  bool    `desc:"Draw the line lengths in the output file"`
	Verbose bool    `short:"v" desc:"Verbose"`
	Input   string  `index:"0" desc:"Horizontal list file"`
}

func main() {
	root := argp.NewCmd(&Text{}, "Break paragraphs into lines using the Knuth-Plass algorithm")
	root.AddCmd(&HList{}, "hlist", "Break a horizontal list given as a list of characters, glue, penalties, and other atoms")
	root.Parse()
	root.PrintHelp()
}

func setVerbose(verbose bool) {
	if verbose {
		linebreak.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

func newRenderer(filename string, size float64) (*render.Renderer, error) {
	var data []byte
	if filename == "" {
		var err error
		if data, err = text.LatinModernData(text.Regular, size); err != nil {
			return nil, err
		}
	} else {
		var err error
		if data, err = os.ReadFile(filename); err != nil {
			return nil, err
		}
	}
	return render.New(data, size)
}

func output(r *render.Renderer, filename string, guides bool, vlist linebreak.VList) error {
	if filename == "" {
		printLines(os.Stdout, vlist)
		return nil
	}
	r.Guides = guides
	return r.WriteFile(filename, vlist)
}

func printLines(w io.Writer, vlist linebreak.VList) {
	for i, line := range vlist {
		status := ""
		if line.Overfull {
			status = " overfull"
		} else if linebreak.InfBad <= line.Badness {
			status = " underfull"
		}
		fmt.Fprintf(w, "%3d  %-9v %5d  %-20v %s%s\n", i+1, line.Fitness, line.Badness, line.GlueSet, line.Text(), status)
	}
}

// paragraphs splits text at empty lines and joins the lines within a paragraph by spaces.
func paragraphs(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	pars := []string{}
	for _, par := range strings.Split(s, "\n\n") {
		if par = strings.TrimSpace(par); par != "" {
			pars = append(pars, strings.ReplaceAll(par, "\n", " "))
		}
	}
	return pars
}

func (cmd *Text) Run() error {
	setVerbose(cmd.Verbose)

	var b []byte
	var err error
	if cmd.Input == "" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(cmd.Input)
	}
	if err != nil {
		return err
	}

	r, err := newRenderer(cmd.Font, cmd.Size)
	if err != nil {
		return err
	}
	r.Face.FrenchSpacing = cmd.French

	opts := linebreak.DefaultOptions
	opts.HSize = cmd.Width
	opts.EmergencyStretch = cmd.Emergency
	if cmd.Ragged {
		opts.RightSkip = linebreak.Glue{Stretch: linebreak.Pts(2.0 * cmd.Size)}
	}
	for _, set := range cmd.Set {
		name, value, ok := strings.Cut(set, "=")
		if !ok {
			fmt.Println("ERROR: options must be set as name=value")
			return argp.ShowUsage
		} else if err := hlist.Set(&opts, strings.TrimSpace(name), value); err != nil {
			return err
		}
	}

	var hyph linebreak.Hyphenator
	if cmd.Patterns != "" {
		f, err := os.Open(cmd.Patterns)
		if err != nil {
			return err
		}
		patterns, err := hyphen.ParsePatterns(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Patterns, err)
		}
		hyph = hyphen.New(patterns, r.Face.HyphenAtom())
	}

	t := linebreak.NewTypesetter(opts, hyph)
	vlist := linebreak.VList{}
	for _, par := range paragraphs(string(b)) {
		atoms := r.Face.Atoms(par)
		if cmd.Indent != 0.0 {
			atoms = append(linebreak.Atoms{}.Box(cmd.Indent), atoms...)
		}
		lines, err := t.Paragraph(atoms)
		if err != nil {
			return err
		}
		vlist = append(vlist, lines...)
	}
	return output(r, cmd.Output, cmd.Guides, vlist)
}

func (cmd *HList) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	setVerbose(cmd.Verbose)

	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := hlist.Parse(f)
	if err != nil {
		return err
	}

	vlist, err := linebreak.Break(doc.Atoms, nil, doc.Options, nil)
	if err != nil {
		return err
	}

	r, err := newRenderer(cmd.Font, cmd.Size)
	if err != nil {
		return err
	}
	return output(r, cmd.Output, cmd.Guides, vlist)
}
