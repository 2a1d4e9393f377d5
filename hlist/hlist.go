// Package hlist reads horizontal lists and typesetting options from a plain text description, such as
//
//	set hsize 100pt
//	set rightskip 0pt plus 20pt
//	word "hello" 5pt
//	glue 3.33pt plus 1.66pt minus 1.11pt
//	word "wo" 5pt disc {char "-" 3pt} {} {} word "rld" 5pt
//	penalty -10000
//
// Lengths are in points (1/72 inch) and need a unit: pt, bp, mm, cm, or in. Stretch and shrink may also be infinite with the units fil, fill, and filll. Comments start with %.
package hlist

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/tdewolff/linebreak"
)

var units = map[string]float64{
	"pt": 1.0,
	"bp": 1.0,
	"in": 72.0,
	"cm": 72.0 / 2.54,
	"mm": 72.0 / 25.4,
}

var orders = map[string]linebreak.Order{
	"fil":   linebreak.Fil,
	"fill":  linebreak.Fill,
	"filll": linebreak.Filll,
}

var (
	hlistLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `%[^\n]*`},
		{Name: "Dimen", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)(?:pt|bp|mm|cm|in|filll|fill|fil)`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z]+`},
		{Name: "Punct", Pattern: `[{}]`},
	})
	parserOptions = []participle.Option{
		participle.Lexer(hlistLexer),
		participle.Elide("Whitespace", "Comment"),
	}

	documentParser = participle.MustBuild[document](parserOptions...)
	glueParser     = participle.MustBuild[glueSpec](parserOptions...)
)

type document struct {
	Statements []*statement `parser:"@@*"`
}

type statement struct {
	Pos      lexer.Position `parser:""`
	Set      *setting       `parser:"  'set' @@"`
	ParShape []*lineSpec    `parser:"| 'parshape' @@+"`
	Item     *item          `parser:"| @@"`
}

type setting struct {
	Name  string   `parser:"@Ident"`
	Value []string `parser:"@( Dimen | Number | 'plus' | 'minus' )+"`
}

type lineSpec struct {
	Indent dimen `parser:"@Dimen"`
	Length dimen `parser:"@Dimen"`
}

type item struct {
	Pos     lexer.Position `parser:""`
	Char    *word          `parser:"  'char' @@"`
	Word    *word          `parser:"| 'word' @@"`
	Glue    *glueSpec      `parser:"| 'glue' @@"`
	Kern    *dimen         `parser:"| 'kern' @Dimen"`
	Penalty *int           `parser:"| 'penalty' @Number"`
	Disc    *disc          `parser:"| 'disc' @@"`
	MathOn  *dimen         `parser:"| 'mathon' @Dimen"`
	MathOff *dimen         `parser:"| 'mathoff' @Dimen"`
	Box     *dimen         `parser:"| 'box' @Dimen"`
}

type word struct {
	Text  stringLiteral `parser:"@String"`
	Width dimen         `parser:"@Dimen"`
}

type disc struct {
	Pre     []*item `parser:"'{' @@* '}'"`
	Post    []*item `parser:"'{' @@* '}'"`
	NoBreak []*item `parser:"( '{' @@* '}' )?"`
}

type glueSpec struct {
	Pos     lexer.Position `parser:""`
	Width   dimen          `parser:"@Dimen"`
	Stretch dimen          `parser:"( 'plus' @Dimen )?"`
	Shrink  dimen          `parser:"( 'minus' @Dimen )?"`
}

type stringLiteral string

func (s *stringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = stringLiteral(val)
	return nil
}

// dimen is a length or an amount of infinite stretch or shrink.
type dimen linebreak.Amount

func (d *dimen) Capture(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("dimension capture requires one value")
	}
	v := values[0]
	end := strings.LastIndexAny(v, "0123456789.") + 1
	value, err := strconv.ParseFloat(v[:end], 64)
	if err != nil {
		return err
	}
	if order, ok := orders[v[end:]]; ok {
		*d = dimen(linebreak.Amount{Value: value, Order: order})
	} else if unit, ok := units[v[end:]]; ok {
		*d = dimen(linebreak.Pts(value * unit))
	} else {
		return fmt.Errorf("unknown unit %s", v[end:])
	}
	return nil
}

func (d dimen) length(pos lexer.Position) (float64, error) {
	if d.Order != linebreak.Finite {
		return 0.0, participle.Errorf(pos, "length must be finite")
	}
	return d.Value, nil
}

func (g *glueSpec) glue() (linebreak.Glue, error) {
	width, err := g.Width.length(g.Pos)
	if err != nil {
		return linebreak.Glue{}, err
	}
	return linebreak.Glue{
		Width:   width,
		Stretch: linebreak.Amount(g.Stretch),
		Shrink:  linebreak.Amount(g.Shrink),
	}, nil
}

// ParseGlue parses glue such as "10pt plus 1fil minus 2pt".
func ParseGlue(s string) (linebreak.Glue, error) {
	g, err := glueParser.ParseString("", s)
	if err != nil {
		return linebreak.Glue{}, err
	}
	return g.glue()
}

// ParseLength parses a finite length such as "2.5cm".
func ParseLength(s string) (float64, error) {
	g, err := glueParser.ParseString("", s)
	if err != nil {
		return 0.0, err
	} else if g.Stretch != (dimen{}) || g.Shrink != (dimen{}) {
		return 0.0, participle.Errorf(g.Pos, "length cannot stretch or shrink")
	}
	return g.Width.length(g.Pos)
}

// Set sets the named option from its textual value, which is an integer, glue, or length depending on the option.
func Set(opts *linebreak.Options, name, value string) error {
	switch linebreak.OptionKindOf(name) {
	case linebreak.IntOption:
		i, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", linebreak.ErrInvalidOption, name, err)
		}
		return opts.SetInt(name, i)
	case linebreak.GlueOption:
		g, err := ParseGlue(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", linebreak.ErrInvalidOption, name, err)
		}
		return opts.SetGlue(name, g)
	case linebreak.LengthOption:
		l, err := ParseLength(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", linebreak.ErrInvalidOption, name, err)
		}
		return opts.SetLength(name, l)
	}
	return fmt.Errorf("%w: %s", linebreak.ErrUnknownOption, name)
}

////////////////////////////////////////////////////////////////

// Document is a horizontal list together with the options to break it with.
type Document struct {
	Options linebreak.Options
	Atoms   linebreak.Atoms
}

// Parse parses a document. Options that are not set keep their default values.
func Parse(r io.Reader) (*Document, error) {
	doc, err := documentParser.Parse("", r)
	if err != nil {
		return nil, err
	}
	return doc.convert()
}

// ParseString parses a document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (doc *document) convert() (*Document, error) {
	d := &Document{
		Options: linebreak.DefaultOptions,
	}
	for _, stmt := range doc.Statements {
		if stmt.Set != nil {
			if err := Set(&d.Options, stmt.Set.Name, strings.Join(stmt.Set.Value, " ")); err != nil {
				return nil, participle.Wrapf(stmt.Pos, err, "set %s", stmt.Set.Name)
			}
		} else if stmt.ParShape != nil {
			parshape := linebreak.ParShape{}
			for _, spec := range stmt.ParShape {
				indent, err := spec.Indent.length(stmt.Pos)
				if err != nil {
					return nil, err
				}
				length, err := spec.Length.length(stmt.Pos)
				if err != nil {
					return nil, err
				}
				parshape = append(parshape, linebreak.LineSpec{Indent: indent, Length: length})
			}
			d.Options.ParShape = parshape
		} else {
			var err error
			if d.Atoms, err = stmt.Item.appendTo(d.Atoms); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

func appendItems(atoms linebreak.Atoms, items []*item) (linebreak.Atoms, error) {
	var err error
	for _, it := range items {
		if atoms, err = it.appendTo(atoms); err != nil {
			return nil, err
		}
	}
	return atoms, nil
}

func (it *item) appendTo(atoms linebreak.Atoms) (linebreak.Atoms, error) {
	switch {
	case it.Char != nil:
		width, err := it.Char.Width.length(it.Pos)
		if err != nil {
			return nil, err
		} else if utf8.RuneCountInString(string(it.Char.Text)) != 1 {
			return nil, participle.Errorf(it.Pos, "char must be a single character")
		}
		r, _ := utf8.DecodeRuneInString(string(it.Char.Text))
		return atoms.Char(r, width), nil
	case it.Word != nil:
		width, err := it.Word.Width.length(it.Pos)
		if err != nil {
			return nil, err
		}
		return atoms.Word(string(it.Word.Text), width), nil
	case it.Glue != nil:
		g, err := it.Glue.glue()
		if err != nil {
			return nil, err
		}
		return atoms.Glue(g), nil
	case it.Penalty != nil:
		return atoms.Penalty(*it.Penalty), nil
	case it.Disc != nil:
		pre, err := appendItems(nil, it.Disc.Pre)
		if err != nil {
			return nil, err
		}
		post, err := appendItems(nil, it.Disc.Post)
		if err != nil {
			return nil, err
		}
		nobreak, err := appendItems(nil, it.Disc.NoBreak)
		if err != nil {
			return nil, err
		}
		return atoms.Disc(pre, post, nobreak), nil
	}

	var width dimen
	var add func(linebreak.Atoms, float64) linebreak.Atoms
	switch {
	case it.Kern != nil:
		width, add = *it.Kern, linebreak.Atoms.Kern
	case it.MathOn != nil:
		width, add = *it.MathOn, linebreak.Atoms.MathOn
	case it.MathOff != nil:
		width, add = *it.MathOff, linebreak.Atoms.MathOff
	case it.Box != nil:
		width, add = *it.Box, linebreak.Atoms.Box
	default:
		return nil, participle.Errorf(it.Pos, "empty item")
	}
	w, err := width.length(it.Pos)
	if err != nil {
		return nil, err
	}
	return add(atoms, w), nil
}
