package theme

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The gradient spec is the one-line text form used by theme and panel
// documents, e.g.
//
//	linear-gradient(90deg, #001023 0%, theme(2) 60%, theme(2, 64) 100%)
//
// Stop colors are hex literals or theme references; positions are
// percentages. Declaration order is preserved through parsing.
var specLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Hex", Pattern: `#[0-9a-fA-F]+`},
	{Name: "Number", Pattern: `-?\d+(\.\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9-]*`},
	{Name: "Punct", Pattern: `[(),%]`},
})

type gradientAST struct {
	Kind  string    `parser:"@Ident"`
	Angle float64   `parser:"'(' @Number 'deg'"`
	Stops []stopAST `parser:"(',' @@)+ ')'"`
}

type stopAST struct {
	Color    colorAST `parser:"@@"`
	Position float64  `parser:"@Number '%'"`
}

type colorAST struct {
	Hex *string `parser:"@Hex"`
	Ref *refAST `parser:"| @@"`
}

type refAST struct {
	Slot  int  `parser:"'theme' '(' @Number"`
	Alpha *int `parser:"(',' @Number)? ')'"`
}

var (
	gradientParser = participle.MustBuild[gradientAST](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
	colorParser = participle.MustBuild[colorAST](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
)

// ParseGradient parses the linear-gradient spec form.
func ParseGradient(input string) (Gradient, error) {
	ast, err := gradientParser.ParseString("", input)
	if err != nil {
		return Gradient{}, fmt.Errorf("gradient spec: %w", err)
	}
	if ast.Kind != "linear-gradient" {
		return Gradient{}, fmt.Errorf("gradient spec: unsupported kind %q", ast.Kind)
	}

	g := Gradient{Angle: ast.Angle}
	for _, s := range ast.Stops {
		src, err := s.Color.toSource()
		if err != nil {
			return Gradient{}, fmt.Errorf("gradient spec: %w", err)
		}
		pos := s.Position / 100
		if pos < 0 {
			pos = 0
		}
		if pos > 1 {
			pos = 1
		}
		g.Stops = append(g.Stops, GradientStop{Position: pos, Color: src})
	}
	return g, nil
}

// ParseColorSource parses the serialized color source forms: hex
// notation or theme(N[, alpha]).
func ParseColorSource(input string) (ColorSource, error) {
	ast, err := colorParser.ParseString("", input)
	if err != nil {
		return ColorSource{}, fmt.Errorf("color source: %w", err)
	}
	return ast.toSource()
}

func (c colorAST) toSource() (ColorSource, error) {
	if c.Hex != nil {
		parsed, err := ParseColor(*c.Hex)
		if err != nil {
			return ColorSource{}, err
		}
		return LiteralColor(parsed), nil
	}
	if c.Ref == nil {
		return ColorSource{}, fmt.Errorf("color source: missing value")
	}
	if c.Ref.Alpha != nil {
		a := *c.Ref.Alpha
		if a < 0 {
			a = 0
		}
		if a > 255 {
			a = 255
		}
		return ThemeColorAlpha(c.Ref.Slot, uint8(a)), nil
	}
	return ThemeColor(c.Ref.Slot), nil
}
