package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser reads inline CSS (declaration lists without selectors).
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseInline parses "prop: value; ..." text into ordered declarations.
// Property names are lowercased, custom properties and malformed
// declarations are skipped. The optional source parameter identifies what's
// being parsed (for debug logging).
func (p *Parser) ParseInline(text string, source ...string) Declarations {
	var decls Declarations

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing inline CSS", zap.String("source", source[0]), zap.Int("bytes", len(text)))
	}

	parser := css.NewParser(parse.NewInputString(text), true)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			return decls

		case css.DeclarationGrammar:
			prop := strings.ToLower(string(data))
			value := joinValue(parser.Values())
			if len(value) == 0 {
				p.log.Debug("Skipping empty CSS declaration", zap.String("property", prop))
				continue
			}
			decls.Set(prop, value)

		case css.CustomPropertyGrammar:
			continue

		default:
			p.log.Debug("Ignoring unexpected CSS in inline style", zap.Stringer("grammar", gt), zap.ByteString("data", data))
		}
	}
}

// joinValue rebuilds declaration value from tokens collapsing whitespace.
// Commas are always followed by single space.
func joinValue(tokens []css.Token) string {
	var b strings.Builder
	space := false
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			space = b.Len() > 0
		case css.CommaToken:
			b.WriteString(", ")
			space = false
		default:
			if space && !strings.HasSuffix(b.String(), " ") {
				b.WriteByte(' ')
			}
			b.Write(t.Data)
			space = false
		}
	}
	return strings.TrimSpace(b.String())
}
