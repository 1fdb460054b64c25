// Package statement reads bank statement CSV exports whose column layout is
// not known in advance.
//
// The layout of each row is guessed from its field count (see Classify).
// Rows that cannot be read are skipped; parsing never fails on content.
package statement

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/saveup-dev/saveup/internal/model"
)

// Parser interprets statement text. The zero value is not usable; use New.
type Parser struct {
	logger *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report skipped rows at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{logger: zap.NewNop()}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse interprets text with a Parser that does not log.
func Parse(text string) []model.ParsedTransaction {
	return New().Parse(text)
}

// Format returns the parser name.
func (p *Parser) Format() string { return "auto" }

// ParseReader decodes r (see Decode) and parses the result.
func (p *Parser) ParseReader(r io.Reader) ([]model.ParsedTransaction, error) {
	text, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return p.Parse(text), nil
}

// Parse returns the transactions found in text, in source order.
// The first line is always treated as a header.
func (p *Parser) Parse(text string) []model.ParsedTransaction {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var txns []model.ParsedTransaction
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		fields := SplitRow(line)
		if len(fields) < minFields {
			p.skip(i, "too few fields", zap.Int("fields", len(fields)))
			continue
		}

		c, ok := Classify(fields)
		if !ok {
			p.skip(i, "no amount columns", zap.String("layout", string(c.Layout)))
			continue
		}
		if !c.Amount.IsPositive() {
			p.skip(i, "no positive amount", zap.String("layout", string(c.Layout)))
			continue
		}

		desc := fields[colDesc]
		if desc == "" {
			desc = fmt.Sprintf("Transaction %d", i)
		}

		txns = append(txns, model.ParsedTransaction{
			Date:        NormalizeDate(fields[colDate]),
			Description: desc,
			Amount:      c.Amount,
			Direction:   c.Direction,
			Balance:     c.Balance,
		})
	}
	return txns
}

func (p *Parser) skip(line int, reason string, fields ...zap.Field) {
	p.logger.Debug("skipping row",
		append([]zap.Field{zap.Int("line", line+1), zap.String("reason", reason)}, fields...)...)
}
