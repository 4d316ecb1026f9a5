// Package symbolv1 describes the instrument a book instance trades.
package symbolv1

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/errors"
)

// SymbolType distinguishes spot pairs from margin-traded futures.
type SymbolType string

const (
	SymbolTypeCurrencyExchangePair SymbolType = "CURRENCY_EXCHANGE_PAIR"
	SymbolTypeFuturesContract      SymbolType = "FUTURES_CONTRACT"
)

// Spec is the static specification of one instrument. Prices and sizes in
// commands are interpreted through its scaling constants.
type Spec struct {
	Symbol        string     `yaml:"symbol"`
	Type          SymbolType `yaml:"type"`
	BaseCurrency  string     `yaml:"baseCurrency"`
	QuoteCurrency string     `yaml:"quoteCurrency"`

	// BaseScaleK is the lot size: base currency units per one size unit.
	BaseScaleK int64 `yaml:"baseScaleK"`
	// QuoteScaleK is the step size: quote currency units per one price unit.
	QuoteScaleK int64 `yaml:"quoteScaleK"`

	TakerFee int64 `yaml:"takerFee"`
	MakerFee int64 `yaml:"makerFee"`

	// Margin requirements, futures only.
	MarginBuy  int64 `yaml:"marginBuy"`
	MarginSell int64 `yaml:"marginSell"`
}

// Validate checks the specification for internal consistency.
func (s *Spec) Validate() error {
	if s.Symbol == "" {
		return errors.NewTracer("symbol spec: empty symbol")
	}
	switch s.Type {
	case SymbolTypeCurrencyExchangePair, SymbolTypeFuturesContract:
	default:
		return errors.NewTracer("symbol spec: unknown type " + string(s.Type))
	}
	if s.BaseScaleK <= 0 || s.QuoteScaleK <= 0 {
		return errors.NewTracer("symbol spec: scaling constants must be positive")
	}
	if s.TakerFee < s.MakerFee {
		return errors.NewTracer("symbol spec: taker fee below maker fee")
	}
	if s.Type == SymbolTypeFuturesContract && (s.MarginBuy <= 0 || s.MarginSell <= 0) {
		return errors.NewTracer("symbol spec: futures contract requires margins")
	}
	return nil
}

// LoadSpec reads and validates a symbol spec from a YAML file.
func LoadSpec(path string) (*Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	var spec Spec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, errors.TracerFromError(err)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
