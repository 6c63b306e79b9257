package wealthplan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The persisted-state schema. This exact field set must round-trip
// losslessly:
//
//	{
//	  "totalInvestment": 380000,
//	  "assets": [{"id":1, "name":"Stocks", "mode":"percentage",
//	              "plannedValue":40, "actualValue":150000}],
//	  "currency": "CNY",
//	  "deviationThreshold": 5,
//	  "nextId": 5
//	}

// EncodePortfolio writes the portfolio snapshot as an indented JSON document
// with a stable field order.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	assets := make([]json.RawMessage, 0, len(p.assets))
	for _, a := range p.assets {
		var aw jsonObjectWriter
		aw.Append("id", a.id)
		aw.Append("name", a.name)
		aw.Append("mode", a.mode.String())
		aw.Append("plannedValue", a.planned)
		aw.Append("actualValue", a.actual)
		raw, err := aw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("could not encode asset %d: %w", a.id, err)
		}
		assets = append(assets, raw)
	}

	var pw jsonObjectWriter
	pw.Append("totalInvestment", p.totalInvestment)
	pw.Append("assets", assets)
	pw.Append("currency", p.currency)
	pw.Append("deviationThreshold", p.deviationThreshold)
	pw.Append("nextId", p.nextID)
	raw, err := pw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode portfolio: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("could not indent portfolio document: %w", err)
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// jasset and jportfolio are dedicated structs with tag annotations to parse
// the persisted document.
type jasset struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Mode         string          `json:"mode"`
	PlannedValue decimal.Decimal `json:"plannedValue"`
	ActualValue  decimal.Decimal `json:"actualValue"`
}

type jportfolio struct {
	TotalInvestment    decimal.Decimal `json:"totalInvestment"`
	Assets             []jasset        `json:"assets"`
	Currency           string          `json:"currency"`
	DeviationThreshold decimal.Decimal `json:"deviationThreshold"`
	NextID             int64           `json:"nextId"`
}

// DecodePortfolio reads a portfolio snapshot and validates its invariants:
// known currency and modes, unique ids and names, non-negative values, and a
// nextId above every issued id. A plan that is over-allocated from past edits
// is accepted as is.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	var jp jportfolio
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jp); err != nil {
		return nil, fmt.Errorf("could not parse portfolio document: %w", err)
	}

	currency, err := ParseCurrency(jp.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid portfolio document: %w", err)
	}
	if jp.TotalInvestment.IsNegative() {
		return nil, fmt.Errorf("invalid portfolio document: negative total investment %s", jp.TotalInvestment)
	}
	if jp.DeviationThreshold.IsNegative() {
		return nil, fmt.Errorf("invalid portfolio document: negative deviation threshold %s", jp.DeviationThreshold)
	}

	p := &Portfolio{
		totalInvestment:    jp.TotalInvestment,
		currency:           currency,
		deviationThreshold: jp.DeviationThreshold,
		nextID:             jp.NextID,
	}

	ids := make(map[int64]struct{}, len(jp.Assets))
	names := make(map[string]struct{}, len(jp.Assets))
	for _, ja := range jp.Assets {
		mode, err := ParseMode(ja.Mode)
		if err != nil {
			return nil, fmt.Errorf("invalid asset %d: %w", ja.ID, err)
		}
		if ja.Name == "" {
			return nil, fmt.Errorf("invalid asset %d: empty name", ja.ID)
		}
		if _, dup := ids[ja.ID]; dup {
			return nil, fmt.Errorf("invalid portfolio document: duplicate asset id %d", ja.ID)
		}
		if _, dup := names[ja.Name]; dup {
			return nil, fmt.Errorf("invalid portfolio document: duplicate asset name %q", ja.Name)
		}
		if ja.PlannedValue.IsNegative() {
			return nil, fmt.Errorf("invalid asset %d: negative planned value %s", ja.ID, ja.PlannedValue)
		}
		if mode == Percentage && ja.PlannedValue.GreaterThan(hundred) {
			return nil, fmt.Errorf("invalid asset %d: planned percentage %s above 100", ja.ID, ja.PlannedValue)
		}
		if ja.ActualValue.IsNegative() {
			return nil, fmt.Errorf("invalid asset %d: negative actual value %s", ja.ID, ja.ActualValue)
		}
		if ja.ID >= jp.NextID {
			return nil, fmt.Errorf("invalid portfolio document: nextId %d not above asset id %d", jp.NextID, ja.ID)
		}
		ids[ja.ID] = struct{}{}
		names[ja.Name] = struct{}{}
		p.assets = append(p.assets, Asset{
			id:      ja.ID,
			name:    ja.Name,
			mode:    mode,
			planned: ja.PlannedValue,
			actual:  ja.ActualValue,
		})
	}
	if p.nextID < 1 {
		p.nextID = 1
	}
	return p, nil
}
