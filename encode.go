package fundpool

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/etnz/fundpool/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RecordType is a typed string identifying the kind of a JSONL line.
type RecordType string

const (
	RecPartner    RecordType = "partner"
	RecContribute RecordType = "contribute"
	RecTrade      RecordType = "trade"
	RecPrice      RecordType = "price"
	RecSnapshot   RecordType = "snapshot"
)

// lenientDecimal decodes a JSON number or numeric string, coercing
// anything malformed (or null) to zero instead of failing. Hand-edited
// files carry the occasional bad number and one of them must not brick
// the whole pool.
type lenientDecimal struct{ decimal.Decimal }

func (d *lenientDecimal) UnmarshalJSON(data []byte) error {
	var v decimal.Decimal
	if err := v.UnmarshalJSON(data); err != nil {
		d.Decimal = decimal.Decimal{}
		return nil
	}
	d.Decimal = v
	return nil
}

// DecodeRecords reads the pool's record set from a stream of JSONL
// data. Each line carries a "record" discriminator; empty lines are
// skipped, an unknown discriminator is an error.
func DecodeRecords(r io.Reader) (*Records, error) {
	records := &Records{Prices: make(PriceOverrides)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: not a json object: %w", n, err)
		}

		var err error
		switch identifier.Record {
		case RecPartner:
			var temp struct {
				Name string `json:"name"`
			}
			if err = json.Unmarshal(line, &temp); err == nil {
				records.Partners = append(records.Partners, temp.Name)
			}
		case RecContribute:
			var temp struct {
				ID      string         `json:"id"`
				Date    date.Date      `json:"date"`
				Partner string         `json:"partner"`
				Amount  lenientDecimal `json:"amount"`
				Price   lenientDecimal `json:"price"`
				Units   lenientDecimal `json:"units"`
			}
			if err = json.Unmarshal(line, &temp); err == nil {
				c := Contribution{
					ID:      temp.ID,
					Date:    temp.Date,
					Partner: temp.Partner,
					Amount:  M(temp.Amount.Decimal, PoolCurrency),
				}
				if temp.Price.IsPositive() {
					c.IssuePrice = M(temp.Price.Decimal, PoolCurrency)
				}
				if temp.Units.IsPositive() {
					c.Units = Q(temp.Units.Decimal)
				}
				records.Contributions = append(records.Contributions, c)
			}
		case RecTrade:
			var temp struct {
				ID       string         `json:"id"`
				Date     date.Date      `json:"date"`
				Symbol   string         `json:"symbol"`
				Side     string         `json:"side"`
				Price    lenientDecimal `json:"price"`
				Quantity lenientDecimal `json:"quantity"`
			}
			if err = json.Unmarshal(line, &temp); err == nil {
				var side Side
				if side, err = ParseSide(temp.Side); err == nil {
					records.Trades = append(records.Trades, Trade{
						ID:       temp.ID,
						Date:     temp.Date,
						Symbol:   temp.Symbol,
						Side:     side,
						Price:    M(temp.Price.Decimal, TradeCurrency(temp.Symbol)),
						Quantity: Q(temp.Quantity.Decimal),
					})
				}
			}
		case RecPrice:
			var temp struct {
				Symbol string         `json:"symbol"`
				Price  lenientDecimal `json:"price"`
			}
			if err = json.Unmarshal(line, &temp); err == nil {
				records.Prices[temp.Symbol] = temp.Price.Decimal
			}
		case RecSnapshot:
			var temp struct {
				Date     date.Date                 `json:"date"`
				Time     time.Time                 `json:"time"`
				Total    lenientDecimal            `json:"total"`
				Partners map[string]lenientDecimal `json:"partners"`
			}
			if err = json.Unmarshal(line, &temp); err == nil {
				s := AssetSnapshot{
					Date:     temp.Date,
					Time:     temp.Time,
					Total:    M(temp.Total.Decimal, PoolCurrency),
					Partners: make(map[string]Money, len(temp.Partners)),
				}
				for name, equity := range temp.Partners {
					s.Partners[name] = M(equity.Decimal, PoolCurrency)
				}
				records.History = append(records.History, s)
			}
		default:
			err = fmt.Errorf("unknown record type: %q", identifier.Record)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading records: %w", err)
	}
	return records, nil
}

// EncodeRecords persists the record set as canonical JSONL: partners
// first, then contributions, trades, prices by symbol, history last.
// Field order within a line is fixed so rewrites diff cleanly under git.
func EncodeRecords(w io.Writer, r *Records) error {
	for _, name := range r.Partners {
		var line jsonObjectWriter
		line.Append("record", RecPartner)
		line.Append("name", name)
		if err := writeLine(w, &line); err != nil {
			return err
		}
	}
	for _, c := range r.Contributions {
		var line jsonObjectWriter
		line.Append("record", RecContribute)
		line.Optional("id", c.ID)
		line.Append("date", c.Date)
		line.Append("partner", c.Partner)
		line.Append("amount", c.Amount.Decimal())
		if c.IssuePrice.IsPositive() {
			line.Append("price", c.IssuePrice.Decimal())
		}
		if c.Units.IsPositive() {
			line.Append("units", c.Units.Decimal())
		}
		if err := writeLine(w, &line); err != nil {
			return err
		}
	}
	for _, t := range r.Trades {
		var line jsonObjectWriter
		line.Append("record", RecTrade)
		line.Optional("id", t.ID)
		line.Append("date", t.Date)
		line.Append("symbol", t.Symbol)
		line.Append("side", t.Side.String())
		line.Append("price", t.Price.Decimal())
		line.Append("quantity", t.Quantity.Decimal())
		if err := writeLine(w, &line); err != nil {
			return err
		}
	}
	symbols := make([]string, 0, len(r.Prices))
	for symbol := range r.Prices {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	for _, symbol := range symbols {
		var line jsonObjectWriter
		line.Append("record", RecPrice)
		line.Append("symbol", symbol)
		line.Append("price", r.Prices[symbol])
		if err := writeLine(w, &line); err != nil {
			return err
		}
	}
	for _, s := range sortedHistory(r.History) {
		var line jsonObjectWriter
		line.Append("record", RecSnapshot)
		line.Append("date", s.Date)
		line.Append("time", s.Time.Format(time.RFC3339))
		line.Append("total", s.Total.Decimal())
		partners := make(map[string]decimal.Decimal, len(s.Partners))
		for name, equity := range s.Partners {
			partners[name] = equity.Decimal()
		}
		line.Append("partners", partners)
		if err := writeLine(w, &line); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, line *jsonObjectWriter) error {
	data, err := line.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
