package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrItemsEncoding = errors.New("unsupported items encoding")

// Item is a service line frozen at checkout.
type Item struct {
	ServiceID string          `json:"service_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Duration  int             `json:"duration"`
	Quantity  int             `json:"quantity"`
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i Item) TotalDuration() int {
	return i.Duration * i.Quantity
}

type Items []Item

// Totals sums duration and price over every line.
func (items Items) Totals() (duration int, price decimal.Decimal) {
	price = decimal.Zero

	for _, item := range items {
		duration += item.TotalDuration()
		price = price.Add(item.Subtotal())
	}

	return duration, price
}

func (items Items) ServiceIDs() []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ServiceID
	}

	return ids
}

func (items Items) Value() (driver.Value, error) {
	if items == nil {
		return "[]", nil
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}

	return string(payload), nil
}

func (items *Items) Scan(src any) error {
	var payload []byte

	switch value := src.(type) {
	case nil:
		*items = Items{}

		return nil
	case []byte:
		payload = value
	case string:
		payload = []byte(value)
	default:
		return fmt.Errorf("%w: %T", ErrItemsEncoding, src)
	}

	decoded := Items{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return fmt.Errorf("failed to decode items: %w", err)
	}

	*items = decoded

	return nil
}
