package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountMode selects how line discounts are interpreted for a working
// order. A given workflow only ever uses one mode: sales entry works in
// percentages, editing a saved order works in fixed per-unit amounts.
type DiscountMode int

const (
	DiscountModePercent DiscountMode = 0
	DiscountModePerUnit DiscountMode = 1
)

func (m DiscountMode) String() string {
	names := [...]string{"Percent", "PerUnit"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Percent"
	}
	return names[m]
}

func (m DiscountMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *DiscountMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = DiscountMode(i)
		return nil
	}
	switch str {
	case "Percent":
		*m = DiscountModePercent
	case "PerUnit":
		*m = DiscountModePerUnit
	}
	return nil
}

func (m DiscountMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *DiscountMode) Scan(value interface{}) error {
	if value == nil {
		*m = DiscountModePercent
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = DiscountMode(v)
	case int:
		*m = DiscountMode(v)
	}
	return nil
}
