package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DocumentType distinguishes a finalized sale from a proforma (quotation)
// that is still editable.
type DocumentType int

const (
	DocumentTypeSale     DocumentType = 0
	DocumentTypeProforma DocumentType = 1
)

func (t DocumentType) String() string {
	names := [...]string{"Sale", "Proforma"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Sale"
	}
	return names[t]
}

func (t DocumentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DocumentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DocumentType(i)
		return nil
	}
	switch str {
	case "Sale":
		*t = DocumentTypeSale
	case "Proforma":
		*t = DocumentTypeProforma
	}
	return nil
}

func (t DocumentType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DocumentType) Scan(value interface{}) error {
	if value == nil {
		*t = DocumentTypeSale
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DocumentType(v)
	case int:
		*t = DocumentType(v)
	}
	return nil
}
