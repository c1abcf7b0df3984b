package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Condiments holds the soy sauce counts of an order. In storage and JSON it
// travels as "normal:N;dulce:M", or as null when both counts are zero.
type Condiments struct {
	Normal int
	Sweet  int
}

func (c Condiments) Empty() bool {
	return c.Normal <= 0 && c.Sweet <= 0
}

// EncodeCondiments clamps negative counts to zero and returns nil when
// nothing was requested.
func EncodeCondiments(normal, sweet int) *string {
	normal, sweet = max(normal, 0), max(sweet, 0)
	if normal == 0 && sweet == 0 {
		return nil
	}
	s := fmt.Sprintf("normal:%d;dulce:%d", normal, sweet)
	return &s
}

// DecodeCondiments is the inverse of EncodeCondiments. Unknown keys are
// skipped and anything that does not parse as a non-negative integer counts
// as zero.
func DecodeCondiments(s *string) Condiments {
	var c Condiments
	if s == nil || *s == "" {
		return c
	}
	for _, segment := range strings.Split(*s, ";") {
		key, value, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "normal":
			c.Normal = ParseCount(value)
		case "dulce":
			c.Sweet = ParseCount(value)
		}
	}
	return c
}

// ParseCount reads a quantity, treating non-numeric and negative input as 0.
func ParseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (c Condiments) Encode() *string {
	return EncodeCondiments(c.Normal, c.Sweet)
}

// Label renders the counts for people, e.g. "Soya normal x2, Soya dulce x1".
func (c Condiments) Label() string {
	parts := make([]string, 0, 2)
	if c.Normal > 0 {
		parts = append(parts, fmt.Sprintf("Soya normal x%d", c.Normal))
	}
	if c.Sweet > 0 {
		parts = append(parts, fmt.Sprintf("Soya dulce x%d", c.Sweet))
	}
	return strings.Join(parts, ", ")
}

func (c Condiments) Value() (driver.Value, error) {
	s := c.Encode()
	if s == nil {
		return nil, nil
	}
	return *s, nil
}

func (c *Condiments) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*c = Condiments{}
	case string:
		*c = DecodeCondiments(&v)
	case []byte:
		s := string(v)
		*c = DecodeCondiments(&s)
	default:
		return fmt.Errorf("condiments must be text, not %T", value)
	}
	return nil
}

func (c Condiments) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Encode())
}

func (c *Condiments) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = DecodeCondiments(s)
	return nil
}
