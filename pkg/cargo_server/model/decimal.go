package model

import "github.com/shopspring/decimal"

type Decimal struct {
	value decimal.Decimal
}

func NewDecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{
		value: d,
	}, nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.value.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	return d.value.UnmarshalJSON(b)
}

func (d Decimal) String() string {
	return d.value.String()
}

func NewDecimalFromInt(i int64) Decimal {
	return Decimal{
		value: decimal.NewFromInt(i),
	}
}

func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{
		value: d.value.Add(other.value),
	}
}

func (d Decimal) Mul(other Decimal) Decimal {
	return Decimal{
		value: d.value.Mul(other.value),
	}
}

func (d Decimal) Div(other Decimal) Decimal {
	return Decimal{
		value: d.value.Div(other.value),
	}
}

func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

func (d Decimal) Equal(other Decimal) bool {
	return d.value.Equal(other.value)
}
