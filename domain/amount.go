package domain

import (
	"encoding/json"
	"math/big"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"golang.org/x/xerrors"
)

// Amount is a non-negative token quantity in base units. The zero value is 0.
// Amount is immutable, arithmetic returns new values.
type Amount struct {
	v *big.Int
}

var ZeroAmount = Amount{}

func NewAmount(v int64) Amount {
	if v < 0 {
		panic("negative amount")
	}
	return Amount{big.NewInt(v)}
}

// AmountFromBig copies b, negative values are rejected.
func AmountFromBig(b *big.Int) (Amount, error) {
	if b == nil {
		return ZeroAmount, nil
	}
	if b.Sign() < 0 {
		return ZeroAmount, xerrors.Errorf("negative amount %s: %w", b, ErrBadParamInput)
	}
	return Amount{new(big.Int).Set(b)}, nil
}

// ParseAmount parses a base-10 integer string.
func ParseAmount(s string) (Amount, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return ZeroAmount, xerrors.Errorf("invalid amount %q: %w", s, ErrBadParamInput)
	}
	return AmountFromBig(b)
}

func (a Amount) Big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.v)
}

func (a Amount) IsZero() bool {
	return a.v == nil || a.v.Sign() == 0
}

func (a Amount) Cmp(b Amount) int {
	return a.Big().Cmp(b.Big())
}

func (a Amount) Add(b Amount) Amount {
	return Amount{new(big.Int).Add(a.Big(), b.Big())}
}

func (a Amount) String() string {
	if a.v == nil {
		return "0"
	}
	return a.v.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalBSONValue stores amounts as decimal strings, uint256 does not fit
// any bson numeric type.
func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(a.String())
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
