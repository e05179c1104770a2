package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address - real address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsUint256() {
	tests := []struct {
		desc  string
		value string
		exp   bool
	}{
		{"zero", "0", true},
		{"large", "115792089237316195423570985008687907853269984665640564039457584007913129639935", true},
		{"overflow", "115792089237316195423570985008687907853269984665640564039457584007913129639936", false},
		{"negative", "-1", false},
		{"hex", "0x1", false},
		{"empty", "", false},
	}
	for _, t := range tests {
		s.Equal(t.exp, IsUint256(t.value), t.desc)
	}
}

func (s *ValidatorTestSuite) TestStructTags() {
	type params struct {
		Collection string `validate:"required,address"`
		TokenId    string `validate:"required,uint256"`
		Price      string `validate:"required,amount"`
	}
	v := NewCustomValidator(New())

	s.NoError(v.Validate(&params{"0x939ae6a4c8dfdbb1f7085189574f0a938013952b", "7", "0.05"}))
	s.Error(v.Validate(&params{"0x000", "7", "0.05"}))
	s.Error(v.Validate(&params{"0x939ae6a4c8dfdbb1f7085189574f0a938013952b", "seven", "0.05"}))
	s.Error(v.Validate(&params{"0x939ae6a4c8dfdbb1f7085189574f0a938013952b", "7", "-1"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
