package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/holderauction/domain"
)

func TestParse(t *testing.T) {
	f := NewFormatter(18)
	cases := []struct {
		name    string
		display string
		want    string
		wantErr bool
	}{
		{name: "integer", display: "2", want: "2000000000000000000"},
		{name: "fraction", display: "0.05", want: "50000000000000000"},
		{name: "smallest unit", display: "0.000000000000000001", want: "1"},
		{name: "zero", display: "0", want: "0"},
		{name: "too precise", display: "0.0000000000000000001", wantErr: true},
		{name: "negative", display: "-1", wantErr: true},
		{name: "garbage", display: "abc", wantErr: true},
	}
	for _, cs := range cases {
		t.Run(cs.name, func(t *testing.T) {
			got, err := f.Parse(cs.display)
			if cs.wantErr {
				assert.ErrorIs(t, err, domain.ErrBadParamInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cs.want, got.String())
		})
	}
}

func TestDisplay(t *testing.T) {
	f := NewFormatter(6)
	amt, err := domain.ParseAmount("1234567")
	require.NoError(t, err)
	assert.Equal(t, "1.234567", f.Display(amt).String())
	assert.Equal(t, "0", f.Display(domain.ZeroAmount).String())
}
