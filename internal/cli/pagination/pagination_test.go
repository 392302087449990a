package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "defaults", params: NewParams()},
		{name: "min page size", params: Params{PageSize: 1}},
		{name: "max page size with cap", params: Params{PageSize: 500, Pages: 3}},
		{name: "zero page size", params: Params{PageSize: 0}, wantErr: ErrInvalidPageSize},
		{name: "page size too large", params: Params{PageSize: 501}, wantErr: ErrInvalidPageSize},
		{name: "negative pages", params: Params{PageSize: 10, Pages: -1}, wantErr: ErrInvalidPages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParams_Reached(t *testing.T) {
	all := Params{PageSize: 10, Pages: AllPages}
	assert.False(t, all.Reached(0))
	assert.False(t, all.Reached(1000))

	two := Params{PageSize: 10, Pages: 2}
	assert.False(t, two.Reached(1))
	assert.True(t, two.Reached(2))
	assert.True(t, two.Reached(3))
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{PageSize: 25, Pages: 2}, 2, 50, false)

	assert.Equal(t, Meta{Pages: 2, PageSize: 25, Items: 50, Exhausted: false}, meta)
}
