package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/invoice/model"
	"inn/internal/pricing"
)

func TestChargeList_Value(t *testing.T) {
	tests := []struct {
		name    string
		charges model.ChargeList
		want    string
	}{
		{
			name:    "nil list encodes as empty array",
			charges: nil,
			want:    `[]`,
		},
		{
			name: "charges encode as json",
			charges: model.ChargeList{
				{Description: "Minibar", Amount: 120},
			},
			want: `[{"description":"Minibar","amount":120}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.charges.Value()

			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(value.([]byte)))
		})
	}
}

func TestChargeList_Scan(t *testing.T) {
	tests := []struct {
		name    string
		source  any
		want    model.ChargeList
		wantErr bool
	}{
		{
			name:   "nil source leaves list empty",
			source: nil,
			want:   model.ChargeList{},
		},
		{
			name:   "byte source decodes",
			source: []byte(`[{"description":"Breakfast","amount":150}]`),
			want: model.ChargeList{
				{Description: "Breakfast", Amount: 150},
			},
		},
		{
			name:    "unsupported source type",
			source:  42,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var charges model.ChargeList
			err := charges.Scan(tt.source)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, charges)
			}
		})
	}
}

func TestChargeList_RoundTrip(t *testing.T) {
	original := model.ChargeList{
		{Description: "Minibar", Amount: 120},
		{Description: "Late checkout", Amount: 300},
	}

	value, err := original.Value()
	assert.NoError(t, err)

	var decoded model.ChargeList
	assert.NoError(t, decoded.Scan(value))
	assert.Equal(t, []pricing.Charge(original), []pricing.Charge(decoded))
}
