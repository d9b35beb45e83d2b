package api

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutes_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Minutes
	}{
		{`10`, 10},
		{`2.9`, 2},
		{`-0.5`, 0},
		{`1e20`, math.MaxInt32},
		{`-1e20`, math.MinInt32},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var req CreateTransferRequest
			require.NoError(t, json.Unmarshal([]byte(`{"expiresTime":`+tt.in+`}`), &req))
			require.NotNil(t, req.ExpiresTime)
			assert.Equal(t, tt.want, *req.ExpiresTime)
		})
	}

	var req CreateTransferRequest
	require.NoError(t, json.Unmarshal([]byte(`{"expiresTime":null}`), &req))
	assert.Nil(t, req.ExpiresTime)

	err := json.Unmarshal([]byte(`{"expiresTime":"soon"}`), &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expiresTime must be a number")
}
