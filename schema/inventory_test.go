package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateCodec(t *testing.T) {
	delivered := NewDate(2026, time.February, 10)
	data, err := json.Marshal(CubesatInput{Name: "SP-Orion", Status: "working", DeliveredDate: &delivered})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"delivered_date":"2026-02-10"`)

	var decoded Cubesat
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"SP-Orion","delivered_date":"2026-02-10","received_date":null}`), &decoded))
	require.NotNil(t, decoded.DeliveredDate)
	assert.Equal(t, "2026-02-10", decoded.DeliveredDate.Format("2006-01-02"))

	var zero Date
	data, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"10/02/2026"`), &bad))
}
