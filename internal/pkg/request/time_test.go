package request

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	var body struct {
		Start *Timestamp `json:"start"`
		End   *Timestamp `json:"end"`
		Other *Timestamp `json:"other"`
	}

	err := json.Unmarshal([]byte(`{"start":"2030-01-02T10:00:00","end":"2030-01-02T12:00:00+02:00"}`), &body)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC), *body.Start.Ptr())
	assert.True(t, body.End.Ptr().Equal(time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)))
	assert.Nil(t, body.Other.Ptr())

	err = json.Unmarshal([]byte(`{"start":"tomorrow"}`), &body)
	assert.Error(t, err)
}
