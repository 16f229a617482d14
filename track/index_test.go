package track

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBracketEmptyStore(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	before, after := store.Bracket(t0)
	assert.Nil(t, before)
	assert.Nil(t, after)
}

func TestBracket(t *testing.T) {
	store, err := NewStore([]Point{
		pt(0, 10.0, 20.0),
		pt(10*time.Minute, 10.1, 20.2),
		pt(20*time.Minute, 10.2, 20.4),
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		query     time.Time
		wantLats  [2]float64 // before, after; NaN encoded as -1 sentinel not needed, use hasBefore/hasAfter
		hasBefore bool
		hasAfter  bool
	}{
		{
			name:     "before first sample",
			query:    t0.Add(-time.Minute),
			hasAfter: true,
			wantLats: [2]float64{0, 10.0},
		},
		{
			name:      "after last sample",
			query:     t0.Add(21 * time.Minute),
			hasBefore: true,
			wantLats:  [2]float64{10.2, 0},
		},
		{
			name:      "between adjacent samples",
			query:     t0.Add(5 * time.Minute),
			hasBefore: true,
			hasAfter:  true,
			wantLats:  [2]float64{10.0, 10.1},
		},
		{
			name:      "exactly on interior sample",
			query:     t0.Add(10 * time.Minute),
			hasBefore: true,
			hasAfter:  true,
			wantLats:  [2]float64{10.1, 10.1},
		},
		{
			name:      "exactly on first sample",
			query:     t0,
			hasBefore: true,
			hasAfter:  true,
			wantLats:  [2]float64{10.0, 10.0},
		},
		{
			name:      "exactly on last sample",
			query:     t0.Add(20 * time.Minute),
			hasBefore: true,
			hasAfter:  true,
			wantLats:  [2]float64{10.2, 10.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after := store.Bracket(tt.query)

			require.Equal(t, tt.hasBefore, before != nil, "before presence")
			require.Equal(t, tt.hasAfter, after != nil, "after presence")
			if before != nil {
				assert.Equal(t, tt.wantLats[0], before.Lat)
				assert.False(t, before.Timestamp.After(tt.query),
					"before must not be later than the query")
			}
			if after != nil {
				assert.Equal(t, tt.wantLats[1], after.Lat)
				assert.False(t, after.Timestamp.Before(tt.query),
					"after must not be earlier than the query")
			}
		})
	}
}

func TestBracketReturnsCopies(t *testing.T) {
	store, err := NewStore([]Point{pt(0, 10.0, 20.0), pt(time.Minute, 11.0, 21.0)})
	require.NoError(t, err)

	before, _ := store.Bracket(t0.Add(30 * time.Second))
	require.NotNil(t, before)
	before.Lat = 99

	assert.Equal(t, 10.0, store.At(0).Lat, "bracket results must not alias store internals")
}

func TestBracketSinglePoint(t *testing.T) {
	store, err := NewStore([]Point{pt(0, 10.0, 20.0)})
	require.NoError(t, err)

	before, after := store.Bracket(t0.Add(5 * time.Minute))
	assert.NotNil(t, before)
	assert.Nil(t, after, "single-point store has no after bracket past its sample")

	before, after = store.Bracket(t0.Add(-5 * time.Minute))
	assert.Nil(t, before)
	assert.NotNil(t, after)
}
