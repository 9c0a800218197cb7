package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
)

func TestCatalogWellFormed(t *testing.T) {
	gen := New(42)
	events := gen.Catalog(30)
	require.Len(t, events, 30)

	seen := make(map[string]bool, len(events))
	for _, e := range events {
		// o núcleo exige ids únicos e odds > 1.0
		assert.False(t, seen[e.ID], "id duplicado: %s", e.ID)
		seen[e.ID] = true

		assert.Greater(t, e.Odds.Home, 1.0)
		assert.Greater(t, e.Odds.Away, 1.0)
		if e.Sport == ledger.SportTennis {
			assert.False(t, e.Odds.HasDraw(), "tênis não tem empate")
		} else {
			assert.Greater(t, e.Odds.Draw, 1.0)
		}

		assert.NotEmpty(t, e.HomeTeam)
		assert.NotEmpty(t, e.AwayTeam)
		assert.NotEqual(t, e.HomeTeam, e.AwayTeam)
		assert.Contains(t, []ledger.EventStatus{
			ledger.EventUpcoming, ledger.EventLive, ledger.EventFinished,
		}, e.Status)
	}
}

func TestCatalogCoversAllSports(t *testing.T) {
	gen := New(7)
	events := gen.Catalog(40)

	bySport := make(map[ledger.Sport]int)
	for _, e := range events {
		bySport[e.Sport]++
	}
	for _, sport := range sports {
		assert.Equal(t, 10, bySport[sport])
	}
}

func TestCatalogOrderedByStatusThenDate(t *testing.T) {
	gen := New(99)
	events := gen.Catalog(50)

	priority := map[ledger.EventStatus]int{
		ledger.EventUpcoming: 0,
		ledger.EventLive:     1,
		ledger.EventFinished: 2,
	}
	for i := 1; i < len(events); i++ {
		prev, cur := events[i-1], events[i]
		require.LessOrEqual(t, priority[prev.Status], priority[cur.Status])
		if priority[prev.Status] == priority[cur.Status] {
			require.False(t, cur.Date.Before(prev.Date))
		}
	}
}

func TestDeterministicForSeed(t *testing.T) {
	a := New(1).Catalog(12)
	b := New(1).Catalog(12)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Odds, b[i].Odds)
		assert.Equal(t, a[i].Sport, b[i].Sport)
		assert.Equal(t, a[i].Status, b[i].Status)
	}
}
