package pine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jwtly10/lazytrader/internal/engine"
	"github.com/jwtly10/lazytrader/internal/ledger"
	"github.com/jwtly10/lazytrader/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrail() ledger.Trail {
	return ledger.Trail{
		{
			Date: "20240103", Hour: 10, Minute: 0,
			Action: types.Buy,
			Shares: 222.2222, Price: 90,
			Volume: 222.2222, Cash: 80000, MarketValue: 100000,
		},
		{
			Date: "20240104", Hour: 10, Minute: 0,
			Action: types.Sell,
			Shares: 100, Price: 105,
			Volume: 122.2222, Cash: 90500, MarketValue: 103333,
		},
	}
}

func TestRender(t *testing.T) {
	params := engine.Parameters{OperationPct: 20, BullishPct: 102, BearishPct: 98}

	got := Render(params, sampleTrail())

	expected := `// @version=4
study("Script", overlay=true, max_labels_count=500)
// operation=20% bullish=102.0 bearish=98.0
label.new(timestamp(2024,1,3,10,0),close,xloc=xloc.bar_time,yloc=yloc.abovebar,text="Buy 222@90.00, hold 222,\ncash 80000, value 100000",style=label.style_labeldown,color=color.green)
label.new(timestamp(2024,1,4,10,0),close,xloc=xloc.bar_time,yloc=yloc.belowbar,text="Sell 100@105.00, hold 122,\ncash 90500, value 103333",style=label.style_labelup,color=color.red)
`

	assert.Equal(t, expected, got)
}

func TestRender_EmptyTrailStillHasHeader(t *testing.T) {
	got := Render(engine.Parameters{OperationPct: 20, BullishPct: 102, BearishPct: 98}, nil)

	assert.Contains(t, got, "// @version=4\n")
	assert.Contains(t, got, "study(\"Script\", overlay=true, max_labels_count=500)\n")
	assert.NotContains(t, got, "label.new")
}

func TestRender_PlacementAlternatesByParity(t *testing.T) {
	trail := ledger.Trail{}
	for i := 0; i < 4; i++ {
		trail = append(trail, types.TradeEvent{
			Date: "20240103", Hour: 10, Minute: 0, Action: types.Buy,
			Shares: 1, Price: 1, Volume: 1, Cash: 1, MarketValue: 1,
		})
	}

	got := Render(engine.Parameters{}, trail)

	assert.Equal(t, 2, strings.Count(got, "yloc.abovebar"))
	assert.Equal(t, 2, strings.Count(got, "yloc.belowbar"))
	assert.Equal(t, 2, strings.Count(got, "style_labeldown"))
	assert.Equal(t, 2, strings.Count(got, "style_labelup"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pine")
	params := engine.Parameters{OperationPct: 20, BullishPct: 102, BearishPct: 98}

	require.NoError(t, WriteFile(path, params, sampleTrail()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render(params, sampleTrail()), string(content))
}
