package calculations

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/streampaynet/streampay/x/streampay/types"
)

func linearStream(total int64, start, end int64) *types.Stream {
	return &types.Stream{
		TotalAmount:     math.NewInt(total),
		WithdrawnAmount: math.ZeroInt(),
		StartTime:       start,
		EndTime:         end,
		CurveType:       types.CurveType_CURVE_TYPE_LINEAR,
	}
}

func TestUnlockedLinear(t *testing.T) {
	tests := []struct {
		testName string
		total    int64
		start    int64
		end      int64
		now      int64
		expected int64
	}{
		{
			testName: "before start",
			total:    1000,
			start:    100,
			end:      200,
			now:      50,
			expected: 0,
		},
		{
			testName: "at start",
			total:    1000,
			start:    100,
			end:      200,
			now:      100,
			expected: 0,
		},
		{
			testName: "midpoint",
			total:    1000,
			start:    100,
			end:      200,
			now:      150,
			expected: 500,
		},
		{
			testName: "at end",
			total:    1000,
			start:    100,
			end:      200,
			now:      200,
			expected: 1000,
		},
		{
			testName: "after end",
			total:    1000,
			start:    100,
			end:      200,
			now:      999,
			expected: 1000,
		},
		{
			testName: "rounds down",
			total:    10,
			start:    0,
			end:      3,
			now:      1,
			expected: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			stream := linearStream(tt.total, tt.start, tt.end)
			require.Equal(t, math.NewInt(tt.expected), Unlocked(stream, tt.now))
		})
	}
}

func TestUnlockedPausedClockFrozen(t *testing.T) {
	stream := linearStream(1000, 0, 100)
	stream.IsPaused = true
	stream.PausedTime = 40

	// Time advances but accrual stays where the pause began.
	require.Equal(t, math.NewInt(400), Unlocked(stream, 60))
	require.Equal(t, math.NewInt(400), Unlocked(stream, 1000))
}

func TestUnlockedAfterResumeExcludesPausedInterval(t *testing.T) {
	// Paused from t=40 to t=70, resumed with 30s of accumulated pause.
	stream := linearStream(1000, 0, 100)
	stream.TotalPausedDuration = 30

	require.Equal(t, math.NewInt(400), Unlocked(stream, 70))
	require.Equal(t, math.NewInt(500), Unlocked(stream, 80))
	// End time is reached only after the schedule has run its full 100s.
	require.Equal(t, math.NewInt(1000), Unlocked(stream, 130))
}

func TestUnlockedExponential(t *testing.T) {
	stream := linearStream(1000, 0, 100)
	stream.CurveType = types.CurveType_CURVE_TYPE_EXPONENTIAL

	// total * (elapsed/duration)^2
	require.Equal(t, math.NewInt(0), Unlocked(stream, 0))
	require.Equal(t, math.NewInt(250), Unlocked(stream, 50))
	require.Equal(t, math.NewInt(810), Unlocked(stream, 90))
	require.Equal(t, math.NewInt(1000), Unlocked(stream, 100))
}

func TestUnlockedExponentialOverflowFallsBackToLinear(t *testing.T) {
	// A duration whose square exceeds int64 forces the linear curve.
	duration := maxSquarable + 1
	stream := linearStream(1_000_000, 0, duration)
	stream.CurveType = types.CurveType_CURVE_TYPE_EXPONENTIAL

	half := duration / 2
	expected := math.NewInt(1_000_000).Mul(math.NewInt(half)).Quo(math.NewInt(duration))
	require.Equal(t, expected, Unlocked(stream, half))
}

func TestUnlockedMilestones(t *testing.T) {
	stream := &types.Stream{
		TotalAmount:     math.NewInt(600),
		WithdrawnAmount: math.ZeroInt(),
		Milestones: []types.Milestone{
			{Timestamp: 100, Amount: math.NewInt(100)},
			{Timestamp: 200, Amount: math.NewInt(200)},
			{Timestamp: 300, Amount: math.NewInt(300)},
		},
	}

	require.Equal(t, math.NewInt(0), Unlocked(stream, 99))
	require.Equal(t, math.NewInt(100), Unlocked(stream, 100))
	require.Equal(t, math.NewInt(300), Unlocked(stream, 250))
	require.Equal(t, math.NewInt(600), Unlocked(stream, 300))
}

func TestWithdrawable(t *testing.T) {
	stream := linearStream(1000, 0, 100)
	stream.WithdrawnAmount = math.NewInt(300)

	require.Equal(t, math.NewInt(200), Withdrawable(stream, 50))
	require.Equal(t, math.NewInt(0), Withdrawable(stream, 20))
}

func TestStreamExtension(t *testing.T) {
	// 1000 tokens over 100s flows at 10/s, a 50 token top-up buys 5s.
	extension, ok := StreamExtension(math.NewInt(1000), 100, math.NewInt(50))
	require.True(t, ok)
	require.Equal(t, int64(5), extension)

	// Flow rate rounds to zero when the total is below one token per second.
	_, ok = StreamExtension(math.NewInt(50), 100, math.NewInt(10))
	require.False(t, ok)
}
