package calculations

import (
	"cosmossdk.io/math"

	"github.com/streampaynet/streampay/x/streampay/types"
)

// maxSquarable is the largest int64 whose square still fits in an int64.
const maxSquarable = int64(3037000499)

// EffectiveElapsed returns the number of seconds the stream has actually been
// flowing at the given time. Paused intervals do not count: while a stream is
// paused the clock is frozen at the moment the pause began, and every
// completed pause interval is subtracted from wall-clock elapsed time.
func EffectiveElapsed(stream *types.Stream, now int64) int64 {
	effectiveNow := now
	if stream.IsPaused && stream.PausedTime < effectiveNow {
		effectiveNow = stream.PausedTime
	}
	elapsed := effectiveNow - stream.StartTime - stream.TotalPausedDuration
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Unlocked returns the portion of the stream's total amount that has vested at
// the given time. The result is monotonic in time, never exceeds the total
// amount, and is zero before the start time.
func Unlocked(stream *types.Stream, now int64) math.Int {
	if len(stream.Milestones) > 0 {
		return milestoneUnlocked(stream, now)
	}

	duration := stream.EndTime - stream.StartTime
	if duration <= 0 {
		return stream.TotalAmount
	}
	elapsed := EffectiveElapsed(stream, now)
	if elapsed <= 0 {
		return math.ZeroInt()
	}
	if elapsed >= duration {
		return stream.TotalAmount
	}

	if stream.CurveType == types.CurveType_CURVE_TYPE_EXPONENTIAL {
		if amount, ok := exponentialUnlocked(stream.TotalAmount, elapsed, duration); ok {
			return amount
		}
		// Squaring would overflow, degrade to the linear curve.
	}
	return linearUnlocked(stream.TotalAmount, elapsed, duration)
}

// Withdrawable returns the unlocked amount not yet withdrawn.
func Withdrawable(stream *types.Stream, now int64) math.Int {
	available := Unlocked(stream, now).Sub(stream.WithdrawnAmount)
	if available.IsNegative() {
		return math.ZeroInt()
	}
	return available
}

func linearUnlocked(total math.Int, elapsed, duration int64) math.Int {
	return total.Mul(math.NewInt(elapsed)).Quo(math.NewInt(duration))
}

// exponentialUnlocked accelerates vesting toward the end of the stream:
// unlocked = total * elapsed^2 / duration^2. It reports false when either
// square cannot be represented in an int64.
func exponentialUnlocked(total math.Int, elapsed, duration int64) (math.Int, bool) {
	if elapsed > maxSquarable || duration > maxSquarable {
		return math.Int{}, false
	}
	elapsedSq := math.NewInt(elapsed * elapsed)
	durationSq := math.NewInt(duration * duration)
	return total.Mul(elapsedSq).Quo(durationSq), true
}

func milestoneUnlocked(stream *types.Stream, now int64) math.Int {
	effectiveNow := now
	if stream.IsPaused && stream.PausedTime < effectiveNow {
		effectiveNow = stream.PausedTime
	}
	effectiveNow -= stream.TotalPausedDuration

	unlocked := math.ZeroInt()
	for _, milestone := range stream.Milestones {
		if milestone.Timestamp > effectiveNow {
			break
		}
		unlocked = unlocked.Add(milestone.Amount)
	}
	return unlocked
}

// StreamExtension returns the number of seconds a top-up of the given amount
// extends the stream, keeping the original flow rate. It reports false when
// the flow rate rounds to zero, in which case the stream cannot be extended.
func StreamExtension(total math.Int, duration int64, topUp math.Int) (int64, bool) {
	if duration <= 0 || !total.IsPositive() {
		return 0, false
	}
	flowRate := total.Quo(math.NewInt(duration))
	if flowRate.IsZero() {
		return 0, false
	}
	return topUp.Quo(flowRate).Int64(), true
}
