package util

import (
	"math/rand/v2"
	"time"
)

// Package-level default RNG to avoid allocations when rng is nil
var defaultRNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

// DailyTips is the pool of wellness tips shown on the intro screen.
var DailyTips = []string{
	"Drink at least 8 glasses of water today.",
	"Take a 10-minute walk after lunch.",
	"Reduce screen time an hour before bed.",
	"Eat a fruit instead of a sugary snack.",
	"Did you know? Laughing boosts heart health!",
}

// DailyTip picks a tip at random.
func DailyTip(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}
	return DailyTips[rng.IntN(len(DailyTips))]
}
