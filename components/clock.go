package components

import "github.com/yohamta/donburi"

// ClockData carries the elapsed time shared by every system in a tick.
type ClockData struct {
	DeltaTime float64 // seconds since the previous tick
	Elapsed   float64
	Ticks     int
}

var Clock = donburi.NewComponentType[ClockData]()
