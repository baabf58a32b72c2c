package mcp79412

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestPowerFailNoEvent(t *testing.T) {
	c := qt.New(t)
	bus := &fakeBus{}
	d := New(bus)

	bus.rtc[regWeekday] = 0x07 | 1<<bitVBATEN // latch clear

	_, _, ok, err := d.PowerFail()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.Equals, false)
	c.Assert(len(bus.writes), qt.Equals, 0)
}

func TestPowerFailSameYear(t *testing.T) {
	c := qt.New(t)
	bus := &fakeBus{}
	d := New(bus)

	bus.rtc[regWeekday] = 0x07 | 1<<bitVBAT | 1<<bitVBATEN
	bus.rtc[regYear] = 0x25

	// down Mar-01 10:00; the hour byte carries a stray 12-hour flag
	copy(bus.rtc[regPowerDown:], []byte{0x00, 0x10 | 1<<bitHR1224, 0x01, 0x03})
	// up Mar-01 10:05; the month byte carries the weekday in its top bits
	copy(bus.rtc[regPowerUp:], []byte{0x05, 0x10, 0x01, 0x03 | 6<<5})

	down, up, ok, err := d.PowerFail()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.Equals, true)
	c.Assert(down.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)), qt.Equals, true)
	c.Assert(up.Equal(time.Date(2025, 3, 1, 10, 5, 0, 0, time.UTC)), qt.Equals, true)
}

func TestPowerFailYearRollover(t *testing.T) {
	c := qt.New(t)
	bus := &fakeBus{}
	d := New(bus)

	bus.rtc[regWeekday] = 0x03 | 1<<bitVBAT | 1<<bitVBATEN
	bus.rtc[regYear] = 0x25

	// down Dec-31 23:59, up Jan-01 00:02: the outage crossed new year
	copy(bus.rtc[regPowerDown:], []byte{0x59, 0x23, 0x31, 0x12 | 2<<5})
	copy(bus.rtc[regPowerUp:], []byte{0x02, 0x00, 0x01, 0x01 | 3<<5})

	down, up, ok, err := d.PowerFail()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.Equals, true)
	c.Assert(down.Equal(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)), qt.Equals, true)
	c.Assert(up.Equal(time.Date(2025, 1, 1, 0, 2, 0, 0, time.UTC)), qt.Equals, true)
}

func TestPowerFailClearsLatch(t *testing.T) {
	c := qt.New(t)
	bus := &fakeBus{}
	d := New(bus)

	bus.rtc[regWeekday] = 0x03 | 1<<bitVBAT | 1<<bitVBATEN
	bus.rtc[regYear] = 0x25
	copy(bus.rtc[regPowerDown:], []byte{0x00, 0x10, 0x01, 0x03})
	copy(bus.rtc[regPowerUp:], []byte{0x05, 0x10, 0x01, 0x03})

	_, _, ok, err := d.PowerFail()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.Equals, true)

	// the latch is cleared, battery backup stays enabled
	c.Assert(bus.rtc[regWeekday], qt.Equals, uint8(0x03|1<<bitVBATEN))

	// a second call sees no event
	_, _, ok, err = d.PowerFail()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.Equals, false)
}

func TestPowerFailDeviceAbsent(t *testing.T) {
	c := qt.New(t)
	bus := &fakeBus{rtcAbsent: true}
	d := New(bus)

	_, _, ok, err := d.PowerFail()
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(ok, qt.Equals, false)
}
