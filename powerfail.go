package mcp79412

import "time"

// PowerFail reports whether the chip latched a power failure and, if
// so, returns the power-down and power-up timestamps and clears the
// latch. Clearing the latch also clears the timestamp registers, so an
// event can only be read once; LostPower probes the latch without
// consuming it.
//
// The hardware records neither seconds nor years: seconds come back as
// zero and both timestamps assume the clock's current year. When the
// reconstructed power-down time lands after the power-up time the
// outage is taken to have spanned a year boundary and the power-down
// year is moved back by one. The reconstruction is therefore only
// reliable when it runs in the same calendar year as the power-up.
func (d *Device) PowerFail() (down, up time.Time, ok bool, err error) {
	weekday := [1]byte{}
	if err = d.bus.ReadRegister(d.Address, regWeekday, weekday[:]); err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	if weekday[0]&(1<<bitVBAT) == 0 {
		return time.Time{}, time.Time{}, false, nil
	}

	year := [1]byte{}
	if err = d.bus.ReadRegister(d.Address, regYear, year[:]); err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	current := bcdToDec(year[0]) + 2000

	// both timestamps in one transaction so they cannot tear
	ts := [8]byte{}
	if err = d.bus.ReadRegister(d.Address, regPowerDown, ts[:]); err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	down = timestampTime(current, ts[0:4])
	up = timestampTime(current, ts[4:8])

	// clear the latch only after both timestamps are decoded; the chip
	// wipes the timestamp registers along with it
	weekday[0] &^= 1 << bitVBAT
	if err = d.bus.WriteRegister(d.Address, regWeekday, weekday[:]); err != nil {
		return time.Time{}, time.Time{}, false, err
	}

	if down.After(up) {
		down = timestampTime(current-1, ts[0:4])
	}
	return down, up, true, nil
}

// timestampTime decodes one 4-byte power timestamp (minutes, hours,
// day, month) against the given year.
func timestampTime(year int, b []byte) time.Time {
	minute := bcdToDec(b[0])
	hour := bcdToDec(b[1] &^ (1 << bitHR1224))
	day := bcdToDec(b[2])
	month := time.Month(bcdToDec(b[3] & 0x1F)) // top three bits are the weekday
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
