package mcp79412

import "time"

// alarmOffset returns the register offset of the selected alarm slot.
// Alarm numbers are masked to the two valid slots.
func alarmOffset(n Alarm) uint8 {
	return uint8(n&1) * (regAlarm1 - regAlarm0)
}

// SetAlarm loads an alarm's time registers. It does not enable the
// alarm, change its match mode or clear a pending trigger flag; those
// bits live in the alarm weekday register and are preserved here. Call
// EnableAlarm to arm it.
func (d *Device) SetAlarm(n Alarm, t time.Time) error {
	off := alarmOffset(n)

	day := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regAlarm0Day+off, day[:]); err != nil {
		return err
	}

	t = t.UTC()
	buf := []byte{
		decToBcd(t.Second()),
		decToBcd(t.Minute()),
		decToBcd(t.Hour()), // bit 6 low selects 24-hour mode
		(day[0] & 0xF8) | uint8(t.Weekday()+1),
		decToBcd(t.Day()),
		decToBcd(int(t.Month())),
	}
	return d.bus.WriteRegister(d.Address, regAlarm0+off, buf)
}

// EnableAlarm arms an alarm with the given match mode and clears its
// trigger flag. The alarm fires, setting the flag and driving the MFP,
// whenever the configured fields of the clock match the alarm
// registers.
func (d *Device) EnableAlarm(n Alarm, match AlarmMatch) error {
	if match > MatchAll {
		return errInvalidMatch
	}
	off := alarmOffset(n)

	day := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regAlarm0Day+off, day[:]); err != nil {
		return err
	}
	// keep polarity and weekday, clear the trigger flag, load the mode
	day[0] = (day[0] & 0x87) | uint8(match)<<4
	if err := d.bus.WriteRegister(d.Address, regAlarm0Day+off, day[:]); err != nil {
		return err
	}

	ctrl := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regControl, ctrl[:]); err != nil {
		return err
	}
	ctrl[0] |= 1 << (bitALM0 + uint8(n&1))
	return d.bus.WriteRegister(d.Address, regControl, ctrl[:])
}

// DisableAlarm disarms an alarm. The alarm registers, match mode and
// trigger flag are left as they are.
func (d *Device) DisableAlarm(n Alarm) error {
	ctrl := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regControl, ctrl[:]); err != nil {
		return err
	}
	ctrl[0] &^= 1 << (bitALM0 + uint8(n&1))
	return d.bus.WriteRegister(d.Address, regControl, ctrl[:])
}

// AlarmTriggered reports whether the alarm has fired since it was last
// checked, and rearms it by clearing the trigger flag. Nothing is
// written when the flag was already clear.
func (d *Device) AlarmTriggered(n Alarm) (bool, error) {
	off := alarmOffset(n)

	day := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regAlarm0Day+off, day[:]); err != nil {
		return false, err
	}
	if day[0]&(1<<bitALMIF) == 0 {
		return false, nil
	}
	day[0] &^= 1 << bitALMIF
	if err := d.bus.WriteRegister(d.Address, regAlarm0Day+off, day[:]); err != nil {
		return false, err
	}
	return true, nil
}

// SetAlarmPolarity sets the MFP level driven while an alarm is
// triggered. The single bit lives in alarm 0's weekday register but
// governs both alarms: with polarity low the pin asserts only when both
// alarms trigger, with polarity high when either does.
func (d *Device) SetAlarmPolarity(high bool) error {
	day := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regAlarm0Day, day[:]); err != nil {
		return err
	}
	if high {
		day[0] |= 1 << bitALMPOL
	} else {
		day[0] &^= 1 << bitALMPOL
	}
	return d.bus.WriteRegister(d.Address, regAlarm0Day, day[:])
}
