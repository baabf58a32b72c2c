// Package mcp79412 implements a driver for the Microchip MCP79411/12
// battery-backed Real-Time Clock/Calendar. Besides the clock itself the
// chip carries two alarms, 64 bytes of battery-backed SRAM, 128 bytes of
// EEPROM, power-failure timestamps, an oscillator trim register and a
// factory-programmed unique ID (EUI-48 on the '11, EUI-64 on the '12).
//
// The chip presents itself as two I2C devices, one for the clock/SRAM
// register file and one for the EEPROM, so the driver holds two slave
// addresses on the same bus.
//
// All clock operations assume 24-hour mode; Set always writes it.
//
// Datasheet: https://ww1.microchip.com/downloads/en/DeviceDoc/20002266H.pdf
package mcp79412

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

var (
	errInvalidLength    = errors.New("mcp79412: buffer length out of range")
	errAddressRange     = errors.New("mcp79412: address range exceeds memory")
	errCalibrationRange = errors.New("mcp79412: calibration value out of range")
	errInvalidMatch     = errors.New("mcp79412: invalid alarm match mode")
)

// Device wraps the two I2C connections to an MCP7941x chip.
type Device struct {
	bus           drivers.I2C
	Address       uint8
	EEPROMAddress uint8
}

// Config holds the device addresses, in case the part sits behind an
// address translator. Zero values select the chip defaults.
type Config struct {
	Address       uint8
	EEPROMAddress uint8
}

// New creates a new MCP79412 connection. The I2C bus must already be
// configured.
//
// This function only creates the Device object, it does not touch the
// device.
func New(bus drivers.I2C) Device {
	return Device{
		bus:           bus,
		Address:       DefaultAddress,
		EEPROMAddress: DefaultEEPROMAddress,
	}
}

// Configure applies non-default addresses. Calling it is optional when
// the chip is strapped to its factory addresses.
func (d *Device) Configure(cfg Config) {
	if cfg.Address != 0 {
		d.Address = cfg.Address
	}
	if cfg.EEPROMAddress != 0 {
		d.EEPROMAddress = cfg.EEPROMAddress
	}
}

// Now reads the clock. It returns an error if the chip does not answer,
// which is how an absent or unpowered part manifests.
func (d *Device) Now() (time.Time, error) {
	buf := [7]byte{}
	err := d.bus.ReadRegister(d.Address, regTime, buf[:])
	if err != nil {
		return time.Time{}, err
	}

	second := bcdToDec(buf[0] &^ (1 << bitST))
	minute := bcdToDec(buf[1])
	hour := bcdToDec(buf[2] &^ (1 << bitHR1224))
	// buf[3] is the weekday plus status bits; the date below determines
	// the weekday so it is not decoded
	day := bcdToDec(buf[4])
	month := time.Month(bcdToDec(buf[5] &^ (1 << bitLeapYear)))
	year := bcdToDec(buf[6]) + 2000

	return time.Date(year, month, day, hour, minute, second, 0, time.UTC), nil
}

// Set writes the clock. The chip stores a two-digit year, so t must
// fall within 2000-2099.
//
// The write is deliberately split in two transactions: the first stops
// the oscillator and loads every calendar field, the second loads the
// seconds and restarts the oscillator in the same register write. A
// single burst would let the oscillator tick across half-written
// fields. Setting the time also enables battery backup.
func (d *Device) Set(t time.Time) error {
	t = t.UTC()

	buf := []byte{
		0x00, // hold the oscillator stopped while the calendar changes
		decToBcd(t.Minute()),
		decToBcd(t.Hour()), // bit 6 low selects 24-hour mode
		uint8(t.Weekday()+1) | (1 << bitVBATEN),
		decToBcd(t.Day()),
		decToBcd(int(t.Month())),
		decToBcd(t.Year() - 2000),
	}
	if err := d.bus.WriteRegister(d.Address, regTime, buf); err != nil {
		return err
	}

	// the final seconds value and the start bit land in one write
	return d.bus.WriteRegister(d.Address, regTime,
		[]byte{decToBcd(t.Second()) | (1 << bitST)})
}

// IsRunning reports the commanded oscillator start bit. The actual
// oscillator state, which lags the command, is reported by
// OscillatorRunning.
func (d *Device) IsRunning() (bool, error) {
	buf := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regTime, buf[:]); err != nil {
		return false, err
	}
	return buf[0]&(1<<bitST) != 0, nil
}

// OscillatorRunning reports the hardware OSCON bit, set by the chip
// while the oscillator actually runs.
func (d *Device) OscillatorRunning() (bool, error) {
	buf := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regWeekday, buf[:]); err != nil {
		return false, err
	}
	return buf[0]&(1<<bitOSCON) != 0, nil
}

// LostPower reports whether the chip has latched a power failure since
// the latch was last cleared. The latch, and the timestamps that come
// with it, are left untouched; PowerFail reads and clears them.
func (d *Device) LostPower() (bool, error) {
	buf := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regWeekday, buf[:]); err != nil {
		return false, err
	}
	return buf[0]&(1<<bitVBAT) != 0, nil
}

// SetBatteryBackup connects (true) or disconnects (false) the backup
// battery input. Note that Set always re-enables it.
func (d *Device) SetBatteryBackup(enable bool) error {
	buf := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regWeekday, buf[:]); err != nil {
		return err
	}
	if enable {
		buf[0] |= 1 << bitVBATEN
	} else {
		buf[0] &^= 1 << bitVBATEN
	}
	return d.bus.WriteRegister(d.Address, regWeekday, buf[:])
}

// SetOutput drives the MFP to a static logic level. The level only
// shows on the pin while the square wave output and both alarms are
// disabled.
func (d *Device) SetOutput(high bool) error {
	buf := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regControl, buf[:]); err != nil {
		return err
	}
	if high {
		buf[0] |= 1 << bitOut
	} else {
		buf[0] &^= 1 << bitOut
	}
	return d.bus.WriteRegister(d.Address, regControl, buf[:])
}

// SetSquareWave enables the square wave output on the MFP at the given
// frequency, or disables it when freq is SquareWaveOff.
func (d *Device) SetSquareWave(freq SquareWaveFreq) error {
	buf := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regControl, buf[:]); err != nil {
		return err
	}
	if freq > SquareWave32kHz {
		buf[0] &^= 1 << bitSQWE
	} else {
		buf[0] = (buf[0] & 0xF8) | (1 << bitSQWE) | uint8(freq)
	}
	return d.bus.WriteRegister(d.Address, regControl, buf[:])
}

// Calibration reads the oscillator trim register. The chip stores the
// value as sign-magnitude, not two's complement; the result is a
// regular integer in -127..127.
func (d *Device) Calibration() (int, error) {
	buf := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, regCalibration, buf[:]); err != nil {
		return 0, err
	}
	if buf[0]&0x80 != 0 {
		return -int(buf[0] & 0x7F), nil
	}
	return int(buf[0]), nil
}

// SetCalibration writes the oscillator trim register. Values outside
// -127..127 leave the register untouched.
func (d *Device) SetCalibration(value int) error {
	if value < -127 || value > 127 {
		return errCalibrationRange
	}
	b := uint8(value)
	if value < 0 {
		b = uint8(-value) | 0x80
	}
	return d.bus.WriteRegister(d.Address, regCalibration, []byte{b})
}

// decToBcd converts int to BCD
func decToBcd(dec int) uint8 {
	return uint8(dec + 6*(dec/10))
}

// bcdToDec converts BCD to int
func bcdToDec(bcd uint8) int {
	return int(bcd - 6*(bcd>>4))
}
