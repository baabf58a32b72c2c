package mcp79412

import "errors"

var errNoAck = errors.New("i2c: no ack")

// busWrite records one burst write as seen on the wire.
type busWrite struct {
	addr uint8
	reg  uint8
	data []byte
}

// fakeBus implements drivers.I2C with the chip's two slave devices: a
// register file for the clock/SRAM side and a 256-byte array for the
// EEPROM side (covering both the 0x00-0x7F array and the ID block at
// 0xF0). An EEPROM write arms writeCycle failed acknowledge polls so
// tests can observe the write-cycle wait.
type fakeBus struct {
	rtc    [0x60]byte
	eeprom [0x100]byte

	rtcAbsent  bool
	writeCycle int // ack polls to fail after each EEPROM write
	busy       int // remaining failing polls
	polls      int // ack polls observed in total

	writes []busWrite
}

func (b *fakeBus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	switch addr {
	case DefaultAddress:
		if b.rtcAbsent {
			return errNoAck
		}
		copy(buf, b.rtc[r:])
	case DefaultEEPROMAddress:
		copy(buf, b.eeprom[r:])
	default:
		return errNoAck
	}
	return nil
}

func (b *fakeBus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	data := make([]byte, len(buf))
	copy(data, buf)
	b.writes = append(b.writes, busWrite{addr: addr, reg: r, data: data})

	switch addr {
	case DefaultAddress:
		if b.rtcAbsent {
			return errNoAck
		}
		copy(b.rtc[r:], buf)
	case DefaultEEPROMAddress:
		copy(b.eeprom[r:], buf)
		b.busy = b.writeCycle
	default:
		return errNoAck
	}
	return nil
}

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	if addr == uint16(DefaultEEPROMAddress) {
		b.polls++
		if b.busy > 0 {
			b.busy--
			return errNoAck
		}
		return nil
	}
	if b.rtcAbsent {
		return errNoAck
	}
	return nil
}
