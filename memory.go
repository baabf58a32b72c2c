package mcp79412

// This file covers the three byte-addressable memories of the chip:
// the raw clock register file (which the SRAM shares an address space
// with), the battery-backed SRAM window at 0x20, and the EEPROM on its
// own slave address. EEPROM writes are paged and need acknowledge
// polling while the internal write cycle runs.

// ReadRAM reads len(buf) sequential bytes of the clock device's
// register file starting at addr. The valid range is 0x00-0x5F and is
// not checked; the other memory accessors layer their bounds on top of
// this.
func (d *Device) ReadRAM(addr uint8, buf []byte) error {
	return d.bus.ReadRegister(d.Address, addr, buf)
}

// WriteRAM writes len(buf) sequential bytes to the clock device's
// register file starting at addr. The valid range is 0x00-0x5F and is
// not checked.
func (d *Device) WriteRAM(addr uint8, buf []byte) error {
	return d.bus.WriteRegister(d.Address, addr, buf)
}

// ReadSRAM reads from the battery-backed SRAM. addr is an offset into
// the 64-byte array. Requests that run past the end of the array or
// exceed BufferLength return an error without touching the bus.
func (d *Device) ReadSRAM(addr uint8, buf []byte) error {
	n := len(buf)
	if n < 1 || n > BufferLength {
		return errInvalidLength
	}
	if int(addr)+n > SRAMSize {
		return errAddressRange
	}
	return d.ReadRAM(sramStart+(addr&(SRAMSize-1)), buf)
}

// WriteSRAM writes to the battery-backed SRAM. addr is an offset into
// the 64-byte array. Burst writes carry at most BufferLength-1 bytes;
// longer requests, or requests that run past the end of the array,
// return an error without touching the bus.
func (d *Device) WriteSRAM(addr uint8, buf []byte) error {
	n := len(buf)
	if n < 1 || n > BufferLength-1 {
		return errInvalidLength
	}
	if int(addr)+n > SRAMSize {
		return errAddressRange
	}
	return d.WriteRAM(sramStart+(addr&(SRAMSize-1)), buf)
}

// ReadEEPROM reads from the EEPROM array. addr is constrained to
// 0x00-0x7F; requests past the end of the array or longer than
// BufferLength return an error without touching the bus.
func (d *Device) ReadEEPROM(addr uint8, buf []byte) error {
	n := len(buf)
	if n < 1 || n > BufferLength {
		return errInvalidLength
	}
	if int(addr)+n > EEPROMSize {
		return errAddressRange
	}
	return d.bus.ReadRegister(d.EEPROMAddress, addr&(EEPROMSize-1), buf)
}

// WriteEEPROM writes up to one 8-byte page to the EEPROM. The chip
// cannot start a write mid-page, so addr is coerced down to a page
// boundary (0, 8, ..., 120). Writes longer than a page return an error
// without touching the bus. The call blocks until the chip's internal
// write cycle completes.
func (d *Device) WriteEEPROM(addr uint8, buf []byte) error {
	if len(buf) < 1 || len(buf) > EEPROMPageSize {
		return errInvalidLength
	}
	addr = (addr &^ (EEPROMPageSize - 1)) & (EEPROMSize - 1)
	if err := d.bus.WriteRegister(d.EEPROMAddress, addr, buf); err != nil {
		return err
	}
	_, err := d.waitEEPROM()
	return err
}

// waitEEPROM acknowledge-polls the EEPROM until the internal write
// cycle finishes: the chip does not acknowledge its address while it
// is busy. The cycle lasts at most 5 ms per the datasheet. The poll
// count is returned for diagnostics.
func (d *Device) waitEEPROM() (int, error) {
	polls := 0
	for {
		polls++
		if err := d.bus.Tx(uint16(d.EEPROMAddress), []byte{0}, nil); err == nil {
			return polls, nil
		}
	}
}

// ReadUniqueID reads the 8-byte factory ID block into buf. The MCP79411
// carries an EUI-48 and pads the first two bytes with 0xFF; the
// MCP79412 carries a full EUI-64. See EUI64 for a normalized form.
func (d *Device) ReadUniqueID(buf []byte) error {
	if len(buf) < UniqueIDSize {
		return errInvalidLength
	}
	return d.bus.ReadRegister(d.EEPROMAddress, uniqueIDAddr, buf[:UniqueIDSize])
}

// EUI64 returns the unique ID as an EUI-64. An EUI-48 part is expanded
// in the standard way: the OUI keeps the first three bytes, 0xFF 0xFE
// is inserted, and the extension identifier keeps the tail. An EUI-64
// part is returned as read.
func (d *Device) EUI64() ([8]byte, error) {
	var id [8]byte
	if err := d.ReadUniqueID(id[:]); err != nil {
		return id, err
	}
	if id[0] == 0xFF && id[1] == 0xFF {
		id[0], id[1], id[2] = id[2], id[3], id[4]
		id[3], id[4] = 0xFF, 0xFE
	}
	return id, nil
}
