package mcp79412

// The MCP7941x answers on two fixed I2C addresses: one for the
// clock/calendar/SRAM register file and one for the EEPROM array.
const (
	DefaultAddress       = 0x6F // clock, calendar and SRAM
	DefaultEEPROMAddress = 0x57 // EEPROM and unique ID
)

// Clock device register map (0x00-0x5F).
const (
	regTime        = 0x00 // 7 registers: seconds, minutes, hours, weekday, day, month, year
	regWeekday     = 0x03 // weekday register also holds the OSCON, VBAT and VBATEN bits
	regYear        = 0x06
	regControl     = 0x07 // square wave, alarm enables, MFP level
	regCalibration = 0x08 // sign-magnitude drift trim
	regUnlockID    = 0x09 // unlock sequence target, unused by this driver
	regAlarm0      = 0x0A // 6 registers: seconds, minutes, hours, weekday, day, month
	regAlarm0Day   = 0x0D // alarm weekday register holds the config and flag bits
	regAlarm1      = 0x11 // same layout as alarm 0
	regPowerDown   = 0x18 // 4 registers: minutes, hours, day, month
	regPowerUp     = 0x1C // same layout as power-down
	sramStart      = 0x20
)

// EEPROM device layout.
const (
	uniqueIDAddr = 0xF0 // start of the factory-programmed ID block

	// Sizes of the addressable regions.
	SRAMSize       = 64
	EEPROMSize     = 128
	EEPROMPageSize = 8
	UniqueIDSize   = 8
)

// BufferLength caps multi-byte SRAM and EEPROM transfers. Historically
// this is the Wire receive buffer of the platforms the chip is paired
// with; burst writes carry one fewer byte because the register pointer
// occupies the first slot.
const BufferLength = 32

// Control register bits.
const (
	bitOut    = 7 // MFP logic level when not used as square wave or alarm output
	bitSQWE   = 6 // square wave output enable
	bitALM1   = 5 // alarm 1 enable
	bitALM0   = 4 // alarm 0 enable
	bitExtOsc = 3 // clock the registers from an external oscillator
	// bits 2..0 select the square wave frequency
)

// Bits spread across the time registers.
const (
	bitST       = 7 // seconds register: oscillator start/stop, 1 starts
	bitHR1224   = 6 // hours register: 12-hour mode when set, this driver uses 24-hour
	bitOSCON    = 5 // weekday register: oscillator running, read-only
	bitVBAT     = 4 // weekday register: power-failure latch, cleared by software
	bitVBATEN   = 3 // weekday register: battery backup enable
	bitLeapYear = 5 // month register: leap year, read-only
)

// Alarm weekday register bits. Bit 7 doubles as the alarm polarity
// in alarm 0's weekday register; it occupies the same position as the
// OUT bit of the control register but is a different register.
const (
	bitALMPOL = 7 // MFP level when an alarm triggers
	bitALMIF  = 3 // alarm triggered flag, cleared by software
	// bits 6..4 hold the match configuration, bits 2..0 the weekday
)

// Alarm selects one of the two alarm slots.
type Alarm uint8

const (
	Alarm0 Alarm = iota
	Alarm1
)

// AlarmMatch tells an alarm which fields must match the clock for it
// to trigger. The values are the chip's ALMxC configuration codes.
type AlarmMatch uint8

const (
	MatchSeconds AlarmMatch = 0 // seconds match
	MatchMinutes AlarmMatch = 1 // minutes match
	MatchHours   AlarmMatch = 2 // hours match
	MatchWeekday AlarmMatch = 3 // day of week matches
	MatchDay     AlarmMatch = 4 // day of month matches
	MatchAll     AlarmMatch = 7 // seconds, minutes, hours, weekday, day and month all match
)

// SquareWaveFreq selects the frequency driven on the MFP when the
// square wave output is enabled.
type SquareWaveFreq uint8

const (
	SquareWave1Hz   SquareWaveFreq = 0
	SquareWave4kHz  SquareWaveFreq = 1 // 4.096 kHz
	SquareWave8kHz  SquareWaveFreq = 2 // 8.192 kHz
	SquareWave32kHz SquareWaveFreq = 3 // 32.768 kHz
	SquareWaveOff   SquareWaveFreq = 4 // any value above 32.768 kHz disables the output
)
