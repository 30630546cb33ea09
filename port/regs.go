package port

// Bank is the register block of one GPIO port, laid out at the hardware
// offsets (TM4C123GH6PM datasheet, table 10-6).
type Bank struct {
	_      [255]Register32 // 0x000-0x3F8: address-masked DATA aliases
	DATA   Register32      // 0x3FC
	DIR    Register32      // 0x400
	IS     Register32      // 0x404
	IBE    Register32      // 0x408
	IEV    Register32      // 0x40C
	IM     Register32      // 0x410
	RIS    Register32      // 0x414
	MIS    Register32      // 0x418
	ICR    Register32      // 0x41C
	AFSEL  Register32      // 0x420
	_      [55]Register32  // 0x424-0x4FC
	DR2R   Register32      // 0x500
	DR4R   Register32      // 0x504
	DR8R   Register32      // 0x508
	ODR    Register32      // 0x50C
	PUR    Register32      // 0x510
	PDR    Register32      // 0x514
	SLR    Register32      // 0x518
	DEN    Register32      // 0x51C
	LOCK   Register32      // 0x520
	CR     Register32      // 0x524
	AMSEL  Register32      // 0x528
	PCTL   Register32      // 0x52C
	ADCCTL Register32      // 0x530
	DMACTL Register32      // 0x534
}

// SysCtl is the part of the system control block the driver touches.
type SysCtl struct {
	_        [66]Register32  // 0x000-0x104
	RCGC2    Register32      // 0x108: legacy GPIO clock gating
	_        [319]Register32 // 0x10C-0x604
	RCGCGPIO Register32      // 0x608
	_        [3]Register32   // 0x60C-0x614
	RCGCUART Register32      // 0x618
}

const (
	SysCtlBase = 0x400FE000

	// unlockKey opens GPIOCR for writing when stored in GPIOLOCK.
	unlockKey = 0x4C4F434B

	// pctlMask covers one pin's function-select nibble in GPIOPCTL.
	pctlMask = 0xF
	// pctlAnalog routes the pin to its analog function.
	pctlAnalog = 0xF
)

// APB aperture base address of each bank.
var bankBase = [NumPorts]uintptr{
	PortA: 0x40004000,
	PortB: 0x40005000,
	PortC: 0x40006000,
	PortD: 0x40007000,
	PortE: 0x40024000,
	PortF: 0x40025000,
}

// BaseAddress returns the base address of a bank's register block, or 0
// if the bank does not exist.
func BaseAddress(p PortID) uintptr {
	if p >= NumPorts {
		return 0
	}
	return bankBase[p]
}

// Registers gives access to the register blocks of the GPIO banks.
type Registers interface {
	// Bank returns the register block for p, or nil if p does not exist.
	Bank(p PortID) *Bank

	// SysCtl returns the system control block.
	SysCtl() *SysCtl
}

func bit(pin uint8) uint32 {
	return 1 << pin
}
