package mmfio

// Mode is a capability mask decoded from an open-mode string.
type Mode int

const (
	// ModeInvalid is the empty mask: no capability requested
	ModeInvalid Mode = 0

	// ModeRead requests read capability ('r')
	ModeRead Mode = 1

	// ModeWrite requests write capability ('w'). Decoded but never
	// openable: write support is structurally absent.
	ModeWrite Mode = 2

	// ModeReadWrite is both capabilities combined ('rw')
	ModeReadWrite = ModeRead | ModeWrite
)

// ParseMode decodes a mode string into a capability mask.
// 'r' sets ModeRead, 'w' sets ModeWrite, every other character is ignored.
// The characters are an unordered set: "rw" and "wr" decode identically.
func ParseMode(mode string) Mode {
	var mask Mode
	for _, c := range mode {
		switch c {
		case 'r':
			mask |= ModeRead
		case 'w':
			mask |= ModeWrite
		}
	}
	return mask
}
