package flagset

type Permissions uint8

const (
	PermRead Permissions = 1 << iota
	PermWrite
	PermExecute
)

func (Permissions) All() Permissions { return PermRead | PermWrite | PermExecute }

// FileFlags uses five of the eight bits of its underlying type.
type FileFlags uint8

const (
	FileHidden FileFlags = 1 << iota
	FileSystem
	FileArchive
	FileReadOnly
	FileTemporary
)

func (FileFlags) All() FileFlags {
	return FileHidden | FileSystem | FileArchive | FileReadOnly | FileTemporary
}

// NetworkFlags leaves bit 2 unassigned.
type NetworkFlags uint16

const (
	NetTCP       NetworkFlags = 1
	NetUDP       NetworkFlags = 2
	NetIPv6      NetworkFlags = 8
	NetEncrypted NetworkFlags = 16
)

func (NetworkFlags) All() NetworkFlags { return NetTCP | NetUDP | NetIPv6 | NetEncrypted }

type LargeFlags uint64

const (
	LargeLow  LargeFlags = 1
	LargeMid  LargeFlags = 1 << 31
	LargeHigh LargeFlags = 1 << 63
)

func (LargeFlags) All() LargeFlags { return LargeLow | LargeMid | LargeHigh }

type emptyFlags uint8

func (emptyFlags) All() emptyFlags { return 0 }

// submasks returns every subset of mask, including zero and mask itself.
func submasks(mask uint64) []uint64 {
	out := []uint64{0}
	for s := mask; s != 0; s = (s - 1) & mask {
		out = append(out, s)
	}
	return out
}
