package flagset

import (
	"math/bits"

	"fortio.org/safecast"

	"github.com/MrEthical07/goCommon/result"
)

const (
	msgInvalidForSet = "invalid enum value for FlagSet"
	msgInvalidFlag   = "invalid enum value"
	msgEmptyMask     = "flag type declares an empty All mask"
)

// Enum is the shape a flag type must have: an unsigned integer type whose All
// method returns the union of every legal single-bit flag.
type Enum[E any] interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
	All() E
}

// FlagSet is a set of flags of type E. The zero value is the empty set.
type FlagSet[E Enum[E]] struct {
	bits E
}

// Mask returns the valid mask of E.
func Mask[E Enum[E]]() E {
	var zero E
	return zero.All()
}

// Width returns the number of bit positions spanned by the valid mask of E.
func Width[E Enum[E]]() int {
	return bits.Len64(uint64(Mask[E]()))
}

// Validate checks that E declares a usable flag universe.
func Validate[E Enum[E]]() result.Status {
	if Mask[E]() == 0 {
		return result.Failure(result.ErrOf(result.KindValue, msgEmptyMask))
	}
	return result.Success()
}

// IsValid reports whether v carries no bit outside the valid mask of E.
func IsValid[E Enum[E]](v E) bool {
	return v&^Mask[E]() == 0
}

// New returns an empty set.
func New[E Enum[E]]() FlagSet[E] {
	return FlagSet[E]{}
}

// From returns a set holding v masked to the valid flags.
func From[E Enum[E]](v E) FlagSet[E] {
	return FlagSet[E]{bits: v & Mask[E]()}
}

// Of returns the set holding every given flag, masked to the valid flags.
func Of[E Enum[E]](flags ...E) FlagSet[E] {
	var v E
	for _, f := range flags {
		v |= f
	}
	return From(v)
}

// FromUnderlying returns a set holding raw masked to the valid flags. It never
// fails.
func FromUnderlying[E Enum[E]](raw uint64) FlagSet[E] {
	return FlagSet[E]{bits: E(raw & uint64(Mask[E]()))}
}

// FromEnum returns a set holding v, or a [result.KindValue] failure if v has
// a bit outside the valid mask.
func FromEnum[E Enum[E]](v E) result.Result[FlagSet[E]] {
	if !IsValid(v) {
		return result.Fail[FlagSet[E]](result.ErrOf(result.KindValue, msgInvalidForSet))
	}
	return result.Ok(FlagSet[E]{bits: v})
}

// FromInteger is the strict ingestion path for integers of any type. It fails
// with [result.KindValue] when raw does not fit E or carries a bit outside the
// valid mask.
func FromInteger[E Enum[E], I safecast.Integer](raw I) result.Result[FlagSet[E]] {
	v, err := safecast.Conv[E](raw)
	if err != nil {
		return result.Fail[FlagSet[E]](result.ErrOf(result.KindValue, msgInvalidForSet))
	}
	return FromEnum(v)
}

// validFlag accepts exactly one bit of the valid mask.
func validFlag[E Enum[E]](flag E) bool {
	return flag != 0 && IsValid(flag) && flag&(flag-1) == 0
}

var errInvalidFlag = result.ErrOf(result.KindValue, msgInvalidFlag)

// Has reports whether flag is set. flag must be a single valid flag.
func (s FlagSet[E]) Has(flag E) result.Result[bool] {
	if !validFlag(flag) {
		return result.Fail[bool](errInvalidFlag)
	}
	return result.Ok(s.bits&flag != 0)
}

// Set adds flag. flag must be a single valid flag.
func (s *FlagSet[E]) Set(flag E) result.Status {
	if !validFlag(flag) {
		return result.Failure(errInvalidFlag)
	}
	s.bits |= flag
	return result.Success()
}

// Clear removes flag. flag must be a single valid flag.
func (s *FlagSet[E]) Clear(flag E) result.Status {
	if !validFlag(flag) {
		return result.Failure(errInvalidFlag)
	}
	s.bits &^= flag
	return result.Success()
}

// Toggle flips flag. flag must be a single valid flag.
func (s *FlagSet[E]) Toggle(flag E) result.Status {
	if !validFlag(flag) {
		return result.Failure(errInvalidFlag)
	}
	s.bits ^= flag
	return result.Success()
}

// SetAll sets every valid flag.
func (s *FlagSet[E]) SetAll() {
	s.bits = Mask[E]()
}

// ClearAll clears every flag.
func (s *FlagSet[E]) ClearAll() {
	s.bits = 0
}

// ToggleAll flips every valid flag.
func (s *FlagSet[E]) ToggleAll() {
	s.bits ^= Mask[E]()
}

// ToUnderlying returns the stored bits as a raw integer.
func (s FlagSet[E]) ToUnderlying() uint64 {
	return uint64(s.bits)
}

// ToEnum returns the stored bits as a flag value.
func (s FlagSet[E]) ToEnum() E {
	return s.bits
}

// IsValid reports whether s holds only valid flags. It is true for every set
// built through this package.
func (s FlagSet[E]) IsValid() bool {
	return IsValid(s.bits)
}

// HasAny reports whether at least one flag is set.
func (s FlagSet[E]) HasAny() bool {
	return s.bits != 0
}

// HasNone reports whether s is empty.
func (s FlagSet[E]) HasNone() bool {
	return s.bits == 0
}

// Count returns the number of flags set.
func (s FlagSet[E]) Count() int {
	return bits.OnesCount64(uint64(s.bits))
}

// Or returns the union of s and o.
func (s FlagSet[E]) Or(o FlagSet[E]) FlagSet[E] {
	return FlagSet[E]{bits: s.bits | o.bits}
}

// And returns the intersection of s and o.
func (s FlagSet[E]) And(o FlagSet[E]) FlagSet[E] {
	return FlagSet[E]{bits: s.bits & o.bits}
}

// Xor returns the symmetric difference of s and o.
func (s FlagSet[E]) Xor(o FlagSet[E]) FlagSet[E] {
	return FlagSet[E]{bits: s.bits ^ o.bits}
}

// Not returns the complement of s within the valid mask.
func (s FlagSet[E]) Not() FlagSet[E] {
	return FlagSet[E]{bits: ^s.bits & Mask[E]()}
}

// OrAssign sets s to s | o.
func (s *FlagSet[E]) OrAssign(o FlagSet[E]) {
	s.bits |= o.bits
}

// AndAssign sets s to s & o.
func (s *FlagSet[E]) AndAssign(o FlagSet[E]) {
	s.bits &= o.bits
}

// XorAssign sets s to s ^ o.
func (s *FlagSet[E]) XorAssign(o FlagSet[E]) {
	s.bits ^= o.bits
}

// String renders s as "0b" followed by one binary digit per bit position,
// most significant first.
func (s FlagSet[E]) String() string {
	w := Width[E]()
	buf := make([]byte, 2+w)
	buf[0], buf[1] = '0', 'b'
	v := uint64(s.bits)
	for i := 0; i < w; i++ {
		c := byte('0')
		if v&(1<<uint(w-1-i)) != 0 {
			c = '1'
		}
		buf[2+i] = c
	}
	return string(buf)
}

// bitPosition returns the index of the single bit set in v. Zero maps to
// Width, one past the last valid position.
func bitPosition[E Enum[E]](v E) int {
	if v == 0 {
		return Width[E]()
	}
	return bits.TrailingZeros64(uint64(v))
}
