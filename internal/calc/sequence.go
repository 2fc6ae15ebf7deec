package calc

// Source is an ordered, read-only view over expression characters.
type Source interface {
	Len() int
	At(i int) byte
}

// Sequence is an append-only character sequence. Characters are not checked
// on append; Validate and Evaluate reject anything outside the alphabet.
//
// A Sequence must not be appended to while it is being validated or evaluated.
type Sequence struct {
	chars []byte
}

// New creates an empty Sequence.
func New() *Sequence {
	return &Sequence{}
}

// FromString creates a Sequence holding the bytes of s.
func FromString(s string) *Sequence {
	seq := &Sequence{chars: make([]byte, 0, len(s))}
	for i := 0; i < len(s); i++ {
		seq.Append(s[i])
	}
	return seq
}

// Append adds c to the end of the sequence.
func (s *Sequence) Append(c byte) {
	s.chars = append(s.chars, c)
}

func (s *Sequence) Len() int {
	return len(s.chars)
}

func (s *Sequence) At(i int) byte {
	return s.chars[i]
}

// Reset empties the sequence, keeping its capacity for reuse.
func (s *Sequence) Reset() {
	s.chars = s.chars[:0]
}

func (s *Sequence) String() string {
	return string(s.chars)
}

// Text adapts a string to Source without copying it.
type Text string

func (t Text) Len() int {
	return len(t)
}

func (t Text) At(i int) byte {
	return t[i]
}
