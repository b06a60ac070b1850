package reedsolomon

// Encoder computes error-correction codewords for QR code blocks. The
// generator polynomial for each EC length is built once and cached.
// An Encoder is not safe for concurrent use.
type Encoder struct {
	cachedGenerators []*Poly
}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{cachedGenerators: []*Poly{NewPoly([]int{1}, 0)}}
}

// buildGenerator returns the generator polynomial
// G(x) = (x - alpha^0)(x - alpha^1)...(x - alpha^(degree-1)).
func (e *Encoder) buildGenerator(degree int) *Poly {
	if degree < len(e.cachedGenerators) {
		return e.cachedGenerators[degree]
	}
	last := e.cachedGenerators[len(e.cachedGenerators)-1]
	for d := len(e.cachedGenerators); d <= degree; d++ {
		next := last.Multiply(NewPoly([]int{1, Exp(d - 1)}, 0))
		e.cachedGenerators = append(e.cachedGenerators, next)
		last = next
	}
	return e.cachedGenerators[degree]
}

// Encode returns ecCount error-correction codewords for the given data
// codewords: the remainder of the data polynomial shifted by ecCount
// zeros, modulo the generator polynomial.
func (e *Encoder) Encode(data []byte, ecCount int) []byte {
	if ecCount <= 0 {
		panic("reedsolomon: no error correction codewords requested")
	}
	generator := e.buildGenerator(ecCount)
	coefficients := make([]int, len(data))
	for i, b := range data {
		coefficients[i] = int(b)
	}
	rem := NewPoly(coefficients, generator.Len()-1).Mod(generator)

	ec := make([]byte, ecCount)
	for i := range ec {
		// The remainder may be shorter than ecCount when its leading
		// coefficients cancelled to zero.
		if j := i + rem.Len() - ecCount; j >= 0 {
			ec[i] = byte(rem.At(j))
		}
	}
	return ec
}
