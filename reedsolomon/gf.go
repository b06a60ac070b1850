// Package reedsolomon implements Reed-Solomon error correction coding
// over GF(256) with the QR code primitive polynomial x^8+x^4+x^3+x^2+1.
package reedsolomon

// exp and log tables for GF(256). Read-only after init.
var (
	expTable [256]int
	logTable [256]int
)

func init() {
	for i := 0; i < 8; i++ {
		expTable[i] = 1 << uint(i)
	}
	for i := 8; i < 256; i++ {
		expTable[i] = expTable[i-4] ^ expTable[i-5] ^ expTable[i-6] ^ expTable[i-8]
	}
	for i := 0; i < 255; i++ {
		logTable[expTable[i]] = i
	}
}

// Exp returns alpha^n. n is reduced modulo 255 into [0, 255).
func Exp(n int) int {
	n %= 255
	if n < 0 {
		n += 255
	}
	return expTable[n]
}

// Log returns the discrete logarithm of x for x in [1, 255].
func Log(x int) int {
	if x < 1 {
		panic("reedsolomon: log of non-positive element")
	}
	return logTable[x]
}
