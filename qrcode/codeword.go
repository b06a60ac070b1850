package qrcode

import (
	"fmt"

	"github.com/NeaByteLab/QR-Generator/bitutil"
	"github.com/NeaByteLab/QR-Generator/reedsolomon"
)

// Padding codewords appended alternately until the payload capacity is
// reached.
const (
	pad0 = 0xEC
	pad1 = 0x11
)

// CreateData packs the segments into the payload bit stream for the
// given version and level, pads it, Reed-Solomon encodes each block
// and returns the interleaved codeword stream of length
// version.TotalCodewords.
func CreateData(version int, ecLevel ErrorCorrectionLevel, segments []Segment) ([]byte, error) {
	v := GetVersionForNumber(version)
	buf := bitutil.NewBuffer()
	for _, seg := range segments {
		buf.Put(uint32(seg.Mode().Bits()), 4)
		buf.Put(uint32(seg.CharCount()), seg.Mode().CharacterCountBits(version))
		if err := seg.WriteBits(buf); err != nil {
			return nil, err
		}
	}

	rsBlocks := v.RSBlocks(ecLevel)
	totalDataCount := 0
	for _, block := range rsBlocks {
		totalDataCount += block.DataCount
	}
	capacity := totalDataCount * 8
	if buf.Len() > capacity {
		return nil, fmt.Errorf("%w: %d > %d bits", ErrCodeOverflow, buf.Len(), capacity)
	}

	// Terminator, when there is room for it.
	if buf.Len()+4 <= capacity {
		buf.Put(0, 4)
	}
	for buf.Len()%8 != 0 {
		buf.PutBit(false)
	}
	for buf.Len() < capacity {
		buf.Put(pad0, 8)
		if buf.Len() < capacity {
			buf.Put(pad1, 8)
		}
	}

	return interleave(buf.Bytes(), rsBlocks), nil
}

// interleave splits the data codewords into blocks, computes the EC
// codewords for each, and emits the i-th data codeword of every block
// in block order, then the same pattern over EC codewords.
func interleave(data []byte, rsBlocks []RSBlock) []byte {
	enc := reedsolomon.NewEncoder()

	offset := 0
	maxDataCount := 0
	maxECCount := 0
	dcData := make([][]byte, len(rsBlocks))
	ecData := make([][]byte, len(rsBlocks))
	totalCount := 0
	for i, block := range rsBlocks {
		dcData[i] = data[offset : offset+block.DataCount]
		ecData[i] = enc.Encode(dcData[i], block.TotalCount-block.DataCount)
		offset += block.DataCount
		totalCount += block.TotalCount
		if block.DataCount > maxDataCount {
			maxDataCount = block.DataCount
		}
		if n := block.TotalCount - block.DataCount; n > maxECCount {
			maxECCount = n
		}
	}

	out := make([]byte, 0, totalCount)
	for i := 0; i < maxDataCount; i++ {
		for _, dc := range dcData {
			if i < len(dc) {
				out = append(out, dc[i])
			}
		}
	}
	for i := 0; i < maxECCount; i++ {
		for _, ec := range ecData {
			if i < len(ec) {
				out = append(out, ec[i])
			}
		}
	}
	return out
}

// SmallestVersion returns the smallest version whose payload capacity
// holds the segments at the given level. The segment payload bits are
// version-independent; only the length-field widths vary.
func SmallestVersion(ecLevel ErrorCorrectionLevel, segments []Segment) (int, error) {
	payload := bitutil.NewBuffer()
	for _, seg := range segments {
		if err := seg.WriteBits(payload); err != nil {
			return 0, err
		}
	}
	for version := 1; version <= 40; version++ {
		v := GetVersionForNumber(version)
		capacity := v.ECBlocksForLevel(ecLevel).TotalDataCodewords() * 8
		bits := payload.Len()
		for _, seg := range segments {
			bits += 4 + seg.Mode().CharacterCountBits(version)
		}
		if bits <= capacity {
			return version, nil
		}
	}
	return 0, fmt.Errorf("%w: data does not fit any version", ErrCodeOverflow)
}
