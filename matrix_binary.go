package geom

import (
	"encoding/binary"
	"fmt"
	"math"
)

// MatrixSize is the number of bytes WriteToMemory produces: nine
// little-endian IEEE 754 float32 values in row-major order.
const MatrixSize = 9 * 4

// WriteToMemory writes the coefficients of m into buf and returns the
// number of bytes written. A nil buf only reports the size. WriteToMemory
// panics if a non-nil buf is shorter than MatrixSize.
func (m *Matrix) WriteToMemory(buf []byte) int {
	if buf == nil {
		return MatrixSize
	}
	_ = buf[MatrixSize-1]
	for i, v := range m.mat {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return MatrixSize
}

// ReadFromMemory sets m from the first MatrixSize bytes of buf and returns
// the number of bytes consumed. It returns 0 and leaves m unchanged if buf
// is too short. The type mask is recomputed on the next query.
func (m *Matrix) ReadFromMemory(buf []byte) int {
	if len(buf) < MatrixSize {
		Logger().Debug("geom: ReadFromMemory short buffer",
			"have", len(buf), "need", MatrixSize)
		return 0
	}
	for i := range m.mat {
		m.mat[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	m.setTypeMask(unknownMask)
	return MatrixSize
}

// MarshalBinary implements encoding.BinaryMarshaler using the
// WriteToMemory layout.
func (m *Matrix) MarshalBinary() ([]byte, error) {
	return m.AppendBinary(make([]byte, 0, MatrixSize))
}

// AppendBinary implements encoding.BinaryAppender.
func (m *Matrix) AppendBinary(b []byte) ([]byte, error) {
	for _, v := range m.mat {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Unlike
// ReadFromMemory it requires exactly MatrixSize bytes and rejects
// non-finite coefficients.
func (m *Matrix) UnmarshalBinary(data []byte) error {
	switch {
	case len(data) < MatrixSize:
		return fmt.Errorf("geom: unmarshal matrix: got %d bytes, want %d: %w",
			len(data), MatrixSize, ErrShortBuffer)
	case len(data) > MatrixSize:
		return fmt.Errorf("geom: unmarshal matrix: got %d bytes, want %d: %w",
			len(data), MatrixSize, ErrTrailingData)
	}
	var tmp Matrix
	tmp.ReadFromMemory(data)
	if !tmp.IsFinite() {
		return fmt.Errorf("geom: unmarshal matrix: %w", ErrNonFinite)
	}
	*m = tmp
	return nil
}
