package saw

import (
	"bufio"
	"context"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf16"

	"github.com/klauspost/compress/snappy"
)

// flushAfterIterations is the cadence at which frameWriter forces a
// Snappy frame boundary during a long fixed-width write, matching the
// original writer's FLUSH_AFTER_ITERATIONS. The cadence is not
// wire-visible; it only bounds how large a single compressed block can
// grow.
const flushAfterIterations = 20_000

// frameWriter wraps an io.Writer with Snappy-framed compression and
// fixed-width big-endian scalar encoding.
type frameWriter struct {
	ctx context.Context
	sw  *snappy.Writer
	buf [8]byte
	n   int
}

func newFrameWriter(ctx context.Context, w io.Writer) *frameWriter {
	return &frameWriter{ctx: ctx, sw: snappy.NewBufferedWriter(w)}
}

// checkCancel returns ErrInterrupted if the writer's context has been
// canceled, for cooperative cancellation inside long write loops.
func (fw *frameWriter) checkCancel() error {
	select {
	case <-fw.ctx.Done():
		return newError(KindInterrupted, "write canceled", fw.ctx.Err())
	default:
		return nil
	}
}

// tick should be called once per logical element written; it flushes
// the compressor every flushAfterIterations calls and checks for
// cancellation.
func (fw *frameWriter) tick() error {
	fw.n++
	if fw.n >= flushAfterIterations {
		fw.n = 0
		if err := fw.sw.Flush(); err != nil {
			return ioError("flushing compressed stream", err)
		}
	}
	return fw.checkCancel()
}

func (fw *frameWriter) writeByte(b byte) error {
	fw.buf[0] = b
	if _, err := fw.sw.Write(fw.buf[:1]); err != nil {
		return ioError("writing byte", err)
	}
	return nil
}

func (fw *frameWriter) writeInt8(v int8) error {
	return fw.writeByte(byte(v))
}

func (fw *frameWriter) writeInt16(v int16) error {
	binary.BigEndian.PutUint16(fw.buf[:2], uint16(v))
	if _, err := fw.sw.Write(fw.buf[:2]); err != nil {
		return ioError("writing int16", err)
	}
	return nil
}

func (fw *frameWriter) writeInt32(v int32) error {
	binary.BigEndian.PutUint32(fw.buf[:4], uint32(v))
	if _, err := fw.sw.Write(fw.buf[:4]); err != nil {
		return ioError("writing int32", err)
	}
	return nil
}

func (fw *frameWriter) writeInt64(v int64) error {
	binary.BigEndian.PutUint64(fw.buf[:8], uint64(v))
	if _, err := fw.sw.Write(fw.buf[:8]); err != nil {
		return ioError("writing int64", err)
	}
	return nil
}

func (fw *frameWriter) writeFloat32(v float32) error {
	return fw.writeInt32(int32(math.Float32bits(v)))
}

func (fw *frameWriter) writeFloat64(v float64) error {
	return fw.writeInt64(int64(math.Float64bits(v)))
}

// writeUTF writes s as a 2-byte unsigned big-endian length followed by
// its modified-UTF-8 encoding, compatible with Java's
// DataOutput.writeUTF.
func (fw *frameWriter) writeUTF(s string) error {
	encoded := encodeModifiedUTF8(s)
	if len(encoded) > math.MaxUint16 {
		return invalidArgument("string too long for writeUTF: %d encoded bytes", len(encoded))
	}
	binary.BigEndian.PutUint16(fw.buf[:2], uint16(len(encoded)))
	if _, err := fw.sw.Write(fw.buf[:2]); err != nil {
		return ioError("writing UTF length prefix", err)
	}
	if _, err := fw.sw.Write(encoded); err != nil {
		return ioError("writing UTF bytes", err)
	}
	return nil
}

func (fw *frameWriter) flush() error {
	if err := fw.sw.Flush(); err != nil {
		return ioError("flushing compressed stream", err)
	}
	return nil
}

func (fw *frameWriter) close() error {
	if err := fw.sw.Close(); err != nil {
		return ioError("closing compressed stream", err)
	}
	return nil
}

// frameReader mirrors frameWriter on the read side.
type frameReader struct {
	ctx context.Context
	br  *bufio.Reader
	buf [8]byte
}

func newFrameReader(ctx context.Context, r io.Reader) *frameReader {
	return &frameReader{ctx: ctx, br: bufio.NewReader(snappy.NewReader(r))}
}

func (fr *frameReader) checkCancel() error {
	select {
	case <-fr.ctx.Done():
		return newError(KindInterrupted, "read canceled", fr.ctx.Err())
	default:
		return nil
	}
}

func (fr *frameReader) readByte() (byte, error) {
	b, err := fr.br.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, corrupt("unexpected end of stream reading byte")
		}
		return 0, ioError("reading byte", err)
	}
	return b, nil
}

func (fr *frameReader) readFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(fr.br, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, corrupt("unexpected end of stream reading %d bytes", n)
		}
		return nil, ioError("reading bytes", err)
	}
	return buf, nil
}

func (fr *frameReader) readInt8() (int8, error) {
	b, err := fr.readByte()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

func (fr *frameReader) readInt16() (int16, error) {
	b, err := fr.readFull(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

func (fr *frameReader) readInt32() (int32, error) {
	b, err := fr.readFull(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (fr *frameReader) readInt64() (int64, error) {
	b, err := fr.readFull(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (fr *frameReader) readFloat32() (float32, error) {
	v, err := fr.readInt32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v)), nil
}

func (fr *frameReader) readFloat64() (float64, error) {
	v, err := fr.readInt64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(v)), nil
}

// readUTF reads a 2-byte length prefix followed by that many
// modified-UTF-8 bytes, compatible with Java's DataOutput.readUTF.
func (fr *frameReader) readUTF() (string, error) {
	lenBytes, err := fr.readFull(2)
	if err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(lenBytes))
	data, err := fr.readFull(n)
	if err != nil {
		return "", err
	}
	s, err := decodeModifiedUTF8(data)
	if err != nil {
		return "", corrupt("invalid modified-UTF-8 string: %v", err)
	}
	return s, nil
}

// encodeModifiedUTF8 encodes s the way java.io.DataOutputStream.writeUTF
// does: NUL is encoded as the two-byte sequence 0xC0 0x80, and
// characters outside the BMP are represented as a UTF-16 surrogate
// pair, each half encoded as an independent 3-byte sequence, rather than
// true 4-byte UTF-8.
func encodeModifiedUTF8(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r == 0:
			out = append(out, 0xC0, 0x80)
		case r <= 0x7F:
			out = append(out, byte(r))
		case r <= 0x7FF:
			out = append(out,
				byte(0xC0|(r>>6)),
				byte(0x80|(r&0x3F)),
			)
		case r <= 0xFFFF:
			out = append(out,
				byte(0xE0|(r>>12)),
				byte(0x80|((r>>6)&0x3F)),
				byte(0x80|(r&0x3F)),
			)
		default:
			hi, lo := utf16.EncodeRune(r)
			out = appendModifiedUTF8Unit(out, hi)
			out = appendModifiedUTF8Unit(out, lo)
		}
	}
	return out
}

func appendModifiedUTF8Unit(out []byte, unit rune) []byte {
	return append(out,
		byte(0xE0|(unit>>12)),
		byte(0x80|((unit>>6)&0x3F)),
		byte(0x80|(unit&0x3F)),
	)
}

// decodeModifiedUTF8 decodes bytes produced by encodeModifiedUTF8 (or by
// java.io.DataOutputStream.writeUTF), reassembling surrogate pairs.
func decodeModifiedUTF8(data []byte) (string, error) {
	var runes []rune
	i := 0
	for i < len(data) {
		b0 := data[i]
		switch {
		case b0&0x80 == 0:
			runes = append(runes, rune(b0))
			i++
		case b0&0xE0 == 0xC0:
			if i+1 >= len(data) {
				return "", io.ErrUnexpectedEOF
			}
			b1 := data[i+1]
			runes = append(runes, rune(b0&0x1F)<<6|rune(b1&0x3F))
			i += 2
		case b0&0xF0 == 0xE0:
			if i+2 >= len(data) {
				return "", io.ErrUnexpectedEOF
			}
			b1, b2 := data[i+1], data[i+2]
			unit := rune(b0&0x0F)<<12 | rune(b1&0x3F)<<6 | rune(b2&0x3F)
			runes = append(runes, unit)
			i += 3
		default:
			return "", io.ErrUnexpectedEOF
		}
	}

	// Reassemble any UTF-16 surrogate pairs produced by encodeModifiedUTF8.
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if utf16.IsSurrogate(runes[i]) && i+1 < len(runes) {
			if combined := utf16.DecodeRune(runes[i], runes[i+1]); combined != 0xFFFD {
				out = append(out, combined)
				i++
				continue
			}
		}
		out = append(out, runes[i])
	}
	return string(out), nil
}
