package saw

import (
	"context"
	"io"
)

// encodeColumn writes col's payload (no row count, no type tag) to w,
// dispatching on col's type tag to the matching fixed-width, TEXT, or
// dictionary-encoded STRING codec.
func encodeColumn(ctx context.Context, w io.Writer, col Column) error {
	fw := newFrameWriter(ctx, w)

	var err error
	switch col.Type() {
	case Float:
		err = encodeFloat(fw, col)
	case Double:
		err = encodeDouble(fw, col)
	case Integer:
		err = encodeInt(fw, col)
	case Short:
		err = encodeShort(fw, col)
	case Long:
		err = encodeLong(fw, col)
	case Boolean:
		err = encodeBoolean(fw, col)
	case LocalDate:
		err = encodeLocalDate(fw, col)
	case LocalTime:
		err = encodeLocalTime(fw, col)
	case LocalDateTime:
		err = encodeLocalDateTime(fw, col)
	case Instant:
		err = encodeInstant(fw, col)
	case Text:
		err = encodeText(fw, col)
	case String:
		err = encodeString(fw, col)
	default:
		return invalidArgument("unhandled column type %s writing column %q", col.Type(), col.Name())
	}
	if err != nil {
		return err
	}
	return fw.close()
}

// decodeColumn reads a column's payload from r according to cm, dispatching
// on cm.Type.
func decodeColumn(ctx context.Context, r io.Reader, cm columnMetadata, rowCount int) (Column, error) {
	fr := newFrameReader(ctx, r)
	base := baseColumn{name: cm.Name}

	t, err := ParseColumnType(cm.Type)
	if err != nil {
		return nil, err
	}
	base.typ = t

	switch t {
	case Float:
		return decodeFloat(fr, base, rowCount)
	case Double:
		return decodeDouble(fr, base, rowCount)
	case Integer:
		return decodeInt(fr, base, rowCount)
	case Short:
		return decodeShort(fr, base, rowCount)
	case Long:
		return decodeLong(fr, base, rowCount)
	case Boolean:
		return decodeBoolean(fr, base, rowCount)
	case LocalDate:
		return decodeLocalDate(fr, base, rowCount)
	case LocalTime:
		return decodeLocalTime(fr, base, rowCount)
	case LocalDateTime:
		return decodeLocalDateTime(fr, base, rowCount)
	case Instant:
		return decodeInstant(fr, base, rowCount)
	case Text:
		return decodeText(fr, base, rowCount)
	case String:
		return decodeString(fr, base, cm, rowCount)
	default:
		return nil, invalidArgument("unhandled column type %s reading column %q", t, cm.Name)
	}
}

func encodeFloat(fw *frameWriter, col Column) error {
	fc, ok := col.(FloatColumn)
	if !ok {
		return invalidArgument("column %q is tagged FLOAT but does not implement FloatColumn", col.Name())
	}
	for _, v := range fc.FloatValues() {
		if err := fw.writeFloat32(v); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}
	return fw.flush()
}

func decodeFloat(fr *frameReader, base baseColumn, rowCount int) (Column, error) {
	values := make([]float32, rowCount)
	for i := range values {
		v, err := fr.readFloat32()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &readFloatColumn{baseColumn: base, values: values}, nil
}

func encodeDouble(fw *frameWriter, col Column) error {
	dc, ok := col.(DoubleColumn)
	if !ok {
		return invalidArgument("column %q is tagged DOUBLE but does not implement DoubleColumn", col.Name())
	}
	for _, v := range dc.DoubleValues() {
		if err := fw.writeFloat64(v); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}
	return fw.flush()
}

func decodeDouble(fr *frameReader, base baseColumn, rowCount int) (Column, error) {
	values := make([]float64, rowCount)
	for i := range values {
		v, err := fr.readFloat64()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &readDoubleColumn{baseColumn: base, values: values}, nil
}

func encodeInt(fw *frameWriter, col Column) error {
	ic, ok := col.(IntColumn)
	if !ok {
		return invalidArgument("column %q is tagged INTEGER but does not implement IntColumn", col.Name())
	}
	for _, v := range ic.IntValues() {
		if err := fw.writeInt32(v); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}
	return fw.flush()
}

func decodeInt(fr *frameReader, base baseColumn, rowCount int) (Column, error) {
	values := make([]int32, rowCount)
	for i := range values {
		v, err := fr.readInt32()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &readIntColumn{baseColumn: base, values: values}, nil
}

func encodeShort(fw *frameWriter, col Column) error {
	sc, ok := col.(ShortColumn)
	if !ok {
		return invalidArgument("column %q is tagged SHORT but does not implement ShortColumn", col.Name())
	}
	for _, v := range sc.ShortValues() {
		if err := fw.writeInt16(v); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}
	return fw.flush()
}

func decodeShort(fr *frameReader, base baseColumn, rowCount int) (Column, error) {
	values := make([]int16, rowCount)
	for i := range values {
		v, err := fr.readInt16()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &readShortColumn{baseColumn: base, values: values}, nil
}

func encodeLong(fw *frameWriter, col Column) error {
	lc, ok := col.(LongColumn)
	if !ok {
		return invalidArgument("column %q is tagged LONG but does not implement LongColumn", col.Name())
	}
	for _, v := range lc.LongValues() {
		if err := fw.writeInt64(v); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}
	return fw.flush()
}

func decodeLong(fr *frameReader, base baseColumn, rowCount int) (Column, error) {
	values := make([]int64, rowCount)
	for i := range values {
		v, err := fr.readInt64()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &readLongColumn{baseColumn: base, values: values}, nil
}

func encodeBoolean(fw *frameWriter, col Column) error {
	bc, ok := col.(BooleanColumn)
	if !ok {
		return invalidArgument("column %q is tagged BOOLEAN but does not implement BooleanColumn", col.Name())
	}
	for _, v := range bc.BooleanValues() {
		if err := fw.writeInt8(v); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}
	return fw.flush()
}

func decodeBoolean(fr *frameReader, base baseColumn, rowCount int) (Column, error) {
	values := make([]int8, rowCount)
	for i := range values {
		v, err := fr.readInt8()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &readBooleanColumn{baseColumn: base, values: values}, nil
}

func encodeLocalDate(fw *frameWriter, col Column) error {
	dc, ok := col.(LocalDateColumn)
	if !ok {
		return invalidArgument("column %q is tagged LOCAL_DATE but does not implement LocalDateColumn", col.Name())
	}
	for _, v := range dc.PackedDateValues() {
		if err := fw.writeInt32(v); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}
	return fw.flush()
}

func decodeLocalDate(fr *frameReader, base baseColumn, rowCount int) (Column, error) {
	values := make([]int32, rowCount)
	for i := range values {
		v, err := fr.readInt32()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &readLocalDateColumn{baseColumn: base, values: values}, nil
}

func encodeLocalTime(fw *frameWriter, col Column) error {
	tc, ok := col.(LocalTimeColumn)
	if !ok {
		return invalidArgument("column %q is tagged LOCAL_TIME but does not implement LocalTimeColumn", col.Name())
	}
	for _, v := range tc.PackedTimeValues() {
		if err := fw.writeInt32(v); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}
	return fw.flush()
}

func decodeLocalTime(fr *frameReader, base baseColumn, rowCount int) (Column, error) {
	values := make([]int32, rowCount)
	for i := range values {
		v, err := fr.readInt32()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &readLocalTimeColumn{baseColumn: base, values: values}, nil
}

func encodeLocalDateTime(fw *frameWriter, col Column) error {
	dtc, ok := col.(LocalDateTimeColumn)
	if !ok {
		return invalidArgument("column %q is tagged LOCAL_DATE_TIME but does not implement LocalDateTimeColumn", col.Name())
	}
	for _, v := range dtc.PackedDateTimeValues() {
		if err := fw.writeInt64(v); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}
	return fw.flush()
}

func decodeLocalDateTime(fr *frameReader, base baseColumn, rowCount int) (Column, error) {
	values := make([]int64, rowCount)
	for i := range values {
		v, err := fr.readInt64()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &readLocalDateTimeColumn{baseColumn: base, values: values}, nil
}

func encodeInstant(fw *frameWriter, col Column) error {
	ic, ok := col.(InstantColumn)
	if !ok {
		return invalidArgument("column %q is tagged INSTANT but does not implement InstantColumn", col.Name())
	}
	for _, v := range ic.InstantValues() {
		if err := fw.writeInt64(v); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}
	return fw.flush()
}

func decodeInstant(fr *frameReader, base baseColumn, rowCount int) (Column, error) {
	values := make([]int64, rowCount)
	for i := range values {
		v, err := fr.readInt64()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &readInstantColumn{baseColumn: base, values: values}, nil
}

func encodeText(fw *frameWriter, col Column) error {
	tc, ok := col.(TextColumn)
	if !ok {
		return invalidArgument("column %q is tagged TEXT but does not implement TextColumn", col.Name())
	}
	for _, s := range tc.TextValues() {
		if err := fw.writeUTF(s); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}
	return fw.flush()
}

func decodeText(fr *frameReader, base baseColumn, rowCount int) (Column, error) {
	values := make([]string, rowCount)
	for i := range values {
		s, err := fr.readUTF()
		if err != nil {
			return nil, err
		}
		values[i] = s
	}
	return &readTextColumn{baseColumn: base, values: values}, nil
}
