package covers

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	markerPrefix = 0xFF
	markerSOI    = 0xD8
	markerAPP0   = 0xE0

	jfifSegmentLen = 16 // APP0 length field value, the 2 length bytes included
	jfifUnitsDPI   = 1
)

var jfifIdentifier = []byte("JFIF\x00") //nolint:gochecknoglobals

// withDensity returns the JPEG data with the JFIF APP0 segment carrying the density in dots per inch. The existing
// JFIF segment is updated in place, otherwise a new one is inserted right after the SOI marker.
func withDensity(data []byte, dpi uint16) ([]byte, error) {
	if len(data) < 4 || data[0] != markerPrefix || data[1] != markerSOI { //nolint:mnd
		return nil, errors.New("not a JPEG image")
	}

	if off, ok := jfifOffset(data); ok {
		var out = bytes.Clone(data)

		out[off+9] = jfifUnitsDPI
		binary.BigEndian.PutUint16(out[off+10:], dpi)
		binary.BigEndian.PutUint16(out[off+12:], dpi)

		return out, nil
	}

	var segment = make([]byte, 0, 2+jfifSegmentLen) //nolint:mnd

	segment = append(segment, markerPrefix, markerAPP0, 0, jfifSegmentLen)
	segment = append(segment, jfifIdentifier...)
	segment = append(segment, 1, 2, jfifUnitsDPI)         // version 1.02, units
	segment = binary.BigEndian.AppendUint16(segment, dpi) // X density
	segment = binary.BigEndian.AppendUint16(segment, dpi) // Y density
	segment = append(segment, 0, 0)                       // no thumbnail

	var out = make([]byte, 0, len(data)+len(segment))

	out = append(out, data[:2]...)
	out = append(out, segment...)

	return append(out, data[2:]...), nil
}

// jfifOffset returns the offset of the length field of the JFIF APP0 segment that follows the SOI marker.
func jfifOffset(data []byte) (int, bool) {
	const off = 4 // SOI + APP0 marker

	if len(data) < off+jfifSegmentLen || data[2] != markerPrefix || data[3] != markerAPP0 {
		return 0, false
	}

	if !bytes.Equal(data[off+2:off+2+len(jfifIdentifier)], jfifIdentifier) {
		return 0, false
	}

	return off, true
}

// density returns the JFIF density in dots per inch.
func density(data []byte) (uint16, bool) {
	off, ok := jfifOffset(data)
	if !ok || data[off+9] != jfifUnitsDPI {
		return 0, false
	}

	return binary.BigEndian.Uint16(data[off+10:]), true
}
