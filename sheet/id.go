package sheet

import (
	"bytes"
	"cmp"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// RowID identifies a row for the lifetime of its worksheet. IDs are never
// reused, and a row keeps its ID when it is edited or moved by inserts and
// removals around it.
type RowID struct {
	Sheet uuid.UUID
	Seq   uint64
}

// String returns "<sheet>#<seq>".
func (id RowID) String() string {
	return id.Sheet.String() + "#" + strconv.FormatUint(id.Seq, 10)
}

// IsZero reports whether id is the zero RowID, which no row ever has.
func (id RowID) IsZero() bool { return id == RowID{} }

// Compare orders IDs by sheet, then by creation order.
func (id RowID) Compare(other RowID) int {
	return cmp.Or(
		bytes.Compare(id.Sheet[:], other.Sheet[:]),
		cmp.Compare(id.Seq, other.Seq),
	)
}

// MarshalText implements encoding.TextMarshaler.
func (id RowID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *RowID) UnmarshalText(text []byte) error {
	s, n, ok := strings.Cut(string(text), "#")
	if !ok {
		return ErrRowID.With(slog.String("id", string(text)))
	}

	sheet, err := uuid.Parse(s)
	if err != nil {
		return ErrRowID.Wrap(err)
	}

	seq, err := strconv.ParseUint(n, 10, 64)
	if err != nil {
		return ErrRowID.Wrap(err)
	}

	*id = RowID{Sheet: sheet, Seq: seq}

	return nil
}
