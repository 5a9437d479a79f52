// Package sheet implements a worksheet: an ordered list of formula rows in
// which each row may refer to names assigned by the rows above it.
//
//	s := sheet.FromInputs([]string{"price=12", "qty=3", "price*qty/8"})
//	r, _ := s.Row(2)
//	v, _ := r.Result() // 9/2
//
// Rows keep a stable [RowID] through edits, inserts, and removals. Results
// are recomputed lazily and only for rows at or below an edit.
package sheet
