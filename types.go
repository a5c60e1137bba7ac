package fse

// Symbol is the generic capability constraint threaded through the
// histogram, normalization, table-building, and coder paths so the
// byte-wide and 12-bit-wide paths share one implementation instead of
// duplicating it per width (spec.md section 9's "parameter carrying the
// symbol-width capability" design note).
type Symbol interface {
	~uint8 | ~uint16
}
