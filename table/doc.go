// Package table provides a small, typed, columnar in-memory table used as the
// input and output carrier of proxnet.
//
// What:
//
//   - Value is a comparable scalar (int, float, string, bool, date, date-time)
//     with an explicit null flag.
//   - Column is a named, single-kind vector of Values.
//   - Table is an ordered set of equally long columns with unique names.
//   - ReadCSV / WriteCSV move tables in and out of delimited text, inferring
//     column kinds on read.
//
// Why:
//
//   - Relocation data arrives as heterogeneous columns (ids may be strings or
//     integers, time groups are integer labels, coordinates are floats), and
//     the edge computation must keep the caller's id and group types intact
//     in its output.
//
// Nulls:
//
//   - A null keeps the kind of its column, so an all-null column is still
//     typed. Null numeric values read back as NaN through Float64.
//   - Null renders as "NA" in String and WriteCSV; "NA" and the empty string
//     parse back as null in ReadCSV.
//
// Errors:
//
//   - ErrKindMismatch: a value of the wrong kind was appended to a column.
//   - ErrDuplicateColumn: two columns share a name.
//   - ErrRaggedColumns: columns differ in length.
//   - ErrColumnNotFound: a lookup named an absent column.
//   - ErrRowOutOfRange: a row index is outside [0, Rows()).
//   - ErrEmptyCSV: the CSV input carried no header.
package table
