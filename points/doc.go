// Package points is the coordinate store: a fixed set of 3-D integer points
// ("junction boxes") held as a structure of arrays.
//
// What & Why
//
//   - X, Y and Z live in three index-aligned []int64 columns. The distance-heavy
//     inner loops of topk and mst walk these columns sequentially, which keeps
//     them cache friendly and open to compiler vectorisation.
//
//   - Points are immutable once built. Every algorithm package reads them and
//     none of them writes.
//
// Input Format
//
//	162,817,812
//	57,618,57
//	 -3 , +4 , 0
//
// One point per line, three comma separated integers with optional sign and
// optional surrounding whitespace. Blank lines are skipped.
//
// Error Conditions
//
//   - *ParseError         : a record has the wrong field count (wraps ErrMalformed)
//     or a field is not an integer (wraps the strconv error).
//   - ErrLengthMismatch   : New was handed columns of different lengths.
//   - ErrCoordinateRange  : |c| > MaxAbsCoordinate, so squared distances could
//     overflow int64.
//
// Complexity: Parse is O(len(input)); DistanceSquared is O(1).
package points
