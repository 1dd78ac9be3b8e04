// Package tsplib reads Euclidean TSP instances in the TSPLIB text format.
//
// Supported subset:
//
//	NAME: berlin52
//	TYPE: TSP
//	COMMENT: 52 locations in Berlin (Groetschel)
//	DIMENSION: 52
//	EDGE_WEIGHT_TYPE: EUC_2D
//	NODE_COORD_SECTION
//	1 565.0 575.0
//	...
//	EOF
//
// Labels may be written "LABEL:" or "LABEL :". COMMENT may repeat; the lines
// are joined with newlines. Any other label is rejected.
//
// Coordinates are read as floats. When all of them are integral they are
// used as is; otherwise every coordinate is scaled by 10 and truncated
// (geometry.ApproximateAsInt with one decimal), so the instance keeps one
// decimal of precision.
//
// Errors are *ReadError values; errors.Is matches them against ErrNoFile,
// ErrWrongType, ErrWrongDistanceMeasure and ErrWrongFormat.
package tsplib
