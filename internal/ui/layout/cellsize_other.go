//go:build !unix

package layout

// QueryCellSize returns DefaultCellSize; pixel sizes are only queried on
// unix terminals.
func QueryCellSize() CellSize {
	return DefaultCellSize
}
