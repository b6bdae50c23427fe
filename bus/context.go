package bus

// Context carries per-dispatch state. One Context value is created for each
// top-level Send and the same pointer is threaded through every handler in
// that dispatch walk, so handlers can eventually coordinate through it.
//
// It currently exposes no fields; handlers accept it so their signatures
// stay stable as dispatch grows new capabilities.
type Context struct {
	_ struct{}
}
