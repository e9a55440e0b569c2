package wire

// Stats reports pool sizes read from a container header.
type Stats struct {
	AtomCount  uint64
	AtomBufLen uint64
	RootCount  uint64
	NodeCount  uint64
	NodeBufLen uint64
}

// Stat reads pool statistics from buf without materializing any
// trees. The pools themselves are not validated beyond their lengths.
func Stat(buf []byte) (*Stats, error) {
	st := &Stats{}
	r := &reader{buf: buf}
	var err error
	if st.AtomCount, err = r.uint64(); err != nil {
		return nil, err
	}
	if st.AtomBufLen, err = r.uint64(); err != nil {
		return nil, err
	}
	if _, err = r.slice(st.AtomBufLen); err != nil {
		return nil, err
	}
	if st.RootCount, err = r.uint64(); err != nil {
		return nil, err
	}
	if st.RootCount > uint64(r.rest()) {
		return nil, ErrTruncatedInput
	}
	for range st.RootCount {
		if _, err = r.uint64(); err != nil {
			return nil, err
		}
	}
	if st.NodeCount, err = r.uint64(); err != nil {
		return nil, err
	}
	if st.NodeBufLen, err = r.uint64(); err != nil {
		return nil, err
	}
	if _, err = r.slice(st.NodeBufLen); err != nil {
		return nil, err
	}
	return st, nil
}
