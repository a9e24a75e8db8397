package storage

// ToDense returns a new Dense storage with the logical contents of s.
func ToDense(s Storage) *Dense {
	if d, ok := s.(*Dense); ok {
		return DenseFromValues(d.data)
	}
	d := NewDense(s.Size())
	for i, v := range s.NonZero() {
		d.data[i] = v
	}
	return d
}

// ToSparse returns a new Sparse storage with the logical contents of s.
func ToSparse(s Storage) (*Sparse, error) {
	if sp, ok := s.(*Sparse); ok {
		return sp.Clone().(*Sparse), nil
	}
	sp, err := NewSparse(s.Size())
	if err != nil {
		return nil, err
	}
	for i, v := range s.NonZero() {
		sp.index.Add(uint32(i))
		sp.vals = append(sp.vals, v)
	}
	return sp, nil
}
