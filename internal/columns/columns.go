package columns

// Split partitions seq into n stride columns.
// Column i holds seq[i], seq[i+n], seq[i+2n], ... in order.
// Columns beyond len(seq) are empty. n must be positive.
func Split(seq []int, n int) [][]int {
	cols := make([][]int, n)
	base := len(seq) / n
	rem := len(seq) % n
	for i := range cols {
		size := base
		if i < rem {
			size++
		}
		cols[i] = make([]int, 0, size)
	}
	for i, s := range seq {
		cols[i%n] = append(cols[i%n], s)
	}
	return cols
}

// Join interleaves stride columns back into one sequence.
// Output position k draws from cols[k%n][k/n], the exact inverse of Split.
// The columns must have the shape Split produces: lengths differ by at
// most one, longer columns first.
func Join(cols [][]int) []int {
	n := len(cols)
	if n == 0 {
		return nil
	}
	total := 0
	for _, c := range cols {
		total += len(c)
	}
	out := make([]int, total)
	for k := 0; k < total; k++ {
		out[k] = cols[k%n][k/n]
	}
	return out
}
