package tambola

// Bucket is the contiguous range of numbers assignable to one ticket column.
type Bucket struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

func (b Bucket) Size() int {
	return b.High - b.Low + 1
}

func (b Bucket) Contains(n int) bool {
	return n >= b.Low && n <= b.High
}

// Buckets returns the nine column ranges that partition 1..90.
// Column 0 holds 1..9, columns 1..7 hold ten numbers each and
// column 8 absorbs the remainder 80..90.
func Buckets() [Cols]Bucket {
	var buckets [Cols]Bucket
	buckets[0] = Bucket{Low: 1, High: 9}
	for c := 1; c < Cols-1; c++ {
		buckets[c] = Bucket{Low: c * 10, High: c*10 + 9}
	}
	buckets[Cols-1] = Bucket{Low: 80, High: PoolSize}
	return buckets
}

// ColumnFor maps a number in 1..90 to its column index.
func ColumnFor(n int) int {
	if n < 10 {
		return 0
	}
	if n >= 80 {
		return Cols - 1
	}
	return n / 10
}
