package vectorindex

// SearchResult is a row-major (id, distance) matrix for a batch of n
// queries each asking for k neighbors: IDs and Distances both have length
// n*k, row i occupying [i*k, (i+1)*k). An id of -1 means "fewer than k
// hits in this row." Within a row, ids are ordered by ascending distance.
type SearchResult struct {
	N         int
	K         int
	IDs       []int64
	Distances []float32
}

// Row returns the ids and distances for query row i.
func (r SearchResult) Row(i int) ([]int64, []float32) {
	start := i * r.K
	end := start + r.K
	return r.IDs[start:end], r.Distances[start:end]
}
