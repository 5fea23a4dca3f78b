package util

import (
	"runtime"
	"sort"

	"go.uber.org/zap"
)

func RangeInt(to int) []int {
	retval := make([]int, to)
	for i := 0; i < to; i++ {
		retval[i] = i
	}
	return retval
}

func Max(a, b int) int {
	if a < b {
		return b
	}
	return a
}

func Min(a, b int) int {
	if a > b {
		return b
	}
	return a
}

// MaxInt returns the largest value of v, or 0 for an empty (or all negative) slice
func MaxInt(v []int) (retval int) {
	for _, cur := range v {
		if retval < cur {
			retval = cur
		}
	}
	return
}

// Shards splits [0,n) into at most k contiguous half-open ranges of
// near-equal size.
func Shards(n, k int) [][2]int {
	if n <= 0 {
		return nil
	}
	k = Max(1, Min(k, n))
	retval := make([][2]int, 0, k)
	size, rem := n/k, n%k
	start := 0
	for i := 0; i < k; i++ {
		end := start + size
		if i < rem {
			end++
		}
		retval = append(retval, [2]int{start, end})
		start = end
	}
	return retval
}

func LogMemory(logger *zap.Logger) {
	s := &runtime.MemStats{}
	runtime.ReadMemStats(s)
	logger.Debug("memory",
		zap.Uint64("alloc", s.Alloc),
		zap.Uint64("mallocs", s.Mallocs),
		zap.Uint64("frees", s.Frees),
		zap.Uint64("heapAlloc", s.HeapAlloc),
		zap.Uint64("heapObjects", s.HeapObjects))
}

type TopNStrIntDatum struct {
	S string
	N int
}

type TopNStrIntData []TopNStrIntDatum

func (arr TopNStrIntData) Len() int {
	return len(arr)
}

func (arr TopNStrIntData) Swap(a, b int) {
	arr[a], arr[b] = arr[b], arr[a]
}

func (arr TopNStrIntData) Less(a, b int) bool {
	if arr[a].N == arr[b].N {
		return arr[a].S < arr[b].S
	}
	return arr[a].N > arr[b].N
}

func GetTopNStrInt(m map[string]int, n int) []TopNStrIntDatum {
	data := make(TopNStrIntData, len(m))
	var i int
	for k, v := range m {
		data[i] = TopNStrIntDatum{k, v}
		i++
	}
	sort.Sort(data)
	return data[:Min(len(data), n)]
}
