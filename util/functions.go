package util

import (
	"log"
	"runtime"
	"sort"
)

func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func Min(a, b int) int {
	if a > b {
		return b
	}
	return a
}

func LogMemory() {
	s := &runtime.MemStats{}
	runtime.ReadMemStats(s)
	log.Println("*** Memory Info ***")
	log.Println("Bytes Allocated InUse:\t", s.Alloc)
	log.Println("Heap Allocated InUse:\t", s.HeapAlloc)
	log.Println("Heap Objects:\t\t", s.HeapObjects)
	log.Println("*** ***")
}

type TopNStrFloatDatum struct {
	S string
	F float64
}

type TopNStrFloatData []TopNStrFloatDatum

func (arr TopNStrFloatData) Len() int {
	return len(arr)
}

func (arr TopNStrFloatData) Swap(a, b int) {
	arr[a], arr[b] = arr[b], arr[a]
}

// Less orders by descending value, then by key for a stable report
func (arr TopNStrFloatData) Less(a, b int) bool {
	if arr[a].F != arr[b].F {
		return arr[a].F > arr[b].F
	}
	return arr[a].S < arr[b].S
}

func GetTopNStrFloat(m map[string]float64, n int) []TopNStrFloatDatum {
	data := make(TopNStrFloatData, len(m))
	var i int
	for k, v := range m {
		data[i] = TopNStrFloatDatum{k, v}
		i++
	}
	sort.Sort(data)
	return data[:Min(len(data), n)]
}
