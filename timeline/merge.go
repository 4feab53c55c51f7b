// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package timeline

import "container/heap"

// mergeSorted performs a k-way merge of already internally sorted Entry
// streams (one per component kind) into a single chronologically ordered
// slice, in O(n log k) rather than concatenating and re-sorting the whole
// set.
func mergeSorted(streams [][]Entry) []Entry {
	total := 0
	h := &mergeHeap{}
	for i, s := range streams {
		total += len(s)
		if len(s) > 0 {
			heap.Push(h, mergeItem{entry: s[0], stream: i, index: 0})
		}
	}
	heap.Init(h)

	out := make([]Entry, 0, total)
	for h.Len() > 0 {
		top := heap.Pop(h).(mergeItem)
		out = append(out, top.entry)

		next := top.index + 1
		if next < len(streams[top.stream]) {
			heap.Push(h, mergeItem{entry: streams[top.stream][next], stream: top.stream, index: next})
		}
	}
	return out
}

type mergeItem struct {
	entry  Entry
	stream int
	index  int
}

type mergeHeap []mergeItem

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	return h[i].entry.Span.Start.Before(h[j].entry.Span.Start)
}
func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap) Push(x any) {
	*h = append(*h, x.(mergeItem))
}

func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
