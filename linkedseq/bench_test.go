package linkedseq_test

import (
	"testing"

	"github.com/ostrikov/seqcore/linkedseq"
)

// BenchmarkInsertFront measures the O(1) head insertion.
func BenchmarkInsertFront(b *testing.B) {
	l := linkedseq.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.InsertFront(i)
	}
}

// BenchmarkSearch measures a full-chain miss on a 1k-node list.
func BenchmarkSearch(b *testing.B) {
	l := linkedseq.New[int]()
	for i := 0; i < 1024; i++ {
		l.InsertFront(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := l.Search(-1); ok {
			b.Fatal("unexpected hit")
		}
	}
}

// BenchmarkReverse measures in-place reversal of a 1k-node list.
func BenchmarkReverse(b *testing.B) {
	l := linkedseq.New[int]()
	for i := 0; i < 1024; i++ {
		l.InsertFront(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Reverse()
	}
}
