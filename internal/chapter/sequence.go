// Copyright (c) 2026 Max Ludden. All rights reserved.

package chapter

// # Canonical Numbering

const (
	// FirstChapter and LastChapter bound the canonical numbering of the
	// source novel's run.
	FirstChapter = 1
	LastChapter  = 3462
)

// unpublished lists chapter numbers the source site skipped; they were never
// released and must not appear in the archive.
var unpublished = map[int]bool{
	3095: true,
	3117: true,
}

// Sequence iterates the canonical chapter numbers of the novel, skipping the
// unpublished gaps.
//
// # Usage
//
//	seq := NewSequence(1, chapter.LastChapter)
//	for seq.Next() {
//	    n := seq.Number()
//	    ...
//	}
type Sequence struct {
	next    int
	end     int
	current int
	started bool
}

// NewSequence returns a [Sequence] over [from, to], both clamped to the
// canonical bounds.
func NewSequence(from, to int) *Sequence {
	if from < FirstChapter {
		from = FirstChapter
	}
	if to > LastChapter {
		to = LastChapter
	}
	return &Sequence{next: from, end: to}
}

// Next advances to the following published chapter number. It returns false
// once the sequence is exhausted.
func (s *Sequence) Next() bool {
	for s.next <= s.end {
		n := s.next
		s.next++
		if unpublished[n] {
			continue
		}
		s.current = n
		s.started = true
		return true
	}
	return false
}

// Number returns the current chapter number. Valid only after a true [Sequence.Next].
func (s *Sequence) Number() int {
	return s.current
}

// Len returns the count of published chapter numbers remaining in the
// sequence, including the current position's successor.
func (s *Sequence) Len() int {
	count := 0
	for n := s.next; n <= s.end; n++ {
		if !unpublished[n] {
			count++
		}
	}
	return count
}

// IsPublished reports whether the given number is part of the canonical run.
func IsPublished(number int) bool {
	return number >= FirstChapter && number <= LastChapter && !unpublished[number]
}
