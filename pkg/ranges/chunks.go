package ranges

import (
	"fmt"
	"math"
)

// ChunkMode selects how RangeToChunks places chunk boundaries.
type ChunkMode int

const (
	// ModeDefault starts the first chunk at the requested start and truncates the last one at the requested end.
	ModeDefault ChunkMode = iota
	// ModeAligned aligns chunks to multiples of the chunk size and keeps the full outer grid cells,
	// so the first and last chunks may extend outside the requested range.
	ModeAligned
	// ModeAlignedTrimmed aligns chunks like ModeAligned but clips the outer chunks to the requested range.
	ModeAlignedTrimmed
	// ModeIndex treats chunk ends as exclusive offsets: consecutive chunks share a boundary
	// and the last chunk ends at end+1.
	ModeIndex
)

// String returns the string representation of the chunk mode.
func (m ChunkMode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeAligned:
		return "aligned"
	case ModeAlignedTrimmed:
		return "aligned-trimmed"
	case ModeIndex:
		return "index"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// ParseChunkMode parses the names returned by ChunkMode.String.
func ParseChunkMode(s string) (ChunkMode, error) {
	for _, m := range []ChunkMode{ModeDefault, ModeAligned, ModeAlignedTrimmed, ModeIndex} {
		if m.String() == s {
			return m, nil
		}
	}

	return ModeDefault, fmt.Errorf("%w: unknown chunk mode %q", ErrInvalidArgument, s)
}

// Exclusive reports whether chunk ends produced in this mode are exclusive.
func (m ChunkMode) Exclusive() bool {
	return m == ModeIndex
}

// ChunkModeFromFlags maps the boolean chunking options onto a ChunkMode.
// Index mode takes precedence; trimOuterBounds only matters together with roundBounds.
func ChunkModeFromFlags(roundBounds, trimOuterBounds, indexMode bool) ChunkMode {
	switch {
	case indexMode:
		return ModeIndex
	case roundBounds && trimOuterBounds:
		return ModeAlignedTrimmed
	case roundBounds:
		return ModeAligned
	default:
		return ModeDefault
	}
}

// RangeToChunks partitions [start, end] into chunks of at most chunkSize values using the given mode.
func RangeToChunks(start, end, chunkSize uint64, mode ChunkMode) ([]Range, error) {
	if chunkSize == 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive", ErrInvalidArgument)
	}
	if start > end {
		return nil, fmt.Errorf("%w: chunk start %d is greater than end %d", ErrInvalidArgument, start, end)
	}

	switch mode {
	case ModeDefault:
		return defaultChunks(start, end, chunkSize), nil
	case ModeAligned:
		return alignedChunks(start, end, chunkSize, false), nil
	case ModeAlignedTrimmed:
		return alignedChunks(start, end, chunkSize, true), nil
	case ModeIndex:
		if end == math.MaxUint64 {
			return nil, fmt.Errorf("%w: index mode cannot represent end %d+1", ErrInvalidArgument, end)
		}
		return indexChunks(start, end, chunkSize), nil
	default:
		return nil, fmt.Errorf("%w: unknown chunk mode %s", ErrInvalidArgument, mode)
	}
}

func defaultChunks(start, end, size uint64) []Range {
	chunks := make([]Range, 0, chunkCount(start, end, size))

	for chunkStart := start; ; {
		chunkEnd := end
		if size-1 < end-chunkStart {
			chunkEnd = chunkStart + size - 1
		}

		chunks = append(chunks, Range{Start: chunkStart, End: chunkEnd})
		if chunkEnd == end {
			return chunks
		}

		chunkStart = chunkEnd + 1
	}
}

func alignedChunks(start, end, size uint64, trim bool) []Range {
	chunks := make([]Range, 0, chunkCount(start, end, size)+1)

	for cellStart := start - start%size; ; cellStart += size {
		cellEnd := uint64(math.MaxUint64)
		if cellStart <= math.MaxUint64-(size-1) {
			cellEnd = cellStart + size - 1
		}

		chunk := Range{Start: cellStart, End: cellEnd}
		if trim {
			chunk.Start = max(chunk.Start, start)
			chunk.End = min(chunk.End, end)
		}

		chunks = append(chunks, chunk)
		if cellEnd >= end {
			return chunks
		}
	}
}

func indexChunks(start, end, size uint64) []Range {
	chunks := make([]Range, 0, chunkCount(start, end, size))
	limit := end + 1

	for chunkStart := start; ; {
		chunkEnd := limit
		if size < limit-chunkStart {
			chunkEnd = chunkStart + size
		}

		chunks = append(chunks, Range{Start: chunkStart, End: chunkEnd})
		if chunkEnd == limit {
			return chunks
		}

		chunkStart = chunkEnd
	}
}

// CountChunks returns the number of chunks RangeToChunks produces for the same arguments
// without building them. The result saturates at math.MaxUint64.
func CountChunks(start, end, chunkSize uint64, mode ChunkMode) (uint64, error) {
	if chunkSize == 0 {
		return 0, fmt.Errorf("%w: chunk size must be positive", ErrInvalidArgument)
	}
	if start > end {
		return 0, fmt.Errorf("%w: chunk start %d is greater than end %d", ErrInvalidArgument, start, end)
	}

	var cells uint64
	switch mode {
	case ModeDefault, ModeIndex:
		cells = (end - start) / chunkSize
	case ModeAligned, ModeAlignedTrimmed:
		cells = end/chunkSize - start/chunkSize
	default:
		return 0, fmt.Errorf("%w: unknown chunk mode %s", ErrInvalidArgument, mode)
	}

	if cells == math.MaxUint64 {
		return cells, nil
	}

	return cells + 1, nil
}

// chunkCount estimates the number of chunks for preallocation.
func chunkCount(start, end, size uint64) uint64 {
	const maxPrealloc = 1 << 16
	return min((end-start)/size+1, maxPrealloc)
}

// ToInclusive converts a chunk produced in the given mode to inclusive bounds,
// which is the form block range requests such as eth_getLogs expect.
func ToInclusive(chunk Range, mode ChunkMode) Range {
	if mode.Exclusive() && chunk.End > chunk.Start {
		return Range{Start: chunk.Start, End: chunk.End - 1}
	}

	return chunk
}
