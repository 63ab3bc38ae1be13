package primitives

// Partition is a block geometry. Its numeric value is the sweep order and
// the index accepted by --primitive.
type Partition int

// The 25 supported partitions, in sweep order.
const (
	P4x4 Partition = iota
	P8x4
	P4x8
	P8x8
	P4x16
	P16x4
	P8x16
	P16x8
	P16x16
	P4x32
	P32x4
	P8x32
	P32x8
	P16x32
	P32x16
	P32x32
	P4x64
	P64x4
	P8x64
	P64x8
	P16x64
	P64x16
	P32x64
	P64x32
	P64x64

	// NumPartitions is the number of supported partitions.
	NumPartitions = int(P64x64) + 1
)

var partitionDims = [NumPartitions][2]int{
	{4, 4}, {8, 4}, {4, 8}, {8, 8}, {4, 16}, {16, 4}, {8, 16}, {16, 8}, {16, 16}, {4, 32}, {32, 4}, {8, 32},
	{32, 8}, {16, 32}, {32, 16}, {32, 32}, {4, 64}, {64, 4}, {8, 64}, {64, 8}, {16, 64}, {64, 16}, {32, 64}, {64, 32}, {64, 64},
}

var partitionNames = [NumPartitions]string{
	"4x4", "8x4", "4x8", "8x8", "4x16", "16x4", "8x16", "16x8", "16x16", "4x32", "32x4", "8x32",
	"32x8", "16x32", "32x16", "32x32", "4x64", "64x4", "8x64", "64x8", "16x64", "64x16", "32x64", "64x32", "64x64",
}

// Valid reports whether p names one of the supported partitions.
func (p Partition) Valid() bool {
	return p >= 0 && int(p) < NumPartitions
}

// Width returns the block width in samples.
func (p Partition) Width() int { return partitionDims[p][0] }

// Height returns the block height in rows.
func (p Partition) Height() int { return partitionDims[p][1] }

// String returns the display label, e.g. "16x8".
func (p Partition) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return partitionNames[p]
}

// Partitions returns all partitions in sweep order.
func Partitions() []Partition {
	out := make([]Partition, NumPartitions)
	for i := range out {
		out[i] = Partition(i)
	}
	return out
}

// PartitionFor returns the partition with the given dimensions.
func PartitionFor(width, height int) (Partition, bool) {
	for i, d := range partitionDims {
		if d[0] == width && d[1] == height {
			return Partition(i), true
		}
	}
	return 0, false
}
