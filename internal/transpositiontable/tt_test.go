package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/zorro/internal/config"
	. "github.com/mkopp/zorro/internal/types"
)

// make tests run in the project's root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestEntrySizeIsSixteenBytes(t *testing.T) {
	var e TtEntry
	assert.EqualValues(t, 16, unsafe.Sizeof(e))
}

func TestNewResizesToPowerOfTwoEntries(t *testing.T) {
	tt := NewTtTable(2)
	assert.Equal(t, uint64(131_072), tt.maxNumberOfEntries)
	assert.Equal(t, 131_072, cap(tt.data))

	tt = NewTtTable(64)
	assert.Equal(t, uint64(4_194_304), tt.maxNumberOfEntries)
	assert.Equal(t, 4_194_304, cap(tt.data))
}

func TestPutAndProbeRoundTrip(t *testing.T) {
	tt := NewTtTable(4)
	move := Move(SquareOf(3, 4))

	tt.Put(Key(111), move, 4, Value(111), Upper, Value(50), Midgame)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)

	e := tt.Probe(Key(111))
	assert.NotNil(t, e)
	assert.Equal(t, Key(111), e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, Upper, e.Vtype())
	assert.Equal(t, Midgame, e.Kind())
	assert.EqualValues(t, 0, e.Age())
}

func TestPutUpdateSameKeyPreservesUntouchedFields(t *testing.T) {
	tt := NewTtTable(4)
	move := Move(SquareOf(3, 4))

	tt.Put(Key(111), move, 4, Value(111), Upper, Value(50), Midgame)
	tt.Put(Key(111), move, 5, Value(112), Lower, Value(50), Endgame)

	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	e := tt.Probe(Key(111))
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, Lower, e.Vtype())
	assert.Equal(t, Endgame, e.Kind())
}

func TestPutCollisionOverwritesOnlyWhenDeeper(t *testing.T) {
	tt := NewTtTable(4)
	move := Move(SquareOf(3, 4))

	tt.Put(Key(111), move, 6, Value(111), Exact, Value(50), Midgame)
	collisionKey := Key(111 + tt.maxNumberOfEntries)

	// shallower collision: should not overwrite
	tt.Put(collisionKey, move, 4, Value(1), Upper, Value(1), Midgame)
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 0, tt.Stats.numberOfOverwrites)
	e := tt.Probe(collisionKey)
	assert.Nil(t, e)

	// deeper collision: should overwrite
	tt.Put(collisionKey, move, 8, Value(2), Lower, Value(2), Endgame)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
	e = tt.Probe(collisionKey)
	assert.NotNil(t, e)
	assert.Equal(t, collisionKey, e.Key())
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTtTable(4)
	move := Move(SquareOf(3, 4))
	tt.Put(Key(111), move, 4, Value(111), Exact, Value(1), Midgame)
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(Key(111)))
}

func TestAgeEntriesIncrementsAgeOfLiveEntries(t *testing.T) {
	tt := NewTtTable(4)
	move := Move(SquareOf(3, 4))
	tt.Put(Key(111), move, 4, Value(111), Exact, Value(1), Midgame)

	tt.AgeEntries()
	e := tt.GetEntry(Key(111))
	// Put stores a new entry at age 1; one aging pass makes it 2.
	assert.EqualValues(t, 2, e.Age())
}

func TestHashfullReportsPermill(t *testing.T) {
	tt := NewTtTable(1)
	assert.Equal(t, 0, tt.Hashfull())
	move := Move(SquareOf(3, 4))
	// a 1 MB table holds 65,536 entries, so 66 entries in distinct buckets
	// are just over one permill (a single entry would round down to 0).
	for i := uint64(1); i <= 66; i++ {
		tt.Put(Key(i<<32), move, 1, Value(1), Exact, Value(1), Midgame)
	}
	assert.Greater(t, tt.Hashfull(), 0)
}
