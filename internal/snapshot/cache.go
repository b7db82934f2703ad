// Package snapshot caches computed frame heightmaps on disk, keyed by
// frame number, so a scrubbing UI can seek to an already-computed frame
// without re-running the pipeline. This is tooling/caching only; the
// engine itself never imports this package.
package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/syndtr/goleveldb/leveldb"

	"terra/internal/heightmap"
)

// Cache wraps a leveldb database storing one row-major float32 blob per
// frame number.
type Cache struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) a leveldb cache at dir.
func Open(dir string) (*Cache, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: opening %s: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

// Put stores g under frame. Because it returns an error it is not itself a
// pipeline.FrameCallback; a caller invokes it from inside one.
func (c *Cache) Put(frame int, g *heightmap.Grid) error {
	key := frameKey(frame)
	val := encode(g)
	return c.db.Put(key, val, nil)
}

// Get retrieves the heightmap stored for frame, or (nil, false) if absent.
func (c *Cache) Get(frame int) (*heightmap.Grid, bool, error) {
	val, err := c.db.Get(frameKey(frame), nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	g, err := decode(val)
	if err != nil {
		return nil, false, err
	}
	return g, true, nil
}

func frameKey(frame int) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, uint32(frame))
	return key
}

func encode(g *heightmap.Grid) []byte {
	data := g.Data()
	buf := make([]byte, 8+4*len(data))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(g.W))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(g.H))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[8+4*i:12+4*i], math.Float32bits(v))
	}
	return buf
}

func decode(buf []byte) (*heightmap.Grid, error) {
	if len(buf) < 8 {
		return nil, fmt.Errorf("snapshot: corrupt record (%d bytes)", len(buf))
	}
	w := int(binary.LittleEndian.Uint32(buf[0:4]))
	h := int(binary.LittleEndian.Uint32(buf[4:8]))
	if len(buf) != 8+4*w*h {
		return nil, fmt.Errorf("snapshot: corrupt record: expected %d bytes, got %d", 8+4*w*h, len(buf))
	}
	g := heightmap.New(w, h)
	data := g.Data()
	for i := range data {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[8+4*i : 12+4*i]))
	}
	return g, nil
}
