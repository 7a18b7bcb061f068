package world

import "sync/atomic"

// ObjectIDGenerator generates unique object IDs for scene entities.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid, IDs from imported scenes)
//	0x20000000 - 0x2FFFFFFF: NPC agents
type ObjectIDGenerator struct {
	nextAgentID atomic.Uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextAgentID.Store(0x20000000)
	return gen
}

// NextAgentID generates next unique agent object ID.
// Thread-safe via atomic increment.
func (g *ObjectIDGenerator) NextAgentID() uint32 {
	return g.nextAgentID.Add(1)
}
