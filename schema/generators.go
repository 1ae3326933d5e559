package schema

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator produces values for fields tagged with generator:<name>.
type IDGenerator interface {
	Generate() (any, error)
	Type() string
}

// UUIDGenerator generates UUID v4 values as strings.
type UUIDGenerator struct{}

func (g UUIDGenerator) Generate() (any, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}
	return id.String(), nil
}

func (g UUIDGenerator) Type() string {
	return "uuid"
}

// ULIDGenerator generates monotonic ULID values as strings.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDGenerator) Generate() (any, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), g.entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ULID: %w", err)
	}
	return id.String(), nil
}

func (g *ULIDGenerator) Type() string {
	return "ulid"
}

// GeneratorRegistry maps generator names to implementations.
type GeneratorRegistry struct {
	mu         sync.RWMutex
	generators map[string]IDGenerator
}

var defaultRegistry = NewGeneratorRegistry()

func NewGeneratorRegistry() *GeneratorRegistry {
	registry := &GeneratorRegistry{generators: make(map[string]IDGenerator)}
	registry.Register("uuid", UUIDGenerator{})
	registry.Register("ulid", NewULIDGenerator())
	return registry
}

func (r *GeneratorRegistry) Register(name string, generator IDGenerator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[name] = generator
}

func (r *GeneratorRegistry) Generate(generatorType string) (any, error) {
	r.mu.RLock()
	gen, ok := r.generators[generatorType]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown generator type: %s", generatorType)
	}
	return gen.Generate()
}

// RegisterGenerator adds a generator to the default registry.
func RegisterGenerator(name string, generator IDGenerator) {
	defaultRegistry.Register(name, generator)
}

// GenerateID produces a value from the default registry.
func GenerateID(generatorType string) (any, error) {
	return defaultRegistry.Generate(generatorType)
}
