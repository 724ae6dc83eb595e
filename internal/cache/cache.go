// Package cache persists a compiled Entry to disk keyed by the BLAKE2b-256
// digest of its source text, the way the teacher's vm.Chunk.Serialize
// gob-encodes bytecode behind a magic number and version byte. Here the
// payload is CBOR rather than gob (spec.md's data model is a plain tree of
// structs and slices, not an interface-heavy object graph), but the framing
// is the same: magic, version, then the encoded body.
//
// Caching is entirely a CLI-layer concern. compiler.Compile stays pure and
// is always what populates an Entry; nothing in internal/cache ever calls
// back into the pipeline.
package cache

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/compiler"
	"github.com/iamZamil/minic/internal/ir"
)

// magic and version identify the on-disk format, mirroring the teacher's
// BytecodeFile preamble ("FXYB" + 0x01).
var magic = [4]byte{'M', 'N', 'I', 'C'}

const version = byte(0x01)

// Entry is the subset of compiler.CompilationResult worth persisting. The
// symbol table is deliberately excluded: it carries no exported fields
// (internal/symbols keeps its scope arena private), so it has nothing for
// cbor to encode, and no CLI command (build/tokens/ast/ir/asm) reads it
// back from a cache hit.
type Entry struct {
	Tokens      []TokenRecord
	AST         *ast.WireNode
	IR          []ir.Instruction
	OptimizedIR []ir.Instruction
	Assembly    string
	Errors      compiler.Errors
}

// TokenRecord mirrors token.Token field-for-field; it exists only so this
// package does not need to import internal/token for a type with the same
// shape the compiler already exposes on CompilationResult.Tokens.
type TokenRecord struct {
	Type   string
	Lexeme string
	Line   int
	Column int
}

// Key returns the hex-encoded BLAKE2b-256 digest of source, the filename
// used to look an entry up in a cache directory.
func Key(source string) string {
	sum := blake2b.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// FromResult narrows a full CompilationResult down to the cacheable Entry.
func FromResult(res compiler.CompilationResult) Entry {
	toks := make([]TokenRecord, len(res.Tokens))
	for i, t := range res.Tokens {
		toks[i] = TokenRecord{Type: string(t.Type), Lexeme: t.Lexeme, Line: t.Line, Column: t.Column}
	}
	return Entry{
		Tokens:      toks,
		AST:         res.AST,
		IR:          res.IR,
		OptimizedIR: res.OptimizedIR,
		Assembly:    res.Assembly,
		Errors:      res.Errors,
	}
}

// Encode serializes e as MAGIC(4) | VERSION(1) | CBOR body.
func Encode(e Entry) ([]byte, error) {
	body, err := cbor.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("cache: cbor encode: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(version)
	buf.Write(body)
	return buf.Bytes(), nil
}

// Decode reverses Encode, rejecting data with the wrong magic or any
// version other than the one this package writes.
func Decode(data []byte) (Entry, error) {
	if len(data) < 5 {
		return Entry{}, fmt.Errorf("cache: data too short")
	}
	if !bytes.Equal(data[:4], magic[:]) {
		return Entry{}, fmt.Errorf("cache: bad magic number")
	}
	if data[4] != version {
		return Entry{}, fmt.Errorf("cache: unsupported cache version %d", data[4])
	}

	var e Entry
	if err := cbor.Unmarshal(data[5:], &e); err != nil {
		return Entry{}, fmt.Errorf("cache: cbor decode: %w", err)
	}
	return e, nil
}

// Store is a directory of cache entries keyed by Key(source).
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating dir if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".minicache")
}

// Lookup returns the cached Entry for source, and whether it was found. A
// corrupt or unreadable entry is treated as a miss rather than an error,
// since the caller's fallback is always to recompile from source.
func (s *Store) Lookup(source string) (Entry, bool) {
	data, err := os.ReadFile(s.path(Key(source)))
	if err != nil {
		return Entry{}, false
	}
	e, err := Decode(data)
	if err != nil {
		return Entry{}, false
	}
	return e, true
}

// Put persists res under its source digest, overwriting any existing entry.
func (s *Store) Put(source string, res compiler.CompilationResult) error {
	data, err := Encode(FromResult(res))
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(Key(source)), data, 0o644)
}
