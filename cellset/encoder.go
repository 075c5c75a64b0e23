package cellset

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/arloliu/pentagrid/compress"
	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/format"
	"github.com/arloliu/pentagrid/internal/hash"
	"github.com/arloliu/pentagrid/internal/options"
	"github.com/arloliu/pentagrid/internal/pool"
	"github.com/arloliu/pentagrid/tiling"
)

type encoderConfig struct {
	compression format.CompressionType
	canonical   bool
	capacity    int
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*encoderConfig]

// WithCompression selects the payload codec. The default is
// format.CompressionNone.
func WithCompression(ct format.CompressionType) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if !ct.Valid() {
			return fmt.Errorf("%w: unknown compression %#x", errs.ErrInvalidOption, uint8(ct))
		}
		c.compression = ct

		return nil
	})
}

// WithCanonicalOrder sorts the identifiers and drops duplicates in Finish.
// Without it the insertion order is preserved.
func WithCanonicalOrder() EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.canonical = true
	})
}

// WithCapacity preallocates room for n identifiers.
func WithCapacity(n int) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: negative capacity %d", errs.ErrInvalidOption, n)
		}
		c.capacity = n

		return nil
	})
}

// Encoder accumulates identifiers and serializes them with Finish.
//
// An Encoder is not safe for concurrent use. After Finish it is empty and
// may be reused with the same options.
type Encoder struct {
	cfg   *encoderConfig
	codec compress.Codec
	ids   []uint64
}

// NewEncoder creates an encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := &encoderConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidOption, err)
	}

	ids := pool.GetIDSlice(cfg.capacity)

	return &Encoder{cfg: cfg, codec: codec, ids: ids}, nil
}

// Add appends one identifier. It must be a valid cell or tiling.WorldCell.
func (e *Encoder) Add(id uint64) error {
	if id != tiling.WorldCell && !tiling.IsValid(id) {
		return fmt.Errorf("%w: %016x", errs.ErrInvalidCellID, id)
	}
	e.ids = append(e.ids, id)

	return nil
}

// AddAll appends ids in order, stopping at the first invalid one. Identifiers
// before it stay added.
func (e *Encoder) AddAll(ids []uint64) error {
	for _, id := range ids {
		if err := e.Add(id); err != nil {
			return err
		}
	}

	return nil
}

// AddSeq appends every identifier produced by seq, such as the sequence from
// tiling.ChildrenSeq.
func (e *Encoder) AddSeq(seq iter.Seq[uint64]) error {
	for id := range seq {
		if err := e.Add(id); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of identifiers added since the last Finish.
func (e *Encoder) Len() int {
	return len(e.ids)
}

// Finish serializes the added identifiers and resets the encoder.
func (e *Encoder) Finish() ([]byte, error) {
	ids := e.ids
	e.ids = ids[:0]

	if e.cfg.canonical {
		slices.Sort(ids)
		ids = slices.Compact(ids)
	}
	if uint64(len(ids)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d identifiers exceed the container limit", errs.ErrTooManyCells, len(ids))
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	w := deltaWriter{buf: buf}
	buf.Grow(len(ids))
	for _, id := range ids {
		w.write(id)
	}
	raw := buf.Bytes()
	if len(raw) > compress.MaxDecompressedSize {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds the container limit", errs.ErrTooManyCells, len(raw))
	}

	packed, err := e.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress %s payload: %w", e.cfg.compression, err)
	}

	h := Header{
		Compression: e.cfg.compression,
		Count:       uint32(len(ids)), //nolint:gosec
		RawLength:   uint32(len(raw)), //nolint:gosec
		Checksum:    hash.Checksum(raw),
	}

	out := make([]byte, 0, HeaderSize+len(packed))
	out = h.appendTo(out)
	out = append(out, packed...)

	return out, nil
}

// Release returns the encoder's buffers to the pool. The encoder must not be
// used afterwards.
func (e *Encoder) Release() {
	pool.PutIDSlice(e.ids)
	e.ids = nil
}

// Encode serializes ids in one call.
func Encode(ids []uint64, opts ...EncoderOption) ([]byte, error) {
	enc, err := NewEncoder(append([]EncoderOption{WithCapacity(len(ids))}, opts...)...)
	if err != nil {
		return nil, err
	}
	defer enc.Release()

	if err := enc.AddAll(ids); err != nil {
		return nil, err
	}

	return enc.Finish()
}
