// Package zstdcompress provides zstd for connect message compression and for
// compressed export files.
package zstdcompress

import (
	"io"

	"connectrpc.com/connect"
	"github.com/klauspost/compress/zstd"
)

// Name is the encoding negotiated in Connect-Content-Encoding.
const Name = "zstd"

// Extension marks a compressed export file.
const Extension = ".zst"

type failingDecompressor struct{ err error }

func (c *failingDecompressor) Read([]byte) (int, error) { return 0, c.err }
func (c *failingDecompressor) Reset(io.Reader) error    { return c.err }
func (c *failingDecompressor) Close() error             { return c.err }

type failingCompressor struct{ err error }

func (c *failingCompressor) Write([]byte) (int, error) { return 0, c.err }
func (c *failingCompressor) Reset(io.Writer)           {}
func (c *failingCompressor) Close() error              { return c.err }

// decompressor adapts zstd.Decoder, whose Close has no error, to
// connect.Decompressor. A closed decoder is rebuilt on the next Reset.
type decompressor struct {
	dec *zstd.Decoder
}

func (d *decompressor) Read(p []byte) (int, error) {
	if d.dec == nil {
		return 0, io.EOF
	}
	return d.dec.Read(p)
}

func (d *decompressor) Reset(r io.Reader) error {
	if d.dec == nil {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return err
		}
		d.dec = dec
		return nil
	}
	return d.dec.Reset(r)
}

func (d *decompressor) Close() error {
	if d.dec != nil {
		d.dec.Close()
		d.dec = nil
	}
	return nil
}

func NewDecompressor() connect.Decompressor {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return &failingDecompressor{err: err}
	}
	return &decompressor{dec: dec}
}

func NewCompressor() connect.Compressor {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return &failingCompressor{err: err}
	}
	return enc
}

var (
	encoder, _ = zstd.NewWriter(nil)
	decoder, _ = zstd.NewReader(nil)
)

func Compress(src []byte) []byte {
	return encoder.EncodeAll(src, make([]byte, 0, len(src)))
}

func Decompress(src []byte) ([]byte, error) {
	return decoder.DecodeAll(src, nil)
}
