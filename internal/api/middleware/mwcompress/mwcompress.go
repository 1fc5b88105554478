//nolint:revive // exported
package mwcompress

import (
	"connectrpc.com/connect"

	"github.com/the-dev-tools/organizer/pkg/zstdcompress"
)

func NewCompress() connect.Compressor {
	return zstdcompress.NewCompressor()
}

func NewDecompress() connect.Decompressor {
	return zstdcompress.NewDecompressor()
}

// WithCompression registers zstd next to the built-in gzip.
func WithCompression() connect.HandlerOption {
	return connect.WithCompression(zstdcompress.Name, NewDecompress, NewCompress)
}

// WithClientCompression makes a client send and accept zstd.
func WithClientCompression() []connect.ClientOption {
	return []connect.ClientOption{
		connect.WithAcceptCompression(zstdcompress.Name, NewDecompress, NewCompress),
		connect.WithSendCompression(zstdcompress.Name),
	}
}
