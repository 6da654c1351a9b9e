package audio

import (
	"encoding/base64"
	"strings"
)

// ChunkSize is the number of bytes handed to the encoder per write.
const ChunkSize = 8192

// EncodeBase64 returns the standard base64 encoding of data. The input is fed
// to a streaming encoder in ChunkSize pieces; the encoder carries partial
// groups across writes, so the result equals a single-pass encoding.
func EncodeBase64(data []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(base64.StdEncoding.EncodedLen(len(data)))

	enc := base64.NewEncoder(base64.StdEncoding, &sb)

	for i := 0; i < len(data); i += ChunkSize {
		end := min(i+ChunkSize, len(data))

		if _, err := enc.Write(data[i:end]); err != nil {
			return "", err
		}
	}

	if err := enc.Close(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
