package telnet

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ASCII is a 7-bit encoding. Bytes outside the ASCII range are replaced
// with '?' in both directions.
var ASCII encoding.Encoding = asciiEncoding{}

type asciiEncoding struct{}

func (asciiEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: asciiTransformer{}}
}

func (asciiEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: asciiTransformer{}}
}

func (asciiEncoding) String() string { return "US-ASCII" }

type asciiTransformer struct{}

func (asciiTransformer) Reset() {}

func (asciiTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for _, c := range src {
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			return
		}
		if c < utf8.RuneSelf {
			dst[nDst] = c
		} else {
			dst[nDst] = '?'
		}
		nDst++
		nSrc++
	}
	return
}
