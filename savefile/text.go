package savefile

import (
	"runtime"

	"golang.org/x/text/transform"
)

// TextEncoder returns the platform text-mode encoder: on Windows it
// expands "\n" into "\r\n", elsewhere it passes bytes through unchanged.
func TextEncoder() transform.Transformer {
	if runtime.GOOS == "windows" {
		return crlfEncoder{}
	}
	return transform.Nop
}

// TextDecoder returns the text-mode decoder, which normalizes "\r\n"
// sequences to "\n" regardless of platform. Lone carriage returns are
// preserved.
func TextDecoder() transform.Transformer {
	return lfDecoder{}
}

type crlfEncoder struct{ transform.NopResetter }

func (crlfEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\n' {
			if nDst+2 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\r'
			dst[nDst+1] = '\n'
			nDst += 2
			nSrc++
			continue
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}

type lfDecoder struct{ transform.NopResetter }

func (lfDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\r' {
			if nSrc+1 >= len(src) {
				if !atEOF {
					// Need one byte of lookahead to decide.
					return nDst, nSrc, transform.ErrShortSrc
				}
			} else if src[nSrc+1] == '\n' {
				if nDst >= len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst] = '\n'
				nDst++
				nSrc += 2
				continue
			}
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
