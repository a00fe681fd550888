package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriterPool = sync.Pool{
		New: func() any { return gzip.NewWriter(io.Discard) },
	}
	gzipReaderPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaderPool.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaderPool.Put(zr)
				writeServiceError(w, r, errInvalidJSON, "invalid gzip body")
				return
			}
			r.Body = &pooledGzipReader{Reader: zr, source: r.Body}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)
		defer gzipWriterPool.Put(zw)

		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipResponseWriter{ResponseWriter: w, writer: zw}
		next.ServeHTTP(gw, r)

		if gw.compress {
			zw.Close()
		}
	})
}

type pooledGzipReader struct {
	*gzip.Reader
	source io.ReadCloser
	closed bool
}

// Close returns the reader to the pool once; net/http may close a body twice.
func (p *pooledGzipReader) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.Reader.Close()
	gzipReaderPool.Put(p.Reader)
	return p.source.Close()
}

// gzipResponseWriter compresses every status that may carry a body.
type gzipResponseWriter struct {
	http.ResponseWriter
	writer *gzip.Writer

	wroteHeader bool
	compress    bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		w.compress = true
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if !w.compress {
		return w.ResponseWriter.Write(data)
	}
	return w.writer.Write(data)
}
