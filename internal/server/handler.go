package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/marcosfnsc/impl-huffman/huffman"
	"github.com/marcosfnsc/impl-huffman/internal/digest"
	"github.com/marcosfnsc/impl-huffman/internal/logger"
	"github.com/marcosfnsc/impl-huffman/report"
)

// DigestHeader carries the digest of the uncompressed content.
const DigestHeader = "X-Content-Digest"

const octetStream = "application/octet-stream"

// CodecHandler serves the compression endpoints.
type CodecHandler struct {
	log     logger.Logger
	maxBody int64
}

func NewCodecHandler(log logger.Logger, maxBody int64) *CodecHandler {
	return &CodecHandler{log: log, maxBody: maxBody}
}

func (h *CodecHandler) Compress(c *gin.Context) {
	in, ok := h.readBody(c)
	if !ok {
		return
	}

	out, stats, err := huffman.CompressWithStats(in)
	if err != nil {
		h.fail(c, errors.Wrap(err, "compress"))
		return
	}
	h.log.Debugf("compressed %d -> %d bytes (%d symbols, residual %d)",
		stats.InputSize, stats.OutputSize, stats.DistinctSymbols, stats.Residual)

	c.Header(DigestHeader, digest.Sum(in))
	c.Data(http.StatusOK, octetStream, out)
}

func (h *CodecHandler) Decompress(c *gin.Context) {
	in, ok := h.readBody(c)
	if !ok {
		return
	}

	out, err := huffman.Decompress(in)
	if err != nil {
		h.fail(c, errors.Wrap(err, "decompress"))
		return
	}
	h.log.Debugf("decompressed %d -> %d bytes", len(in), len(out))

	c.Header(DigestHeader, digest.Sum(out))
	c.Data(http.StatusOK, octetStream, out)
}

func (h *CodecHandler) Analyze(c *gin.Context) {
	in, ok := h.readBody(c)
	if !ok {
		return
	}

	r, err := report.Analyze(in)
	if err != nil {
		h.fail(c, errors.Wrap(err, "analyze"))
		return
	}
	body, err := report.Marshal(r)
	if err != nil {
		h.fail(c, errors.Wrap(err, "encode report"))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *CodecHandler) readBody(c *gin.Context) ([]byte, bool) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			})
			return nil, false
		}
		h.fail(c, errors.Wrap(err, "read body"))
		return nil, false
	}
	return data, true
}

// fail maps err to a status code. Malformed streams are the client's fault.
func (h *CodecHandler) fail(c *gin.Context, err error) {
	var fe *huffman.FormatError
	if errors.As(err, &fe) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fe.Error()})
		return
	}
	h.log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": errors.Cause(err).Error()})
}
